// Copyright 2023 Northern.tech AS
//
//	Licensed under the Apache License, Version 2.0 (the "License");
//	you may not use this file except in compliance with the License.
//	You may obtain a copy of the License at
//
//	    http://www.apache.org/licenses/LICENSE-2.0
//
//	Unless required by applicable law or agreed to in writing, software
//	distributed under the License is distributed on an "AS IS" BASIS,
//	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//	See the License for the specific language governing permissions and
//	limitations under the License.

package region

import (
	"context"
	"fmt"
	"net/netip"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedResolver decorates a Resolver with a Redis-backed warm cache of
// recently-resolved client addresses. It is opt-in: a deployment that
// doesn't configure a Redis client keeps using Resolver directly.
type CachedResolver struct {
	resolver *Resolver
	redis    *redis.Client
	ttl      time.Duration
}

func NewCachedResolver(resolver *Resolver, rdb *redis.Client, ttl time.Duration) *CachedResolver {
	return &CachedResolver{resolver: resolver, redis: rdb, ttl: ttl}
}

// NewRedisClient dials and pings a Redis server, per the given URL.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("region: parsing redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("region: pinging redis: %w", err)
	}
	return client, nil
}

func cacheKey(addr netip.Addr) string {
	return fmt.Sprintf("region:ip:%s", addr.String())
}

// RegionOf satisfies service.RegionResolver: the service package calls
// this synchronously on its hot get path, so it backgrounds the context
// the ctx-aware RegionOfContext takes.
func (c *CachedResolver) RegionOf(addr netip.Addr) (string, bool) {
	return c.RegionOfContext(context.Background(), addr)
}

// RegionOfContext checks the cache before falling back to the underlying
// resolver, then populates the cache on a miss. A cache failure
// (connection error, etc.) degrades to the underlying resolver rather
// than failing the request.
func (c *CachedResolver) RegionOfContext(ctx context.Context, addr netip.Addr) (string, bool) {
	key := cacheKey(addr)

	cached, err := c.redis.Get(ctx, key).Result()
	if err == nil {
		if cached == "" {
			return "", false
		}
		return cached, true
	}

	region, ok := c.resolver.RegionOf(addr)
	if !ok {
		c.redis.Set(ctx, key, "", c.ttl)
		return "", false
	}
	c.redis.Set(ctx, key, region, c.ttl)
	return region, true
}
