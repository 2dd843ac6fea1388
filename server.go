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
package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/pkg/errors"

	httpapi "github.com/grenade/taskcluster-queue/api/http"
	"github.com/grenade/taskcluster-queue/authz"
	"github.com/grenade/taskcluster-queue/config"
	"github.com/grenade/taskcluster-queue/events/kafka"
	"github.com/grenade/taskcluster-queue/region"
	"github.com/grenade/taskcluster-queue/service"
	"github.com/grenade/taskcluster-queue/storage/azblob"
	"github.com/grenade/taskcluster-queue/storage/manager"
	"github.com/grenade/taskcluster-queue/storage/s3"
	"github.com/grenade/taskcluster-queue/store/mongo"
	"github.com/grenade/taskcluster-queue/task"
)

// RunServer wires every collaborator the Artifact Service needs from the
// loaded configuration, then blocks serving HTTP.
func RunServer(c config.Reader) error {
	ctx := context.Background()

	client, err := mongo.Connect(ctx, c.GetString(SettingMongoURL))
	if err != nil {
		return errors.WithMessage(err, "server: failed to connect to mongo")
	}

	artifactStore := mongo.NewDataStoreMongoWithClient(client)
	if err := artifactStore.EnsureIndexes(ctx); err != nil {
		return errors.WithMessage(err, "server: failed to ensure indexes")
	}

	tasks := task.NewMongoReader(client)

	backends, err := buildBackends(ctx, c)
	if err != nil {
		return errors.WithMessage(err, "server: failed to configure storage backends")
	}

	resolver, err := buildResolver(ctx, c)
	if err != nil {
		return errors.WithMessage(err, "server: failed to configure region resolver")
	}

	publisher, err := kafka.New(kafka.Config{
		Brokers: c.GetStringSlice(SettingKafkaBrokers),
		Topic:   c.GetString(SettingKafkaTopic),
	})
	if err != nil {
		return errors.WithMessage(err, "server: failed to configure kafka publisher")
	}
	defer publisher.Close()

	svc := service.New(
		artifactStore,
		tasks,
		authz.NewScopeAuthorizer(),
		backends,
		resolver,
		publisher,
		service.Config{CloudMirrorHost: c.GetString(SettingCloudMirrorHost)},
	)

	handlers := httpapi.NewArtifactHandlers(svc)

	router, err := httpapi.NewRouter(handlers)
	if err != nil {
		return err
	}

	api := rest.NewApi()
	SetupMiddleware(c, api)
	api.SetApp(router)

	listen := c.GetString(SettingListen)

	if c.IsSet(SettingHttps) {
		cert := c.GetString(SettingHttpsCertificate)
		key := c.GetString(SettingHttpsKey)
		return http.ListenAndServeTLS(listen, cert, key, api.MakeHandler())
	}

	return http.ListenAndServe(listen, api.MakeHandler())
}

// buildBackends dials the configured storage backends. Azure is optional;
// a deployment that leaves azure.connection_string unset runs S3-only,
// and a create request for an azure artifact fails at the manager.
func buildBackends(ctx context.Context, c config.Reader) (manager.Backends, error) {
	awsRegion := c.GetString(SettingAwsRegion)
	opts := func(bucket string) s3.Options {
		return s3.Options{
			Bucket:         bucket,
			Region:         awsRegion,
			CloudFrontHost: c.GetString(SettingAwsCloudFrontHost),
			SameRegionHost: c.GetString(SettingAwsSameRegionHost),
		}
	}

	publicBucket, err := s3.New(ctx, opts(c.GetString(SettingAwsPublicBucket)))
	if err != nil {
		return manager.Backends{}, err
	}
	privateBucket, err := s3.New(ctx, opts(c.GetString(SettingAwsPrivateBucket)))
	if err != nil {
		return manager.Backends{}, err
	}

	backends := manager.Backends{PublicBucket: publicBucket, PrivateBucket: privateBucket}

	if c.GetString(SettingAzureConnectionString) != "" {
		container, err := azblob.New(ctx, azblob.Options{
			Container:        c.GetString(SettingAzureContainer),
			ConnectionString: c.GetString(SettingAzureConnectionString),
		})
		if err != nil {
			return manager.Backends{}, err
		}
		backends.AzureContainer = container
	}

	return backends, nil
}

// buildResolver parses the configured CIDR-to-region table (entries of
// the form "cidr=region") and, if a redis.url is configured, wraps the
// resolver with a warm cache.
func buildResolver(ctx context.Context, c config.Reader) (service.RegionResolver, error) {
	var table []region.Prefix
	for _, entry := range c.GetStringSlice(SettingRegionTable) {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("region.table: invalid entry %q, want cidr=region", entry)
		}
		table = append(table, region.Prefix{CIDR: parts[0], Region: parts[1]})
	}

	resolver, err := region.New(table)
	if err != nil {
		return nil, err
	}

	redisURL := c.GetString(SettingRedisURL)
	if redisURL == "" {
		return resolver, nil
	}

	rdb, err := region.NewRedisClient(ctx, redisURL)
	if err != nil {
		return nil, err
	}
	return region.NewCachedResolver(resolver, rdb, c.GetDuration(SettingRegionCacheTTL)), nil
}
