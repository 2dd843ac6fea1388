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

// Package region maps an inbound request to a cloud region tag. The
// resolver is built once at startup from a static CIDR table and answers
// synchronously thereafter — it runs on every public S3 get, so it must
// stay allocation-light and must never perform I/O.
package region

import (
	"net/http"
	"net/netip"
	"strings"

	"github.com/pkg/errors"
)

const (
	HeaderForwardedFor = "X-Forwarded-For"
	HeaderSkipCache    = "x-taskcluster-skip-cache"
)

// Prefix associates a CIDR block with a region tag.
type Prefix struct {
	CIDR   string
	Region string
}

// Resolver is a pure function from request metadata to a region tag.
// Unknown (ip, region) pairs resolve to "", false.
type Resolver struct {
	prefixes []netip.Prefix
	regions  []string
}

// New builds a Resolver from a static table of CIDR-to-region mappings.
// All parsing happens here, once, so that RegionOf never errors or
// allocates on the hot path.
func New(table []Prefix) (*Resolver, error) {
	r := &Resolver{
		prefixes: make([]netip.Prefix, 0, len(table)),
		regions:  make([]string, 0, len(table)),
	}
	for _, entry := range table {
		p, err := netip.ParsePrefix(entry.CIDR)
		if err != nil {
			return nil, errors.WithMessagef(err, "region: invalid CIDR %q", entry.CIDR)
		}
		r.prefixes = append(r.prefixes, p)
		r.regions = append(r.regions, entry.Region)
	}
	return r, nil
}

// RegionOf returns the region tag for addr, or ("", false) if it falls
// outside every configured prefix. Longest-prefix match wins.
func (r *Resolver) RegionOf(addr netip.Addr) (string, bool) {
	best := -1
	bestBits := -1
	for i, p := range r.prefixes {
		if p.Contains(addr) && p.Bits() > bestBits {
			best = i
			bestBits = p.Bits()
		}
	}
	if best < 0 {
		return "", false
	}
	return r.regions[best], true
}

// ClientAddr extracts the originating client address from a request,
// honoring X-Forwarded-For ahead of RemoteAddr.
func ClientAddr(req *http.Request) (netip.Addr, bool) {
	if xff := req.Header.Get(HeaderForwardedFor); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if addr, err := netip.ParseAddr(first); err == nil {
			return addr, true
		}
	}
	host := req.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx >= 0 {
		host = host[:idx]
	}
	addr, err := netip.ParseAddr(host)
	return addr, err == nil
}

// SkipCache reports whether the request explicitly opted out of the
// region-aware cache, per the x-taskcluster-skip-cache header.
func SkipCache(req *http.Request) bool {
	v := strings.ToLower(strings.TrimSpace(req.Header.Get(HeaderSkipCache)))
	return v == "true" || v == "1"
}

// RegionOfRequest is a convenience wrapper: resolve the client address,
// then the region, in one step.
func (r *Resolver) RegionOfRequest(req *http.Request) (string, bool) {
	addr, ok := ClientAddr(req)
	if !ok {
		return "", false
	}
	return r.RegionOf(addr)
}
