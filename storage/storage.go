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

// Package storage defines the uniform capability surface the Artifact
// Service dispatches across for the two byte-bearing storage variants.
// `reference` and `error` artifacts have no adapter here; they are pure
// metadata short-circuited by the service before it ever reaches this
// package.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/grenade/taskcluster-queue/model"
)

var ErrBucketPreconditionFailed = errors.New("storage: bucket precondition check failed")

// Bucket is the capability surface of an S3-compatible object store.
type Bucket interface {
	// Name returns the configured bucket identifier.
	Name() string

	// Region returns the cloud region this bucket lives in, for the
	// region-aware get dispatch.
	Region() string

	// CreatePutURL signs an upload request bound to contentType, valid
	// for ttl.
	CreatePutURL(
		ctx context.Context, key, contentType string, ttl time.Duration,
	) (*model.Link, error)

	// CreateGetURL builds an unsigned, public GET URL: the cloud-front
	// form when forceSameRegion is false, or the direct same-region
	// bucket-host form (bypassing the CDN) when true. No signing, no
	// network I/O — pure string construction.
	CreateGetURL(key string, forceSameRegion bool) string

	// CreateSignedGetURL signs a download request, valid for ttl. If
	// filename is non-empty, the response carries a
	// Content-Disposition suggesting it.
	CreateSignedGetURL(
		ctx context.Context, key string, ttl time.Duration, filename string,
	) (*model.Link, error)
}

// BlobContainer is the capability surface of an Azure blob container.
type BlobContainer interface {
	Name() string

	GenerateWriteSAS(
		ctx context.Context, path string, expiry time.Duration,
	) (*model.Link, error)

	CreateSignedGetURL(
		ctx context.Context, path string, expiry time.Duration,
	) (*model.Link, error)
}

// TTLs fixed by the resource policy: no configuration knob, because
// varying them per deployment would make the create/get contract
// observably different across environments.
const (
	PutURLTTL    = 30*time.Minute + 10*time.Second
	WriteSASTTL  = 30 * time.Minute
	SignedGetTTL = 30 * time.Minute
)
