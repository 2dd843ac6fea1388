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

// Package manager dispatches between the configured storage backends. The
// teacher's manager picks a provider by model.StorageType; here the
// dispatch key is narrower because an artifact's bucket is determined by
// its name prefix rather than by a generic provider registry.
package manager

import (
	"errors"

	"github.com/grenade/taskcluster-queue/model"
	"github.com/grenade/taskcluster-queue/storage"
)

var ErrNoAzureBackend = errors.New("manager: no azure blob backend configured")

// Backends holds the concrete storage adapters wired for this deployment.
// AzureContainer is optional: a deployment may run S3-only.
type Backends struct {
	PublicBucket   storage.Bucket
	PrivateBucket  storage.Bucket
	AzureContainer storage.BlobContainer
}

// BucketFor picks the public or private S3 bucket for an artifact name,
// per the public/ prefix rule.
func (b Backends) BucketFor(name string) storage.Bucket {
	if model.IsPublicName(name) {
		return b.PublicBucket
	}
	return b.PrivateBucket
}

func (b Backends) Azure() (storage.BlobContainer, error) {
	if b.AzureContainer == nil {
		return nil, ErrNoAzureBackend
	}
	return b.AzureContainer, nil
}
