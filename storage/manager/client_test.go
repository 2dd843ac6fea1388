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
package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"

	storagemocks "github.com/grenade/taskcluster-queue/storage/mocks"
)

func TestBackendsBucketFor(t *testing.T) {
	public := &storagemocks.Bucket{}
	private := &storagemocks.Bucket{}
	b := Backends{PublicBucket: public, PrivateBucket: private}

	assert.Same(t, public, b.BucketFor("public/log.txt"))
	assert.Same(t, private, b.BucketFor("task-result.json"))
}

func TestBackendsAzure(t *testing.T) {
	b := Backends{}
	_, err := b.Azure()
	assert.ErrorIs(t, err, ErrNoAzureBackend)

	container := &storagemocks.BlobContainer{}
	b.AzureContainer = container
	got, err := b.Azure()
	assert.NoError(t, err)
	assert.Same(t, container, got)
}
