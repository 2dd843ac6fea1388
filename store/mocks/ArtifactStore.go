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
package mocks

import context "context"
import mock "github.com/stretchr/testify/mock"
import model "github.com/grenade/taskcluster-queue/model"
import store "github.com/grenade/taskcluster-queue/store"

// ArtifactStore is an auto-generated mock type for the ArtifactStore type
type ArtifactStore struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, artifact
func (_m *ArtifactStore) Create(ctx context.Context, artifact *model.Artifact) error {
	ret := _m.Called(ctx, artifact)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *model.Artifact) error); ok {
		r0 = rf(ctx, artifact)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Load provides a mock function with given fields: ctx, key
func (_m *ArtifactStore) Load(
	ctx context.Context, key model.ArtifactKey,
) (*model.Artifact, error) {
	ret := _m.Called(ctx, key)

	var r0 *model.Artifact
	if rf, ok := ret.Get(0).(func(context.Context, model.ArtifactKey) *model.Artifact); ok {
		r0 = rf(ctx, key)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Artifact)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.ArtifactKey) error); ok {
		r1 = rf(ctx, key)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Modify provides a mock function with given fields: ctx, key, mutate
func (_m *ArtifactStore) Modify(
	ctx context.Context, key model.ArtifactKey, mutate store.Mutator,
) (*model.Artifact, error) {
	ret := _m.Called(ctx, key, mutate)

	var r0 *model.Artifact
	if rf, ok := ret.Get(0).(func(context.Context, model.ArtifactKey, store.Mutator) *model.Artifact); ok {
		r0 = rf(ctx, key, mutate)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Artifact)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.ArtifactKey, store.Mutator) error); ok {
		r1 = rf(ctx, key, mutate)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Query provides a mock function with given fields: ctx, filter, opts
func (_m *ArtifactStore) Query(
	ctx context.Context, filter model.ArtifactFilter, opts model.ListOptions,
) (model.ListResult, error) {
	ret := _m.Called(ctx, filter, opts)

	var r0 model.ListResult
	if rf, ok := ret.Get(0).(func(context.Context, model.ArtifactFilter, model.ListOptions) model.ListResult); ok {
		r0 = rf(ctx, filter, opts)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.ListResult)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.ArtifactFilter, model.ListOptions) error); ok {
		r1 = rf(ctx, filter, opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
