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
import authz "github.com/grenade/taskcluster-queue/authz"
import model "github.com/grenade/taskcluster-queue/model"
import service "github.com/grenade/taskcluster-queue/service"

// Service is an auto-generated mock type for the Service type
type Service struct {
	mock.Mock
}

func (_m *Service) CreateArtifact(
	ctx context.Context, key model.ArtifactKey, in model.CreateArtifactInput,
	claims authz.ClaimSet,
) (*service.CreateResult, error) {
	ret := _m.Called(ctx, key, in, claims)

	var r0 *service.CreateResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.CreateResult)
	}
	return r0, ret.Error(1)
}

func (_m *Service) GetArtifact(
	ctx context.Context, key model.ArtifactKey, claims authz.ClaimSet, req service.RegionRequest,
) (*service.GetResult, error) {
	ret := _m.Called(ctx, key, claims, req)

	var r0 *service.GetResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.GetResult)
	}
	return r0, ret.Error(1)
}

func (_m *Service) GetLatestArtifact(
	ctx context.Context, taskID, name string, claims authz.ClaimSet, req service.RegionRequest,
) (*service.GetResult, error) {
	ret := _m.Called(ctx, taskID, name, claims, req)

	var r0 *service.GetResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.GetResult)
	}
	return r0, ret.Error(1)
}

func (_m *Service) ListArtifacts(
	ctx context.Context, taskID string, runID int64, opts model.ListOptions,
) (*model.ListResult, error) {
	ret := _m.Called(ctx, taskID, runID, opts)

	var r0 *model.ListResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ListResult)
	}
	return r0, ret.Error(1)
}

func (_m *Service) ListLatestArtifacts(
	ctx context.Context, taskID string, opts model.ListOptions,
) (*model.ListResult, error) {
	ret := _m.Called(ctx, taskID, opts)

	var r0 *model.ListResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ListResult)
	}
	return r0, ret.Error(1)
}
