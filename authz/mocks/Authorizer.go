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

// Authorizer is an auto-generated mock type for the Authorizer type
type Authorizer struct {
	mock.Mock
}

func (_m *Authorizer) AuthorizeCreate(
	ctx context.Context, claims authz.ClaimSet,
) (bool, error) {
	ret := _m.Called(ctx, claims)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, authz.ClaimSet) bool); ok {
		r0 = rf(ctx, claims)
	} else {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, authz.ClaimSet) error); ok {
		r1 = rf(ctx, claims)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *Authorizer) AuthorizeGet(
	ctx context.Context, claims authz.ClaimSet, public bool,
) (bool, error) {
	ret := _m.Called(ctx, claims, public)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, authz.ClaimSet, bool) bool); ok {
		r0 = rf(ctx, claims, public)
	} else {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, authz.ClaimSet, bool) error); ok {
		r1 = rf(ctx, claims, public)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
