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
import time "time"

// Bucket is an auto-generated mock type for the Bucket type
type Bucket struct {
	mock.Mock
}

func (_m *Bucket) Name() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}
	return r0
}

func (_m *Bucket) Region() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}
	return r0
}

func (_m *Bucket) CreatePutURL(
	ctx context.Context, key, contentType string, ttl time.Duration,
) (*model.Link, error) {
	ret := _m.Called(ctx, key, contentType, ttl)

	var r0 *model.Link
	if rf, ok := ret.Get(0).(func(context.Context, string, string, time.Duration) *model.Link); ok {
		r0 = rf(ctx, key, contentType, ttl)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Link)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string, time.Duration) error); ok {
		r1 = rf(ctx, key, contentType, ttl)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *Bucket) CreateGetURL(key string, forceSameRegion bool) string {
	ret := _m.Called(key, forceSameRegion)

	var r0 string
	if rf, ok := ret.Get(0).(func(string, bool) string); ok {
		r0 = rf(key, forceSameRegion)
	} else {
		r0 = ret.Get(0).(string)
	}
	return r0
}

func (_m *Bucket) CreateSignedGetURL(
	ctx context.Context, key string, ttl time.Duration, filename string,
) (*model.Link, error) {
	ret := _m.Called(ctx, key, ttl, filename)

	var r0 *model.Link
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Duration, string) *model.Link); ok {
		r0 = rf(ctx, key, ttl, filename)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Link)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, time.Duration, string) error); ok {
		r1 = rf(ctx, key, ttl, filename)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
