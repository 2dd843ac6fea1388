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
import events "github.com/grenade/taskcluster-queue/events"

// Publisher is an auto-generated mock type for the Publisher type
type Publisher struct {
	mock.Mock
}

func (_m *Publisher) ArtifactCreated(
	ctx context.Context, event events.ArtifactCreatedEvent, routes []string,
) error {
	ret := _m.Called(ctx, event, routes)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, events.ArtifactCreatedEvent, []string) error); ok {
		r0 = rf(ctx, event, routes)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}
