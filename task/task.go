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

// Package task brokers read-only access to the Task entity and its
// run/state machinery. The task-queue owns that table; this core only
// reads it to enforce the artifact lifecycle invariants.
package task

import (
	"context"
	"errors"

	"github.com/grenade/taskcluster-queue/model"
)

var ErrNotFound = errors.New("task: not found")

// Reader is the collaborator createArtifact, getLatestArtifact and the
// list operations consult to load the task a request names.
type Reader interface {
	Load(ctx context.Context, taskID string) (*model.Task, error)
}
