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

// Package events brokers the artifactCreated(event, routes) sink the
// Artifact Service publishes to after a successful store commit.
// Publication never rolls back the store: a failed publish is logged by
// the caller, not retried here, since subscribers already tolerate
// duplicate and occasionally missing events.
package events

import (
	"context"

	"github.com/grenade/taskcluster-queue/model"
)

// ArtifactCreatedEvent is the payload published once an artifact record
// is durably committed: the owning run's status and worker identity
// alongside the artifact itself, so subscribers can filter on either.
// TaskID is carried for transport-level partitioning only; it is not
// part of the published payload, which never names a field outside
// {status, artifact, workerGroup, workerId, runId}.
type ArtifactCreatedEvent struct {
	TaskID      string             `json:"-"`
	Status      string             `json:"status"`
	Artifact    model.ArtifactView `json:"artifact"`
	WorkerGroup string             `json:"workerGroup"`
	WorkerID    string             `json:"workerId"`
	RunID       int64              `json:"runId"`
}

func ArtifactCreatedEventFrom(a model.Artifact, status, workerGroup, workerID string) ArtifactCreatedEvent {
	return ArtifactCreatedEvent{
		TaskID:      a.TaskID,
		Status:      status,
		Artifact:    a.View(),
		WorkerGroup: workerGroup,
		WorkerID:    workerID,
		RunID:       a.RunID,
	}
}

// Publisher is the event-bus collaborator the service consumes.
type Publisher interface {
	ArtifactCreated(ctx context.Context, event ArtifactCreatedEvent, routes []string) error
}
