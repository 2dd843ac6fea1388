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

// Package store defines the durable, keyed table of artifact metadata:
// conditional insert, load, atomic modify, and paged query by the
// composite key (taskId, runId, name).
package store

import (
	"context"
	"errors"

	"github.com/grenade/taskcluster-queue/model"
)

var (
	// ErrNotFound is returned by Load and Modify when the key does not exist.
	ErrNotFound = errors.New("store: artifact not found")

	// ErrConflict is returned by Create when the composite key already
	// exists. Callers reconcile via Load + Modify; this is the signal
	// that drives the idempotency branch, never a read-then-insert race.
	ErrConflict = errors.New("store: artifact already exists")
)

// Iterator is a generic forward-only cursor, mirroring the shape the
// store's own MongoDB cursor exposes so callers never see the driver type.
type Iterator[T any] interface {
	Next(ctx context.Context) (bool, error)
	Decode(value *T) error
	Close(ctx context.Context) error
}

// Mutator inspects the loaded artifact and returns the desired next state.
// Returning ok=false aborts the modification without error, and Modify
// returns the existing record unchanged. Returning an error aborts the
// modification and Modify returns that error.
type Mutator func(existing *model.Artifact) (next *model.Artifact, ok bool, err error)

// ArtifactStore is the durable table of artifact metadata.
type ArtifactStore interface {
	// Create attempts a conditional insert keyed by (taskId, runId, name).
	// It returns ErrConflict, never an error observed via a prior read,
	// if the key already exists.
	Create(ctx context.Context, artifact *model.Artifact) error

	// Load returns ErrNotFound if no record exists for the key.
	Load(ctx context.Context, key model.ArtifactKey) (*model.Artifact, error)

	// Modify performs an atomic read-modify-write, linearized against
	// concurrent Create/Modify of the same key. Returns ErrNotFound if
	// the key does not exist.
	Modify(ctx context.Context, key model.ArtifactKey, mutate Mutator) (*model.Artifact, error)

	// Query performs an ordered paged scan of artifacts matching filter.
	Query(
		ctx context.Context,
		filter model.ArtifactFilter,
		opts model.ListOptions,
	) (model.ListResult, error)
}
