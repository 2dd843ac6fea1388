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
package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grenade/taskcluster-queue/model"
	"github.com/grenade/taskcluster-queue/store"
)

func newDataStore(t *testing.T) *DataStoreMongo {
	if testing.Short() {
		t.Skip("skipping mongo-backed test in short mode")
	}
	ds := NewDataStoreMongoWithClient(db.Client())
	require.NoError(t, ds.EnsureIndexes(context.Background()))
	return ds
}

func newArtifact(taskID string, runID int64, name string) *model.Artifact {
	return &model.Artifact{
		TaskID:      taskID,
		RunID:       runID,
		Name:        name,
		StorageType: model.StorageTypeReference,
		ContentType: model.DefaultContentType,
		Expires:     time.Now().Add(time.Hour).Truncate(time.Second),
		Details: model.Details{
			Reference: &model.ReferenceDetails{URL: "https://example.com/" + name},
		},
	}
}

func TestDataStoreCreateAndLoad(t *testing.T) {
	ds := newDataStore(t)
	ctx := context.Background()
	taskID := uuid.NewString()

	artifact := newArtifact(taskID, 0, "public/build.log")
	require.NoError(t, ds.Create(ctx, artifact))

	loaded, err := ds.Load(ctx, artifact.Key())
	require.NoError(t, err)
	assert.Equal(t, artifact.Name, loaded.Name)
	assert.Equal(t, artifact.StorageType, loaded.StorageType)
}

func TestDataStoreCreateConflict(t *testing.T) {
	ds := newDataStore(t)
	ctx := context.Background()
	taskID := uuid.NewString()

	artifact := newArtifact(taskID, 0, "public/build.log")
	require.NoError(t, ds.Create(ctx, artifact))

	dup := newArtifact(taskID, 0, "public/build.log")
	err := ds.Create(ctx, dup)
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestDataStoreLoadNotFound(t *testing.T) {
	ds := newDataStore(t)
	ctx := context.Background()

	_, err := ds.Load(ctx, model.ArtifactKey{TaskID: uuid.NewString(), RunID: 0, Name: "missing"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDataStoreModify(t *testing.T) {
	ds := newDataStore(t)
	ctx := context.Background()
	taskID := uuid.NewString()

	artifact := newArtifact(taskID, 0, "public/build.log")
	require.NoError(t, ds.Create(ctx, artifact))

	newExpires := artifact.Expires.Add(time.Hour)
	updated, err := ds.Modify(ctx, artifact.Key(), func(existing *model.Artifact) (*model.Artifact, bool, error) {
		next := *existing
		next.Expires = newExpires
		return &next, true, nil
	})
	require.NoError(t, err)
	assert.True(t, updated.Expires.Equal(newExpires))

	noop, err := ds.Modify(ctx, artifact.Key(), func(existing *model.Artifact) (*model.Artifact, bool, error) {
		return nil, false, nil
	})
	require.NoError(t, err)
	assert.True(t, noop.Expires.Equal(newExpires))
}

func TestDataStoreQueryPagination(t *testing.T) {
	ds := newDataStore(t)
	ctx := context.Background()
	taskID := uuid.NewString()

	names := []string{"a", "b", "c", "d", "e"}
	for _, name := range names {
		require.NoError(t, ds.Create(ctx, newArtifact(taskID, 0, name)))
	}

	filter := model.ArtifactFilter{TaskID: taskID, RunID: 0}
	page1, err := ds.Query(ctx, filter, model.ListOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page1.Artifacts, 2)
	assert.NotEmpty(t, page1.Continuation)

	page2, err := ds.Query(ctx, filter, model.ListOptions{Limit: 2, Continuation: page1.Continuation})
	require.NoError(t, err)
	assert.Len(t, page2.Artifacts, 2)

	page3, err := ds.Query(ctx, filter, model.ListOptions{Limit: 2, Continuation: page2.Continuation})
	require.NoError(t, err)
	assert.Len(t, page3.Artifacts, 1)
	assert.Empty(t, page3.Continuation)
}
