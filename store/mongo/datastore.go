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
	"encoding/base64"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/grenade/taskcluster-queue/model"
	"github.com/grenade/taskcluster-queue/store"
)

const (
	DatabaseName       = "taskcluster_queue"
	CollectionArtifact = "artifacts"

	KeyTaskID      = "task_id"
	KeyRunID       = "run_id"
	KeyName        = "name"
	KeyStorageType = "storage_type"
	KeyContentType = "content_type"
	KeyExpires     = "expires"
	KeyDetails     = "details"
)

// DataStoreMongo is the MongoDB-backed ArtifactStore.
type DataStoreMongo struct {
	client *mongo.Client
}

func NewDataStoreMongoWithClient(client *mongo.Client) *DataStoreMongo {
	return &DataStoreMongo{client: client}
}

func (db *DataStoreMongo) collection() *mongo.Collection {
	return db.client.Database(DatabaseName).Collection(CollectionArtifact)
}

// EnsureIndexes creates the unique compound index backing invariant 1
// ((taskId, runId, name) is unique) and the idempotent-create path's
// conditional insert.
func (db *DataStoreMongo) EnsureIndexes(ctx context.Context) error {
	indexes := db.collection().Indexes()
	_, err := indexes.CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: KeyTaskID, Value: 1},
			{Key: KeyRunID, Value: 1},
			{Key: KeyName, Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.WithMessage(err, "mongo: failed to ensure artifact index")
	}
	return nil
}

func keyFilter(key model.ArtifactKey) bson.M {
	return bson.M{
		KeyTaskID: key.TaskID,
		KeyRunID:  key.RunID,
		KeyName:   key.Name,
	}
}

// Create attempts a conditional insert. It never reads before writing:
// the uniqueness check is enforced by the index, and a duplicate key
// error is mapped to store.ErrConflict for the service's idempotency
// reconciliation branch.
func (db *DataStoreMongo) Create(ctx context.Context, artifact *model.Artifact) error {
	_, err := db.collection().InsertOne(ctx, artifact)
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrConflict
	} else if err != nil {
		return errors.WithMessage(err, "mongo: failed to insert artifact")
	}
	return nil
}

func (db *DataStoreMongo) Load(
	ctx context.Context, key model.ArtifactKey,
) (*model.Artifact, error) {
	var artifact model.Artifact
	err := db.collection().FindOne(ctx, keyFilter(key)).Decode(&artifact)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	} else if err != nil {
		return nil, errors.WithMessage(err, "mongo: failed to load artifact")
	}
	return &artifact, nil
}

// Modify performs a compare-and-swap loop: the mutator observes a
// consistent snapshot and proposes the next state, and the write is
// conditioned on that exact snapshot still being current. A concurrent
// writer winning the race causes a retry against the fresh snapshot,
// linearizing all modifications of the same key without in-process
// locks.
func (db *DataStoreMongo) Modify(
	ctx context.Context,
	key model.ArtifactKey,
	mutate store.Mutator,
) (*model.Artifact, error) {
	coll := db.collection()
	for {
		current, err := db.Load(ctx, key)
		if err != nil {
			return nil, err
		}

		next, ok, err := mutate(current)
		if err != nil {
			return nil, err
		}
		if !ok {
			return current, nil
		}

		casFilter := keyFilter(key)
		casFilter[KeyExpires] = current.Expires
		casFilter[KeyDetails] = current.Details

		after := options.After
		var updated model.Artifact
		err = coll.FindOneAndUpdate(
			ctx,
			casFilter,
			bson.M{"$set": bson.M{
				KeyExpires: next.Expires,
				KeyDetails: next.Details,
			}},
			&options.FindOneAndUpdateOptions{ReturnDocument: &after},
		).Decode(&updated)
		if err == mongo.ErrNoDocuments {
			// lost the race against a concurrent modify; retry
			continue
		} else if err != nil {
			return nil, errors.WithMessage(err, "mongo: failed to modify artifact")
		}
		return &updated, nil
	}
}

func (db *DataStoreMongo) Query(
	ctx context.Context,
	filter model.ArtifactFilter,
	opts model.ListOptions,
) (model.ListResult, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = model.DefaultListLimit
	}
	if limit > model.MaxListLimit {
		limit = model.MaxListLimit
	}

	q := bson.M{
		KeyTaskID: filter.TaskID,
		KeyRunID:  filter.RunID,
	}
	if opts.Continuation != "" {
		name, err := decodeContinuation(opts.Continuation)
		if err != nil {
			return model.ListResult{}, errors.WithMessage(err, "mongo: invalid continuation token")
		}
		q[KeyName] = bson.M{"$gt": name}
	}

	cur, err := db.collection().Find(ctx, q,
		options.Find().
			SetSort(bson.D{{Key: KeyName, Value: 1}}).
			SetLimit(limit+1),
	)
	if err != nil {
		return model.ListResult{}, errors.WithMessage(err, "mongo: failed to query artifacts")
	}
	defer cur.Close(ctx)

	it := IteratorFromCursor[model.Artifact](cur)
	var artifacts []model.Artifact
	for {
		more, err := it.Next(ctx)
		if err != nil {
			return model.ListResult{}, errors.WithMessage(err, "mongo: failed to iterate artifacts")
		}
		if !more {
			break
		}
		var a model.Artifact
		if err := it.Decode(&a); err != nil {
			return model.ListResult{}, errors.WithMessage(err, "mongo: failed to decode artifact")
		}
		artifacts = append(artifacts, a)
	}

	result := model.ListResult{Artifacts: artifacts}
	if int64(len(artifacts)) > limit {
		result.Artifacts = artifacts[:limit]
		result.Continuation = encodeContinuation(result.Artifacts[limit-1].Name)
	}
	return result, nil
}

func encodeContinuation(name string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(name))
}

func decodeContinuation(token string) (string, error) {
	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
