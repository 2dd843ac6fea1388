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

package task

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/grenade/taskcluster-queue/model"
)

const (
	DatabaseName    = "taskcluster_queue"
	CollectionTasks = "tasks"
	KeyTaskID       = "_id"
)

// MongoReader is a read-only projection over the tasks collection. The
// queue service that owns task lifecycle writes this collection; this
// core only ever reads from it.
type MongoReader struct {
	client *mongo.Client
}

func NewMongoReader(client *mongo.Client) *MongoReader {
	return &MongoReader{client: client}
}

func (r *MongoReader) collection() *mongo.Collection {
	return r.client.Database(DatabaseName).Collection(CollectionTasks)
}

func (r *MongoReader) Load(ctx context.Context, taskID string) (*model.Task, error) {
	var t model.Task
	err := r.collection().FindOne(ctx, bson.M{KeyTaskID: taskID}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, errors.WithMessage(err, "task: failed to load task")
	}
	return &t, nil
}
