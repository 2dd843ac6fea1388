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
package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/Shopify/sarama/mocks"
	"github.com/stretchr/testify/require"

	"github.com/grenade/taskcluster-queue/events"
	"github.com/grenade/taskcluster-queue/model"
)

func eventArtifact() model.Artifact {
	return model.Artifact{
		TaskID:      "T1",
		RunID:       0,
		Name:        "public/log.txt",
		StorageType: model.StorageTypeS3,
		ContentType: "text/plain",
		Expires:     time.Now().Add(time.Hour),
	}
}

func TestPublisherArtifactCreatedOneMessagePerRoute(t *testing.T) {
	broker := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, broker.Close()) }()

	// one for the bare key, one per route
	broker.ExpectSendMessageAndSucceed()
	broker.ExpectSendMessageAndSucceed()
	broker.ExpectSendMessageAndSucceed()

	p := &Publisher{producer: broker, topic: "artifacts.artifactCreated"}

	event := events.ArtifactCreatedEventFrom(eventArtifact(), "running", "g", "w")
	err := p.ArtifactCreated(context.Background(), event, []string{"notify.email", "index.artifact"})
	require.NoError(t, err)
}

func TestPublisherArtifactCreatedNoRoutes(t *testing.T) {
	broker := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, broker.Close()) }()

	broker.ExpectSendMessageAndSucceed()

	p := &Publisher{producer: broker, topic: "artifacts.artifactCreated"}

	event := events.ArtifactCreatedEventFrom(eventArtifact(), "running", "g", "w")
	require.NoError(t, p.ArtifactCreated(context.Background(), event, nil))
}
