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
	"encoding/json"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"

	"github.com/grenade/taskcluster-queue/events"
)

// Config configures the Kafka-backed Publisher.
type Config struct {
	Brokers []string
	Topic   string
}

// Publisher publishes artifactCreated events to a Kafka topic: one
// message without a route header plus one per configured route, every
// message keyed by task ID.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

func New(cfg Config) (*Publisher, error) {
	sconfig := sarama.NewConfig()
	sconfig.Producer.RequiredAcks = sarama.WaitForAll
	sconfig.Producer.Retry.Max = 10
	sconfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers, sconfig)
	if err != nil {
		return nil, errors.WithMessage(err, "kafka: failed to start producer")
	}
	return &Publisher{producer: producer, topic: cfg.Topic}, nil
}

func (p *Publisher) ArtifactCreated(
	ctx context.Context, event events.ArtifactCreatedEvent, routes []string,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.WithMessage(err, "kafka: failed to marshal event")
	}

	msg := sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.TaskID),
		Value: sarama.ByteEncoder(payload),
	}
	if _, _, err := p.producer.SendMessage(&msg); err != nil {
		return errors.WithMessage(err, "kafka: failed to publish artifactCreated")
	}

	for _, route := range routes {
		routed := msg
		routed.Headers = []sarama.RecordHeader{
			{Key: []byte("route"), Value: []byte(route)},
		}
		if _, _, err := p.producer.SendMessage(&routed); err != nil {
			return errors.WithMessagef(err, "kafka: failed to publish to route %q", route)
		}
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
