package domain

import "context"

type Message struct {
	Key   []byte
	Value []byte
}

type PublisherPort interface {
	Publish(topic string, msgs ...Message) error
}

type SyncEventPublisher interface {
	PublishSyncEvent(ctx context.Context, event SyncEvent) error
}
