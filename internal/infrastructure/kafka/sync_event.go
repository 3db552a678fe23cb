package publisher

import (
	"context"
	"encoding/json"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
)

// SyncEventPublisher sends one JSON message per finished sync attempt,
// keyed by restaurant so a restaurant's events stay ordered.
type SyncEventPublisher struct {
	port  domain.PublisherPort
	topic string
}

func NewSyncEventPublisher(port domain.PublisherPort, topic string) *SyncEventPublisher {
	return &SyncEventPublisher{port: port, topic: topic}
}

func (p *SyncEventPublisher) PublishSyncEvent(_ context.Context, event domain.SyncEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.port.Publish(p.topic, domain.Message{Key: []byte(event.RestaurantID), Value: v})
}

// NopSyncEventPublisher is used when kafka is disabled.
type NopSyncEventPublisher struct{}

func (NopSyncEventPublisher) PublishSyncEvent(context.Context, domain.SyncEvent) error {
	return nil
}
