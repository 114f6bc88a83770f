// Package notify fans borough events out to interested listeners.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Event types.
const (
	BoroughUpdated  = "borough_updated"
	SubscriberAdded = "subscriber_added"
)

// Event is published on the channel of the borough it concerns.
type Event struct {
	EventType string      `json:"event_type"`
	BoroughID uint        `json:"borough_id"`
	Data      interface{} `json:"data"`
	At        time.Time   `json:"at"`
}

// NewEvent stamps an event with the current time.
func NewEvent(eventType string, boroughID uint, data interface{}) Event {
	return Event{EventType: eventType, BoroughID: boroughID, Data: data, At: time.Now().UTC()}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Channel is the pub/sub channel for a borough.
func Channel(boroughID uint) string {
	return fmt.Sprintf("arrondissements:%d", boroughID)
}

// RedisPublisher publishes JSON-encoded events on redis pub/sub.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, Channel(e.BoroughID), payload).Err()
}

// Multi publishes to every publisher and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, e Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
