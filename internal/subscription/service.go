// Package subscription validates and stores borough subscriptions.
package subscription

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"installations_api/internal/logging"
	"installations_api/internal/models"
	"installations_api/internal/notify"
	"installations_api/internal/serializer"
	"installations_api/internal/validation"
)

// Fixed client-facing messages.
const (
	InvalidMessage = "submitted data is invalid"
	StorageMessage = "error occurred while adding data to storage"
)

// ErrStorageWrite wraps every storage failure met while subscribing.
var ErrStorageWrite = errors.New(StorageMessage)

// ValidationError reports a document that does not satisfy the subscription
// schema. Reason is meant for the response details, never for logs of
// personal data.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return InvalidMessage
}

// Request is the subscription schema.
type Request struct {
	FullName         string `json:"full_name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	BoroughsToFollow []uint `json:"boroughs_to_follow" validate:"required,min=1,unique,dive,gt=0"`
}

// Store is the storage needed to subscribe.
type Store interface {
	BoroughsByIDs(ctx context.Context, ids []uint) ([]models.Borough, error)
	CreateSubscriber(ctx context.Context, s *models.Subscriber) error
}

type Service struct {
	store     Store
	publisher notify.Publisher
}

// NewService returns a Service. A nil publisher disables events.
func NewService(store Store, publisher notify.Publisher) *Service {
	if publisher == nil {
		publisher = notify.Nop{}
	}
	return &Service{store: store, publisher: publisher}
}

// Decode parses body into a Request and validates it against the schema.
func Decode(body []byte) (Request, error) {
	var req Request
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&req); err != nil {
		return Request{}, &ValidationError{Reason: err.Error()}
	}
	if dec.More() {
		return Request{}, &ValidationError{Reason: "unexpected data after the document"}
	}
	if err := validation.Struct(&req); err != nil {
		return Request{}, &ValidationError{Reason: err.Error()}
	}
	return req, nil
}

// Subscribe validates body, stores the subscriber in one transaction and
// returns it as a document. It fails with *ValidationError before touching
// storage, or with ErrStorageWrite when storage fails.
func (s *Service) Subscribe(ctx context.Context, body []byte) (serializer.Document, error) {
	req, err := Decode(body)
	if err != nil {
		return nil, err
	}

	found, err := s.store.BoroughsByIDs(ctx, req.BoroughsToFollow)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}
	byID := make(map[uint]models.Borough, len(found))
	for _, b := range found {
		byID[b.ID] = b
	}
	sub := models.Subscriber{FullName: req.FullName, Email: req.Email}
	var unknown []uint
	for _, id := range req.BoroughsToFollow {
		b, ok := byID[id]
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		sub.Boroughs = append(sub.Boroughs, b)
	}
	if len(unknown) > 0 {
		return nil, &ValidationError{Reason: fmt.Sprintf("boroughs_to_follow contains unknown boroughs %v", unknown)}
	}

	if err := s.store.CreateSubscriber(ctx, &sub); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	s.announce(ctx, sub)
	return serializer.SubscriberDocument(sub), nil
}

// announce publishes one event per followed borough. Failures are logged
// only: the subscriber is already stored.
func (s *Service) announce(ctx context.Context, sub models.Subscriber) {
	for _, b := range sub.Boroughs {
		e := notify.NewEvent(notify.SubscriberAdded, b.ID, map[string]interface{}{
			"subscriber_id": sub.ID,
			"nom":           b.Name,
		})
		if err := s.publisher.Publish(ctx, e); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Uint("borough_id", b.ID).Msg("publish subscriber_added")
		}
	}
}
