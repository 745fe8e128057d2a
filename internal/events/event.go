// Package events публикует события подсистемы диспетчеризации для внешних потребителей.
package events

//go:generate mockgen -source=event.go -destination=mocks/mock_event.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type - тип события
type Type string

const (
	TypeContainmentChanged  Type = "containment.changed"
	TypeDispatchRecommended Type = "dispatch.recommended"
)

// Envelope - конверт события, одинаковый для всех транспортов
type Envelope struct {
	ID         uuid.UUID       `json:"id"`
	Type       Type            `json:"type"`
	Key        string          `json:"key"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}

// NewEnvelope сериализует данные события в конверт. key используется транспортами
// для партиционирования (например, guard_id).
func NewEnvelope(eventType Type, key string, data any, at time.Time) (Envelope, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}
	return Envelope{
		ID:         uuid.New(),
		Type:       eventType,
		Key:        key,
		OccurredAt: at.UTC(),
		Data:       payload,
	}, nil
}

// Publisher - интерфейс для публикации событий
type Publisher interface {
	Publish(ctx context.Context, event Envelope) error
}

// NopPublisher отбрасывает события
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Envelope) error {
	return nil
}
