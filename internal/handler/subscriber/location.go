// Package subscriber принимает позиции охранников из MQTT.
package subscriber

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/shenikar/guard_dispatch_system/internal/models"
	"github.com/shenikar/guard_dispatch_system/internal/registry"
	"github.com/shenikar/guard_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

// DefaultTopic - шаблон топика, вторым сегментом идет guard_id
const DefaultTopic = "guards/+/location"

// locationMessage - полезная нагрузка трекера. Время передается либо в recorded_at (RFC 3339),
// либо в timestamp (unix-секунды).
type locationMessage struct {
	GuardID        string    `json:"guard_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	SpeedMPS       float64   `json:"speed_mps"`
	HeadingDegrees float64   `json:"heading_degrees"`
	RecordedAt     time.Time `json:"recorded_at"`
	Timestamp      int64     `json:"timestamp"`
}

type LocationSubscriber struct {
	client      mqtt.Client
	topic       string
	locationSvc service.LocationService
	geofenceSvc service.GeofenceService
	logger      *logrus.Logger
	ctx         context.Context
}

func NewLocationSubscriber(client mqtt.Client, topic string, locationSvc service.LocationService, geofenceSvc service.GeofenceService, logger *logrus.Logger) *LocationSubscriber {
	if topic == "" {
		topic = DefaultTopic
	}
	return &LocationSubscriber{
		client:      client,
		topic:       topic,
		locationSvc: locationSvc,
		geofenceSvc: geofenceSvc,
		logger:      logger,
		ctx:         context.Background(),
	}
}

// Start подписывается на топик; ctx ограничивает обработку входящих сообщений
func (s *LocationSubscriber) Start(ctx context.Context) error {
	s.ctx = ctx
	token := s.client.Subscribe(s.topic, 1, s.handleMessage)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt subscribe %s: %w", s.topic, err)
	}
	s.logger.WithField("topic", s.topic).Info("Subscribed to guard locations")
	return nil
}

// Stop отписывается от топика
func (s *LocationSubscriber) Stop() {
	token := s.client.Unsubscribe(s.topic)
	if token.WaitTimeout(2*time.Second) && token.Error() != nil {
		s.logger.WithError(token.Error()).Warn("Failed to unsubscribe from guard locations")
	}
}

func (s *LocationSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	log := s.logger.WithFields(logrus.Fields{
		"handler": "mqtt",
		"topic":   msg.Topic(),
	})

	var raw locationMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		log.WithError(err).Warn("Invalid location message")
		return
	}

	record, err := toRecord(msg.Topic(), raw)
	if err != nil {
		log.WithError(err).Warn("Location message rejected")
		return
	}
	log = log.WithField("guard_id", record.GuardID)

	if err := s.locationSvc.ReportLocation(s.ctx, record); err != nil {
		if !errors.Is(err, registry.ErrStaleWrite) {
			log.WithError(err).Warn("Failed to store location")
		}
		return
	}

	if _, err := s.geofenceSvc.EvaluateGuard(s.ctx, record.GuardID); err != nil {
		log.WithError(err).Warn("Geofence evaluation failed")
	}
}

func toRecord(topic string, raw locationMessage) (models.GuardLocationRecord, error) {
	guardID := raw.GuardID
	if guardID == "" {
		guardID = guardIDFromTopic(topic)
	}
	if guardID == "" {
		return models.GuardLocationRecord{}, errors.New("guard_id: required")
	}

	recordedAt := raw.RecordedAt
	if recordedAt.IsZero() && raw.Timestamp > 0 {
		recordedAt = time.Unix(raw.Timestamp, 0).UTC()
	}
	if recordedAt.IsZero() {
		return models.GuardLocationRecord{}, errors.New("recorded_at or timestamp: required")
	}

	return models.GuardLocationRecord{
		GuardID:        guardID,
		Position:       models.GeoPoint{Latitude: raw.Latitude, Longitude: raw.Longitude},
		AccuracyMeters: raw.AccuracyMeters,
		RecordedAt:     recordedAt,
		SpeedMPS:       raw.SpeedMPS,
		HeadingDegrees: raw.HeadingDegrees,
	}, nil
}

// guardIDFromTopic извлекает guard_id из топика вида guards/{id}/location
func guardIDFromTopic(topic string) string {
	parts := strings.Split(strings.Trim(topic, "/"), "/")
	if len(parts) == 3 && parts[0] == "guards" && parts[2] == "location" {
		return parts[1]
	}
	return ""
}
