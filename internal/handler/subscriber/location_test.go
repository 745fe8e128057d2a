package subscriber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/guard_dispatch_system/internal/models"
	"github.com/shenikar/guard_dispatch_system/internal/registry"
	"github.com/shenikar/guard_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeMQTTMessage struct {
	topic   string
	payload []byte
}

func (f *fakeMQTTMessage) Duplicate() bool   { return false }
func (f *fakeMQTTMessage) Qos() byte         { return 1 }
func (f *fakeMQTTMessage) Retained() bool    { return false }
func (f *fakeMQTTMessage) Topic() string     { return f.topic }
func (f *fakeMQTTMessage) MessageID() uint16 { return 0 }
func (f *fakeMQTTMessage) Payload() []byte   { return f.payload }
func (f *fakeMQTTMessage) Ack()              {}

func newTestSubscriber(t *testing.T) (*LocationSubscriber, *mocks.MockLocationService, *mocks.MockGeofenceService) {
	ctrl := gomock.NewController(t)
	locationSvc := mocks.NewMockLocationService(ctrl)
	geofenceSvc := mocks.NewMockGeofenceService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewLocationSubscriber(nil, "", locationSvc, geofenceSvc, logger), locationSvc, geofenceSvc
}

func message(t *testing.T, topic string, v any) *fakeMQTTMessage {
	t.Helper()
	payload, err := json.Marshal(v)
	require.NoError(t, err)
	return &fakeMQTTMessage{topic: topic, payload: payload}
}

func TestHandleMessage_GuardIDFromTopic(t *testing.T) {
	sub, locationSvc, geofenceSvc := newTestSubscriber(t)

	var saved models.GuardLocationRecord
	locationSvc.EXPECT().
		ReportLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.GuardLocationRecord) error {
			saved = record
			return nil
		}).Times(1)
	geofenceSvc.EXPECT().EvaluateGuard(gomock.Any(), "guard-7").Return(nil, nil).Times(1)

	sub.handleMessage(nil, message(t, "guards/guard-7/location", map[string]any{
		"latitude":        34.05,
		"longitude":       -118.25,
		"accuracy_meters": 4.5,
		"timestamp":       1772366400,
	}))

	assert.Equal(t, "guard-7", saved.GuardID)
	assert.Equal(t, 34.05, saved.Position.Latitude)
	assert.Equal(t, 4.5, saved.AccuracyMeters)
	assert.True(t, time.Unix(1772366400, 0).Equal(saved.RecordedAt))
}

func TestHandleMessage_PayloadGuardIDAndRecordedAt(t *testing.T) {
	sub, locationSvc, geofenceSvc := newTestSubscriber(t)
	recordedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	locationSvc.EXPECT().
		ReportLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.GuardLocationRecord) error {
			assert.Equal(t, "guard-9", record.GuardID)
			assert.True(t, recordedAt.Equal(record.RecordedAt))
			return nil
		}).Times(1)
	geofenceSvc.EXPECT().EvaluateGuard(gomock.Any(), "guard-9").Return(nil, errors.New("zones unavailable")).Times(1)

	sub.handleMessage(nil, message(t, "guards/other/location", map[string]any{
		"guard_id":    "guard-9",
		"latitude":    34.05,
		"longitude":   -118.25,
		"recorded_at": recordedAt,
	}))
}

func TestHandleMessage_InvalidPayload(t *testing.T) {
	sub, locationSvc, _ := newTestSubscriber(t)
	locationSvc.EXPECT().ReportLocation(gomock.Any(), gomock.Any()).Times(0)

	sub.handleMessage(nil, &fakeMQTTMessage{topic: "guards/guard-1/location", payload: []byte("{not json")})
}

func TestHandleMessage_MissingTimestamp(t *testing.T) {
	sub, locationSvc, _ := newTestSubscriber(t)
	locationSvc.EXPECT().ReportLocation(gomock.Any(), gomock.Any()).Times(0)

	sub.handleMessage(nil, message(t, "guards/guard-1/location", map[string]any{
		"latitude":  34.05,
		"longitude": -118.25,
	}))
}

func TestHandleMessage_RejectedLocationSkipsGeofence(t *testing.T) {
	sub, locationSvc, geofenceSvc := newTestSubscriber(t)

	locationSvc.EXPECT().ReportLocation(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: could not report location: %w", registry.ErrStaleWrite)).Times(1)
	geofenceSvc.EXPECT().EvaluateGuard(gomock.Any(), gomock.Any()).Times(0)

	sub.handleMessage(nil, message(t, "guards/guard-1/location", map[string]any{
		"latitude":  34.05,
		"longitude": -118.25,
		"timestamp": 1772366400,
	}))
}

func TestGuardIDFromTopic(t *testing.T) {
	cases := map[string]string{
		"guards/g-1/location":  "g-1",
		"/guards/g-2/location": "g-2",
		"guards/g-3/status":    "",
		"fleet/g-4/location":   "",
		"guards/location":      "",
	}
	for topic, expected := range cases {
		assert.Equal(t, expected, guardIDFromTopic(topic), topic)
	}
}
