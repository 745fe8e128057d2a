package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/guard_dispatch_system/internal/events"
	"github.com/shenikar/guard_dispatch_system/internal/geo"
	"github.com/shenikar/guard_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// DefaultGeofenceStaleness - возраст позиции, после которого нахождение в зоне считается неизвестным
const DefaultGeofenceStaleness = 30 * time.Minute

type containmentKey struct {
	guardID string
	zoneID  string
}

// containmentStatus - состояние пары и время позиции, по которой оно вычислено
type containmentStatus struct {
	state      models.ContainmentState
	recordedAt time.Time
}

// GeofenceMonitor проверяет нахождение охранников в зонах и публикует события
// только при смене состояния
type GeofenceMonitor struct {
	registry  LocationRegistry
	zones     ZoneSource
	publisher events.Publisher
	staleness time.Duration
	now       func() time.Time
	logger    *logrus.Logger

	mu     sync.Mutex
	states map[containmentKey]containmentStatus
}

// NewGeofenceMonitor создает монитор зон
func NewGeofenceMonitor(registry LocationRegistry, zones ZoneSource, publisher events.Publisher, staleness time.Duration, logger *logrus.Logger) *GeofenceMonitor {
	if staleness <= 0 {
		staleness = DefaultGeofenceStaleness
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &GeofenceMonitor{
		registry:  registry,
		zones:     zones,
		publisher: publisher,
		staleness: staleness,
		now:       time.Now,
		logger:    logger,
		states:    make(map[containmentKey]containmentStatus),
	}
}

// CheckContainment проверяет, находится ли охранник в зоне. Для устаревшей позиции
// возвращает ErrUnknownContainment, а не false.
func (m *GeofenceMonitor) CheckContainment(guardID string, fence models.Geofence) (bool, error) {
	record, err := m.freshRecord(guardID)
	if err != nil {
		return false, err
	}
	return geo.ContainsGeofence(fence, record.Position), nil
}

// Evaluate обновляет состояние пары охранник/зона и возвращает событие, если состояние изменилось.
// Устаревшая позиция состояние не меняет. Проверка по позиции старше той, что уже учтена,
// отбрасывается.
func (m *GeofenceMonitor) Evaluate(ctx context.Context, guardID string, fence models.Geofence) (*models.ContainmentEvent, error) {
	record, err := m.freshRecord(guardID)
	if err != nil {
		return nil, err
	}

	newState := models.ContainmentOutside
	if geo.ContainsGeofence(fence, record.Position) {
		newState = models.ContainmentInside
	}

	key := containmentKey{guardID: guardID, zoneID: fence.ZoneID}
	m.mu.Lock()
	oldState := models.ContainmentUnknown
	if prev, ok := m.states[key]; ok {
		if record.RecordedAt.Before(prev.recordedAt) {
			m.mu.Unlock()
			return nil, nil
		}
		oldState = prev.state
	}
	m.states[key] = containmentStatus{state: newState, recordedAt: record.RecordedAt}
	m.mu.Unlock()

	if oldState == newState {
		return nil, nil
	}

	event := &models.ContainmentEvent{
		ID:       uuid.New(),
		GuardID:  guardID,
		ZoneID:   fence.ZoneID,
		OldState: oldState,
		NewState: newState,
		Position: record.Position,
		At:       m.now(),
	}

	log := m.logger.WithFields(logrus.Fields{
		"service":   "geofence",
		"method":    "Evaluate",
		"guard_id":  guardID,
		"zone_id":   fence.ZoneID,
		"old_state": oldState,
		"new_state": newState,
	})
	log.Info("Containment state changed")

	envelope, err := events.NewEnvelope(events.TypeContainmentChanged, guardID, event, event.At)
	if err != nil {
		return event, fmt.Errorf("service: could not build containment event: %w", err)
	}
	if err := m.publisher.Publish(ctx, envelope); err != nil {
		log.WithError(err).Error("Failed to publish containment event")
		return event, fmt.Errorf("service: could not publish containment event: %w", err)
	}
	return event, nil
}

// CheckZone загружает зону и проверяет нахождение охранника в ней
func (m *GeofenceMonitor) CheckZone(ctx context.Context, guardID, zoneID string) (bool, error) {
	zone, err := m.zones.GetZone(ctx, zoneID)
	if err != nil {
		return false, err
	}
	return m.CheckContainment(guardID, *zone)
}

// ZonesContaining возвращает активные зоны, в которых находится охранник
func (m *GeofenceMonitor) ZonesContaining(ctx context.Context, guardID string) ([]*models.Geofence, error) {
	record, err := m.freshRecord(guardID)
	if err != nil {
		return nil, err
	}

	zones, err := m.zones.ListActiveZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list zones: %w", err)
	}

	containing := make([]*models.Geofence, 0)
	for _, zone := range zones {
		if geo.ContainsGeofence(*zone, record.Position) {
			containing = append(containing, zone)
		}
	}
	return containing, nil
}

// EvaluateGuard проверяет охранника по всем активным зонам
func (m *GeofenceMonitor) EvaluateGuard(ctx context.Context, guardID string) ([]models.ContainmentEvent, error) {
	zones, err := m.zones.ListActiveZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list zones: %w", err)
	}
	return m.evaluateZones(ctx, guardID, zones)
}

// Forget сбрасывает состояния охранника (например, после завершения смены)
func (m *GeofenceMonitor) Forget(guardID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.states {
		if key.guardID == guardID {
			delete(m.states, key)
		}
	}
}

// RunOnce проверяет всех охранников из реестра по всем активным зонам
func (m *GeofenceMonitor) RunOnce(ctx context.Context) (int, error) {
	zones, err := m.zones.ListActiveZones(ctx)
	if err != nil {
		return 0, fmt.Errorf("service: could not list zones: %w", err)
	}

	emitted := 0
	for _, record := range m.registry.Snapshot() {
		if ctx.Err() != nil {
			return emitted, ctx.Err()
		}
		evs, err := m.evaluateZones(ctx, record.GuardID, zones)
		emitted += len(evs)
		if err != nil && !errors.Is(err, ErrUnknownContainment) && !errors.Is(err, ErrGuardNotFound) {
			m.logger.WithError(err).WithField("guard_id", record.GuardID).Warn("Geofence evaluation failed")
		}
	}
	return emitted, nil
}

// Start запускает периодическую проверку зон
func (m *GeofenceMonitor) Start(ctx context.Context, interval time.Duration) {
	m.logger.WithField("interval", interval.String()).Info("Starting geofence monitor...")
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				m.logger.Info("Stopping geofence monitor.")
				return
			case <-ticker.C:
				if _, err := m.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
					m.logger.WithError(err).Error("Geofence monitor pass failed")
				}
			}
		}
	}()
}

func (m *GeofenceMonitor) evaluateZones(ctx context.Context, guardID string, zones []*models.Geofence) ([]models.ContainmentEvent, error) {
	emitted := make([]models.ContainmentEvent, 0)
	var errs []error
	for _, zone := range zones {
		event, err := m.Evaluate(ctx, guardID, *zone)
		if event != nil {
			emitted = append(emitted, *event)
		}
		if err != nil {
			// свежесть позиции одинакова для всех зон
			if errors.Is(err, ErrUnknownContainment) || errors.Is(err, ErrGuardNotFound) {
				return emitted, err
			}
			errs = append(errs, err)
		}
	}
	return emitted, errors.Join(errs...)
}

func (m *GeofenceMonitor) freshRecord(guardID string) (models.GuardLocationRecord, error) {
	record, ok := m.registry.Get(guardID)
	if !ok {
		return models.GuardLocationRecord{}, fmt.Errorf("guard %s: %w", guardID, ErrGuardNotFound)
	}
	if age := m.now().Sub(record.RecordedAt); age > m.staleness {
		return models.GuardLocationRecord{}, fmt.Errorf("guard %s last fix %s ago: %w", guardID, age.Truncate(time.Second), ErrUnknownContainment)
	}
	return record, nil
}
