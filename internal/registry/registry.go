// Package registry хранит последние известные позиции охранников в памяти процесса.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shenikar/guard_dispatch_system/internal/geo"
	"github.com/shenikar/guard_dispatch_system/internal/models"
)

var (
	// ErrStaleWrite - пришла позиция не новее уже сохранённой
	ErrStaleWrite = errors.New("stale location update")
	// ErrInvalidRecord - запись о позиции не прошла проверку
	ErrInvalidRecord = errors.New("invalid location record")
)

// Options - параметры реестра
type Options struct {
	// StalenessThreshold - возраст записи, после которого она считается устаревшей
	StalenessThreshold time.Duration
	// Now - источник времени, подменяется в тестах
	Now func() time.Time
}

// Registry - потокобезопасное хранилище позиций охранников
type Registry struct {
	mu        sync.RWMutex
	records   map[string]models.GuardLocationRecord
	staleness time.Duration
	now       func() time.Time
}

// New создает пустой реестр
func New(opts Options) *Registry {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Registry{
		records:   make(map[string]models.GuardLocationRecord),
		staleness: opts.StalenessThreshold,
		now:       opts.Now,
	}
}

// Update заменяет запись охранника, если пришедшая позиция новее сохранённой
func (r *Registry) Update(record models.GuardLocationRecord) error {
	if err := validateRecord(record); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.records[record.GuardID]; ok && !record.RecordedAt.After(existing.RecordedAt) {
		return fmt.Errorf("%w: guard %s has fix at %s, got %s", ErrStaleWrite,
			record.GuardID, existing.RecordedAt.Format(time.RFC3339Nano), record.RecordedAt.Format(time.RFC3339Nano))
	}

	// статус вычисляется при чтении
	record.SourceStatus = ""
	r.records[record.GuardID] = record
	return nil
}

// Get возвращает копию записи охранника
func (r *Registry) Get(guardID string) (models.GuardLocationRecord, bool) {
	r.mu.RLock()
	record, ok := r.records[guardID]
	r.mu.RUnlock()
	if !ok {
		return models.GuardLocationRecord{}, false
	}
	return r.withStatus(record, r.now()), true
}

// Remove удаляет запись охранника (завершение смены)
func (r *Registry) Remove(guardID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[guardID]; !ok {
		return false
	}
	delete(r.records, guardID)
	return true
}

// CandidatesWithin возвращает охранников в радиусе от центра, отсортированных по
// расстоянию по прямой. Устаревшие записи пропускаются, если не задан includeStale.
func (r *Registry) CandidatesWithin(center models.GeoPoint, radiusMeters float64, exclude map[string]struct{}, includeStale bool) []models.GuardLocationRecord {
	snapshot := r.snapshot()
	now := r.now()

	type ranked struct {
		record   models.GuardLocationRecord
		distance float64
	}
	matches := make([]ranked, 0, len(snapshot))
	for _, record := range snapshot {
		if _, skip := exclude[record.GuardID]; skip {
			continue
		}
		record = r.withStatus(record, now)
		if record.SourceStatus == models.SourceStatusStale && !includeStale {
			continue
		}
		d := geo.Distance(center, record.Position)
		if d > radiusMeters {
			continue
		}
		matches = append(matches, ranked{record: record, distance: d})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].record.GuardID < matches[j].record.GuardID
	})

	out := make([]models.GuardLocationRecord, len(matches))
	for i, m := range matches {
		out[i] = m.record
	}
	return out
}

// Snapshot возвращает копии всех записей, включая устаревшие, упорядоченные по guard_id
func (r *Registry) Snapshot() []models.GuardLocationRecord {
	snapshot := r.snapshot()
	now := r.now()
	for i := range snapshot {
		snapshot[i] = r.withStatus(snapshot[i], now)
	}
	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].GuardID < snapshot[j].GuardID
	})
	return snapshot
}

// Sweep удаляет записи старше retention и возвращает их количество.
func (r *Registry) Sweep(retention time.Duration) int {
	return len(r.SweepExpired(retention))
}

// SweepExpired удаляет записи старше retention и возвращает отсортированные guard_id удалённых.
// Выполняется за один проход под блокировкой на запись.
func (r *Registry) SweepExpired(retention time.Duration) []string {
	cutoff := r.now().Add(-retention)

	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []string
	for id, record := range r.records {
		if record.RecordedAt.Before(cutoff) {
			delete(r.records, id)
			removed = append(removed, id)
		}
	}
	sort.Strings(removed)
	return removed
}

// Stats возвращает количество активных и устаревших записей
func (r *Registry) Stats() models.RegistryStats {
	snapshot := r.snapshot()
	now := r.now()

	stats := models.RegistryStats{Total: len(snapshot)}
	for _, record := range snapshot {
		if r.isStale(record, now) {
			stats.Stale++
		} else {
			stats.Active++
		}
	}
	return stats
}

// StalenessThreshold возвращает порог устаревания записей
func (r *Registry) StalenessThreshold() time.Duration {
	return r.staleness
}

func (r *Registry) snapshot() []models.GuardLocationRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.GuardLocationRecord, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, record)
	}
	return out
}

func (r *Registry) isStale(record models.GuardLocationRecord, now time.Time) bool {
	return r.staleness > 0 && now.Sub(record.RecordedAt) > r.staleness
}

func (r *Registry) withStatus(record models.GuardLocationRecord, now time.Time) models.GuardLocationRecord {
	switch {
	case record.RecordedAt.IsZero():
		record.SourceStatus = models.SourceStatusUnknown
	case r.isStale(record, now):
		record.SourceStatus = models.SourceStatusStale
	default:
		record.SourceStatus = models.SourceStatusActive
	}
	return record
}

func validateRecord(record models.GuardLocationRecord) error {
	if record.GuardID == "" {
		return fmt.Errorf("%w: guard_id is required", ErrInvalidRecord)
	}
	if err := record.Position.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if record.RecordedAt.IsZero() {
		return fmt.Errorf("%w: recorded_at is required", ErrInvalidRecord)
	}
	if record.AccuracyMeters < 0 {
		return fmt.Errorf("%w: accuracy_meters must be non-negative", ErrInvalidRecord)
	}
	if record.SpeedMPS < 0 {
		return fmt.Errorf("%w: speed_mps must be non-negative", ErrInvalidRecord)
	}
	if record.HeadingDegrees < 0 || record.HeadingDegrees >= 360 {
		return fmt.Errorf("%w: heading_degrees must be in [0, 360)", ErrInvalidRecord)
	}
	return nil
}
