package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"
	"errors"

	"github.com/shenikar/guard_dispatch_system/internal/models"
)

var (
	// ErrGuardNotFound - для охранника нет записи о позиции
	ErrGuardNotFound = errors.New("guard location not found")
	// ErrUnknownContainment - позиция охранника устарела, нахождение в зоне неизвестно
	ErrUnknownContainment = errors.New("containment unknown: location is stale")
	// ErrZoneNotFound - зона не найдена
	ErrZoneNotFound = errors.New("geofence zone not found")
	// ErrInvalidZone - некорректные параметры зоны
	ErrInvalidZone = errors.New("invalid geofence zone")
	// ErrZoneExists - зона с таким zone_id уже есть
	ErrZoneExists = errors.New("geofence zone already exists")
)

// GeofenceRepository определяет контракт для работы с бд зон
type GeofenceRepository interface {
	Create(ctx context.Context, zone *models.Geofence) error
	GetByID(ctx context.Context, zoneID string) (*models.Geofence, error)
	Update(ctx context.Context, zone *models.Geofence) error
	Delete(ctx context.Context, zoneID string) error
	List(ctx context.Context, page, pageSize int) ([]*models.Geofence, error)
	ListActive(ctx context.Context) ([]*models.Geofence, error)
	GetFromCache(ctx context.Context, zoneID string) (*models.Geofence, error)
	SetCache(ctx context.Context, zone *models.Geofence) error
	InvalidateCache(ctx context.Context, zoneID string) error
	DeleteInactive(ctx context.Context) ([]string, error)
}

// LocationRegistry - хранилище последних позиций охранников
type LocationRegistry interface {
	Update(record models.GuardLocationRecord) error
	Get(guardID string) (models.GuardLocationRecord, bool)
	Remove(guardID string) bool
	CandidatesWithin(center models.GeoPoint, radiusMeters float64, exclude map[string]struct{}, includeStale bool) []models.GuardLocationRecord
	Snapshot() []models.GuardLocationRecord
	Stats() models.RegistryStats
}

// RouteComputer строит маршрут и никогда не возвращает ошибку
type RouteComputer interface {
	ComputeRoute(ctx context.Context, origin, destination models.GeoPoint, mode models.TravelMode) models.RouteResult
}

// ZoneSource - источник зон для мониторинга
type ZoneSource interface {
	GetZone(ctx context.Context, zoneID string) (*models.Geofence, error)
	ListActiveZones(ctx context.Context) ([]*models.Geofence, error)
}

// LocationService определяет контракт приёма позиций охранников
type LocationService interface {
	ReportLocation(ctx context.Context, record models.GuardLocationRecord) error
	GetLocation(ctx context.Context, guardID string) (*models.GuardLocationRecord, error)
	SignOff(ctx context.Context, guardID string) error
	Stats(ctx context.Context) models.RegistryStats
}

// DispatchService определяет контракт подбора охранников для инцидента
type DispatchService interface {
	FindDispatchCandidates(ctx context.Context, req models.DispatchRequest) (*models.DispatchResult, error)
}

// ZoneService определяет контракт управления зонами
type ZoneService interface {
	CreateZone(ctx context.Context, zone *models.Geofence) error
	GetZone(ctx context.Context, zoneID string) (*models.Geofence, error)
	UpdateZone(ctx context.Context, zone *models.Geofence) error
	DeleteZone(ctx context.Context, zoneID string) error
	ListZones(ctx context.Context, page, pageSize int) ([]*models.Geofence, error)
	ListActiveZones(ctx context.Context) ([]*models.Geofence, error)
	ZoneOverlaps(ctx context.Context, zoneID string) ([]models.ZoneOverlap, error)
	CleanupInactiveZones(ctx context.Context) (int, error)
}

// GeofenceService определяет контракт проверки нахождения охранников в зонах
type GeofenceService interface {
	CheckZone(ctx context.Context, guardID, zoneID string) (bool, error)
	ZonesContaining(ctx context.Context, guardID string) ([]*models.Geofence, error)
	EvaluateGuard(ctx context.Context, guardID string) ([]models.ContainmentEvent, error)
	Forget(guardID string)
}
