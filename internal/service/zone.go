package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/guard_dispatch_system/internal/geo"
	"github.com/shenikar/guard_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type zoneService struct {
	repo   GeofenceRepository
	logger *logrus.Logger
}

func NewZoneService(repo GeofenceRepository, logger *logrus.Logger) ZoneService {
	return &zoneService{
		repo:   repo,
		logger: logger,
	}
}

// CreateZone создает зону. Если идентификатор не задан, он генерируется.
func (s *zoneService) CreateZone(ctx context.Context, zone *models.Geofence) error {
	if strings.TrimSpace(zone.ZoneID) == "" {
		zone.ZoneID = uuid.NewString()
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "CreateZone",
		"zone_id": zone.ZoneID,
		"name":    zone.Name,
	})
	log.Info("Attempting to create a new zone")

	if err := validateZone(zone); err != nil {
		log.WithError(err).Warn("Rejected invalid zone")
		return err
	}

	zone.Active = true
	if err := s.repo.Create(ctx, zone); err != nil {
		log.WithError(err).Error("Failed to create zone in repository")
		return fmt.Errorf("service: could not create zone: %w", err)
	}

	log.Info("Zone created successfully")
	return nil
}

// GetZone получает зону сначала из кеша, затем из бд
func (s *zoneService) GetZone(ctx context.Context, zoneID string) (*models.Geofence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "GetZone",
		"zone_id": zoneID,
	})

	cached, err := s.repo.GetFromCache(ctx, zoneID)
	if err != nil {
		log.WithError(err).Warn("Failed to read zone from cache")
	}
	if cached != nil {
		log.Debug("Zone fetched from cache")
		return cached, nil
	}

	zone, err := s.repo.GetByID(ctx, zoneID)
	if err != nil {
		log.WithError(err).Error("Failed to get zone in repository")
		return nil, fmt.Errorf("service: could not get zone: %w", err)
	}

	if err := s.repo.SetCache(ctx, zone); err != nil {
		log.WithError(err).Warn("Failed to put zone into cache")
	}
	return zone, nil
}

// UpdateZone обновляет существующую зону и сбрасывает кеш
func (s *zoneService) UpdateZone(ctx context.Context, zone *models.Geofence) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "UpdateZone",
		"zone_id": zone.ZoneID,
	})
	log.Info("Attempting to update zone")

	if err := validateZone(zone); err != nil {
		log.WithError(err).Warn("Rejected invalid zone")
		return err
	}

	existing, err := s.repo.GetByID(ctx, zone.ZoneID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent zone")
		return fmt.Errorf("service: zone %s not found for update: %w", zone.ZoneID, err)
	}

	existing.Name = zone.Name
	existing.Center = zone.Center
	existing.RadiusMeters = zone.RadiusMeters
	existing.Active = zone.Active

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update zone in repository")
		return fmt.Errorf("service: could not update zone: %w", err)
	}
	if err := s.repo.InvalidateCache(ctx, zone.ZoneID); err != nil {
		log.WithError(err).Warn("Failed to invalidate zone cache")
	}

	*zone = *existing
	log.Info("Zone updated successfully")
	return nil
}

// DeleteZone деактивирует зону
func (s *zoneService) DeleteZone(ctx context.Context, zoneID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "DeleteZone",
		"zone_id": zoneID,
	})
	log.Info("Attempting to deactivate zone")

	if err := s.repo.Delete(ctx, zoneID); err != nil {
		log.WithError(err).Error("Failed to deactivate zone in repository")
		return fmt.Errorf("service: could not deactivate zone: %w", err)
	}
	if err := s.repo.InvalidateCache(ctx, zoneID); err != nil {
		log.WithError(err).Warn("Failed to invalidate zone cache")
	}

	log.Info("Zone deactivated successfully")
	return nil
}

// ListZones возвращает список зон с пагинацией
func (s *zoneService) ListZones(ctx context.Context, page, pageSize int) ([]*models.Geofence, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "zone",
		"method":    "ListZones",
		"page":      page,
		"page_size": pageSize,
	})

	zones, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list zones from repository")
		return nil, fmt.Errorf("service: could not list zones: %w", err)
	}

	log.WithField("count", len(zones)).Debug("Zones listed successfully")
	return zones, nil
}

// ListActiveZones возвращает все активные зоны
func (s *zoneService) ListActiveZones(ctx context.Context) ([]*models.Geofence, error) {
	zones, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list active zones: %w", err)
	}
	return zones, nil
}

// ZoneOverlaps возвращает активные зоны, пересекающиеся с указанной, по убыванию доли пересечения
func (s *zoneService) ZoneOverlaps(ctx context.Context, zoneID string) ([]models.ZoneOverlap, error) {
	zone, err := s.GetZone(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	others, err := s.ListActiveZones(ctx)
	if err != nil {
		return nil, err
	}

	overlaps := make([]models.ZoneOverlap, 0)
	for _, other := range others {
		if other.ZoneID == zone.ZoneID {
			continue
		}
		if percent := geo.OverlapPercent(*zone, *other); percent > 0 {
			overlaps = append(overlaps, models.ZoneOverlap{ZoneID: other.ZoneID, OverlapPercent: percent})
		}
	}
	sort.Slice(overlaps, func(i, j int) bool {
		if overlaps[i].OverlapPercent != overlaps[j].OverlapPercent {
			return overlaps[i].OverlapPercent > overlaps[j].OverlapPercent
		}
		return overlaps[i].ZoneID < overlaps[j].ZoneID
	})
	return overlaps, nil
}

// CleanupInactiveZones удаляет деактивированные зоны и возвращает их количество
func (s *zoneService) CleanupInactiveZones(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "CleanupInactiveZones",
	})

	removed, err := s.repo.DeleteInactive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to delete inactive zones")
		return 0, fmt.Errorf("service: could not clean up zones: %w", err)
	}

	for _, zoneID := range removed {
		if err := s.repo.InvalidateCache(ctx, zoneID); err != nil {
			log.WithError(err).WithField("zone_id", zoneID).Warn("Failed to invalidate cache for removed zone")
		}
	}

	log.WithField("removed", len(removed)).Info("Inactive zones cleaned up")
	return len(removed), nil
}

func validateZone(zone *models.Geofence) error {
	if strings.TrimSpace(zone.ZoneID) == "" {
		return fmt.Errorf("%w: zone id is required", ErrInvalidZone)
	}
	if err := zone.Center.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidZone, err)
	}
	if zone.RadiusMeters <= 0 {
		return fmt.Errorf("%w: radius must be positive, got %f", ErrInvalidZone, zone.RadiusMeters)
	}
	return nil
}
