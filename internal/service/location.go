package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/guard_dispatch_system/internal/models"
	"github.com/shenikar/guard_dispatch_system/internal/registry"
	"github.com/sirupsen/logrus"
)

type locationService struct {
	registry LocationRegistry
	logger   *logrus.Logger
}

func NewLocationService(registry LocationRegistry, logger *logrus.Logger) LocationService {
	return &locationService{
		registry: registry,
		logger:   logger,
	}
}

// ReportLocation сохраняет позицию охранника. Устаревшие отметки отбрасываются с ошибкой registry.ErrStaleWrite.
func (s *locationService) ReportLocation(ctx context.Context, record models.GuardLocationRecord) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "location",
		"method":   "ReportLocation",
		"guard_id": record.GuardID,
	})

	if err := s.registry.Update(record); err != nil {
		if errors.Is(err, registry.ErrStaleWrite) {
			log.WithError(err).Info("Dropped out-of-order location update")
		} else {
			log.WithError(err).Warn("Rejected location update")
		}
		return fmt.Errorf("service: could not report location: %w", err)
	}

	log.Debug("Location updated")
	return nil
}

// GetLocation возвращает текущую запись охранника
func (s *locationService) GetLocation(ctx context.Context, guardID string) (*models.GuardLocationRecord, error) {
	record, ok := s.registry.Get(guardID)
	if !ok {
		return nil, fmt.Errorf("service: guard %s: %w", guardID, ErrGuardNotFound)
	}
	return &record, nil
}

// SignOff удаляет охранника из реестра по завершении смены
func (s *locationService) SignOff(ctx context.Context, guardID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "location",
		"method":   "SignOff",
		"guard_id": guardID,
	})

	if !s.registry.Remove(guardID) {
		log.Warn("Attempted to sign off a guard without location")
		return fmt.Errorf("service: guard %s not found for sign-off: %w", guardID, ErrGuardNotFound)
	}

	log.Info("Guard signed off")
	return nil
}

// Stats возвращает сводку по реестру
func (s *locationService) Stats(ctx context.Context) models.RegistryStats {
	return s.registry.Stats()
}
