package registry

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Sweeper - фоновая задача очистки реестра от старых записей
type Sweeper struct {
	registry  *Registry
	interval  time.Duration
	retention time.Duration
	logger    *logrus.Logger
	onRemove  func(guardID string)
}

// NewSweeper создает Sweeper
func NewSweeper(registry *Registry, interval, retention time.Duration, logger *logrus.Logger) *Sweeper {
	return &Sweeper{
		registry:  registry,
		interval:  interval,
		retention: retention,
		logger:    logger,
	}
}

// Start запускает горутину, которая раз в interval удаляет записи старше retention
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.WithFields(logrus.Fields{
		"interval":  s.interval.String(),
		"retention": s.retention.String(),
	}).Info("Starting location registry sweeper...")

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping location registry sweeper.")
				return
			case <-ticker.C:
				s.RunOnce()
			}
		}
	}()
}

// OnRemove задает обработчик, вызываемый для каждого удалённого охранника
func (s *Sweeper) OnRemove(fn func(guardID string)) *Sweeper {
	s.onRemove = fn
	return s
}

// RunOnce выполняет один проход очистки
func (s *Sweeper) RunOnce() int {
	removed := s.registry.SweepExpired(s.retention)
	if len(removed) > 0 {
		s.logger.WithField("removed", len(removed)).Info("Swept expired guard locations")
	}
	if s.onRemove != nil {
		for _, guardID := range removed {
			s.onRemove(guardID)
		}
	}
	return len(removed)
}
