package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/guard_dispatch_system/internal/events"
	"github.com/shenikar/guard_dispatch_system/internal/models"
	"github.com/shenikar/guard_dispatch_system/internal/routing"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	// WarningTopCandidateFallback - лучший кандидат ранжирован по оценке по прямой
	WarningTopCandidateFallback = "top_candidate_fallback_estimate"
	// WarningRouteIncomplete - префикс предупреждения со списком охранников без готового маршрута
	WarningRouteIncomplete = "route_incomplete"

	DefaultOverfetchFactor  = 3
	DefaultRouteConcurrency = 8
	DefaultDispatchDeadline = 5 * time.Second
	DefaultPublishTimeout   = 5 * time.Second
)

// ErrInvalidDispatchRequest - некорректные параметры подбора
var ErrInvalidDispatchRequest = errors.New("invalid dispatch request")

// DispatchOptions - параметры координатора
type DispatchOptions struct {
	OverfetchFactor int
	Concurrency     int
	Deadline        time.Duration
	PublishTimeout  time.Duration
	Mode            models.TravelMode
	Now             func() time.Time
}

// DispatchCoordinator подбирает и ранжирует охранников для инцидента
type DispatchCoordinator struct {
	registry  LocationRegistry
	router    RouteComputer
	fallback  *routing.FallbackEstimator
	publisher events.Publisher
	opts      DispatchOptions
	logger    *logrus.Logger
	pending   sync.WaitGroup
}

// NewDispatchCoordinator создает координатор. fallback используется для кандидатов,
// чей маршрут не успел построиться до общего дедлайна.
func NewDispatchCoordinator(
	registry LocationRegistry,
	router RouteComputer,
	fallback *routing.FallbackEstimator,
	publisher events.Publisher,
	opts DispatchOptions,
	logger *logrus.Logger,
) *DispatchCoordinator {
	if opts.OverfetchFactor < 1 {
		opts.OverfetchFactor = DefaultOverfetchFactor
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = DefaultRouteConcurrency
	}
	if opts.Deadline <= 0 {
		opts.Deadline = DefaultDispatchDeadline
	}
	if opts.PublishTimeout <= 0 {
		opts.PublishTimeout = DefaultPublishTimeout
	}
	if opts.Mode == "" {
		opts.Mode = models.TravelModeWalking
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if fallback == nil {
		fallback = routing.NewFallbackEstimator(0, 0, 0)
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &DispatchCoordinator{
		registry:  registry,
		router:    router,
		fallback:  fallback,
		publisher: publisher,
		opts:      opts,
		logger:    logger,
	}
}

// FindDispatchCandidates возвращает охранников в радиусе, ранжированных по времени в пути.
// Пустой список означает, что рядом никого нет, и ошибкой не является.
func (c *DispatchCoordinator) FindDispatchCandidates(ctx context.Context, req models.DispatchRequest) (*models.DispatchResult, error) {
	if err := validateDispatchRequest(req); err != nil {
		return nil, err
	}

	result := &models.DispatchResult{
		RequestID:  uuid.New(),
		Candidates: []models.DispatchCandidate{},
		Warnings:   []string{},
		ComputedAt: c.opts.Now(),
	}

	log := c.logger.WithFields(logrus.Fields{
		"service":    "dispatch",
		"method":     "FindDispatchCandidates",
		"request_id": result.RequestID,
		"latitude":   req.IncidentLocation.Latitude,
		"longitude":  req.IncidentLocation.Longitude,
		"radius":     req.RadiusMeters,
	})

	records := c.registry.CandidatesWithin(req.IncidentLocation, req.RadiusMeters, req.ExcludeGuardIDs, false)
	if len(records) == 0 {
		log.Info("No guards in range")
		return result, nil
	}

	if limit := req.MaxCandidates * c.opts.OverfetchFactor; len(records) > limit {
		records = records[:limit]
	}

	routes, incomplete, err := c.routeAll(ctx, records, req.IncidentLocation)
	if err != nil {
		log.WithError(err).Warn("Dispatch request cancelled before routing completed")
		return nil, err
	}

	candidates := make([]models.DispatchCandidate, len(records))
	for i, record := range records {
		candidates[i] = models.DispatchCandidate{
			GuardID:  record.GuardID,
			Location: record,
			Route:    routes[i],
		}
	}
	rankCandidates(candidates)
	if len(candidates) > req.MaxCandidates {
		candidates = candidates[:req.MaxCandidates]
	}
	for i := range candidates {
		candidates[i].Rank = i
	}
	result.Candidates = candidates

	if len(incomplete) > 0 {
		result.Partial = true
		result.Warnings = append(result.Warnings, WarningRouteIncomplete+":"+strings.Join(incomplete, ","))
	}
	if candidates[0].Route.IsFallback {
		result.Warnings = append(result.Warnings, WarningTopCandidateFallback)
	}

	log.WithFields(logrus.Fields{
		"candidates": len(candidates),
		"top_guard":  candidates[0].GuardID,
		"partial":    result.Partial,
		"warnings":   result.Warnings,
	}).Info("Dispatch candidates ranked")

	c.publishRecommendation(ctx, result, log)
	return result, nil
}

// routeAll строит маршруты для кандидатов параллельно с общим дедлайном. Кандидаты,
// не получившие маршрут до дедлайна, получают оценку по прямой и попадают в incomplete.
func (c *DispatchCoordinator) routeAll(ctx context.Context, records []models.GuardLocationRecord, destination models.GeoPoint) ([]models.RouteResult, []string, error) {
	deadlineCtx, cancel := context.WithTimeout(ctx, c.opts.Deadline)
	defer cancel()

	var (
		mu        sync.Mutex
		closed    bool
		routes    = make([]models.RouteResult, len(records))
		completed = make([]bool, len(records))
	)

	g, gctx := errgroup.WithContext(deadlineCtx)
	g.SetLimit(c.opts.Concurrency)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range records {
			if gctx.Err() != nil {
				break
			}
			i := i
			g.Go(func() error {
				if gctx.Err() != nil {
					return nil
				}
				route := c.router.ComputeRoute(gctx, records[i].Position, destination, c.opts.Mode)

				mu.Lock()
				defer mu.Unlock()
				// результаты после дедлайна или отмены отбрасываются
				if !closed && deadlineCtx.Err() == nil {
					routes[i] = route
					completed[i] = true
				}
				return nil
			})
		}
		_ = g.Wait()
	}()

	select {
	case <-done:
	case <-deadlineCtx.Done():
	}

	mu.Lock()
	closed = true
	mu.Unlock()

	if errors.Is(ctx.Err(), context.Canceled) {
		return nil, nil, fmt.Errorf("service: dispatch cancelled: %w", ctx.Err())
	}

	var incomplete []string
	for i, record := range records {
		if completed[i] {
			continue
		}
		route := c.fallback.Estimate(record.Position, destination, c.opts.Mode)
		route.AddWarning(WarningRouteIncomplete)
		routes[i] = route
		incomplete = append(incomplete, record.GuardID)
	}
	sort.Strings(incomplete)

	return routes, incomplete, nil
}

// rankCandidates сортирует по времени в пути, затем по расстоянию и guard_id
func rankCandidates(candidates []models.DispatchCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i].Route, candidates[j].Route
		if a.DurationSeconds != b.DurationSeconds {
			return a.DurationSeconds < b.DurationSeconds
		}
		if a.DistanceMeters != b.DistanceMeters {
			return a.DistanceMeters < b.DistanceMeters
		}
		return candidates[i].GuardID < candidates[j].GuardID
	})
}

// publishRecommendation отправляет событие в фоне, ответ на запрос публикацию не ждёт
func (c *DispatchCoordinator) publishRecommendation(ctx context.Context, result *models.DispatchResult, log *logrus.Entry) {
	event, err := events.NewEnvelope(events.TypeDispatchRecommended, result.RequestID.String(), result, result.ComputedAt)
	if err != nil {
		log.WithError(err).Error("Failed to build dispatch event")
		return
	}

	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.PublishTimeout)
		defer cancel()
		if err := c.publisher.Publish(publishCtx, event); err != nil {
			log.WithError(err).Warn("Failed to publish dispatch event")
		}
	}()
}

// Wait дожидается отправки уже поставленных событий
func (c *DispatchCoordinator) Wait() {
	c.pending.Wait()
}

func validateDispatchRequest(req models.DispatchRequest) error {
	if err := req.IncidentLocation.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDispatchRequest, err)
	}
	if req.RadiusMeters <= 0 {
		return fmt.Errorf("%w: radius must be positive", ErrInvalidDispatchRequest)
	}
	if req.MaxCandidates < 1 {
		return fmt.Errorf("%w: max candidates must be at least 1", ErrInvalidDispatchRequest)
	}
	return nil
}
