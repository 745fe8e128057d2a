package routing

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shenikar/guard_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// DefaultProviderTimeout - лимит времени на один вызов провайдера
const DefaultProviderTimeout = 2 * time.Second

// Chain опрашивает провайдеров по порядку и при отказе всех возвращает оценку по прямой.
// После создания не изменяется и безопасна для конкурентного использования.
type Chain struct {
	providers []RouteProvider
	fallback  *FallbackEstimator
	timeout   time.Duration
	logger    *logrus.Logger
}

// NewChain создает цепочку провайдеров. fallback обязателен, nil заменяется оценщиком по умолчанию.
func NewChain(providers []RouteProvider, fallback *FallbackEstimator, timeout time.Duration, logger *logrus.Logger) *Chain {
	if fallback == nil {
		fallback = NewFallbackEstimator(0, 0, 0)
	}
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	return &Chain{
		providers: append([]RouteProvider(nil), providers...),
		fallback:  fallback,
		timeout:   timeout,
		logger:    logger,
	}
}

// Providers возвращает имена провайдеров в порядке опроса
func (c *Chain) Providers() []string {
	names := make([]string, 0, len(c.providers))
	for _, p := range c.providers {
		names = append(names, p.Name())
	}
	return names
}

// ComputeRoute возвращает маршрут первого ответившего провайдера. Ошибку не возвращает никогда:
// при отказе всех провайдеров результат строится FallbackEstimator.
func (c *Chain) ComputeRoute(ctx context.Context, origin, destination models.GeoPoint, mode models.TravelMode) models.RouteResult {
	var warnings []string

	for _, provider := range c.providers {
		if ctx.Err() != nil {
			break
		}

		result, err := c.call(ctx, provider, origin, destination, mode)
		if err == nil {
			result.Warnings = models.MergeWarnings(result.Warnings, warnings...)
			return result
		}

		perr := AsProviderError(provider.Name(), err)
		c.logger.WithFields(logrus.Fields{
			"component": "route_chain",
			"provider":  provider.Name(),
			"kind":      perr.Kind,
			"retryable": perr.Retryable,
		}).WithError(err).Warn("Route provider failed, trying next")
		warnings = append(warnings, fmt.Sprintf("provider_failed:%s:%s", provider.Name(), perr.Kind))
	}

	result := c.fallback.Estimate(origin, destination, mode)
	result.Warnings = models.MergeWarnings(result.Warnings, warnings...)
	return result
}

type callResult struct {
	route models.RouteResult
	err   error
}

// call вызывает провайдера с ограничением по времени; провайдер, игнорирующий контекст,
// не задерживает цепочку дольше timeout
func (c *Chain) call(ctx context.Context, provider RouteProvider, origin, destination models.GeoPoint, mode models.TravelMode) (models.RouteResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	done := make(chan callResult, 1)
	go func() {
		route, err := provider.ComputeRoute(callCtx, origin, destination, mode)
		done <- callResult{route: route, err: err}
	}()

	select {
	case <-callCtx.Done():
		return models.RouteResult{}, NewProviderError(provider.Name(), KindTimeout, callCtx.Err())
	case res := <-done:
		if res.err != nil {
			return models.RouteResult{}, res.err
		}
		if err := validateRoute(res.route); err != nil {
			return models.RouteResult{}, NewProviderError(provider.Name(), KindMalformed, err)
		}
		if res.route.Provider == "" {
			res.route.Provider = provider.Name()
		}
		return res.route, nil
	}
}

func validateRoute(route models.RouteResult) error {
	if math.IsNaN(route.DistanceMeters) || math.IsInf(route.DistanceMeters, 0) || route.DistanceMeters < 0 {
		return fmt.Errorf("invalid distance %v", route.DistanceMeters)
	}
	if math.IsNaN(route.DurationSeconds) || math.IsInf(route.DurationSeconds, 0) || route.DurationSeconds < 0 {
		return fmt.Errorf("invalid duration %v", route.DurationSeconds)
	}
	return nil
}
