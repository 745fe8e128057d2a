package routing

import (
	"context"

	"github.com/shenikar/guard_dispatch_system/internal/geo"
	"github.com/shenikar/guard_dispatch_system/internal/models"
)

const (
	// FallbackProviderName - имя провайдера в результатах оценки по прямой
	FallbackProviderName = "straight_line"
	// WarningStraightLine - предупреждение о том, что маршрут оценен по прямой
	WarningStraightLine = "straight_line_estimate_used"

	DefaultDetourFactor    = 1.3
	DefaultWalkingSpeedMPS = 1.4
	DefaultDrivingSpeedMPS = 8.3
)

// FallbackEstimator оценивает маршрут по расстоянию по прямой и никогда не возвращает ошибку
type FallbackEstimator struct {
	detourFactor    float64
	walkingSpeedMPS float64
	drivingSpeedMPS float64
}

// NewFallbackEstimator создает оценщик; неположительные параметры заменяются значениями по умолчанию
func NewFallbackEstimator(detourFactor, walkingSpeedMPS, drivingSpeedMPS float64) *FallbackEstimator {
	if detourFactor <= 0 {
		detourFactor = DefaultDetourFactor
	}
	if walkingSpeedMPS <= 0 {
		walkingSpeedMPS = DefaultWalkingSpeedMPS
	}
	if drivingSpeedMPS <= 0 {
		drivingSpeedMPS = DefaultDrivingSpeedMPS
	}
	return &FallbackEstimator{
		detourFactor:    detourFactor,
		walkingSpeedMPS: walkingSpeedMPS,
		drivingSpeedMPS: drivingSpeedMPS,
	}
}

func (f *FallbackEstimator) Name() string {
	return FallbackProviderName
}

// ComputeRoute реализует RouteProvider; ошибка всегда nil
func (f *FallbackEstimator) ComputeRoute(_ context.Context, origin, destination models.GeoPoint, mode models.TravelMode) (models.RouteResult, error) {
	return f.Estimate(origin, destination, mode), nil
}

// Estimate возвращает расстояние по прямой с поправкой на обход и время в пути
func (f *FallbackEstimator) Estimate(origin, destination models.GeoPoint, mode models.TravelMode) models.RouteResult {
	speed := f.walkingSpeedMPS
	if mode == models.TravelModeDriving {
		speed = f.drivingSpeedMPS
	}
	distance := geo.Distance(origin, destination) * f.detourFactor

	return models.RouteResult{
		Provider:        FallbackProviderName,
		DistanceMeters:  distance,
		DurationSeconds: distance / speed,
		IsFallback:      true,
		Warnings:        []string{WarningStraightLine},
	}
}
