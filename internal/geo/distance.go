// Package geo содержит чистые функции расчёта расстояний и попадания в зоны.
package geo

import (
	"math"

	"github.com/shenikar/guard_dispatch_system/internal/models"
)

// EarthRadiusMeters - средний радиус Земли, используемый формулой гаверсинуса
const EarthRadiusMeters = 6371000.0

// Distance возвращает расстояние по большому кругу между точками в метрах
func Distance(a, b models.GeoPoint) float64 {
	if a == b {
		return 0
	}
	lat1 := toRad(a.Latitude)
	lat2 := toRad(b.Latitude)
	dLat := lat2 - lat1
	dLon := toRad(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	// для антиподов ошибка округления может дать h чуть больше 1
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// WithinRadius проверяет, что точка лежит не дальше radiusMeters от центра
func WithinRadius(center, point models.GeoPoint, radiusMeters float64) bool {
	return Distance(center, point) <= radiusMeters
}

// ContainsGeofence проверяет попадание точки в круговую зону
func ContainsGeofence(fence models.Geofence, point models.GeoPoint) bool {
	return WithinRadius(fence.Center, point, fence.RadiusMeters)
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// OverlapArea возвращает площадь пересечения двух круговых зон в квадратных метрах.
// Для зон размером в километры поверхность считается плоской.
func OverlapArea(a, b models.Geofence) float64 {
	r1, r2 := a.RadiusMeters, b.RadiusMeters
	if r1 <= 0 || r2 <= 0 {
		return 0
	}
	d := Distance(a.Center, b.Center)
	if d >= r1+r2 {
		return 0
	}
	if d <= math.Abs(r1-r2) {
		r := math.Min(r1, r2)
		return math.Pi * r * r
	}

	alpha := math.Acos(clamp((d*d+r1*r1-r2*r2)/(2*d*r1), -1, 1))
	beta := math.Acos(clamp((d*d+r2*r2-r1*r1)/(2*d*r2), -1, 1))
	kite := 0.5 * math.Sqrt(math.Max(0, (-d+r1+r2)*(d+r1-r2)*(d-r1+r2)*(d+r1+r2)))
	return r1*r1*alpha + r2*r2*beta - kite
}

// OverlapPercent возвращает долю площади зоны a, покрытую зоной b, в процентах
func OverlapPercent(a, b models.Geofence) float64 {
	if a.RadiusMeters <= 0 {
		return 0
	}
	return 100 * OverlapArea(a, b) / (math.Pi * a.RadiusMeters * a.RadiusMeters)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
