package models

import (
	"fmt"
	"time"
)

// GeoPoint - точка на поверхности Земли в градусах WGS84
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate проверяет, что координаты находятся в допустимых диапазонах
func (p GeoPoint) Validate() error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range [-90, 90]", p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range [-180, 180]", p.Longitude)
	}
	return nil
}

// Geofence - круговая зона (граница охраняемого объекта)
type Geofence struct {
	ZoneID       string    `json:"zone_id"`
	Name         string    `json:"name"`
	Center       GeoPoint  `json:"center"`
	RadiusMeters float64   `json:"radius_meters"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ZoneOverlap - зона, пересекающаяся с проверяемой, и доля покрытой площади
type ZoneOverlap struct {
	ZoneID         string  `json:"zone_id"`
	OverlapPercent float64 `json:"overlap_percent"`
}
