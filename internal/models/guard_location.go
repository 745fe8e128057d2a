package models

import (
	"time"
)

// SourceStatus - состояние источника координат охранника
type SourceStatus string

const (
	SourceStatusActive  SourceStatus = "active"
	SourceStatusStale   SourceStatus = "stale"
	SourceStatusUnknown SourceStatus = "unknown"
)

// GuardLocationRecord - последняя известная позиция охранника
type GuardLocationRecord struct {
	GuardID        string       `json:"guard_id"`
	Position       GeoPoint     `json:"position"`
	AccuracyMeters float64      `json:"accuracy_meters"`
	RecordedAt     time.Time    `json:"recorded_at"`
	SpeedMPS       float64      `json:"speed_mps"`
	HeadingDegrees float64      `json:"heading_degrees"`
	SourceStatus   SourceStatus `json:"source_status"`
}

// RegistryStats - сводка по реестру позиций
type RegistryStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	Stale  int `json:"stale"`
}
