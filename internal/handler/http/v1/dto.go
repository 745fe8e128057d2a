package v1

import (
	"time"
)

// ReportLocationRequest DTO для передачи позиции охранника
// @Description DTO для передачи позиции охранника
type ReportLocationRequest struct {
	GuardID        string    `json:"guard_id" validate:"required,max=128"`
	Latitude       float64   `json:"latitude" validate:"latitude"`
	Longitude      float64   `json:"longitude" validate:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters" validate:"gte=0"`
	RecordedAt     time.Time `json:"recorded_at" validate:"required"`
	SpeedMPS       float64   `json:"speed_mps" validate:"gte=0"`
	HeadingDegrees float64   `json:"heading_degrees" validate:"gte=0,lt=360"`
}

// ReportLocationResponse DTO для ответа на передачу позиции
// @Description DTO для ответа на передачу позиции
type ReportLocationResponse struct {
	GuardID           string `json:"guard_id"`
	ContainmentEvents int    `json:"containment_events"`
}

// GuardLocationResponse DTO с последней позицией охранника
// @Description DTO с последней позицией охранника
type GuardLocationResponse struct {
	GuardID        string    `json:"guard_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	RecordedAt     time.Time `json:"recorded_at"`
	SpeedMPS       float64   `json:"speed_mps"`
	HeadingDegrees float64   `json:"heading_degrees"`
	SourceStatus   string    `json:"source_status"`
}

// DispatchRequest DTO для подбора охранников к инциденту
// @Description DTO для подбора охранников к инциденту
type DispatchRequest struct {
	Latitude        float64  `json:"latitude" validate:"latitude"`
	Longitude       float64  `json:"longitude" validate:"longitude"`
	RadiusMeters    float64  `json:"radius_meters,omitempty" validate:"omitempty,gt=0,lte=100000"`
	ExcludeGuardIDs []string `json:"exclude_guard_ids,omitempty" validate:"omitempty,dive,required"`
	MaxCandidates   int      `json:"max_candidates,omitempty" validate:"omitempty,gte=1,lte=50"`
	RequireBackup   bool     `json:"require_backup,omitempty"`
}

// CandidateResponse DTO кандидата с маршрутом
// @Description DTO кандидата с маршрутом
type CandidateResponse struct {
	GuardID         string    `json:"guard_id"`
	Rank            int       `json:"rank"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	RecordedAt      time.Time `json:"recorded_at"`
	Provider        string    `json:"provider"`
	DistanceMeters  float64   `json:"distance_meters"`
	DurationSeconds float64   `json:"duration_seconds"`
	Polyline        string    `json:"polyline,omitempty"`
	IsFallback      bool      `json:"is_fallback"`
	Warnings        []string  `json:"warnings"`
}

// DispatchResponse DTO с ранжированными кандидатами
// @Description DTO с ранжированными кандидатами
type DispatchResponse struct {
	RequestID  string              `json:"request_id"`
	Candidates []CandidateResponse `json:"candidates"`
	Primary    *CandidateResponse  `json:"primary,omitempty"`
	Backup     *CandidateResponse  `json:"backup,omitempty"`
	Warnings   []string            `json:"warnings"`
	Partial    bool                `json:"partial"`
	ComputedAt time.Time           `json:"computed_at"`
}

// CreateGeofenceRequest DTO для создания зоны
// @Description DTO для создания зоны
type CreateGeofenceRequest struct {
	ZoneID       string  `json:"zone_id,omitempty" validate:"omitempty,max=64"`
	Name         string  `json:"name" validate:"required,min=2,max=255"`
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
	RadiusMeters float64 `json:"radius_meters" validate:"required,gt=0"`
}

// UpdateGeofenceRequest DTO для обновления зоны
// @Description DTO для обновления зоны
type UpdateGeofenceRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=255"`
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
	RadiusMeters float64 `json:"radius_meters" validate:"required,gt=0"`
	Active       *bool   `json:"active" validate:"required"`
}

// GeofenceResponse DTO для ответа с информацией о зоне
// @Description DTO для ответа с информацией о зоне
type GeofenceResponse struct {
	ZoneID       string    `json:"zone_id"`
	Name         string    `json:"name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters float64   `json:"radius_meters"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ZoneOverlapResponse DTO пересечения зон
// @Description DTO пересечения зон
type ZoneOverlapResponse struct {
	ZoneID         string  `json:"zone_id"`
	OverlapPercent float64 `json:"overlap_percent"`
}

// CleanupResponse DTO результата удаления неактивных зон
// @Description DTO результата удаления неактивных зон
type CleanupResponse struct {
	Removed int `json:"removed"`
}

// ContainmentResponse DTO результата проверки нахождения в зоне
// @Description DTO результата проверки нахождения в зоне
type ContainmentResponse struct {
	GuardID string `json:"guard_id"`
	ZoneID  string `json:"zone_id"`
	Inside  bool   `json:"inside"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	TotalGuards    int      `json:"total_guards"`
	ActiveGuards   int      `json:"active_guards"`
	StaleGuards    int      `json:"stale_guards"`
	RouteProviders []string `json:"route_providers"`
}
