package models

import (
	"time"

	"github.com/google/uuid"
)

// DispatchCandidate - охранник с рассчитанным маршрутом до инцидента
type DispatchCandidate struct {
	GuardID  string              `json:"guard_id"`
	Location GuardLocationRecord `json:"location"`
	Route    RouteResult         `json:"route"`
	Rank     int                 `json:"rank"`
}

// DispatchRequest - параметры подбора охранников
type DispatchRequest struct {
	IncidentLocation GeoPoint
	RadiusMeters     float64
	ExcludeGuardIDs  map[string]struct{}
	MaxCandidates    int
}

// DispatchResult - ранжированный список кандидатов с предупреждениями
type DispatchResult struct {
	RequestID  uuid.UUID           `json:"request_id"`
	Candidates []DispatchCandidate `json:"candidates"`
	Warnings   []string            `json:"warnings"`
	Partial    bool                `json:"partial"`
	ComputedAt time.Time           `json:"computed_at"`
}
