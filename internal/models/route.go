package models

import "sort"

// TravelMode - способ передвижения охранника
type TravelMode string

const (
	TravelModeWalking TravelMode = "walking"
	TravelModeDriving TravelMode = "driving"
)

// RouteStep - один шаг маршрута
type RouteStep struct {
	Instruction     string  `json:"instruction"`
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// RouteResult - результат построения маршрута одним из провайдеров.
// DistanceMeters и DurationSeconds заполнены всегда, Polyline и Steps
// могут отсутствовать при оценке по прямой.
type RouteResult struct {
	Provider        string      `json:"provider"`
	DistanceMeters  float64     `json:"distance_meters"`
	DurationSeconds float64     `json:"duration_seconds"`
	Polyline        []byte      `json:"polyline,omitempty"`
	Steps           []RouteStep `json:"steps,omitempty"`
	IsFallback      bool        `json:"is_fallback"`
	Warnings        []string    `json:"warnings"`
}

// AddWarning добавляет предупреждение, сохраняя множество отсортированным и без повторов
func (r *RouteResult) AddWarning(warning string) {
	r.Warnings = MergeWarnings(r.Warnings, warning)
}

// MergeWarnings объединяет предупреждения в отсортированное множество
func MergeWarnings(base []string, extra ...string) []string {
	set := make(map[string]struct{}, len(base)+len(extra))
	for _, w := range base {
		set[w] = struct{}{}
	}
	for _, w := range extra {
		set[w] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
