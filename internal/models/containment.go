package models

import (
	"time"

	"github.com/google/uuid"
)

// ContainmentState - положение охранника относительно зоны
type ContainmentState string

const (
	ContainmentUnknown ContainmentState = "unknown"
	ContainmentInside  ContainmentState = "inside"
	ContainmentOutside ContainmentState = "outside"
)

// ContainmentEvent - переход охранника между состояниями относительно зоны
type ContainmentEvent struct {
	ID       uuid.UUID        `json:"id"`
	GuardID  string           `json:"guard_id"`
	ZoneID   string           `json:"zone_id"`
	OldState ContainmentState `json:"old_state"`
	NewState ContainmentState `json:"new_state"`
	Position GeoPoint         `json:"position"`
	At       time.Time        `json:"at"`
}
