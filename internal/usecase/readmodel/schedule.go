package readmodel

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// ScheduleRM is the flat projection of a schedule used by the in-memory
// collection, the HTTP responses and the snapshot file. JSON tags are the
// snake_case wire shape shared with the database columns.
type ScheduleRM struct {
	ID              uuid.UUID       `json:"id"`
	Kind            string          `json:"kind"`
	Status          string          `json:"status"`
	Payload         json.RawMessage `json:"payload"`
	RequestedBy     uuid.UUID       `json:"requested_by"`
	RequestedByName string          `json:"requested_by_name"`
	ReviewNote      *string         `json:"review_note,omitempty"`
	ReviewedBy      *uuid.UUID      `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time      `json:"reviewed_at,omitempty"`
	CheckInStatus   *string         `json:"check_in_status,omitempty"`
	CheckInAt       *time.Time      `json:"check_in_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Clone returns a deep copy so callers can never mutate the store's
// canonical record through a returned projection.
func (rm *ScheduleRM) Clone() *ScheduleRM {
	var out ScheduleRM
	if err := copier.CopyWithOption(&out, rm, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on type mismatch, which cannot happen for a
		// same-type copy; fall back to a shallow copy.
		out = *rm
	}
	return &out
}
