package response

import (
	"encoding/json"
	"time"

	"portaria/internal/usecase"
	"portaria/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ScheduleResponse struct {
	ID              uuid.UUID       `json:"id"`
	Kind            string          `json:"kind"`
	Status          string          `json:"status"`
	Payload         json.RawMessage `json:"payload"`
	RequestedBy     uuid.UUID       `json:"requestedBy"`
	RequestedByName string          `json:"requestedByName"`
	ReviewNote      *string         `json:"reviewNote,omitempty"`
	ReviewedBy      *uuid.UUID      `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time      `json:"reviewedAt,omitempty"`
	CheckInStatus   *string         `json:"checkInStatus,omitempty"`
	CheckInAt       *time.Time      `json:"checkInAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`

	// Degraded marks a record the database has not confirmed; it is served
	// from the local shadow and may diverge until connectivity returns.
	Degraded bool `json:"degraded,omitempty"`
}

func FromScheduleRM(rm *readmodel.ScheduleRM) *ScheduleResponse {
	return &ScheduleResponse{
		ID:              rm.ID,
		Kind:            rm.Kind,
		Status:          rm.Status,
		Payload:         rm.Payload,
		RequestedBy:     rm.RequestedBy,
		RequestedByName: rm.RequestedByName,
		ReviewNote:      rm.ReviewNote,
		ReviewedBy:      rm.ReviewedBy,
		ReviewedAt:      rm.ReviewedAt,
		CheckInStatus:   rm.CheckInStatus,
		CheckInAt:       rm.CheckInAt,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromWriteResult(result *usecase.WriteResult) *ScheduleResponse {
	resp := FromScheduleRM(result.Schedule)
	resp.Degraded = result.Degraded()
	return resp
}

func FromScheduleRMs(rms []*readmodel.ScheduleRM) []*ScheduleResponse {
	out := make([]*ScheduleResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromScheduleRM(rm)
	}
	return out
}
