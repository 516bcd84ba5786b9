package request

import (
	"encoding/json"
	"strings"

	"portaria/internal/domain/schedule"
)

type CreateScheduleRequest struct {
	Kind    string          `json:"kind" binding:"required,oneof=service_request early_access delivery visit integration"`
	Payload json.RawMessage `json:"payload" binding:"required"`

	// Optional requester identity hints, used when the requester has no
	// profile row yet.
	DisplayName string `json:"display_name,omitempty" binding:"omitempty,max=120"`
	Email       string `json:"email,omitempty" binding:"omitempty,email"`
}

func (r CreateScheduleRequest) GetDisplayName() string {
	return strings.TrimSpace(r.DisplayName)
}

func (r CreateScheduleRequest) ToPayload() (schedule.Payload, error) {
	kind, err := schedule.NewKind(r.Kind)
	if err != nil {
		return nil, err
	}
	return schedule.DecodePayload(kind, r.Payload)
}

type DecisionRequest struct {
	Decision string  `json:"decision" binding:"required,oneof=approved rejected"`
	Note     *string `json:"note,omitempty"`
}

func (r DecisionRequest) GetNote() string {
	if r.Note == nil {
		return ""
	}
	return strings.TrimSpace(*r.Note)
}

type CheckInRequest struct {
	Outcome string `json:"outcome" binding:"required,oneof=authorized denied no_show"`
}

type EditScheduleRequest struct {
	Payload     json.RawMessage `json:"payload,omitempty"`
	DisplayName *string         `json:"display_name,omitempty"`
}

// ToPayload decodes the replacement payload against the schedule's existing
// kind; a nil payload means "leave the body untouched".
func (r EditScheduleRequest) ToPayload(kind schedule.Kind) (schedule.Payload, error) {
	if len(r.Payload) == 0 {
		return nil, nil
	}
	return schedule.DecodePayload(kind, r.Payload)
}

func (r EditScheduleRequest) GetDisplayName() *string {
	if r.DisplayName == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.DisplayName)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
