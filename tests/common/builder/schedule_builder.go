//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	domschedule "portaria/internal/domain/schedule"
	reqdto "portaria/internal/handler/dto/request"
	"portaria/internal/usecase"
	"portaria/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ScheduleBuilder struct {
	RequestedBy     uuid.UUID
	RequestedByName string
	Email           string
	Payload         domschedule.Payload
	CreatedAt       time.Time
}

func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{
		RequestedBy:     uuid.New(),
		RequestedByName: "Maria Souza",
		Email:           "maria@example.com",
		Payload: domschedule.VisitPayload{
			VisitorName: "João Pereira",
			Date:        "2026-09-01",
			StartTime:   "14:00",
		},
		CreatedAt: time.Now(),
	}
}

func (b *ScheduleBuilder) With(mutate func(*ScheduleBuilder)) *ScheduleBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ScheduleBuilder) BuildDomain() (*domschedule.Schedule, error) {
	return domschedule.NewSchedule(b.RequestedBy, b.RequestedByName, b.Payload, b.CreatedAt)
}

func (b *ScheduleBuilder) BuildRM() *readmodel.ScheduleRM {
	payload, _ := domschedule.EncodePayload(b.Payload)
	return &readmodel.ScheduleRM{
		ID:              uuid.New(),
		Kind:            b.Payload.PayloadKind().String(),
		Status:          domschedule.StatusPending.String(),
		Payload:         payload,
		RequestedBy:     b.RequestedBy,
		RequestedByName: b.RequestedByName,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *ScheduleBuilder) BuildCreateParams() usecase.CreateScheduleParams {
	return usecase.CreateScheduleParams{
		RequestedBy:     b.RequestedBy,
		RequestedByName: b.RequestedByName,
		EmailHint:       b.Email,
		Payload:         b.Payload,
	}
}

func (b *ScheduleBuilder) BuildCreateRequestDTO() reqdto.CreateScheduleRequest {
	payload, _ := domschedule.EncodePayload(b.Payload)
	return reqdto.CreateScheduleRequest{
		Kind:        b.Payload.PayloadKind().String(),
		Payload:     json.RawMessage(payload),
		DisplayName: b.RequestedByName,
		Email:       b.Email,
	}
}

// Fluent builder methods
func (b *ScheduleBuilder) WithRequestedBy(id uuid.UUID) *ScheduleBuilder {
	b.RequestedBy = id
	return b
}

func (b *ScheduleBuilder) WithRequestedByName(name string) *ScheduleBuilder {
	b.RequestedByName = name
	return b
}

func (b *ScheduleBuilder) WithPayload(p domschedule.Payload) *ScheduleBuilder {
	b.Payload = p
	return b
}

func (b *ScheduleBuilder) WithCreatedAt(t time.Time) *ScheduleBuilder {
	b.CreatedAt = t
	return b
}

func (b *ScheduleBuilder) AsDelivery() *ScheduleBuilder {
	b.Payload = domschedule.DeliveryPayload{
		Carrier:     "Transportadora Azul",
		Description: "Cement bags",
		Date:        "2026-09-02",
		TimeWindow:  "08:00-12:00",
	}
	return b
}

func (b *ScheduleBuilder) AsServiceRequest() *ScheduleBuilder {
	b.Payload = domschedule.ServiceRequestPayload{
		Company:     "Elevadores Sul",
		Description: "Elevator maintenance",
		Date:        "2026-09-03",
		StartTime:   "09:00",
		EndTime:     "12:00",
	}
	return b
}
