package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind          = errors.New("invalid schedule kind")
	ErrInvalidStatus        = errors.New("invalid schedule status")
	ErrInvalidCheckInStatus = errors.New("invalid check-in status")
	ErrNilPayload           = errors.New("schedule payload is required")
	ErrPayloadKindMismatch  = errors.New("payload does not match schedule kind")
	ErrEmptyReviewNote      = errors.New("review note cannot be empty")
	ErrReviewNoteTooLong    = errors.New("review note is too long")
	ErrNotPending           = errors.New("schedule is not pending")
	ErrNotApproved          = errors.New("schedule is not approved")
	ErrCheckInRecorded      = errors.New("check-in already recorded")
)

// CancellationNote is the fixed system comment recorded when the requester
// cancels a pending schedule.
const CancellationNote = "cancelled by requester"

// Schedule is an access request moving through pending → approved/rejected
// → optional gate check-in. Review fields are set exactly once with the
// decision; check-in fields only once the schedule is approved.
type Schedule struct {
	id              uuid.UUID
	kind            Kind
	status          Status
	payload         Payload
	requestedBy     uuid.UUID
	requestedByName string
	reviewNote      *string
	reviewedBy      *uuid.UUID
	reviewedAt      *time.Time
	checkInStatus   *CheckInStatus
	checkInAt       *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewSchedule(requestedBy uuid.UUID, requestedByName string, payload Payload, now time.Time) (*Schedule, error) {
	if payload == nil {
		return nil, ErrNilPayload
	}
	if !payload.PayloadKind().IsValid() {
		return nil, ErrInvalidKind
	}

	return &Schedule{
		id:              uuid.New(),
		kind:            payload.PayloadKind(),
		status:          StatusPending,
		payload:         payload,
		requestedBy:     requestedBy,
		requestedByName: requestedByName,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructSchedule(
	id uuid.UUID,
	kind Kind,
	status Status,
	payload Payload,
	requestedBy uuid.UUID,
	requestedByName string,
	reviewNote *string,
	reviewedBy *uuid.UUID,
	reviewedAt *time.Time,
	checkInStatus *CheckInStatus,
	checkInAt *time.Time,
	createdAt, updatedAt time.Time,
) *Schedule {
	return &Schedule{
		id:              id,
		kind:            kind,
		status:          status,
		payload:         payload,
		requestedBy:     requestedBy,
		requestedByName: requestedByName,
		reviewNote:      reviewNote,
		reviewedBy:      reviewedBy,
		reviewedAt:      reviewedAt,
		checkInStatus:   checkInStatus,
		checkInAt:       checkInAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Approve records an approval decision. The note is optional; a blank note
// is stored as absent.
func (s *Schedule) Approve(reviewer uuid.UUID, note string, now time.Time) error {
	if s.status != StatusPending {
		return ErrNotPending
	}

	s.status = StatusApproved
	if n, err := NewReviewNote(note); err == nil {
		text := n.String()
		s.reviewNote = &text
	}
	s.reviewedBy = &reviewer
	s.reviewedAt = &now
	s.updatedAt = now
	return nil
}

// Reject requires a non-empty justification; with a blank note the schedule
// is left untouched.
func (s *Schedule) Reject(reviewer uuid.UUID, note string, now time.Time) error {
	if s.status != StatusPending {
		return ErrNotPending
	}

	n, err := NewReviewNote(note)
	if err != nil {
		return err
	}

	s.status = StatusRejected
	text := n.String()
	s.reviewNote = &text
	s.reviewedBy = &reviewer
	s.reviewedAt = &now
	s.updatedAt = now
	return nil
}

// Cancel is the requester's own exit from the pending state. A cancel is
// not a review decision: the review fields stay unset, only the fixed
// system note and the update timestamp record it.
func (s *Schedule) Cancel(now time.Time) error {
	if s.status != StatusPending {
		return ErrNotPending
	}

	s.status = StatusCancelled
	note := CancellationNote
	s.reviewNote = &note
	s.updatedAt = now
	return nil
}

// RecordCheckIn sets the gate outcome. Legal only once, and only while the
// schedule is approved; the status itself does not change.
func (s *Schedule) RecordCheckIn(outcome CheckInStatus, now time.Time) error {
	if s.status != StatusApproved {
		return ErrNotApproved
	}
	if s.checkInStatus != nil {
		return ErrCheckInRecorded
	}
	if !outcome.IsValid() {
		return ErrInvalidCheckInStatus
	}

	s.checkInStatus = &outcome
	s.checkInAt = &now
	s.updatedAt = now
	return nil
}

// UpdatePayload replaces the kind-specific body. The kind is fixed at
// creation, so the replacement must carry the same kind.
func (s *Schedule) UpdatePayload(payload Payload, now time.Time) error {
	if s.status != StatusPending {
		return ErrNotPending
	}
	if payload == nil {
		return ErrNilPayload
	}
	if payload.PayloadKind() != s.kind {
		return ErrPayloadKindMismatch
	}

	s.payload = payload
	s.updatedAt = now
	return nil
}

// SetRequestedByName renames the requester on the record. Like payload
// edits, renames are only legal while the schedule awaits review.
func (s *Schedule) SetRequestedByName(name string, now time.Time) error {
	if s.status != StatusPending {
		return ErrNotPending
	}

	s.requestedByName = name
	s.updatedAt = now
	return nil
}

func (s *Schedule) IsPending() bool  { return s.status == StatusPending }
func (s *Schedule) IsApproved() bool { return s.status == StatusApproved }

func (s *Schedule) ID() uuid.UUID                 { return s.id }
func (s *Schedule) Kind() Kind                    { return s.kind }
func (s *Schedule) Status() Status                { return s.status }
func (s *Schedule) Payload() Payload              { return s.payload }
func (s *Schedule) RequestedBy() uuid.UUID        { return s.requestedBy }
func (s *Schedule) RequestedByName() string       { return s.requestedByName }
func (s *Schedule) ReviewNote() *string           { return s.reviewNote }
func (s *Schedule) ReviewedBy() *uuid.UUID        { return s.reviewedBy }
func (s *Schedule) ReviewedAt() *time.Time        { return s.reviewedAt }
func (s *Schedule) CheckInStatus() *CheckInStatus { return s.checkInStatus }
func (s *Schedule) CheckInAt() *time.Time         { return s.checkInAt }
func (s *Schedule) CreatedAt() time.Time          { return s.createdAt }
func (s *Schedule) UpdatedAt() time.Time          { return s.updatedAt }
