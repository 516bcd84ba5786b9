package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"portaria/internal/domain/schedule"
	"portaria/internal/infra"
	"portaria/internal/pkg/clock"
	"portaria/internal/pkg/errs"
	"portaria/internal/pkg/metrics"
	"portaria/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrInvalidDecision  = errors.New("decision must be approved or rejected")
	ErrNotOwner         = errors.New("schedule belongs to another requester")

	// Error markers for categorization
	ErrValidationFailed = errors.New("schedule validation failed")
)

// DefaultRetentionDays is the sweep window for resolved schedules.
const DefaultRetentionDays = 30

// fkRetryDelay is the wait before the single retry of a create whose insert
// raced the profile guarantor's own insert.
const fkRetryDelay = 500 * time.Millisecond

type ScheduleRepository interface {
	Insert(ctx context.Context, s *schedule.Schedule) (*readmodel.ScheduleRM, error)
	Update(ctx context.Context, s *schedule.Schedule) (*readmodel.ScheduleRM, error)
	List(ctx context.Context) ([]*readmodel.ScheduleRM, error)
	DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type SnapshotStore interface {
	Load() []*readmodel.ScheduleRM
	Save(records []*readmodel.ScheduleRM) error
}

type WriteSource string

const (
	WriteConfirmed WriteSource = "confirmed"
	WriteDegraded  WriteSource = "degraded"
)

// WriteResult tells the caller whether the record it got back is the
// database's authoritative row or a best-effort local copy kept so the
// caller never blocks on backend availability.
type WriteResult struct {
	Schedule *readmodel.ScheduleRM
	Source   WriteSource
	Reason   error // remote failure behind a degraded write
}

func (r *WriteResult) Degraded() bool {
	return r.Source == WriteDegraded
}

type CreateScheduleParams struct {
	RequestedBy     uuid.UUID
	RequestedByName string
	EmailHint       string
	Payload         schedule.Payload
}

type ScheduleUseCase interface {
	Create(ctx context.Context, params CreateScheduleParams) (*WriteResult, error)
	UpdateStatus(ctx context.Context, id, reviewer uuid.UUID, decision schedule.Status, note string) (*WriteResult, error)
	UpdateCheckIn(ctx context.Context, id uuid.UUID, outcome schedule.CheckInStatus) (*WriteResult, error)
	Edit(ctx context.Context, id, actorID uuid.UUID, payload schedule.Payload, displayName *string) (*WriteResult, error)
	Cancel(ctx context.Context, id, actorID uuid.UUID) (*WriteResult, error)
	PurgeOldResolved(ctx context.Context, retentionDays int) (int, error)

	Get(id uuid.UUID) (*readmodel.ScheduleRM, error)
	ByRequester(actorID uuid.UUID) []*readmodel.ScheduleRM
	Pending() []*readmodel.ScheduleRM
	Approved() []*readmodel.ScheduleRM

	Load(ctx context.Context)
}

// scheduleStoreImpl owns the in-memory collection. The database is the
// authoritative owner; the snapshot file is a degraded shadow rewritten on
// every change. There is no sync-back once the database becomes reachable
// again: a degraded record stays local for its lifetime.
type scheduleStoreImpl struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*readmodel.ScheduleRM

	repo       ScheduleRepository
	guarantor  ProfileGuarantor
	snapshot   SnapshotStore
	clock      clock.Clock
	retryDelay time.Duration
}

func NewScheduleUseCase(
	repo ScheduleRepository,
	guarantor ProfileGuarantor,
	snapshot SnapshotStore,
	clk clock.Clock,
) ScheduleUseCase {
	return &scheduleStoreImpl{
		records:    make(map[uuid.UUID]*readmodel.ScheduleRM),
		repo:       repo,
		guarantor:  guarantor,
		snapshot:   snapshot,
		clock:      clk,
		retryDelay: fkRetryDelay,
	}
}

// Load seeds the collection: from the database when reachable, otherwise
// from the snapshot file. Called once at startup.
func (s *scheduleStoreImpl) Load(ctx context.Context) {
	records, err := s.repo.List(ctx)
	if err != nil {
		slog.Warn("could not load schedules from database, using local snapshot", "error", err.Error())
		records = s.snapshot.Load()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[uuid.UUID]*readmodel.ScheduleRM, len(records))
	for _, rm := range records {
		s.records[rm.ID] = rm
	}
	s.updatePendingGaugeLocked()
}

func (s *scheduleStoreImpl) Create(ctx context.Context, params CreateScheduleParams) (*WriteResult, error) {
	if params.RequestedByName == "" {
		params.RequestedByName = "Visitante"
	}

	entity, err := schedule.NewSchedule(params.RequestedBy, params.RequestedByName, params.Payload, s.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	s.guarantor.Ensure(ctx, params.RequestedBy, params.RequestedByName, params.EmailHint)

	rm, insertErr := s.repo.Insert(ctx, entity)
	if insertErr != nil && infra.IsKind(insertErr, infra.KindForeignKeyViolated) {
		// The guarantor's insert may not be visible yet; one bounded retry
		// resolves the common race without unbounded blocking.
		slog.Warn("schedule insert hit requester reference, retrying once",
			"schedule_id", entity.ID(), "requested_by", params.RequestedBy)
		select {
		case <-time.After(s.retryDelay):
		case <-ctx.Done():
		}
		rm, insertErr = s.repo.Insert(ctx, entity)
	}

	result, err := s.settleWrite("create", rm, entity, insertErr)
	if err != nil {
		return nil, err
	}
	s.commit(result.Schedule)
	return result, nil
}

func (s *scheduleStoreImpl) UpdateStatus(ctx context.Context, id, reviewer uuid.UUID, decision schedule.Status, note string) (*WriteResult, error) {
	entity, err := s.entityByID(id)
	if err != nil {
		return nil, err
	}

	switch decision {
	case schedule.StatusApproved:
		err = entity.Approve(reviewer, note, s.clock.Now())
	case schedule.StatusRejected:
		err = entity.Reject(reviewer, note, s.clock.Now())
	default:
		return nil, ErrInvalidDecision
	}
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	return s.applyUpdate(ctx, "update_status", entity)
}

func (s *scheduleStoreImpl) UpdateCheckIn(ctx context.Context, id uuid.UUID, outcome schedule.CheckInStatus) (*WriteResult, error) {
	entity, err := s.entityByID(id)
	if err != nil {
		return nil, err
	}

	if err := entity.RecordCheckIn(outcome, s.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	return s.applyUpdate(ctx, "update_check_in", entity)
}

func (s *scheduleStoreImpl) Edit(ctx context.Context, id, actorID uuid.UUID, payload schedule.Payload, displayName *string) (*WriteResult, error) {
	entity, err := s.entityByID(id)
	if err != nil {
		return nil, err
	}
	if entity.RequestedBy() != actorID {
		return nil, ErrNotOwner
	}

	if payload != nil {
		if err := entity.UpdatePayload(payload, s.clock.Now()); err != nil {
			return nil, errs.Mark(err, ErrValidationFailed)
		}
	}
	if displayName != nil {
		if err := entity.SetRequestedByName(*displayName, s.clock.Now()); err != nil {
			return nil, errs.Mark(err, ErrValidationFailed)
		}
	}

	return s.applyUpdate(ctx, "edit", entity)
}

func (s *scheduleStoreImpl) Cancel(ctx context.Context, id, actorID uuid.UUID) (*WriteResult, error) {
	entity, err := s.entityByID(id)
	if err != nil {
		return nil, err
	}
	if entity.RequestedBy() != actorID {
		return nil, ErrNotOwner
	}

	if err := entity.Cancel(s.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	return s.applyUpdate(ctx, "cancel", entity)
}

// PurgeOldResolved deletes non-pending records older than the retention
// window from the database and the local collection. A database failure
// degrades to a local-only purge.
func (s *scheduleStoreImpl) PurgeOldResolved(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	cutoff := s.clock.Now().AddDate(0, 0, -retentionDays)

	if _, err := s.repo.DeleteResolvedBefore(ctx, cutoff); err != nil {
		slog.Error("remote retention sweep failed, purging local collection only", "error", err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, rm := range s.records {
		if rm.Status != schedule.StatusPending.String() && rm.CreatedAt.Before(cutoff) {
			delete(s.records, id)
			removed++
		}
	}
	if removed > 0 {
		s.persistLocked()
		s.updatePendingGaugeLocked()
	}

	return removed, nil
}

func (s *scheduleStoreImpl) Get(id uuid.UUID) (*readmodel.ScheduleRM, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rm, ok := s.records[id]
	if !ok {
		return nil, ErrScheduleNotFound
	}
	return rm.Clone(), nil
}

func (s *scheduleStoreImpl) ByRequester(actorID uuid.UUID) []*readmodel.ScheduleRM {
	return s.project(func(rm *readmodel.ScheduleRM) bool {
		return rm.RequestedBy == actorID
	})
}

func (s *scheduleStoreImpl) Pending() []*readmodel.ScheduleRM {
	return s.project(func(rm *readmodel.ScheduleRM) bool {
		return rm.Status == schedule.StatusPending.String()
	})
}

// Approved includes every approved schedule regardless of check-in outcome:
// the gate dashboard keeps showing records after their check-in is recorded.
func (s *scheduleStoreImpl) Approved() []*readmodel.ScheduleRM {
	return s.project(func(rm *readmodel.ScheduleRM) bool {
		return rm.Status == schedule.StatusApproved.String()
	})
}

func (s *scheduleStoreImpl) project(keep func(*readmodel.ScheduleRM) bool) []*readmodel.ScheduleRM {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*readmodel.ScheduleRM, 0)
	for _, rm := range s.records {
		if keep(rm) {
			result = append(result, rm.Clone())
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID.String() < result[j].ID.String()
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// applyUpdate pushes a mutated entity to the database. On success the
// server row is canonical; on any failure the local copy is updated so the
// caller's view stays consistent, without retry.
func (s *scheduleStoreImpl) applyUpdate(ctx context.Context, operation string, entity *schedule.Schedule) (*WriteResult, error) {
	rm, updateErr := s.repo.Update(ctx, entity)
	result, err := s.settleWrite(operation, rm, entity, updateErr)
	if err != nil {
		return nil, err
	}
	s.commit(result.Schedule)
	return result, nil
}

func (s *scheduleStoreImpl) settleWrite(operation string, rm *readmodel.ScheduleRM, entity *schedule.Schedule, writeErr error) (*WriteResult, error) {
	if writeErr == nil {
		metrics.ScheduleWrites.WithLabelValues(operation, string(WriteConfirmed)).Inc()
		return &WriteResult{Schedule: rm, Source: WriteConfirmed}, nil
	}

	slog.Error("remote schedule write failed, falling back to local record",
		"operation", operation, "schedule_id", entity.ID(), "error", writeErr.Error())
	metrics.ScheduleWrites.WithLabelValues(operation, string(WriteDegraded)).Inc()

	local, convErr := scheduleToRM(entity)
	if convErr != nil {
		// Payload was already encoded once on the remote attempt; a failure
		// here means the entity itself is unencodable and nothing can be kept.
		slog.Error("could not build local schedule record", "schedule_id", entity.ID(), "error", convErr.Error())
		return nil, errs.Wrap(convErr, "schedule write failed with no usable local record")
	}

	return &WriteResult{Schedule: local, Source: WriteDegraded, Reason: writeErr}, nil
}

func (s *scheduleStoreImpl) commit(rm *readmodel.ScheduleRM) {
	if rm == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rm.ID] = rm.Clone()
	s.persistLocked()
	s.updatePendingGaugeLocked()
}

func (s *scheduleStoreImpl) persistLocked() {
	all := make([]*readmodel.ScheduleRM, 0, len(s.records))
	for _, rm := range s.records {
		all = append(all, rm)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if err := s.snapshot.Save(all); err != nil {
		slog.Warn("failed to write schedule snapshot", "error", err.Error())
	}
}

func (s *scheduleStoreImpl) updatePendingGaugeLocked() {
	pending := 0
	for _, rm := range s.records {
		if rm.Status == schedule.StatusPending.String() {
			pending++
		}
	}
	metrics.PendingSchedules.Set(float64(pending))
}

func (s *scheduleStoreImpl) entityByID(id uuid.UUID) (*schedule.Schedule, error) {
	s.mu.RLock()
	rm, ok := s.records[id]
	if ok {
		rm = rm.Clone()
	}
	s.mu.RUnlock()

	if !ok {
		return nil, ErrScheduleNotFound
	}
	return rmToEntity(rm)
}

func rmToEntity(rm *readmodel.ScheduleRM) (*schedule.Schedule, error) {
	kind, err := schedule.NewKind(rm.Kind)
	if err != nil {
		return nil, err
	}
	status, err := schedule.NewStatus(rm.Status)
	if err != nil {
		return nil, err
	}
	payload, err := schedule.DecodePayload(kind, rm.Payload)
	if err != nil {
		return nil, err
	}

	var checkInStatus *schedule.CheckInStatus
	if rm.CheckInStatus != nil {
		cs, err := schedule.NewCheckInStatus(*rm.CheckInStatus)
		if err != nil {
			return nil, err
		}
		checkInStatus = &cs
	}

	return schedule.ReconstructSchedule(
		rm.ID, kind, status, payload,
		rm.RequestedBy, rm.RequestedByName,
		rm.ReviewNote, rm.ReviewedBy, rm.ReviewedAt,
		checkInStatus, rm.CheckInAt,
		rm.CreatedAt, rm.UpdatedAt,
	), nil
}

func scheduleToRM(entity *schedule.Schedule) (*readmodel.ScheduleRM, error) {
	payload, err := schedule.EncodePayload(entity.Payload())
	if err != nil {
		return nil, err
	}

	var checkInStatus *string
	if cs := entity.CheckInStatus(); cs != nil {
		v := cs.String()
		checkInStatus = &v
	}

	return &readmodel.ScheduleRM{
		ID:              entity.ID(),
		Kind:            entity.Kind().String(),
		Status:          entity.Status().String(),
		Payload:         payload,
		RequestedBy:     entity.RequestedBy(),
		RequestedByName: entity.RequestedByName(),
		ReviewNote:      entity.ReviewNote(),
		ReviewedBy:      entity.ReviewedBy(),
		ReviewedAt:      entity.ReviewedAt(),
		CheckInStatus:   checkInStatus,
		CheckInAt:       entity.CheckInAt(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}, nil
}

// SetRetryDelayForTest shortens the foreign-key retry wait in tests.
func (s *scheduleStoreImpl) SetRetryDelayForTest(d time.Duration) {
	s.retryDelay = d
}
