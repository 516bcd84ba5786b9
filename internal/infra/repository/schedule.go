package repository

import (
	"context"
	"time"

	"portaria/internal/domain/schedule"
	"portaria/internal/infra"
	"portaria/internal/pkg/pgconv"
	"portaria/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ScheduleRepository struct {
	db DB
}

func NewScheduleRepository(db DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

const scheduleColumns = `id, kind, status, payload, requested_by, requested_by_name,
	review_note, reviewed_by, reviewed_at, check_in_status, check_in_at,
	created_at, updated_at`

func (r *ScheduleRepository) Insert(ctx context.Context, s *schedule.Schedule) (*readmodel.ScheduleRM, error) {
	payload, err := schedule.EncodePayload(s.Payload())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode schedule payload", err)
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO schedules (id, kind, status, payload, requested_by, requested_by_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+scheduleColumns,
		s.ID(), s.Kind().String(), s.Status().String(), payload,
		s.RequestedBy(), s.RequestedByName(), s.CreatedAt(), s.UpdatedAt(),
	)

	rm, err := scanScheduleRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert schedule", err, classifyPgErr(err))
	}

	return rm, nil
}

// Update writes the full mutable column set; the row store has no partial
// update semantics beyond this.
func (r *ScheduleRepository) Update(ctx context.Context, s *schedule.Schedule) (*readmodel.ScheduleRM, error) {
	payload, err := schedule.EncodePayload(s.Payload())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode schedule payload", err)
	}

	var checkInStatus *string
	if cs := s.CheckInStatus(); cs != nil {
		v := cs.String()
		checkInStatus = &v
	}

	row := r.db.QueryRow(ctx, `
		UPDATE schedules
		SET status = $2, payload = $3, requested_by_name = $4, review_note = $5,
		    reviewed_by = $6, reviewed_at = $7, check_in_status = $8, check_in_at = $9,
		    updated_at = $10
		WHERE id = $1
		RETURNING `+scheduleColumns,
		s.ID(), s.Status().String(), payload, s.RequestedByName(), s.ReviewNote(),
		s.ReviewedBy(), s.ReviewedAt(), checkInStatus, s.CheckInAt(), s.UpdatedAt(),
	)

	rm, err := scanScheduleRow(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update schedule", err, classifyPgErr(err))
	}

	return rm, nil
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ScheduleRM, error) {
	row := r.db.QueryRow(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE id = $1`, id)

	rm, err := scanScheduleRow(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find schedule by ID", err)
	}

	return rm, nil
}

// List returns the whole collection ordered newest first; it seeds the
// in-memory store at startup.
func (r *ScheduleRepository) List(ctx context.Context) ([]*readmodel.ScheduleRM, error) {
	rows, err := r.db.Query(ctx, `SELECT `+scheduleColumns+` FROM schedules ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedules", err)
	}
	defer rows.Close()

	var result []*readmodel.ScheduleRM
	for rows.Next() {
		rm, err := scanScheduleRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read schedule rows", err)
	}

	return result, nil
}

// DeleteResolvedBefore removes non-pending rows older than the cutoff and
// reports how many were deleted.
func (r *ScheduleRepository) DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM schedules WHERE status <> $1 AND created_at < $2`,
		schedule.StatusPending.String(), cutoff,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete resolved schedules", err)
	}

	return tag.RowsAffected(), nil
}

func scanScheduleRow(row pgx.Row) (*readmodel.ScheduleRM, error) {
	var rm readmodel.ScheduleRM
	err := row.Scan(
		&rm.ID, &rm.Kind, &rm.Status, &rm.Payload, &rm.RequestedBy, &rm.RequestedByName,
		&rm.ReviewNote, &rm.ReviewedBy, &rm.ReviewedAt, &rm.CheckInStatus, &rm.CheckInAt,
		&rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
