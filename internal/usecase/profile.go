package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"portaria/internal/domain/user"
	"portaria/internal/infra"
	"portaria/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserRM, string, error)
	Insert(ctx context.Context, p *user.Profile) error
}

// ProfileGuarantor makes sure a minimal identity record exists before a
// schedule referencing the actor id is persisted. It never fails the
// caller: insert races are resolved by the schedule write's retry policy.
type ProfileGuarantor interface {
	Ensure(ctx context.Context, actorID uuid.UUID, nameHint, emailHint string) bool
}

type profileGuarantorImpl struct {
	profiles ProfileRepository
}

func NewProfileGuarantor(profiles ProfileRepository) ProfileGuarantor {
	return &profileGuarantorImpl{profiles: profiles}
}

func (g *profileGuarantorImpl) Ensure(ctx context.Context, actorID uuid.UUID, nameHint, emailHint string) bool {
	_, err := g.profiles.FindByID(ctx, actorID)
	if err == nil {
		return true
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		slog.Warn("profile lookup failed, proceeding optimistically", "actor_id", actorID, "error", err.Error())
		return true
	}

	profile, err := g.buildMinimalProfile(actorID, nameHint, emailHint)
	if err != nil {
		slog.Warn("could not build minimal profile", "actor_id", actorID, "error", err.Error())
		return true
	}

	if err := g.profiles.Insert(ctx, profile); err != nil {
		// Concurrent first-time writers race on the same id; the loser's
		// duplicate-key failure is irrelevant because the row now exists.
		slog.Warn("profile insert failed, proceeding optimistically", "actor_id", actorID, "error", err.Error())
	}

	return true
}

func (g *profileGuarantorImpl) buildMinimalProfile(actorID uuid.UUID, nameHint, emailHint string) (*user.Profile, error) {
	if nameHint == "" {
		nameHint = "Visitante"
	}
	displayName, err := user.NewDisplayName(nameHint)
	if err != nil {
		return nil, err
	}

	if emailHint == "" {
		emailHint = fmt.Sprintf("%s@pending.local", actorID)
	}
	email, err := user.NewEmail(emailHint)
	if err != nil {
		return nil, err
	}

	// Lazily-created profiles carry no credentials; they exist only to
	// satisfy the schedules.requested_by reference.
	return user.NewProfile(actorID, displayName, email, "", user.RoleRequester), nil
}
