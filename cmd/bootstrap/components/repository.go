package components

import (
	repo_impl "portaria/internal/infra/repository"
	"portaria/internal/infra/snapshot"
	"portaria/internal/pkg/config"
	"portaria/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewRepositoryDB,
		fx.Annotate(
			repo_impl.NewScheduleRepository,
			fx.As(new(usecase.ScheduleRepository)),
		),
		fx.Annotate(
			repo_impl.NewProfileRepository,
			fx.As(new(usecase.ProfileRepository)),
		),
		fx.Annotate(
			NewSnapshotStore,
			fx.As(new(usecase.SnapshotStore)),
		),
	),
)

func NewRepositoryDB(pool *pgxpool.Pool) repo_impl.DB {
	return pool
}

func NewSnapshotStore(cfg config.Config) *snapshot.Store {
	return snapshot.NewStore(cfg.Snapshot.Path)
}
