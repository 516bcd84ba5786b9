package components

import (
	"portaria/internal/pkg/clock"
	"portaria/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewProfileGuarantor,
		usecase.NewScheduleUseCase,
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)
