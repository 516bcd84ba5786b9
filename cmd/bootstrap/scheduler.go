package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"portaria/internal/pkg/config"
	"portaria/internal/usecase"

	"go.uber.org/fx"
)

// SchedulerModule seeds the in-memory schedule collection at startup and
// runs the periodic retention sweep until shutdown.
var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(registerScheduleLifecycle),
)

func registerScheduleLifecycle(lc fx.Lifecycle, scheduleUseCase usecase.ScheduleUseCase, cfg config.Config) {
	stop := make(chan struct{})
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			scheduleUseCase.Load(ctx)
			go runRetentionSweep(scheduleUseCase, cfg.Retention, stop, done)
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(stop)
			<-done
			return nil
		},
	})
}

func runRetentionSweep(scheduleUseCase usecase.ScheduleUseCase, cfg config.RetentionConfig, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	interval := cfg.SweepInterval
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed, err := scheduleUseCase.PurgeOldResolved(context.Background(), cfg.Days)
			if err != nil {
				slog.Error("retention sweep failed", "error", err.Error())
				continue
			}
			if removed > 0 {
				slog.Info("retention sweep removed resolved schedules", "removed", removed)
			}
		case <-stop:
			return
		}
	}
}
