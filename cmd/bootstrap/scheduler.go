package bootstrap

import (
	"context"
	"log/slog"

	"frame-pricing/internal/infra/lock"
	"frame-pricing/internal/infra/scheduler"
	"frame-pricing/internal/pkg/config"
	"frame-pricing/internal/usecase/commands"
	"frame-pricing/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewSweepLocker,
	),
	fx.Invoke(
		StartScheduler,
	),
)

// NewSweepLocker uses redis when the scheduler is enabled. A single process
// without redis relies on the in-process singleflight guard alone.
func NewSweepLocker(lc fx.Lifecycle, cfg config.Config) (shared.SweepLocker, error) {
	if !cfg.Scheduler.Enabled {
		return lock.NoopLocker{}, nil
	}

	client, err := scheduler.NewRedisClient(cfg.Scheduler.RedisURL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return lock.NewRedisLocker(redis.UniversalClient(client), cfg.Scheduler.LockTTL), nil
}

func StartScheduler(lc fx.Lifecycle, cfg config.Config, cmds commands.TempProductCommands) error {
	if !cfg.Scheduler.Enabled {
		slog.Info("scheduler disabled, cleanup runs only through the cron endpoint")
		return nil
	}

	worker, err := scheduler.NewWorker(cfg.Scheduler, cmds)
	if err != nil {
		return err
	}
	periodic, err := scheduler.NewPeriodicScheduler(cfg.Scheduler)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if err := worker.Start(); err != nil {
				return err
			}
			if err := periodic.Start(); err != nil {
				worker.Shutdown()
				return err
			}
			slog.Info("scheduler started", "spec", cfg.Scheduler.SweepSpec, "queue", cfg.Scheduler.Queue)
			return nil
		},
		OnStop: func(_ context.Context) error {
			periodic.Shutdown()
			worker.Shutdown()
			return nil
		},
	})
	return nil
}
