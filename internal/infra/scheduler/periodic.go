package scheduler

import (
	"time"

	"frame-pricing/internal/pkg/config"
	"frame-pricing/internal/pkg/errs"

	"github.com/hibiken/asynq"
)

// PeriodicScheduler enqueues the sweep task on a cron spec.
type PeriodicScheduler struct {
	scheduler *asynq.Scheduler
	entryID   string
}

func NewPeriodicScheduler(cfg config.SchedulerConfig) (*PeriodicScheduler, error) {
	opt, err := redisClientOpt(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	queue := cfg.Queue
	if queue == "" {
		queue = "default"
	}

	s := asynq.NewScheduler(opt, &asynq.SchedulerOpts{
		Location: time.UTC,
		Logger:   newAsynqLogger(),
	})

	task, err := NewSweepTask(SweepPayload{})
	if err != nil {
		return nil, err
	}

	opts := []asynq.Option{asynq.Queue(queue), asynq.MaxRetry(0)}
	if cfg.LockTTL > 0 {
		opts = append(opts, asynq.Unique(cfg.LockTTL))
	}
	entryID, err := s.Register(cfg.SweepSpec, task, opts...)
	if err != nil {
		return nil, errs.Wrapf(err, "register sweep with spec %q", cfg.SweepSpec)
	}

	return &PeriodicScheduler{scheduler: s, entryID: entryID}, nil
}

func (p *PeriodicScheduler) Start() error {
	return p.scheduler.Start()
}

func (p *PeriodicScheduler) Shutdown() {
	p.scheduler.Shutdown()
}
