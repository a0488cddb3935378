package scheduler

import (
	"context"
	"log/slog"
	"time"

	"frame-pricing/internal/pkg/config"
	"frame-pricing/internal/pkg/errs"
	"frame-pricing/internal/usecase/commands"

	"github.com/hibiken/asynq"
)

// Worker consumes sweep tasks from the queue.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	cmds   commands.TempProductCommands
}

func NewWorker(cfg config.SchedulerConfig, cmds commands.TempProductCommands) (*Worker, error) {
	opt, err := redisClientOpt(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	queue := cfg.Queue
	if queue == "" {
		queue = "default"
	}
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{queue: 1},
		Logger:      newAsynqLogger(),
	})

	w := NewSweepHandler(cmds)
	w.server = server
	return w, nil
}

// NewSweepHandler builds a Worker without a server, for direct task handling.
func NewSweepHandler(cmds commands.TempProductCommands) *Worker {
	mux := asynq.NewServeMux()
	w := &Worker{mux: mux, cmds: cmds}
	mux.HandleFunc(TaskSweepTempProducts, w.HandleSweep)
	return w
}

func (w *Worker) Handler() asynq.Handler {
	return w.mux
}

func (w *Worker) HandleSweep(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseSweepPayload(task)
	if err != nil {
		return errs.Wrap(err, "parse sweep payload")
	}

	started := time.Now()
	if payload.Shop != "" {
		report, err := w.cmds.SweepShop(ctx, payload.Shop)
		if err != nil {
			if errs.Is(err, errs.ErrSweepInProgress) {
				slog.Info("sweep skipped, already running", "shop", payload.Shop)
				return nil
			}
			return err
		}
		slog.Info("scheduled sweep finished",
			"shop", payload.Shop,
			"deleted", report.DeletedCount,
			"failed", report.FailedCount,
			"duration", time.Since(started))
		return nil
	}

	reports, err := w.cmds.SweepAll(ctx)
	if err != nil {
		return err
	}
	var deleted, failed, skipped int
	for _, r := range reports {
		if r.Err != nil {
			skipped++
			continue
		}
		deleted += r.Report.DeletedCount
		failed += r.Report.FailedCount
	}
	slog.Info("scheduled sweep finished",
		"shops", len(reports),
		"deleted", deleted,
		"failed", failed,
		"skipped_shops", skipped,
		"duration", time.Since(started))
	return nil
}

// Start runs the server in the background.
func (w *Worker) Start() error {
	if w.server == nil {
		return errs.New("worker has no server")
	}
	return w.server.Start(w.mux)
}

func (w *Worker) Shutdown() {
	if w.server != nil {
		w.server.Shutdown()
	}
}
