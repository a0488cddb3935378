//go:build unit

package scheduler_test

import (
	"context"
	"errors"
	"testing"

	"frame-pricing/internal/infra/scheduler"
	"frame-pricing/internal/pkg/config"
	"frame-pricing/internal/pkg/errs"
	"frame-pricing/internal/usecase/commands"
	commandsmock "frame-pricing/tests/mock/commands"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSweepPayload(t *testing.T) {
	task, err := scheduler.NewSweepTask(scheduler.SweepPayload{Shop: "a.myshopify.com"})
	require.NoError(t, err)
	assert.Equal(t, scheduler.TaskSweepTempProducts, task.Type())

	payload, err := scheduler.ParseSweepPayload(task)
	require.NoError(t, err)
	assert.Equal(t, "a.myshopify.com", payload.Shop)

	empty, err := scheduler.ParseSweepPayload(asynq.NewTask(scheduler.TaskSweepTempProducts, nil))
	require.NoError(t, err)
	assert.Empty(t, empty.Shop)

	_, err = scheduler.ParseSweepPayload(asynq.NewTask(scheduler.TaskSweepTempProducts, []byte("{")))
	assert.Error(t, err)
}

func TestWorker_HandleSweep(t *testing.T) {
	ctx := context.Background()
	allShops, _ := scheduler.NewSweepTask(scheduler.SweepPayload{})
	oneShop, _ := scheduler.NewSweepTask(scheduler.SweepPayload{Shop: "a.myshopify.com"})

	t.Run("empty payload sweeps every shop", func(t *testing.T) {
		cmds := commandsmock.NewMockTempProductCommands(gomock.NewController(t))
		cmds.EXPECT().SweepAll(gomock.Any()).Return([]commands.ShopSweepReport{
			{Shop: "a.myshopify.com", Report: &commands.SweepReport{DeletedCount: 2}},
			{Shop: "b.myshopify.com", Err: errs.ErrUnauthorized},
		}, nil)

		err := scheduler.NewSweepHandler(cmds).Handler().ProcessTask(ctx, allShops)

		assert.NoError(t, err)
	})

	t.Run("shop payload sweeps one shop", func(t *testing.T) {
		cmds := commandsmock.NewMockTempProductCommands(gomock.NewController(t))
		cmds.EXPECT().SweepShop(gomock.Any(), "a.myshopify.com").Return(&commands.SweepReport{Shop: "a.myshopify.com"}, nil)

		err := scheduler.NewSweepHandler(cmds).Handler().ProcessTask(ctx, oneShop)

		assert.NoError(t, err)
	})

	t.Run("sweep already running is not a failure", func(t *testing.T) {
		cmds := commandsmock.NewMockTempProductCommands(gomock.NewController(t))
		cmds.EXPECT().SweepShop(gomock.Any(), "a.myshopify.com").
			Return(nil, errs.Mark(errors.New("held"), errs.ErrSweepInProgress))

		err := scheduler.NewSweepHandler(cmds).Handler().ProcessTask(ctx, oneShop)

		assert.NoError(t, err)
	})

	t.Run("store failure is reported to the queue", func(t *testing.T) {
		cmds := commandsmock.NewMockTempProductCommands(gomock.NewController(t))
		cmds.EXPECT().SweepAll(gomock.Any()).Return(nil, errs.Mark(errors.New("db down"), errs.ErrStore))

		err := scheduler.NewSweepHandler(cmds).Handler().ProcessTask(ctx, allShops)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrStore))
	})

	t.Run("malformed payload", func(t *testing.T) {
		cmds := commandsmock.NewMockTempProductCommands(gomock.NewController(t))

		err := scheduler.NewSweepHandler(cmds).Handler().ProcessTask(ctx, asynq.NewTask(scheduler.TaskSweepTempProducts, []byte("not json")))

		assert.Error(t, err)
	})
}

func TestNewPeriodicScheduler(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.NewTestConfig().Scheduler
	cfg.RedisURL = "redis://" + mr.Addr()

	t.Run("registers the sweep spec", func(t *testing.T) {
		p, err := scheduler.NewPeriodicScheduler(cfg)
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("rejects an invalid spec", func(t *testing.T) {
		bad := cfg
		bad.SweepSpec = "every now and then"
		_, err := scheduler.NewPeriodicScheduler(bad)
		assert.Error(t, err)
	})

	t.Run("requires a redis url", func(t *testing.T) {
		bad := cfg
		bad.RedisURL = ""
		_, err := scheduler.NewPeriodicScheduler(bad)
		assert.Error(t, err)
	})
}

func TestNewWorker(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.NewTestConfig().Scheduler
	cfg.RedisURL = "redis://" + mr.Addr()
	cmds := commandsmock.NewMockTempProductCommands(gomock.NewController(t))

	w, err := scheduler.NewWorker(cfg, cmds)
	require.NoError(t, err)
	assert.NotNil(t, w.Handler())

	_, err = scheduler.NewRedisClient("::not a url")
	assert.Error(t, err)
}
