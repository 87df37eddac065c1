package scheduler_test

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/scheduler"
	"github.com/matthew11k/outreach/internal/engine/scheduler/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestScheduler_RunOncePassesTickContext(t *testing.T) {
	identity := mocks.NewIdentityProvider(t)
	pass := mocks.NewPass(t)
	tick := &models.TickContext{RunID: "run-1", OwnerID: 1, BotID: 7, Working: true}

	identity.EXPECT().Current(mock.Anything).Return(tick, nil).Once()
	pass.EXPECT().Tick(mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), tick).Return(nil).Once()

	s := scheduler.NewScheduler(identity, nil, time.Minute, testLogger())
	s.RunOnce(context.Background(), scheduler.Component{Name: "sync", Interval: time.Second, Pass: pass})
}

func TestScheduler_RunOnceSurvivesErrorsAndPanics(t *testing.T) {
	identity := mocks.NewIdentityProvider(t)
	pass := mocks.NewPass(t)
	tick := &models.TickContext{RunID: "run-2", OwnerID: 1, BotID: 7}

	identity.EXPECT().Current(mock.Anything).Return(tick, nil).Twice()
	pass.EXPECT().Tick(mock.Anything, tick).Return(assert.AnError).Once()
	pass.EXPECT().Tick(mock.Anything, tick).Run(func(context.Context, *models.TickContext) {
		panic("boom")
	}).Return(nil).Once()

	s := scheduler.NewScheduler(identity, nil, time.Minute, testLogger())
	component := scheduler.Component{Name: "dispatcher", Interval: time.Second, Pass: pass}

	assert.NotPanics(t, func() { s.RunOnce(context.Background(), component) })
	assert.NotPanics(t, func() { s.RunOnce(context.Background(), component) })
}

func TestScheduler_IdentityFailureSkipsPass(t *testing.T) {
	identity := mocks.NewIdentityProvider(t)
	pass := mocks.NewPass(t)

	identity.EXPECT().Current(mock.Anything).Return(nil, assert.AnError).Once()

	s := scheduler.NewScheduler(identity, nil, time.Minute, testLogger())
	s.RunOnce(context.Background(), scheduler.Component{Name: "jobs", Interval: time.Second, Pass: pass})

	pass.AssertNotCalled(t, "Tick", mock.Anything, mock.Anything)
}

type slowPass struct {
	running atomic.Int32
	overlap atomic.Bool
	calls   atomic.Int32
}

func (p *slowPass) Tick(context.Context, *models.TickContext) error {
	if p.running.Add(1) > 1 {
		p.overlap.Store(true)
	}

	p.calls.Add(1)
	time.Sleep(120 * time.Millisecond)
	p.running.Add(-1)

	return nil
}

func TestScheduler_ComponentNeverOverlaps(t *testing.T) {
	identity := mocks.NewIdentityProvider(t)
	identity.EXPECT().Current(mock.Anything).Return(&models.TickContext{RunID: "run", OwnerID: 1, BotID: 7}, nil).Maybe()

	pass := &slowPass{}
	s := scheduler.NewScheduler(identity, []scheduler.Component{
		{Name: "sync", Interval: 20 * time.Millisecond, Pass: pass, RunAtStart: true},
	}, time.Minute, testLogger())

	require.NoError(t, s.Start(context.Background()))
	time.Sleep(400 * time.Millisecond)
	s.Stop()

	assert.Positive(t, pass.calls.Load())
	assert.False(t, pass.overlap.Load())
}
