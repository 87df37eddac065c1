package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/matthew11k/outreach/internal/domain/models"
	repomocks "github.com/matthew11k/outreach/internal/engine/repository/mocks"
	"github.com/matthew11k/outreach/internal/engine/service"
)

func TestJobFor(t *testing.T) {
	tests := []struct {
		status *models.Status
		kind   models.JobKind
		ok     bool
	}{
		{&models.Status{Kind: models.StatusForbidden, ChannelRef: "@closed"}, models.JobDeregisterChannel, true},
		{&models.Status{Kind: models.StatusForbidden, Peer: "@user_x"}, "", false},
		{&models.Status{Kind: models.StatusConnection}, models.JobConnectivityAlarm, true},
		{&models.Status{Kind: models.StatusRateLimited}, models.JobThrottleAlarm, true},
		{&models.Status{Kind: models.StatusNotFound}, "", false},
		{&models.Status{Kind: models.StatusUnknown}, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status.Kind), func(t *testing.T) {
			kind, ok := service.JobFor(tt.status)

			assert.Equal(t, tt.ok, ok)

			if ok {
				assert.Equal(t, tt.kind, kind)
			}
		})
	}
}

func TestRemediator_Handle(t *testing.T) {
	t.Run("forbidden channel enqueues deregistration", func(t *testing.T) {
		jobs := repomocks.NewJobRepository(t)
		remediator := service.NewRemediator(jobs, discardLogger())

		jobs.EXPECT().ExistsPending(mock.Anything, int64(1), models.JobDeregisterChannel, "@closed").Return(false, nil).Once()
		jobs.EXPECT().Enqueue(mock.Anything, mock.MatchedBy(func(job *models.Job) bool {
			payload, err := models.DecodeJobPayload(job.Metadata)

			return err == nil &&
				job.OwnerID == 1 &&
				job.Kind == models.JobDeregisterChannel &&
				payload.ChannelRef == "@closed" &&
				payload.Reason == "private"
		})).Return(int64(3), nil).Once()

		remediator.Handle(context.Background(), testTick(), &models.Status{
			Kind:       models.StatusForbidden,
			ChannelRef: "@closed",
			Cause:      errors.New("private"),
		})
	})

	t.Run("not found is only logged", func(t *testing.T) {
		jobs := repomocks.NewJobRepository(t)
		remediator := service.NewRemediator(jobs, discardLogger())

		remediator.Handle(context.Background(), testTick(), &models.Status{Kind: models.StatusNotFound, ChannelRef: "@gone"})
	})

	t.Run("enqueue failure is swallowed", func(t *testing.T) {
		jobs := repomocks.NewJobRepository(t)
		remediator := service.NewRemediator(jobs, discardLogger())

		jobs.EXPECT().ExistsPending(mock.Anything, int64(1), models.JobConnectivityAlarm, "").Return(false, nil).Once()
		jobs.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(int64(0), errors.New("db down")).Once()

		assert.NotPanics(t, func() {
			remediator.Handle(context.Background(), testTick(), &models.Status{Kind: models.StatusConnection})
		})
	})

	t.Run("queued alarm is not repeated", func(t *testing.T) {
		jobs := repomocks.NewJobRepository(t)
		remediator := service.NewRemediator(jobs, discardLogger())

		jobs.EXPECT().ExistsPending(mock.Anything, int64(1), models.JobConnectivityAlarm, "").Return(false, nil).Once()
		jobs.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(int64(5), nil).Once()
		jobs.EXPECT().ExistsPending(mock.Anything, int64(1), models.JobConnectivityAlarm, "").Return(true, nil).Times(9)

		for range 10 {
			remediator.Handle(context.Background(), testTick(), &models.Status{Kind: models.StatusConnection, Peer: "@user_x"})
		}
	})

	t.Run("queue check failure still enqueues", func(t *testing.T) {
		jobs := repomocks.NewJobRepository(t)
		remediator := service.NewRemediator(jobs, discardLogger())

		jobs.EXPECT().ExistsPending(mock.Anything, int64(1), models.JobThrottleAlarm, "").Return(false, errors.New("db down")).Once()
		jobs.EXPECT().Enqueue(mock.Anything, mock.MatchedBy(func(job *models.Job) bool {
			return job.Kind == models.JobThrottleAlarm
		})).Return(int64(6), nil).Once()

		remediator.Handle(context.Background(), testTick(), &models.Status{Kind: models.StatusRateLimited})
	})

	t.Run("nil status", func(t *testing.T) {
		remediator := service.NewRemediator(repomocks.NewJobRepository(t), discardLogger())

		remediator.Handle(context.Background(), testTick(), nil)
	})
}
