package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/cache"
	notifymocks "github.com/matthew11k/outreach/internal/engine/notify/mocks"
	"github.com/matthew11k/outreach/internal/engine/platform"
	platformmocks "github.com/matthew11k/outreach/internal/engine/platform/mocks"
	"github.com/matthew11k/outreach/internal/engine/repository"
	repomocks "github.com/matthew11k/outreach/internal/engine/repository/mocks"
	"github.com/matthew11k/outreach/internal/engine/service"
	servicemocks "github.com/matthew11k/outreach/internal/engine/service/mocks"
	txsmocks "github.com/matthew11k/outreach/pkg/txs/mocks"
)

type workerFixture struct {
	jobs       *repomocks.JobRepository
	channels   *repomocks.ChannelRepository
	candidates *repomocks.CandidateRepository
	owners     *repomocks.OwnerRepository
	bans       *repomocks.BanRepository
	bots       *repomocks.BotRepository
	tx         *txsmocks.TxManager
	client     *platformmocks.Client
	cursors    *servicemocks.CursorStore
	settings   *servicemocks.Settings
	statuses   *servicemocks.StatusHandler
	notifier   *notifymocks.AlertNotifier
	worker     *service.JobWorker
}

func newWorkerFixture(t *testing.T) *workerFixture {
	t.Helper()

	f := &workerFixture{
		jobs:       repomocks.NewJobRepository(t),
		channels:   repomocks.NewChannelRepository(t),
		candidates: repomocks.NewCandidateRepository(t),
		owners:     repomocks.NewOwnerRepository(t),
		bans:       repomocks.NewBanRepository(t),
		bots:       repomocks.NewBotRepository(t),
		tx:         txsmocks.NewTxManager(t),
		client:     platformmocks.NewClient(t),
		cursors:    servicemocks.NewCursorStore(t),
		settings:   servicemocks.NewSettings(t),
		statuses:   servicemocks.NewStatusHandler(t),
		notifier:   notifymocks.NewAlertNotifier(t),
	}

	resolver := platform.NewResolver(f.client, time.Second, discardLogger())
	repos := &repository.Repositories{
		Bots:       f.bots,
		Owners:     f.owners,
		Channels:   f.channels,
		Bans:       f.bans,
		Candidates: f.candidates,
		Jobs:       f.jobs,
	}

	f.worker = service.NewJobWorker(
		repos,
		f.tx,
		resolver,
		f.cursors,
		f.settings,
		f.notifier,
		service.NewNameRefresher(f.bots, resolver, f.statuses, discardLogger()),
		discardLogger(),
	)

	f.tx.EXPECT().WithTransaction(mock.Anything, mock.AnythingOfType("func(context.Context) error")).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()

	return f
}

func job(id int64, kind models.JobKind, payload models.JobPayload) *models.Job {
	return &models.Job{ID: id, OwnerID: 1, Kind: kind, Metadata: models.EncodeJobPayload(payload)}
}

func TestJobWorker_UnknownKindIsLeftUntouched(t *testing.T) {
	f := newWorkerFixture(t)

	f.jobs.EXPECT().ListPending(mock.Anything, int64(1)).
		Return([]*models.Job{{ID: 1, OwnerID: 1, Kind: "send_postcard"}}, nil).Once()

	require.NoError(t, f.worker.Tick(context.Background(), testTick()))

	f.tx.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
	f.jobs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.jobs.AssertNotCalled(t, "SetResult", mock.Anything, mock.Anything, mock.Anything)
}

func TestJobWorker_ListFoldersStoresResult(t *testing.T) {
	f := newWorkerFixture(t)
	folders := []models.DialogFilter{{ID: 2, Title: "Работа", PinnedPeers: []int64{10, 11}}}

	f.jobs.EXPECT().ListPending(mock.Anything, int64(1)).
		Return([]*models.Job{job(5, models.JobListFolders, models.JobPayload{})}, nil).Once()
	f.client.EXPECT().ListDialogFilters(mock.Anything).Return(folders, nil).Once()
	f.jobs.EXPECT().SetResult(mock.Anything, int64(5), mock.MatchedBy(func(data []byte) bool {
		decoded, err := models.DecodeFolders(data)

		return err == nil && assert.ObjectsAreEqual(folders, decoded)
	})).Return(nil).Once()

	require.NoError(t, f.worker.Tick(context.Background(), testTick()))
	f.jobs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestJobWorker_EnrichFolderMembers(t *testing.T) {
	f := newWorkerFixture(t)
	payload := models.JobPayload{Folders: []models.DialogFilter{{ID: 2, Title: "Работа", PinnedPeers: []int64{10, 11}}}}

	f.jobs.EXPECT().ListPending(mock.Anything, int64(1)).
		Return([]*models.Job{job(6, models.JobEnrichFolderMembers, payload)}, nil).Once()
	f.client.EXPECT().ResolveEntity(mock.Anything, "10").
		Return(&models.Entity{ID: 10, Username: "member_one"}, nil).Once()
	f.client.EXPECT().ResolveEntity(mock.Anything, "11").Return(nil, platform.ErrForbidden).Once()
	f.jobs.EXPECT().SetResult(mock.Anything, int64(6), mock.MatchedBy(func(data []byte) bool {
		return assert.ObjectsAreEqual(
			models.EncodeFolderMembers([]models.FolderMembers{{
				Title:   "Работа",
				Members: []models.Entity{{ID: 10, Username: "member_one"}},
			}}),
			data,
		)
	})).Return(nil).Once()

	require.NoError(t, f.worker.Tick(context.Background(), testTick()))
}

func TestJobWorker_FireAndForgetJobsAreDeleted(t *testing.T) {
	f := newWorkerFixture(t)
	tick := testTick()

	jobs := []*models.Job{
		job(1, models.JobResetAntiFlood, models.JobPayload{Handles: []string{"@User_One", "user_two"}}),
		job(2, models.JobBatchNotify, models.JobPayload{Handles: []string{"@user_one", "@user_two"}}),
		job(3, models.JobDeregisterChannel, models.JobPayload{ChannelRef: "@closed", Reason: "forbidden"}),
		job(4, models.JobUnblockUser, models.JobPayload{Handle: "@pardoned"}),
		job(5, models.JobConnectivityAlarm, models.JobPayload{Reason: "timeout"}),
	}

	f.jobs.EXPECT().ListPending(mock.Anything, int64(1)).Return(jobs, nil).Once()

	f.candidates.EXPECT().ResetBatched(mock.Anything, int64(1), []string{"@user_one", "@user_two"}).Return(int64(2), nil).Once()
	f.owners.EXPECT().SetAntiFloodMode(mock.Anything, int64(1), false).Return(nil).Once()
	f.settings.EXPECT().Invalidate(mock.Anything, cache.KeyOwnerConfig).Return(nil).Once()

	f.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(a *models.Alert) bool {
		return a.Kind == models.AlertBatch && a.BotID == tick.BotID && len(a.Handles) == 2
	})).Return(nil).Once()

	f.channels.EXPECT().Remove(mock.Anything, int64(1), "@closed").Return(true, nil).Once()
	f.cursors.EXPECT().Delete(mock.Anything, "@closed").Return(nil).Once()
	f.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(a *models.Alert) bool {
		return a.Kind == models.AlertChannelLost
	})).Return(nil).Once()

	f.client.EXPECT().UnblockUser(mock.Anything, "@pardoned").Return(nil).Once()

	f.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(a *models.Alert) bool {
		return a.Kind == models.AlertConnectivity && a.Text == "timeout"
	})).Return(nil).Once()

	for _, j := range jobs {
		f.jobs.EXPECT().Delete(mock.Anything, j.ID).Return(nil).Once()
	}

	require.NoError(t, f.worker.Tick(context.Background(), tick))
}

func TestJobWorker_FailureDoesNotBlockOtherJobs(t *testing.T) {
	f := newWorkerFixture(t)
	notifyErr := errors.New("telegram down")

	jobs := []*models.Job{
		job(1, models.JobThrottleAlarm, models.JobPayload{Handle: "@busy_user"}),
		job(2, models.JobBlockBanned, models.JobPayload{}),
	}

	f.jobs.EXPECT().ListPending(mock.Anything, int64(1)).Return(jobs, nil).Once()
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(notifyErr).Once()
	f.bans.EXPECT().ListUnblocked(mock.Anything, int64(1)).Return([]models.BannedHandle{
		{OwnerID: 1, Handle: "@spammer_one"},
		{OwnerID: 1, Handle: "@vanished"},
	}, nil).Once()
	f.client.EXPECT().BlockUser(mock.Anything, "@spammer_one").Return(nil).Once()
	f.bans.EXPECT().SetBlocked(mock.Anything, int64(1), "@spammer_one", true).Return(nil).Once()
	f.client.EXPECT().BlockUser(mock.Anything, "@vanished").Return(platform.ErrNotFound).Once()
	f.jobs.EXPECT().Delete(mock.Anything, int64(2)).Return(nil).Once()

	err := f.worker.Tick(context.Background(), testTick())

	require.Error(t, err)
	assert.ErrorIs(t, err, notifyErr)
	f.jobs.AssertNotCalled(t, "Delete", mock.Anything, int64(1))
}

func TestJobWorker_UpdateTitlesAndSelfName(t *testing.T) {
	f := newWorkerFixture(t)
	tick := testTick()

	jobs := []*models.Job{
		job(1, models.JobUpdateChannelTitles, models.JobPayload{}),
		job(2, models.JobUpdateSelfName, models.JobPayload{}),
	}

	f.jobs.EXPECT().ListPending(mock.Anything, int64(1)).Return(jobs, nil).Once()
	f.channels.EXPECT().ListWithoutTitle(mock.Anything, int64(1)).Return([]*models.MonitoredChannel{
		{ID: 11, OwnerID: 1, ChannelRef: "@news"},
		{ID: 12, OwnerID: 1, ChannelRef: "@secret"},
	}, nil).Once()
	f.client.EXPECT().ResolveEntity(mock.Anything, "@news").Return(&models.Entity{ID: 1, Title: "Новости"}, nil).Once()
	f.client.EXPECT().ResolveEntity(mock.Anything, "@secret").Return(nil, platform.ErrForbidden).Once()
	f.channels.EXPECT().UpdateTitle(mock.Anything, int64(11), "Новости").Return(nil).Once()

	f.client.EXPECT().GetSelf(mock.Anything).Return(&models.Self{FirstName: "Анна", LastName: "Иванова"}, nil).Once()
	f.bots.EXPECT().FindByID(mock.Anything, tick.BotID).Return(&models.Bot{ID: tick.BotID, Name: "Анна"}, nil).Once()
	f.bots.EXPECT().UpdateName(mock.Anything, tick.BotID, "Анна Иванова").Return(nil).Once()

	f.jobs.EXPECT().Delete(mock.Anything, int64(1)).Return(nil).Once()
	f.jobs.EXPECT().Delete(mock.Anything, int64(2)).Return(nil).Once()

	require.NoError(t, f.worker.Tick(context.Background(), tick))
}
