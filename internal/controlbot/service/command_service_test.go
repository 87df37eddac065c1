package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/matthew11k/outreach/internal/controlbot/service"
	customerrors "github.com/matthew11k/outreach/internal/domain/errors"
	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/cache"
	cachemocks "github.com/matthew11k/outreach/internal/engine/cache/mocks"
	"github.com/matthew11k/outreach/internal/engine/repository"
	repomocks "github.com/matthew11k/outreach/internal/engine/repository/mocks"
)

const (
	ownerID = int64(1)
	botID   = int64(7)
)

type fixture struct {
	bots          *repomocks.BotRepository
	owners        *repomocks.OwnerRepository
	channels      *repomocks.ChannelRepository
	rules         *repomocks.RuleRepository
	bans          *repomocks.BanRepository
	jobs          *repomocks.JobRepository
	settingsCache *cachemocks.Store
	rootCache     *cachemocks.Store
	service       *service.CommandService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		bots:          repomocks.NewBotRepository(t),
		owners:        repomocks.NewOwnerRepository(t),
		channels:      repomocks.NewChannelRepository(t),
		rules:         repomocks.NewRuleRepository(t),
		bans:          repomocks.NewBanRepository(t),
		jobs:          repomocks.NewJobRepository(t),
		settingsCache: cachemocks.NewStore(t),
		rootCache:     cachemocks.NewStore(t),
	}

	f.service = service.NewCommandService(
		&repository.Repositories{
			Bots:     f.bots,
			Owners:   f.owners,
			Channels: f.channels,
			Rules:    f.rules,
			Bans:     f.bans,
			Jobs:     f.jobs,
		},
		f.settingsCache,
		f.rootCache,
		ownerID,
		botID,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	return f
}

func (f *fixture) run(t *testing.T, commandType models.CommandType, args string) string {
	t.Helper()

	reply, err := f.service.ProcessCommand(context.Background(), &models.Command{Type: commandType, Args: args})
	require.NoError(t, err)

	return reply
}

func jobOfKind(kind models.JobKind) interface{} {
	return mock.MatchedBy(func(job *models.Job) bool {
		return job.OwnerID == ownerID && job.Kind == kind
	})
}

func TestCommandService_Work(t *testing.T) {
	f := newFixture(t)

	f.bots.EXPECT().SetStarted(mock.Anything, botID, true).Return(nil).Once()
	f.rootCache.EXPECT().Del(mock.Anything, cache.KeyWorkFlag(botID)).Return(nil).Once()
	assert.Equal(t, "Отправка включена", f.run(t, models.CommandWork, "ON"))

	f.bots.EXPECT().FindByID(mock.Anything, botID).Return(&models.Bot{ID: botID, IsStarted: false}, nil).Once()
	assert.Equal(t, "Отправка остановлена", f.run(t, models.CommandWork, ""))

	assert.Contains(t, f.run(t, models.CommandWork, "maybe"), "Использование")
}

func TestCommandService_BanAndUnban(t *testing.T) {
	f := newFixture(t)

	f.bans.EXPECT().Add(mock.Anything, ownerID, []string{"@spammer_one", "@spammer_two"}).Return(2, nil).Once()
	f.settingsCache.EXPECT().Del(mock.Anything, cache.KeyBanned).Return(nil).Twice()
	assert.Equal(t, "Заблокировано пользователей: 2", f.run(t, models.CommandBan, "@Spammer_One, spammer_two @spammer_one"))

	f.bans.EXPECT().Remove(mock.Anything, ownerID, []string{"@spammer_one"}).Return(1, nil).Once()
	f.jobs.EXPECT().Enqueue(mock.Anything, mock.MatchedBy(func(job *models.Job) bool {
		payload, err := models.DecodeJobPayload(job.Metadata)
		return err == nil && job.Kind == models.JobUnblockUser && payload.Handle == "@spammer_one"
	})).Return(int64(10), nil).Once()
	assert.Equal(t, "Разблокировано пользователей: 1", f.run(t, models.CommandUnban, "@spammer_one"))
}

func TestCommandService_Rules(t *testing.T) {
	f := newFixture(t)

	f.rules.EXPECT().Add(mock.Anything, models.RuleKeyword, ownerID, []string{"дизайнер", "ищу монтажера"}).Return(2, nil).Once()
	f.settingsCache.EXPECT().Del(mock.Anything, cache.KeyRules).Return(nil).Twice()
	assert.Equal(t, "Триггерные слова добавлены: 2", f.run(t, models.CommandKeyword, "Дизайнер,  ищу   монтажера\nдизайнер"))

	f.rules.EXPECT().Remove(mock.Anything, models.RuleExclude, ownerID, []string{"спам"}).Return(1, nil).Once()
	assert.Equal(t, "Игнорируемые слова удалены: 1", f.run(t, models.CommandUnignore, "спам"))

	f.rules.EXPECT().Add(mock.Anything, models.RuleAnswer, ownerID, []string{"Здравствуйте, интересует?", "Добрый день!"}).
		Return(2, nil).Once()
	f.settingsCache.EXPECT().Del(mock.Anything, cache.KeyAnswers).Return(nil).Once()
	assert.Equal(t, "Ответы добавлены: 2", f.run(t, models.CommandAnswer, "Здравствуйте, интересует?\n\nДобрый день!"))

	f.rules.EXPECT().List(mock.Anything, models.RuleKeyword, ownerID).Return([]string{"дизайнер", "a<b"}, nil).Once()
	assert.Equal(t, "дизайнер, a&lt;b", f.run(t, models.CommandKeywords, ""))

	f.rules.EXPECT().List(mock.Anything, models.RuleAnswer, ownerID).Return(nil, nil).Once()
	assert.Equal(t, "Нет ответов", f.run(t, models.CommandAnswers, ""))

	assert.Equal(t, "Не указано ни одного значения", f.run(t, models.CommandIgnore, " , "))
}

func TestCommandService_Chats(t *testing.T) {
	f := newFixture(t)

	f.channels.EXPECT().Add(mock.Anything, ownerID, "@news").Return(true, nil).Once()
	f.channels.EXPECT().Add(mock.Anything, ownerID, "-1001234").Return(false, nil).Once()
	f.jobs.EXPECT().Enqueue(mock.Anything, jobOfKind(models.JobUpdateChannelTitles)).Return(int64(3), nil).Once()
	assert.Equal(t, "Добавлено каналов: 1", f.run(t, models.CommandChat, "@News -1001234"))

	f.channels.EXPECT().Remove(mock.Anything, ownerID, "@news").Return(true, nil).Once()
	f.settingsCache.EXPECT().Del(mock.Anything, cache.KeyCursor("@news")).Return(nil).Once()
	assert.Equal(t, "Удалено каналов: 1", f.run(t, models.CommandUnchat, "@news"))

	title := "Новости"
	f.channels.EXPECT().ListByOwner(mock.Anything, ownerID).Return([]*models.MonitoredChannel{
		{ID: 1, ChannelRef: "@news", Title: &title},
		{ID: 2, ChannelRef: "-1001234"},
	}, nil).Once()
	assert.Equal(t, "1. @news - Новости\n2. -1001234\n", f.run(t, models.CommandChats, ""))
}

func TestCommandService_RateAndAntiFlood(t *testing.T) {
	f := newFixture(t)

	f.owners.EXPECT().SetSendRate(mock.Anything, ownerID, 3).Return(nil).Once()
	f.settingsCache.EXPECT().Del(mock.Anything, cache.KeyOwnerConfig).Return(nil).Twice()
	assert.Equal(t, "Лимит отправки: 3 сообщений в минуту", f.run(t, models.CommandRate, "3"))

	assert.Contains(t, f.run(t, models.CommandRate, "0"), "Использование")

	f.owners.EXPECT().SetAntiFloodBatchSize(mock.Anything, ownerID, 20).Return(nil).Once()
	f.owners.EXPECT().SetAntiFloodMode(mock.Anything, ownerID, true).Return(nil).Once()
	assert.Equal(t, "Антифлуд включен", f.run(t, models.CommandAntiFlood, "on 20"))
}

func TestCommandService_Jobs(t *testing.T) {
	f := newFixture(t)

	f.jobs.EXPECT().Enqueue(mock.Anything, jobOfKind(models.JobListFolders)).Return(int64(41), nil).Once()
	assert.Equal(t, "Запрос папок поставлен в очередь, задача 41", f.run(t, models.CommandFolders, ""))

	f.jobs.EXPECT().Enqueue(mock.Anything, mock.MatchedBy(func(job *models.Job) bool {
		payload, err := models.DecodeJobPayload(job.Metadata)
		return err == nil && job.Kind == models.JobResetAntiFlood &&
			assert.ObjectsAreEqual([]string{"@user_one", "@user_two"}, payload.Handles)
	})).Return(int64(42), nil).Once()
	assert.Equal(t, "Сброс антифлуда поставлен в очередь, задача 42", f.run(t, models.CommandAck, "@User_One user_two"))

	f.jobs.EXPECT().FindByID(mock.Anything, ownerID, int64(41)).
		Return(&models.Job{ID: 41, OwnerID: ownerID, Kind: models.JobListFolders}, nil).Once()
	assert.Equal(t, "Задача 41 еще не выполнена", f.run(t, models.CommandJob, "41"))

	folders := []models.DialogFilter{{ID: 2, Title: "Работа", IncludePeers: []int64{1, 2}, PinnedPeers: []int64{10}}}
	done := &models.Job{ID: 41, OwnerID: ownerID, Kind: models.JobListFolders, Result: models.EncodeFolders(folders)}

	f.jobs.EXPECT().FindByID(mock.Anything, ownerID, int64(41)).Return(done, nil).Twice()
	assert.Equal(t, service.FormatFolders(41, folders), f.run(t, models.CommandJob, "41"))

	f.jobs.EXPECT().Enqueue(mock.Anything, mock.MatchedBy(func(job *models.Job) bool {
		payload, err := models.DecodeJobPayload(job.Metadata)
		return err == nil && job.Kind == models.JobEnrichFolderMembers && len(payload.Folders) == 1
	})).Return(int64(43), nil).Once()
	assert.Equal(t, "Запрос участников поставлен в очередь, задача 43", f.run(t, models.CommandMembers, "41"))

	f.jobs.EXPECT().FindByID(mock.Anything, ownerID, int64(99)).Return(nil, &customerrors.ErrJobNotFound{JobID: 99}).Once()
	assert.Equal(t, "Задача 99 не найдена", f.run(t, models.CommandJob, "99"))

	assert.Equal(t, "Укажите номер задачи", f.run(t, models.CommandJob, "abc"))
}

func TestCommandService_UnknownCommand(t *testing.T) {
	f := newFixture(t)

	reply, err := f.service.ProcessCommand(context.Background(), &models.Command{Type: models.CommandUnknown, Text: "/nope"})

	require.Error(t, err)
	assert.ErrorAs(t, err, new(*customerrors.ErrUnknownCommand))
	assert.Contains(t, reply, "/help")
}

func TestFormatFolderMembers(t *testing.T) {
	text := service.FormatFolderMembers([]models.FolderMembers{{
		Title: "Работа",
		Members: []models.Entity{
			{ID: 1, Username: "member_one", FirstName: "Анна"},
			{ID: 2, Phone: "+7999"},
			{ID: 3},
		},
	}})

	assert.Equal(t, "📁 <b>Работа</b>\n• @member_one Анна\n• +7999 \n• id 3 \n", text)
}
