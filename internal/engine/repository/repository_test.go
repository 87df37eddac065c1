package repository_test

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/matthew11k/outreach/internal/config"
	"github.com/matthew11k/outreach/internal/database"
	customerrors "github.com/matthew11k/outreach/internal/domain/errors"
	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/repository"
	"github.com/matthew11k/outreach/pkg/txs"
)

var (
	testDB *database.PostgresDB
	logger *slog.Logger
)

func setupTestDatabase(ctx context.Context) (*database.PostgresDB, func(), error) {
	dbName := "testdb"
	dbUser := "testuser"
	dbPassword := "testpassword"

	container, err := postgres.Run(ctx,
		"postgres:16",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось запустить контейнер postgres: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось получить строку подключения: %w", err)
	}

	if err := database.Migrate(dsn, "../../../migrations", logger); err != nil {
		return nil, nil, err
	}

	db, err := database.NewPostgresDB(ctx, &config.Config{DatabaseURL: dsn, DatabaseMaxConn: 5}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось подключиться к тестовой БД: %w", err)
	}

	cleanup := func() {
		db.Close()

		if err := container.Terminate(ctx); err != nil {
			logger.Error("Не удалось остановить контейнер postgres", "error", err)
		}
	}

	return db, cleanup, nil
}

func TestMain(m *testing.M) {
	flag.Parse()

	if testing.Short() {
		os.Exit(m.Run())
	}

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	exitCode := func() int {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		var cleanup func()

		var err error

		testDB, cleanup, err = setupTestDatabase(ctx)
		if err != nil {
			logger.Error("Ошибка при настройке тестовой БД", "error", err)
			return 1
		}
		defer cleanup()

		return m.Run()
	}()

	os.Exit(exitCode)
}

// seedOwner clears every table and creates one owner with one bot.
func seedOwner(ctx context.Context, t *testing.T) (ownerID, botID int64) {
	t.Helper()

	for _, table := range []string{"jobs", "candidates", "banned_handles", "answer_templates",
		"excludes", "keywords", "monitored_channels", "bots", "owners"} {
		_, err := testDB.Pool.Exec(ctx, "DELETE FROM "+table)
		require.NoErrorf(t, err, "Failed to clear table %s", table)
	}

	err := testDB.Pool.QueryRow(ctx, "INSERT INTO owners (send_rate_per_minute) VALUES (5) RETURNING id").Scan(&ownerID)
	require.NoError(t, err)

	err = testDB.Pool.QueryRow(ctx,
		"INSERT INTO bots (owner_id, session_path) VALUES ($1, 'sessions/main') RETURNING id", ownerID).Scan(&botID)
	require.NoError(t, err)

	return ownerID, botID
}

func TestRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("Пропуск интеграционного теста в коротком режиме")
	}

	ctx := context.Background()
	repos := repository.NewRepositories(testDB, logger)

	t.Run("Bots and owners", func(t *testing.T) {
		ownerID, botID := seedOwner(ctx, t)

		bot, err := repos.Bots.FindBySession(ctx, "sessions/main")
		require.NoError(t, err)
		assert.Equal(t, botID, bot.ID)
		assert.Equal(t, ownerID, bot.OwnerID)
		assert.False(t, bot.IsStarted)

		require.NoError(t, repos.Bots.SetStarted(ctx, botID, true))
		require.NoError(t, repos.Bots.UpdateName(ctx, botID, "Anna Smith"))

		bot, err = repos.Bots.FindByID(ctx, botID)
		require.NoError(t, err)
		assert.True(t, bot.IsStarted)
		assert.Equal(t, "Anna Smith", bot.Name)

		_, err = repos.Bots.FindBySession(ctx, "sessions/unknown")
		assert.True(t, errors.Is(err, &customerrors.ErrBotNotFound{}))

		require.NoError(t, repos.Owners.SetAntiFloodMode(ctx, ownerID, true))
		require.NoError(t, repos.Owners.SetAntiFloodBatchSize(ctx, ownerID, 4))
		require.NoError(t, repos.Owners.SetSendRate(ctx, ownerID, 12))

		owner, err := repos.Owners.FindByID(ctx, ownerID)
		require.NoError(t, err)
		assert.True(t, owner.AntiFloodMode)
		assert.Equal(t, 4, owner.AntiFloodBatchSize)
		assert.Equal(t, 12, owner.SendRatePerMinute)

		_, err = repos.Owners.FindByID(ctx, ownerID+1000)
		assert.True(t, errors.Is(err, &customerrors.ErrOwnerNotFound{}))
	})

	t.Run("Channels", func(t *testing.T) {
		ownerID, _ := seedOwner(ctx, t)

		added, err := repos.Channels.Add(ctx, ownerID, "@golang_jobs")
		require.NoError(t, err)
		assert.True(t, added)

		added, err = repos.Channels.Add(ctx, ownerID, "@golang_jobs")
		require.NoError(t, err)
		assert.False(t, added)

		_, err = repos.Channels.Add(ctx, ownerID, "@backend_hiring")
		require.NoError(t, err)

		channels, err := repos.Channels.ListWithoutTitle(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, channels, 2)

		require.NoError(t, repos.Channels.UpdateTitle(ctx, channels[0].ID, "Go Jobs"))

		channels, err = repos.Channels.ListWithoutTitle(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, channels, 1)
		assert.Equal(t, "@backend_hiring", channels[0].ChannelRef)

		removed, err := repos.Channels.Remove(ctx, ownerID, "@backend_hiring")
		require.NoError(t, err)
		assert.True(t, removed)

		channels, err = repos.Channels.ListByOwner(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, channels, 1)
		require.NotNil(t, channels[0].Title)
		assert.Equal(t, "Go Jobs", *channels[0].Title)
	})

	t.Run("Rules", func(t *testing.T) {
		ownerID, _ := seedOwner(ctx, t)

		n, err := repos.Rules.Add(ctx, models.RuleKeyword, ownerID, []string{"ищу", "вакансия", "ищу"})
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		n, err = repos.Rules.Add(ctx, models.RuleKeyword, ownerID, []string{"ищу", "golang"})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		_, err = repos.Rules.Add(ctx, models.RuleAnswer, ownerID, []string{"Добрый день!"})
		require.NoError(t, err)

		keywords, err := repos.Rules.List(ctx, models.RuleKeyword, ownerID)
		require.NoError(t, err)
		assert.Equal(t, []string{"ищу", "вакансия", "golang"}, keywords)

		answers, err := repos.Rules.List(ctx, models.RuleAnswer, ownerID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Добрый день!"}, answers)

		excludes, err := repos.Rules.List(ctx, models.RuleExclude, ownerID)
		require.NoError(t, err)
		assert.Empty(t, excludes)

		n, err = repos.Rules.Remove(ctx, models.RuleKeyword, ownerID, []string{"ищу", "нет такого"})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		_, err = repos.Rules.List(ctx, models.RuleKind("unknown"), ownerID)
		assert.True(t, errors.Is(err, &customerrors.ErrInvalidArgument{}))
	})

	t.Run("Bans", func(t *testing.T) {
		ownerID, _ := seedOwner(ctx, t)

		n, err := repos.Bans.Add(ctx, ownerID, []string{"@spammer", "@recruiter"})
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		require.NoError(t, repos.Bans.SetBlocked(ctx, ownerID, "@spammer", true))

		unblocked, err := repos.Bans.ListUnblocked(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, unblocked, 1)
		assert.Equal(t, "@recruiter", unblocked[0].Handle)

		n, err = repos.Bans.Remove(ctx, ownerID, []string{"@spammer"})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		bans, err := repos.Bans.List(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, bans, 1)
	})

	t.Run("Candidate intake is idempotent", func(t *testing.T) {
		ownerID, _ := seedOwner(ctx, t)

		candidate := &models.Candidate{
			OwnerID:         ownerID,
			ExternalUserID:  "@anna_dev",
			Handle:          "@anna_dev",
			SourceMessageID: 42,
			SourceChatID:    -100500,
			ContextText:     "ищу golang разработчика @anna_dev",
			Accepted:        true,
		}

		inserted, err := repos.Candidates.Insert(ctx, candidate)
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.NotZero(t, candidate.ID)

		again := *candidate
		again.ID = 0

		inserted, err = repos.Candidates.Insert(ctx, &again)
		require.NoError(t, err)
		assert.False(t, inserted)

		exists, err := repos.Candidates.Exists(ctx, ownerID, "@anna_dev")
		require.NoError(t, err)
		assert.True(t, exists)

		var count int
		err = testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM candidates WHERE owner_id = $1", ownerID).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Pending candidates and batching", func(t *testing.T) {
		ownerID, _ := seedOwner(ctx, t)

		for _, h := range []string{"First_User", "Second_User", "third_user"} {
			_, err := repos.Candidates.Insert(ctx, &models.Candidate{
				OwnerID: ownerID, ExternalUserID: "@" + strings.ToLower(h), Handle: h,
				SourceMessageID: 1, SourceChatID: 1, Accepted: true,
			})
			require.NoError(t, err)
		}

		_, err := repos.Candidates.Insert(ctx, &models.Candidate{
			OwnerID: ownerID, ExternalUserID: "@rejected_user", Handle: "Rejected_User",
			SourceMessageID: 2, SourceChatID: 1, Accepted: false, DecisionMeta: []byte(`{"banned":"@rejected_user"}`),
		})
		require.NoError(t, err)

		pending, err := repos.Candidates.ListPending(ctx, ownerID, 2)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, "@first_user", pending[0].ExternalUserID)
		assert.Equal(t, "Second_User", pending[1].Handle)

		require.NoError(t, repos.Candidates.MarkSent(ctx, []int64{pending[0].ID, pending[1].ID}, true))

		pending, err = repos.Candidates.ListPending(ctx, ownerID, 10)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "@third_user", pending[0].ExternalUserID)

		reset, err := repos.Candidates.ResetBatched(ctx, ownerID, []string{"@second_user"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), reset)

		pending, err = repos.Candidates.ListPending(ctx, ownerID, 10)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, "@second_user", pending[0].ExternalUserID)

		reset, err = repos.Candidates.ResetBatched(ctx, ownerID, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), reset, "без списка сбрасывается весь пакет")
	})

	t.Run("Undeliverable candidate leaves the queue", func(t *testing.T) {
		ownerID, _ := seedOwner(ctx, t)

		dead := &models.Candidate{
			OwnerID: ownerID, ExternalUserID: "@no_such_user", Handle: "No_Such_User",
			SourceMessageID: 1, SourceChatID: 1, Accepted: true,
		}
		_, err := repos.Candidates.Insert(ctx, dead)
		require.NoError(t, err)

		_, err = repos.Candidates.Insert(ctx, &models.Candidate{
			OwnerID: ownerID, ExternalUserID: "@real_user", Handle: "Real_User",
			SourceMessageID: 2, SourceChatID: 1, Accepted: true,
		})
		require.NoError(t, err)

		require.NoError(t, repos.Candidates.MarkUndeliverable(ctx, dead.ID, []byte(`{"undeliverable":"not_found"}`)))

		pending, err := repos.Candidates.ListPending(ctx, ownerID, 10)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "@real_user", pending[0].ExternalUserID)

		var meta []byte
		err = testDB.Pool.QueryRow(ctx, "SELECT decision_meta FROM candidates WHERE id = $1", dead.ID).Scan(&meta)
		require.NoError(t, err)
		assert.JSONEq(t, `{"undeliverable":"not_found"}`, string(meta))
	})

	t.Run("Pending job lookup by kind and channel", func(t *testing.T) {
		ownerID, _ := seedOwner(ctx, t)

		jobID, err := repos.Jobs.Enqueue(ctx, &models.Job{
			OwnerID:  ownerID,
			Kind:     models.JobDeregisterChannel,
			Metadata: models.EncodeJobPayload(models.JobPayload{ChannelRef: "@closed", Reason: "private"}),
		})
		require.NoError(t, err)

		_, err = repos.Jobs.Enqueue(ctx, &models.Job{OwnerID: ownerID, Kind: models.JobConnectivityAlarm})
		require.NoError(t, err)

		exists, err := repos.Jobs.ExistsPending(ctx, ownerID, models.JobDeregisterChannel, "@closed")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repos.Jobs.ExistsPending(ctx, ownerID, models.JobDeregisterChannel, "@other")
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repos.Jobs.ExistsPending(ctx, ownerID, models.JobConnectivityAlarm, "")
		require.NoError(t, err)
		assert.True(t, exists, "задача без метаданных совпадает с пустым каналом")

		require.NoError(t, repos.Jobs.SetResult(ctx, jobID, nil))

		exists, err = repos.Jobs.ExistsPending(ctx, ownerID, models.JobDeregisterChannel, "@closed")
		require.NoError(t, err)
		assert.False(t, exists, "обработанная задача не считается ожидающей")
	})

	t.Run("Jobs", func(t *testing.T) {
		ownerID, _ := seedOwner(ctx, t)

		payload := models.EncodeJobPayload(models.JobPayload{ChannelRef: "@golang_jobs"})

		queryID, err := repos.Jobs.Enqueue(ctx, &models.Job{OwnerID: ownerID, Kind: models.JobListFolders})
		require.NoError(t, err)

		fireID, err := repos.Jobs.Enqueue(ctx, &models.Job{
			OwnerID: ownerID, Kind: models.JobDeregisterChannel, Metadata: payload,
		})
		require.NoError(t, err)

		pending, err := repos.Jobs.ListPending(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, models.JobListFolders, pending[0].Kind)
		assert.Equal(t, payload, pending[1].Metadata)

		require.NoError(t, repos.Jobs.SetResult(ctx, queryID, []byte(`[]`)))
		require.NoError(t, repos.Jobs.Delete(ctx, fireID))

		pending, err = repos.Jobs.ListPending(ctx, ownerID)
		require.NoError(t, err)
		assert.Empty(t, pending)

		job, err := repos.Jobs.FindByID(ctx, ownerID, queryID)
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), job.Result)

		_, err = repos.Jobs.FindByID(ctx, ownerID, fireID)
		assert.True(t, errors.Is(err, &customerrors.ErrJobNotFound{}))
	})

	t.Run("Transaction rolls back marks and jobs together", func(t *testing.T) {
		ownerID, _ := seedOwner(ctx, t)
		txManager := txs.NewTxManager(testDB.Pool, logger)

		candidate := &models.Candidate{
			OwnerID: ownerID, ExternalUserID: "@tx_user", Handle: "@tx_user", SourceMessageID: 1, SourceChatID: 1, Accepted: true,
		}
		_, err := repos.Candidates.Insert(ctx, candidate)
		require.NoError(t, err)

		err = txManager.WithTransaction(ctx, func(ctx context.Context) error {
			if err := repos.Candidates.MarkSent(ctx, []int64{candidate.ID}, true); err != nil {
				return err
			}

			if _, err := repos.Jobs.Enqueue(ctx, &models.Job{OwnerID: ownerID, Kind: models.JobBatchNotify}); err != nil {
				return err
			}

			return errors.New("abort")
		})
		require.Error(t, err)

		pending, err := repos.Candidates.ListPending(ctx, ownerID, 10)
		require.NoError(t, err)
		assert.Len(t, pending, 1)

		jobs, err := repos.Jobs.ListPending(ctx, ownerID)
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})
	t.Run("Nested transaction joins the outer one", func(t *testing.T) {
		ownerID, _ := seedOwner(ctx, t)
		txManager := txs.NewTxManager(testDB.Pool, logger)

		err := txManager.WithTransaction(ctx, func(ctx context.Context) error {
			require.True(t, txs.InTransaction(ctx))

			if _, err := repos.Jobs.Enqueue(ctx, &models.Job{OwnerID: ownerID, Kind: models.JobUpdateChannelTitles}); err != nil {
				return err
			}

			if err := txManager.WithTransaction(ctx, func(ctx context.Context) error {
				_, err := repos.Jobs.Enqueue(ctx, &models.Job{OwnerID: ownerID, Kind: models.JobBlockBanned})
				return err
			}); err != nil {
				return err
			}

			return errors.New("abort outer")
		})
		require.EqualError(t, err, "abort outer")

		jobs, err := repos.Jobs.ListPending(ctx, ownerID)
		require.NoError(t, err)
		assert.Empty(t, jobs, "внутренний вызов откатывается вместе с внешним")
		assert.False(t, txs.InTransaction(ctx))
	})
}
