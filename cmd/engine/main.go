package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/jessevdk/go-flags"

	"github.com/matthew11k/outreach/internal/common/httputil"
	"github.com/matthew11k/outreach/internal/common/metrics"
	"github.com/matthew11k/outreach/internal/common/telegram"
	"github.com/matthew11k/outreach/internal/config"
	"github.com/matthew11k/outreach/internal/database"
	"github.com/matthew11k/outreach/internal/engine/cache"
	"github.com/matthew11k/outreach/internal/engine/filter"
	"github.com/matthew11k/outreach/internal/engine/notify"
	"github.com/matthew11k/outreach/internal/engine/platform"
	"github.com/matthew11k/outreach/internal/engine/repository"
	"github.com/matthew11k/outreach/internal/engine/scheduler"
	"github.com/matthew11k/outreach/internal/engine/service"
	"github.com/matthew11k/outreach/pkg"
	"github.com/matthew11k/outreach/pkg/txs"
)

type options struct {
	Session string `long:"session" env:"SESSION_PATH" description:"Путь к файлу сессии аккаунта"`
	Migrate bool   `long:"migrate" description:"Применить миграции перед запуском"`
}

func parseOptions() (*options, error) {
	var opts options

	if _, err := flags.NewParser(&opts, flags.Default).Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}

		return nil, fmt.Errorf("ошибка разбора аргументов: %w", err)
	}

	return &opts, nil
}

func gracefulShutdown(
	sch *scheduler.Scheduler,
	metricsServer *metrics.MetricsServer,
	redisStore *cache.RedisStore,
	stopCh <-chan struct{},
	appLogger *slog.Logger,
) {
	<-stopCh
	appLogger.Info("Получен сигнал завершения")

	sch.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := metricsServer.Stop(ctx); err != nil {
		appLogger.Error("Ошибка при остановке сервера метрик",
			"error", err,
		)
	}

	if err := redisStore.Close(); err != nil {
		appLogger.Error("Ошибка при закрытии соединения с Redis",
			"error", err,
		)
	}

	appLogger.Info("Движок успешно остановлен")
}

func waitForSignal(stopCh chan<- struct{}, appLogger *slog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		appLogger.Info("Получен системный сигнал",
			"signal", sig.String(),
		)
		close(stopCh)
	}()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка запуска движка: %v\n", err)
		os.Exit(1)
	}
}

//nolint:funlen // Длина функции обусловлена необходимостью последовательной инициализации всех компонентов.
func run() error {
	opts, err := parseOptions()
	if err != nil {
		return err
	}

	if opts == nil {
		return nil
	}

	cfg := config.LoadConfig()
	appLogger := pkg.NewLogger(os.Stdout, "engine", cfg.LogLevel)

	if opts.Session != "" {
		cfg.SessionPath = opts.Session
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if opts.Migrate {
		if err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, appLogger); err != nil {
			appLogger.Error("Ошибка при применении миграций",
				"error", err,
			)

			return err
		}
	}

	db, err := database.NewPostgresDB(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при подключении к базе данных",
			"error", err,
		)

		return fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	defer db.Close()

	txManager := txs.NewTxManager(db.Pool, appLogger)
	repos := repository.NewRepositories(db, appLogger)

	rootStore, err := cache.NewRedisStore(ctx, cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB, cfg.RedisKeyPrefix, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при подключении к Redis",
			"error", err,
		)

		return err
	}

	identity := service.NewIdentityService(repos.Bots, rootStore, cfg.SessionPath, cfg.WorkFlagTTL, appLogger)

	bot, err := identity.Bot(ctx)
	if err != nil {
		appLogger.Error("Не удалось определить бота по сессии",
			"session", cfg.SessionPath,
			"error", err,
		)

		return err
	}

	appLogger.Info("Движок запускается",
		"botID", bot.ID,
		"ownerID", bot.OwnerID,
		"session", cfg.SessionPath,
	)

	ownerStore := rootStore.Scoped(bot.OwnerID)
	cursors := cache.NewCursorStore(ownerStore)
	counter := cache.NewSendCounter(ownerStore)
	settings := service.NewSettingsService(ownerStore, repos.Rules, repos.Bans, repos.Owners, cfg.RulesCacheTTL, appLogger)

	gateway := platform.NewGatewayClient(
		httputil.NewResilientClient(cfg, appLogger, "mtproto_gateway"),
		cfg.GatewayBaseURL,
		cfg.GatewayToken,
		cfg.SessionPath,
		cfg.GatewayRPS,
		appLogger,
	)
	resolver := platform.NewResolver(gateway, cfg.PlatformCallTimeout, appLogger)

	matcher, err := filter.NewMatcher(cfg)
	if err != nil {
		appLogger.Error("Некорректный режим фильтра",
			"mode", cfg.FilterMode,
			"error", err,
		)

		return err
	}

	strategies, err := service.ParseStrategyWeights(cfg.SendStrategyWeights)
	if err != nil {
		appLogger.Error("Некорректные веса стратегий отправки",
			"weights", cfg.SendStrategyWeights,
			"error", err,
		)

		return err
	}

	var sender notify.MessageSender

	if cfg.ControlBotToken != "" {
		telegramClient, err := telegram.NewClient(cfg.ControlBotToken, appLogger)
		if err != nil {
			appLogger.Warn("Telegram недоступен для уведомлений",
				"error", err,
			)
		} else {
			sender = telegramClient
		}
	}

	notifier, err := notify.NewNotifierFactory(cfg, sender, appLogger).CreateNotifier()
	if err != nil {
		appLogger.Error("Ошибка при создании нотификатора",
			"error", err,
		)

		return err
	}

	remediator := service.NewRemediator(repos.Jobs, appLogger)
	fetcher := service.NewDeltaFetcher(resolver, cursors, cfg.DeltaLimit, cfg.HistoryLimit, appLogger)
	intake := service.NewCandidateIntake(repos.Candidates, appLogger)

	channelSync := service.NewChannelSync(repos.Channels, fetcher, matcher, intake, settings, remediator, appLogger)
	dispatcher := service.NewDispatcher(
		counter,
		settings,
		repos,
		txManager,
		resolver,
		remediator,
		strategies,
		cfg.SendTickInterval,
		cfg.DefaultAnswer,
		appLogger,
	)
	names := service.NewNameRefresher(repos.Bots, resolver, remediator, appLogger)
	worker := service.NewJobWorker(repos, txManager, resolver, cursors, settings, notifier, names, appLogger)

	sch := scheduler.NewScheduler(identity, []scheduler.Component{
		{Name: "channel_sync", Interval: cfg.SyncInterval, Pass: channelSync, RunAtStart: true},
		{Name: "dispatcher", Interval: cfg.SendTickInterval, Pass: dispatcher, RunAtStart: true},
		{Name: "job_worker", Interval: cfg.JobsInterval, Pass: worker, RunAtStart: true},
		{Name: "name_refresh", Interval: cfg.NameRefreshInterval, Pass: names, RunAtStart: true},
	}, cfg.TickTimeout, appLogger)

	if err := sch.Start(ctx); err != nil {
		appLogger.Error("Ошибка при запуске планировщика",
			"error", err,
		)

		return err
	}

	metricsServer := metrics.NewMetricsServer(cfg.MetricsPort, appLogger,
		metrics.HealthCheck{Name: "postgres", Probe: db.Ping},
		metrics.HealthCheck{Name: "redis", Probe: rootStore.Ping},
	)

	stopCh := make(chan struct{})

	go func() {
		if err := metricsServer.Start(ctx); err != nil {
			appLogger.Error("Ошибка сервера метрик",
				"error", err,
			)
		}
	}()

	waitForSignal(stopCh, appLogger)

	gracefulShutdown(sch, metricsServer, rootStore, stopCh, appLogger)

	return nil
}
