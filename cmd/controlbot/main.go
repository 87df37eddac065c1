package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/matthew11k/outreach/internal/common/metrics"
	"github.com/matthew11k/outreach/internal/common/telegram"
	"github.com/matthew11k/outreach/internal/config"
	controlservice "github.com/matthew11k/outreach/internal/controlbot/service"
	controltelegram "github.com/matthew11k/outreach/internal/controlbot/telegram"
	"github.com/matthew11k/outreach/internal/database"
	"github.com/matthew11k/outreach/internal/engine/cache"
	"github.com/matthew11k/outreach/internal/engine/repository"
	"github.com/matthew11k/outreach/pkg"
)

func gracefulShutdown(
	poller *controltelegram.Poller,
	metricsServer *metrics.MetricsServer,
	redisStore *cache.RedisStore,
	stopCh <-chan struct{},
	appLogger *slog.Logger,
) {
	<-stopCh
	appLogger.Info("Получен сигнал завершения")

	poller.Stop()

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

	appLogger.Info("Бот управления успешно остановлен")
}

func setupTelegramCommands(telegramClient telegram.ClientAPI, appLogger *slog.Logger) {
	ctx := context.Background()
	if err := telegramClient.SetMyCommands(ctx, controltelegram.Commands); err != nil {
		appLogger.Error("Ошибка при регистрации команд бота",
			"error", err,
		)
	} else {
		appLogger.Info("Команды бота успешно зарегистрированы")
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка запуска бота управления: %v\n", err)
		os.Exit(1)
	}
}

//nolint:funlen // Длина функции обусловлена необходимостью последовательной инициализации всех компонентов.
func run() error {
	cfg := config.LoadConfig()
	appLogger := pkg.NewLogger(os.Stdout, "controlbot", cfg.LogLevel)

	if cfg.ControlBotToken == "" {
		return fmt.Errorf("не задан CONTROL_BOT_TOKEN")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.NewPostgresDB(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при подключении к базе данных",
			"error", err,
		)

		return fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	defer db.Close()

	repos := repository.NewRepositories(db, appLogger)

	rootStore, err := cache.NewRedisStore(ctx, cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB, cfg.RedisKeyPrefix, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при подключении к Redis",
			"error", err,
		)

		return err
	}

	commandService := controlservice.NewCommandService(
		repos,
		rootStore.Scoped(cfg.ControlOwnerID),
		rootStore,
		cfg.ControlOwnerID,
		cfg.ControlBotID,
		appLogger,
	)

	telegramClient, err := telegram.NewClient(cfg.ControlBotToken, appLogger)
	if err != nil {
		return err
	}

	setupTelegramCommands(telegramClient, appLogger)

	allowedChats := controltelegram.ParseAllowedChats(cfg.ControlAllowedChats)
	if len(allowedChats) == 0 {
		appLogger.Warn("Список разрешенных чатов пуст, команды не будут обрабатываться")
	}

	poller := controltelegram.NewPoller(telegramClient, commandService, allowedChats, appLogger)
	poller.Start()

	metricsServer := metrics.NewMetricsServer(cfg.ControlMetricsPort, appLogger,
		metrics.HealthCheck{Name: "postgres", Probe: db.Ping},
		metrics.HealthCheck{Name: "redis", Probe: rootStore.Ping},
	)

	go func() {
		if err := metricsServer.Start(ctx); err != nil {
			appLogger.Error("Ошибка сервера метрик",
				"error", err,
			)
		}
	}()

	stopCh := make(chan struct{})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		appLogger.Info("Получен системный сигнал",
			"signal", sig.String(),
		)
		close(stopCh)
	}()

	gracefulShutdown(poller, metricsServer, rootStore, stopCh, appLogger)

	return nil
}
