package telegram

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"

	"github.com/matthew11k/outreach/internal/common/metrics"
	"github.com/matthew11k/outreach/internal/common/telegram"
	"github.com/matthew11k/outreach/internal/domain/models"
)

const (
	processTimeout = 10 * time.Second
	errorReply     = "Произошла ошибка при обработке команды. Пожалуйста, попробуйте позже."
)

type CommandService interface {
	ProcessCommand(ctx context.Context, command *models.Command) (string, error)
}

// Commands is the menu registered with Telegram at start-up.
var Commands = []telegram.BotCommand{
	{Command: "help", Description: "Список команд"},
	{Command: "work", Description: "Включить или остановить отправку"},
	{Command: "chats", Description: "Отслеживаемые каналы"},
	{Command: "keywords", Description: "Триггерные слова"},
	{Command: "ignores", Description: "Игнорируемые слова"},
	{Command: "answers", Description: "Ответы"},
	{Command: "bans", Description: "Заблокированные пользователи"},
	{Command: "folders", Description: "Запросить список папок"},
}

type Poller struct {
	telegramClient telegram.ClientAPI
	commandService CommandService
	allowedChats   map[int64]struct{}
	logger         *slog.Logger
	updatesChan    tgbotapi.UpdatesChannel
	stopChan       chan struct{}
}

func NewPoller(telegramClient telegram.ClientAPI, commandService CommandService, allowedChats []int64, logger *slog.Logger) *Poller {
	return &Poller{
		telegramClient: telegramClient,
		commandService: commandService,
		allowedChats:   lo.SliceToMap(allowedChats, func(id int64) (int64, struct{}) { return id, struct{}{} }),
		logger:         logger,
		stopChan:       make(chan struct{}),
	}
}

// ParseAllowedChats reads a comma separated list of chat ids. Invalid entries are skipped.
func ParseAllowedChats(raw string) []int64 {
	return lo.FilterMap(strings.Split(raw, ","), func(part string, _ int) (int64, bool) {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		return id, err == nil
	})
}

func (p *Poller) Start() {
	p.logger.Info("Запуск Telegram поллера")

	bot := p.telegramClient.GetBot()
	if bot == nil {
		p.logger.Error("Не удалось получить доступ к API бота")
		return
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	p.updatesChan = bot.GetUpdatesChan(u)

	go func() {
		for {
			select {
			case <-p.stopChan:
				p.logger.Info("Получен сигнал остановки поллера")
				bot.StopReceivingUpdates()

				return
			case update := <-p.updatesChan:
				p.HandleUpdate(&update)
			}
		}
	}()
}

func (p *Poller) Stop() {
	p.logger.Info("Остановка Telegram поллера")
	close(p.stopChan)
}

// HandleUpdate processes one incoming update and replies in the same chat.
func (p *Poller) HandleUpdate(update *tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}

	chatID := update.Message.Chat.ID

	if _, ok := p.allowedChats[chatID]; !ok {
		p.logger.Warn("Команда из неразрешенного чата", "chat_id", chatID)
		return
	}

	command := &models.Command{
		Type:   CommandTypeOf(update.Message.Command()),
		ChatID: chatID,
		Text:   update.Message.Text,
		Args:   update.Message.CommandArguments(),
	}

	if update.Message.From != nil {
		command.UserID = update.Message.From.ID
		command.Username = update.Message.From.UserName
	}

	p.logger.Info("Получена команда",
		"chat_id", chatID,
		"user_id", command.UserID,
		"command", command.Type,
	)

	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	response, err := p.commandService.ProcessCommand(ctx, command)

	metrics.RecordControlCommand(string(command.Type), err == nil)

	if err != nil {
		p.logger.Error("Ошибка при обработке команды",
			"error", err,
			"chat_id", chatID,
			"command", command.Type,
		)

		if response == "" {
			response = errorReply
		}
	}

	if response == "" {
		return
	}

	if err := p.telegramClient.SendMessage(ctx, chatID, response); err != nil {
		p.logger.Error("Ошибка при отправке ответа",
			"error", err,
			"chat_id", chatID,
		)
	}
}

// CommandTypeOf maps a command name without the leading slash, as returned by
// Message.Command, to its type.
func CommandTypeOf(name string) models.CommandType {
	switch commandType := models.CommandType("/" + strings.ToLower(name)); commandType {
	case models.CommandStart, models.CommandHelp, models.CommandWork,
		models.CommandBan, models.CommandUnban, models.CommandBans, models.CommandBlock,
		models.CommandKeyword, models.CommandUnkeyword, models.CommandKeywords,
		models.CommandIgnore, models.CommandUnignore, models.CommandIgnores,
		models.CommandChat, models.CommandUnchat, models.CommandChats,
		models.CommandAnswer, models.CommandUnanswer, models.CommandAnswers,
		models.CommandRate, models.CommandAntiFlood, models.CommandAck,
		models.CommandFolders, models.CommandMembers, models.CommandJob, models.CommandTitles:
		return commandType
	default:
		return models.CommandUnknown
	}
}
