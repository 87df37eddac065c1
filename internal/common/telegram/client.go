package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"
)

// MaxMessageLength is the Bot API limit for one text message.
const MaxMessageLength = 4096

// BotCommand is one entry of the command menu shown by Telegram clients.
type BotCommand struct {
	Command     string
	Description string
}

type ClientAPI interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SetMyCommands(ctx context.Context, commands []BotCommand) error
	GetBot() *tgbotapi.BotAPI
}

type Client struct {
	bot    *tgbotapi.BotAPI
	logger *slog.Logger
}

func NewClient(token string, logger *slog.Logger) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		logger.Error("Ошибка при создании Telegram клиента", "error", err)
		return nil, fmt.Errorf("ошибка при создании Telegram клиента: %w", err)
	}

	logger.Info("Telegram клиент создан", "username", bot.Self.UserName)

	return &Client{
		bot:    bot,
		logger: logger,
	}, nil
}

// NewClientWithBot wraps an already configured BotAPI, e.g. one pointed at a test endpoint.
func NewClientWithBot(bot *tgbotapi.BotAPI, logger *slog.Logger) *Client {
	return &Client{
		bot:    bot,
		logger: logger,
	}
}

// SendMessage sends text as HTML, split into several messages on line
// boundaries when it exceeds MaxMessageLength.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if c.bot == nil {
		return fmt.Errorf("telegram клиент не инициализирован")
	}

	chunks := SplitMessage(text, MaxMessageLength)

	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg := tgbotapi.NewMessage(chatID, chunk)
		msg.ParseMode = tgbotapi.ModeHTML
		msg.DisableWebPagePreview = true

		if _, err := c.bot.Send(msg); err != nil {
			c.logger.Warn("Telegram не принял сообщение",
				"chatID", chatID,
				"part", i+1,
				"parts", len(chunks),
				"error", err,
			)

			return fmt.Errorf("ошибка при отправке сообщения: %w", err)
		}
	}

	return nil
}

// SplitMessage packs whole lines into parts of at most limit runes. A single
// line longer than limit is cut by runes.
func SplitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var (
		parts   []string
		current strings.Builder
		size    int
	)

	flush := func() {
		if size > 0 {
			parts = append(parts, current.String())
			current.Reset()
			size = 0
		}
	}

	for _, line := range strings.Split(text, "\n") {
		lineSize := utf8.RuneCountInString(line)

		if lineSize > limit {
			flush()
			parts = append(parts, cutRunes(line, limit)...)

			continue
		}

		sep := 0
		if size > 0 {
			sep = 1
		}

		if size+sep+lineSize > limit {
			flush()
			sep = 0
		}

		if sep == 1 {
			current.WriteByte('\n')
		}

		current.WriteString(line)
		size += sep + lineSize
	}

	flush()

	return parts
}

func (c *Client) SetMyCommands(_ context.Context, commands []BotCommand) error {
	if c.bot == nil {
		return fmt.Errorf("telegram клиент не инициализирован")
	}

	botAPICommands := lo.Map(commands, func(cmd BotCommand, _ int) tgbotapi.BotCommand {
		return tgbotapi.BotCommand{Command: cmd.Command, Description: cmd.Description}
	})

	if _, err := c.bot.Request(tgbotapi.NewSetMyCommands(botAPICommands...)); err != nil {
		return fmt.Errorf("ошибка при установке команд бота: %w", err)
	}

	return nil
}

func (c *Client) GetBot() *tgbotapi.BotAPI {
	return c.bot
}

func cutRunes(line string, limit int) []string {
	runes := []rune(line)
	parts := make([]string, 0, len(runes)/limit+1)

	for start := 0; start < len(runes); start += limit {
		parts = append(parts, string(runes[start:min(start+limit, len(runes))]))
	}

	return parts
}
