package telegram_test

import (
	"io"
	"log/slog"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	telegrammocks "github.com/matthew11k/outreach/internal/common/telegram/mocks"
	"github.com/matthew11k/outreach/internal/controlbot/telegram"
	"github.com/matthew11k/outreach/internal/controlbot/telegram/mocks"
	"github.com/matthew11k/outreach/internal/domain/models"
)

const allowedChat = int64(500)

func commandUpdate(chatID int64, text, command string) *tgbotapi.Update {
	return &tgbotapi.Update{
		Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: chatID},
			From: &tgbotapi.User{ID: 42, UserName: "manager"},
			Text: text,
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: len(command)},
			},
		},
	}
}

func newPoller(t *testing.T) (*telegram.Poller, *telegrammocks.ClientAPI, *mocks.CommandService) {
	t.Helper()

	client := telegrammocks.NewClientAPI(t)
	commands := mocks.NewCommandService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return telegram.NewPoller(client, commands, []int64{allowedChat}, logger), client, commands
}

func TestPoller_HandleUpdate(t *testing.T) {
	t.Run("command is executed and answered", func(t *testing.T) {
		poller, client, commands := newPoller(t)

		commands.EXPECT().ProcessCommand(mock.Anything, mock.MatchedBy(func(c *models.Command) bool {
			return c.Type == models.CommandBan && c.Args == "@spammer_one" && c.UserID == 42
		})).Return("Заблокировано пользователей: 1", nil).Once()
		client.EXPECT().SendMessage(mock.Anything, allowedChat, "Заблокировано пользователей: 1").Return(nil).Once()

		poller.HandleUpdate(commandUpdate(allowedChat, "/ban @spammer_one", "/ban"))
	})

	t.Run("error without reply sends generic message", func(t *testing.T) {
		poller, client, commands := newPoller(t)

		commands.EXPECT().ProcessCommand(mock.Anything, mock.Anything).Return("", assert.AnError).Once()
		client.EXPECT().SendMessage(mock.Anything, allowedChat, mock.AnythingOfType("string")).Return(nil).Once()

		poller.HandleUpdate(commandUpdate(allowedChat, "/bans", "/bans"))
	})

	t.Run("foreign chat is ignored", func(t *testing.T) {
		poller, client, commands := newPoller(t)

		poller.HandleUpdate(commandUpdate(13, "/work off", "/work"))

		commands.AssertNotCalled(t, "ProcessCommand", mock.Anything, mock.Anything)
		client.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("plain text is ignored", func(t *testing.T) {
		poller, _, commands := newPoller(t)

		poller.HandleUpdate(&tgbotapi.Update{Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: allowedChat}, Text: "привет"}})

		commands.AssertNotCalled(t, "ProcessCommand", mock.Anything, mock.Anything)
	})
}

func TestCommandTypeOf(t *testing.T) {
	assert.Equal(t, models.CommandAntiFlood, telegram.CommandTypeOf("antiflood"))
	assert.Equal(t, models.CommandMembers, telegram.CommandTypeOf("Members"))
	assert.Equal(t, models.CommandUnknown, telegram.CommandTypeOf("track"))
}

func TestParseAllowedChats(t *testing.T) {
	assert.Equal(t, []int64{500, -100200}, telegram.ParseAllowedChats("500, -100200,abc,"))
	assert.Empty(t, telegram.ParseAllowedChats(""))
}
