package telegram_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthew11k/outreach/internal/common/telegram"
)

func TestSplitMessage(t *testing.T) {
	t.Run("short text is one part", func(t *testing.T) {
		assert.Equal(t, []string{"привет"}, telegram.SplitMessage("привет", 10))
	})

	t.Run("lines are packed without breaking", func(t *testing.T) {
		parts := telegram.SplitMessage("aaaa\nbbbb\ncccc", 9)

		assert.Equal(t, []string{"aaaa\nbbbb", "cccc"}, parts)
	})

	t.Run("long line is cut by runes", func(t *testing.T) {
		parts := telegram.SplitMessage("ок\n"+strings.Repeat("ж", 7), 3)

		assert.Equal(t, []string{"ок", "жжж", "жжж", "ж"}, parts)
	})

	t.Run("no part exceeds the limit", func(t *testing.T) {
		var b strings.Builder
		for range 500 {
			b.WriteString("@handle_number_forty_two, канал новостей\n")
		}

		for _, part := range telegram.SplitMessage(b.String(), telegram.MaxMessageLength) {
			assert.LessOrEqual(t, utf8.RuneCountInString(part), telegram.MaxMessageLength)
		}
	})
}

type fakeBotAPI struct {
	mu    sync.Mutex
	texts []string
}

func (f *fakeBotAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case strings.HasSuffix(r.URL.Path, "/getMe"):
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"control","username":"control_bot"}}`))
	case strings.HasSuffix(r.URL.Path, "/sendMessage"):
		f.mu.Lock()
		f.texts = append(f.texts, r.FormValue("text"))
		f.mu.Unlock()

		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":5,"type":"private"}}}`))
	default:
		_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
	}
}

func TestClient_SendMessageSplitsLongText(t *testing.T) {
	api := &fakeBotAPI{}
	server := httptest.NewServer(api)
	defer server.Close()

	bot, err := tgbotapi.NewBotAPIWithClient("token", server.URL+"/bot%s/%s", server.Client())
	require.NoError(t, err)

	client := telegram.NewClientWithBot(bot, slog.New(slog.NewTextHandler(io.Discard, nil)))

	text := strings.Repeat("a", telegram.MaxMessageLength) + "\nхвост"
	require.NoError(t, client.SendMessage(context.Background(), 5, text))

	api.mu.Lock()
	defer api.mu.Unlock()

	require.Len(t, api.texts, 2)
	assert.Equal(t, "хвост", api.texts[1])
}

func TestClient_SendMessageWithoutBot(t *testing.T) {
	client := telegram.NewClientWithBot(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Error(t, client.SendMessage(context.Background(), 1, "текст"))
}
