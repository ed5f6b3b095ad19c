package telegram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-boarding/internal/domain/days"
	"pet-boarding/internal/domain/reminders"
	"pet-boarding/internal/platform/httpclient"
)

func reminder() reminders.Reminder {
	return reminders.Reminder{
		Kind:       reminders.KindCheckIn,
		BookingID:  "b-1",
		AnimalID:   "a-1",
		AnimalName: "Rex",
		Date:       days.MustParse("2024-03-15"),
	}
}

type fakeAPI struct {
	mu    sync.Mutex
	texts []string
	chats []string
	agent string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case strings.HasSuffix(r.URL.Path, "/getMe"):
		f.mu.Lock()
		f.agent = r.Header.Get("User-Agent")
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"hotel","username":"hotel_bot"}}`))
	case strings.HasSuffix(r.URL.Path, "/sendMessage"):
		_ = r.ParseForm()
		f.mu.Lock()
		f.texts = append(f.texts, r.Form.Get("text"))
		f.chats = append(f.chats, r.Form.Get("chat_id"))
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"private"}}}`))
	default:
		http.NotFound(w, r)
	}
}

func TestNotifier_SendsThroughBotAPI(t *testing.T) {
	api := &fakeAPI{}
	srv := httptest.NewServer(api)
	defer srv.Close()

	client, err := httpclient.New(httpclient.Options{UserAgent: "pet-boarding-test"})
	require.NoError(t, err)

	n, err := New(Config{Token: "T", ChatID: 42, Endpoint: srv.URL + "/bot%s/%s"}, client)
	require.NoError(t, err)

	require.NoError(t, n.Notify(context.Background(), reminder()))

	api.mu.Lock()
	defer api.mu.Unlock()
	require.Len(t, api.texts, 1)
	assert.Equal(t, "42", api.chats[0])
	assert.Contains(t, api.texts[0], "Mañana llega Rex (2024-03-15)")
	assert.Equal(t, "pet-boarding-test", api.agent)
}

func TestNew_RequiresTokenAndChat(t *testing.T) {
	_, err := New(Config{Token: "", ChatID: 1}, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = New(Config{Token: "x"}, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

type failingSender struct{}

func (failingSender) Send(tgbotapi.Chattable) (tgbotapi.Message, error) {
	return tgbotapi.Message{}, errors.New("flood control")
}

func TestNotify_WrapsErrorsAndHonoursContext(t *testing.T) {
	n := &Notifier{bot: failingSender{}, chatID: 1}

	err := n.Notify(context.Background(), reminder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check-in|b-1|2024-03-15")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, n.Notify(ctx, reminder()), context.Canceled)
}

func TestFormat(t *testing.T) {
	r := reminder()
	assert.True(t, strings.HasPrefix(format(r), "🐾 "))
	r.Kind = reminders.KindCheckOut
	assert.Equal(t, "🏠 Mañana se retira Rex (2024-03-15)", format(r))
}
