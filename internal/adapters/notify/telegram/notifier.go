package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pet-boarding/internal/domain/reminders"
	"pet-boarding/internal/platform/httpclient"
)

var ErrNotConfigured = errors.New("telegram token or chat id missing")

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier manda los recordatorios a un chat de Telegram.
type Notifier struct {
	bot    sender
	chatID int64
}

type Config struct {
	Token  string
	ChatID int64
	// Endpoint con formato tgbotapi.APIEndpoint; vacío usa el de Telegram.
	Endpoint string
}

// New valida el token con getMe, así que necesita red.
func New(cfg Config, client *httpclient.Client) (*Notifier, error) {
	if strings.TrimSpace(cfg.Token) == "" || cfg.ChatID == 0 {
		return nil, ErrNotConfigured
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = tgbotapi.APIEndpoint
	}
	if client == nil {
		c, err := httpclient.New(httpclient.Options{})
		if err != nil {
			return nil, err
		}
		client = c
	}

	bot, err := tgbotapi.NewBotAPIWithClient(cfg.Token, cfg.Endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("telegram: connect: %w", err)
	}
	return &Notifier{bot: bot, chatID: cfg.ChatID}, nil
}

func (n *Notifier) Notify(ctx context.Context, r reminders.Reminder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, format(r))); err != nil {
		return fmt.Errorf("telegram: send %s: %w", r.Key(), err)
	}
	return nil
}

func format(r reminders.Reminder) string {
	icon := "🐾"
	if r.Kind == reminders.KindCheckOut {
		icon = "🏠"
	}
	return icon + " " + r.Text()
}
