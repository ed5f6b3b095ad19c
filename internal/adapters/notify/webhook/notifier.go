package webhook

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"pet-boarding/internal/domain/reminders"
	"pet-boarding/internal/platform/httpclient"
)

var ErrNoURL = errors.New("webhook url missing")

// payload es lo que recibe el endpoint externo.
type payload struct {
	Kind       reminders.Kind `json:"kind"`
	BookingID  string         `json:"booking_id"`
	AnimalID   string         `json:"animal_id"`
	AnimalName string         `json:"animal_name"`
	Date       string         `json:"date"`
	Text       string         `json:"text"`
}

// Notifier hace POST JSON de cada recordatorio a una URL.
type Notifier struct {
	client *httpclient.Client
	url    string
	secret string
}

// New: secret, si no está vacío, viaja en X-Webhook-Secret.
func New(url, secret string, client *httpclient.Client) (*Notifier, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrNoURL
	}
	if client == nil {
		c, err := httpclient.New(httpclient.Options{})
		if err != nil {
			return nil, err
		}
		client = c
	}
	return &Notifier{client: client, url: url, secret: secret}, nil
}

func (n *Notifier) Notify(ctx context.Context, r reminders.Reminder) error {
	var headers map[string]string
	if n.secret != "" {
		headers = map[string]string{"X-Webhook-Secret": n.secret}
	}
	body := payload{
		Kind:       r.Kind,
		BookingID:  r.BookingID,
		AnimalID:   r.AnimalID,
		AnimalName: r.AnimalName,
		Date:       r.Date.String(),
		Text:       r.Text(),
	}
	if err := n.client.DoJSON(ctx, http.MethodPost, n.url, headers, body, nil); err != nil {
		return fmt.Errorf("webhook: %s: %w", r.Key(), err)
	}
	return nil
}
