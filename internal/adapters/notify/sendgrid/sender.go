package sendgrid

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/httpclient"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/ports/notify"
)

const DefaultBaseURL = "https://api.sendgrid.com"

var ErrNotConfigured = errors.New("sendgrid not configured")

type Config struct {
	APIKey  string
	From    string
	To      string
	BaseURL string
	Timeout time.Duration
}

// Sender manda los avisos por la API v3 de SendGrid (mail/send).
type Sender struct {
	client *httpclient.Client
	from   string
	to     string
}

func New(cfg Config, opts ...httpclient.Option) (*Sender, error) {
	if strings.TrimSpace(cfg.APIKey) == "" || strings.TrimSpace(cfg.To) == "" {
		return nil, ErrNotConfigured
	}
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	opts = append([]httpclient.Option{httpclient.WithHeader("Authorization", "Bearer "+cfg.APIKey)}, opts...)
	return &Sender{
		client: httpclient.New(base, cfg.Timeout, opts...),
		from:   cfg.From,
		to:     cfg.To,
	}, nil
}

type address struct {
	Email string `json:"email"`
}

type personalization struct {
	To []address `json:"to"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailSend struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

func (s *Sender) Notify(ctx context.Context, msg notify.Message) error {
	body := mailSend{
		Personalizations: []personalization{{To: []address{{Email: s.to}}}},
		From:             address{Email: s.from},
		Subject:          msg.Subject,
		Content:          []content{{Type: "text/html", Value: msg.HTML}},
	}
	if err := s.client.PostJSON(ctx, "/v3/mail/send", body, nil); err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	return nil
}
