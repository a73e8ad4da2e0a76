package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/ports/notify"
)

var ErrNotConfigured = errors.New("telegram not configured")

// api es la parte de *tgbotapi.BotAPI que usamos.
type api interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Sender avisa al chat del equipo con el resumen corto de la solicitud.
type Sender struct {
	api    api
	chatID int64
}

func New(token string, chatID int64) (*Sender, error) {
	if token == "" || chatID == 0 {
		return nil, ErrNotConfigured
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return &Sender{api: bot, chatID: chatID}, nil
}

func (s *Sender) Notify(ctx context.Context, msg notify.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	text := msg.Summary
	if text == "" {
		text = msg.Subject
	}
	m := tgbotapi.NewMessage(s.chatID, text)
	m.DisableWebPagePreview = true
	if _, err := s.api.Send(m); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
