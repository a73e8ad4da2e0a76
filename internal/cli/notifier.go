package cli

import (
	"errors"
	"fmt"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/adapters/notify/fanout"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/adapters/notify/logmail"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/adapters/notify/sendgrid"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/adapters/notify/smtpmail"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/adapters/notify/telegram"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/config"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/ports/notify"
)

// telegramFactory se reemplaza en tests (NewBotAPI llama a la API).
var telegramFactory = func(token string, chatID int64) (notify.Notifier, error) {
	return telegram.New(token, chatID)
}

// buildNotifier elige el transporte de e-mail y, si hay bot configurado,
// suma Telegram como canal secundario.
func buildNotifier(cfg config.Config, log logger.Logger) (notify.Notifier, error) {
	m := cfg.Mail

	var primary notify.Notifier
	switch m.Transport {
	case "smtp":
		s, err := smtpmail.New(smtpmail.Config{
			Host:     m.Host,
			Port:     m.Port,
			Username: m.Username,
			Password: m.Password,
			From:     m.From,
			To:       m.To,
		})
		if err != nil {
			return nil, fmt.Errorf("smtp notifier: %w", err)
		}
		primary = s
	case "sendgrid":
		s, err := sendgrid.New(sendgrid.Config{APIKey: m.APIKey, From: m.From, To: m.To})
		if err != nil {
			return nil, fmt.Errorf("sendgrid notifier: %w", err)
		}
		primary = s
	default:
		primary = logmail.New(log, m.To)
	}

	if cfg.Telegram.Token == "" {
		return primary, nil
	}
	tg, err := telegramFactory(cfg.Telegram.Token, cfg.Telegram.ChatID)
	if err != nil {
		if errors.Is(err, telegram.ErrNotConfigured) {
			log.Warn("telegram token set without chat_id, skipping", nil)
			return primary, nil
		}
		return nil, fmt.Errorf("telegram notifier: %w", err)
	}
	return fanout.New(primary, log, tg), nil
}
