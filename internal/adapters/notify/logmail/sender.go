package logmail

import (
	"context"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/ports/notify"
)

// Sender solo registra los avisos en el log (desarrollo y tests).
type Sender struct {
	log logger.Logger
	to  string
}

func New(log logger.Logger, to string) *Sender {
	return &Sender{log: log, to: to}
}

func (s *Sender) Notify(_ context.Context, msg notify.Message) error {
	s.log.Info("notification (log transport)", map[string]any{
		"to":         s.to,
		"subject":    msg.Subject,
		"summary":    msg.Summary,
		"html_bytes": len(msg.HTML),
	})
	return nil
}
