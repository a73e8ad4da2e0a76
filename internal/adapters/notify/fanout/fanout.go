package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/ports/notify"
)

// Notifier manda cada aviso al canal principal (e-mail) y a los secundarios
// (Telegram) en paralelo y espera a todos. Solo el error del principal se
// devuelve; los de los secundarios se registran.
type Notifier struct {
	primary     notify.Notifier
	secondaries []notify.Notifier
	log         logger.Logger
}

func New(primary notify.Notifier, log logger.Logger, secondaries ...notify.Notifier) *Notifier {
	return &Notifier{primary: primary, secondaries: secondaries, log: log}
}

func (n *Notifier) Notify(ctx context.Context, msg notify.Message) error {
	var g errgroup.Group

	g.Go(func() error {
		return n.primary.Notify(ctx, msg)
	})
	for i, s := range n.secondaries {
		g.Go(func() error {
			if err := s.Notify(ctx, msg); err != nil {
				n.log.Warn("secondary notification failed", map[string]any{"err": err, "channel": i, "subject": msg.Subject})
			}
			return nil
		})
	}

	return g.Wait()
}
