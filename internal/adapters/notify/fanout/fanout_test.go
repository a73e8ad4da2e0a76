package fanout

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/ports/notify"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recorder struct {
	mu   sync.Mutex
	msgs []notify.Message
	err  error
}

func (r *recorder) Notify(_ context.Context, m notify.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, m)
	return r.err
}

func TestNotifier_DeliversToAll(t *testing.T) {
	primary, tg := &recorder{}, &recorder{}
	n := New(primary, logger.NewNop(), tg)

	err := n.Notify(context.Background(), notify.Message{Subject: "Nova solicitação"})
	assert.NoError(t, err)
	assert.Len(t, primary.msgs, 1)
	assert.Len(t, tg.msgs, 1)
}

func TestNotifier_PrimaryErrorWins(t *testing.T) {
	boom := errors.New("smtp down")
	n := New(&recorder{err: boom}, logger.NewNop(), &recorder{})

	assert.ErrorIs(t, n.Notify(context.Background(), notify.Message{}), boom)
}

func TestNotifier_SecondaryErrorIsOnlyLogged(t *testing.T) {
	primary := &recorder{}
	n := New(primary, logger.NewNop(), &recorder{err: errors.New("telegram down")})

	assert.NoError(t, n.Notify(context.Background(), notify.Message{}))
	assert.Len(t, primary.msgs, 1)
}
