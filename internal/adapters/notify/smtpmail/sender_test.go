package smtpmail

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/ports/notify"
)

type fakeDialer struct {
	sent []*mail.Msg
	err  error
}

func (f *fakeDialer) DialAndSendWithContext(_ context.Context, msgs ...*mail.Msg) error {
	f.sent = append(f.sent, msgs...)
	return f.err
}

func TestSender_Notify_BuildsHTMLMessage(t *testing.T) {
	d := &fakeDialer{}
	s := &Sender{client: d, from: "site@abrigo.org", to: "abrigo@abrigo.org"}

	err := s.Notify(context.Background(), notify.Message{Subject: "Nova solicitacao", HTML: "<h2>Oi</h2>"})
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	var buf bytes.Buffer
	_, err = d.sent[0].WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, "Subject: Nova solicitacao")
	assert.Contains(t, raw, "abrigo@abrigo.org")
	assert.Contains(t, raw, "text/html")
}

func TestSender_Notify_WrapsSendError(t *testing.T) {
	boom := errors.New("connection refused")
	s := &Sender{client: &fakeDialer{err: boom}, from: "site@abrigo.org", to: "abrigo@abrigo.org"}

	err := s.Notify(context.Background(), notify.Message{Subject: "x"})
	assert.ErrorIs(t, err, boom)
}

func TestSender_Notify_InvalidAddress(t *testing.T) {
	s := &Sender{client: &fakeDialer{}, from: "not an address", to: "abrigo@abrigo.org"}
	assert.Error(t, s.Notify(context.Background(), notify.Message{Subject: "x"}))
}

func TestNew_RequiresHost(t *testing.T) {
	_, err := New(Config{To: "abrigo@abrigo.org"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
