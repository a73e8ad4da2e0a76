package telegram

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/ports/notify"
)

type fakeAPI struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func TestSender_Notify_UsesSummary(t *testing.T) {
	f := &fakeAPI{}
	s := &Sender{api: f, chatID: 42}

	require.NoError(t, s.Notify(context.Background(), notify.Message{Subject: "Assunto", Summary: "🐱 Nova solicitação"}))
	require.Len(t, f.sent, 1)
	m, ok := f.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(42), m.ChatID)
	assert.Equal(t, "🐱 Nova solicitação", m.Text)
}

func TestSender_Notify_FallsBackToSubject(t *testing.T) {
	f := &fakeAPI{}
	s := &Sender{api: f, chatID: 42}

	require.NoError(t, s.Notify(context.Background(), notify.Message{Subject: "Assunto"}))
	m := f.sent[0].(tgbotapi.MessageConfig)
	assert.Equal(t, "Assunto", m.Text)
}

func TestSender_Notify_Error(t *testing.T) {
	boom := errors.New("forbidden")
	s := &Sender{api: &fakeAPI{err: boom}, chatID: 42}
	assert.ErrorIs(t, s.Notify(context.Background(), notify.Message{Subject: "x"}), boom)
}

func TestNew_RequiresToken(t *testing.T) {
	_, err := New("", 42)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
