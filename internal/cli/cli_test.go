package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/adapters/notify/fanout"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/adapters/notify/logmail"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/adapters/notify/sendgrid"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/adapters/notify/smtpmail"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/adapters/notify/telegram"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/config"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/ports/notify"
)

// isolate deja el proceso en un directorio vacío con una base SQLite propia.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("SHELTER_LOG_LEVEL", "error")
	t.Setenv("SHELTER_DATABASE_DRIVER", "sqlite")
	t.Setenv("SHELTER_DATABASE_DSN", filepath.Join(dir, "test.sqlite3"))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd("version: v0.1.0")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCmd_ShortVersionFlag(t *testing.T) {
	out, err := run(t, "-V")
	require.NoError(t, err)
	assert.Contains(t, out, "v0.1.0")
}

func TestConfigInit_WritesDefaultsOnce(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")

	out, err := run(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "rate_limit:")

	_, err = run(t, "config", "init", path)
	assert.Error(t, err, "existing files are never overwritten")
}

func TestMigrateAndCreateAdmin(t *testing.T) {
	isolate(t)

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "migration complete")

	t.Setenv(PasswordEnv, "gatinhos123")
	out, err = run(t, "createadmin", "--usuario", "ana", "--email", "ana@abrigo.org", "--nome", "Ana")
	require.NoError(t, err)
	assert.Contains(t, out, "Admin ana (ana@abrigo.org) created")

	_, err = run(t, "createadmin", "--usuario", "ana", "--email", "outra@abrigo.org")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateAdmin_RequiresPassword(t *testing.T) {
	isolate(t)
	t.Setenv(PasswordEnv, "")

	_, err := run(t, "createadmin", "--usuario", "ana", "--email", "ana@abrigo.org")
	require.Error(t, err)
	assert.Contains(t, err.Error(), PasswordEnv)
}

func TestLoadFailsOnMissingExplicitConfig(t *testing.T) {
	isolate(t)

	_, err := run(t, "--config", "nope.yaml", "migrate")
	assert.Error(t, err)
}

func TestBuildNotifier(t *testing.T) {
	log := logger.NewNop()

	t.Run("log transport", func(t *testing.T) {
		n, err := buildNotifier(config.Defaults(), log)
		require.NoError(t, err)
		assert.IsType(t, &logmail.Sender{}, n)
	})

	t.Run("sendgrid", func(t *testing.T) {
		cfg := config.Defaults()
		cfg.Mail.Transport = "sendgrid"
		cfg.Mail.APIKey = "SG.key"
		n, err := buildNotifier(cfg, log)
		require.NoError(t, err)
		assert.IsType(t, &sendgrid.Sender{}, n)
	})

	t.Run("smtp without host", func(t *testing.T) {
		cfg := config.Defaults()
		cfg.Mail.Transport = "smtp"
		cfg.Mail.Host = ""
		_, err := buildNotifier(cfg, log)
		assert.ErrorIs(t, err, smtpmail.ErrNotConfigured)
	})

	t.Run("telegram is added as secondary", func(t *testing.T) {
		orig := telegramFactory
		t.Cleanup(func() { telegramFactory = orig })
		telegramFactory = func(string, int64) (notify.Notifier, error) { return logmail.New(log, "tg"), nil }

		cfg := config.Defaults()
		cfg.Telegram.Token = "123:abc"
		cfg.Telegram.ChatID = 42
		n, err := buildNotifier(cfg, log)
		require.NoError(t, err)
		assert.IsType(t, &fanout.Notifier{}, n)
	})

	t.Run("telegram without chat id is skipped", func(t *testing.T) {
		orig := telegramFactory
		t.Cleanup(func() { telegramFactory = orig })
		telegramFactory = func(string, int64) (notify.Notifier, error) { return nil, telegram.ErrNotConfigured }

		cfg := config.Defaults()
		cfg.Telegram.Token = "123:abc"
		n, err := buildNotifier(cfg, log)
		require.NoError(t, err)
		assert.IsType(t, &logmail.Sender{}, n)
	})

	t.Run("telegram failure", func(t *testing.T) {
		orig := telegramFactory
		t.Cleanup(func() { telegramFactory = orig })
		telegramFactory = func(string, int64) (notify.Notifier, error) { return nil, errors.New("unauthorized") }

		cfg := config.Defaults()
		cfg.Telegram.Token = "bad"
		cfg.Telegram.ChatID = 42
		_, err := buildNotifier(cfg, log)
		assert.Error(t, err)
	})
}

type countingPurger struct {
	calls atomic.Int32
}

func (p *countingPurger) PurgeSessions(context.Context) (int64, error) {
	p.calls.Add(1)
	return 1, nil
}

func TestPurgeSessions_StopsWithContext(t *testing.T) {
	p := &countingPurger{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		purgeSessions(ctx, p, 5*time.Millisecond, logger.NewNop())
		close(done)
	}()

	require.Eventually(t, func() bool { return p.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("purgeSessions did not stop")
	}
}
