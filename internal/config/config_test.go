package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_AreValid(t *testing.T) {
	d := Defaults()
	require.NoError(t, d.Validate())
	assert.Equal(t, 7*time.Minute, d.Cache.ListTTL)
	assert.Equal(t, 5*time.Minute, d.Cache.DetailTTL)
	assert.Equal(t, "America/Sao_Paulo", d.Server.Timezone)
	assert.False(t, d.Server.TrustProxy)
}

func TestValidate_RejectsUnknownEnums(t *testing.T) {
	c := Defaults()
	c.Database.Driver = "mysql"
	c.Mail.Transport = "pigeon"

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.driver")
	assert.Contains(t, err.Error(), "mail.transport")
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shelter.yaml")
	content := `
server:
  addr: ":9090"
database:
  driver: sqlite
  dsn: /tmp/test.db
cache:
  list_ttl: 1m
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("SHELTER_MAIL_TO", "abrigo@example.com")
	t.Setenv("SHELTER_SERVER_TRUST_PROXY", "true")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/tmp/test.db", cfg.Database.DSN)
	assert.Equal(t, time.Minute, cfg.Cache.ListTTL)
	assert.Equal(t, 5*time.Minute, cfg.Cache.DetailTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "abrigo@example.com", cfg.Mail.To)
	assert.True(t, cfg.Server.TrustProxy)
}

func TestLoad_DatabaseURLSelectsPostgres(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/ong")
	t.Setenv("PORT", "3000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://u:p@localhost:5432/ong", cfg.Database.DSN)
	assert.Equal(t, ":3000", cfg.Server.Addr)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestWriteDefaults_RoundTrip(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")

	path := filepath.Join(t.TempDir(), "shelter.yaml")
	require.NoError(t, WriteDefaults(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)

	assert.Error(t, WriteDefaults(path), "existing file must not be overwritten")
}
