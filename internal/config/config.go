package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config agrupa toda la configuración del servicio.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" yaml:"server"`
	Database  DatabaseConfig  `mapstructure:"database" yaml:"database"`
	Mail      MailConfig      `mapstructure:"mail" yaml:"mail"`
	Telegram  TelegramConfig  `mapstructure:"telegram" yaml:"telegram"`
	Media     MediaConfig     `mapstructure:"media" yaml:"media"`
	Cache     CacheConfig     `mapstructure:"cache" yaml:"cache"`
	Auth      AuthConfig      `mapstructure:"auth" yaml:"auth"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
}

type ServerConfig struct {
	Addr         string        `mapstructure:"addr" yaml:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	// Zona horaria usada para "hoje" (datas de início/fim).
	Timezone string `mapstructure:"timezone" yaml:"timezone"`
	// Solo con un proxy delante: toma la IP de X-Forwarded-For/X-Real-IP.
	TrustProxy bool `mapstructure:"trust_proxy" yaml:"trust_proxy"`
}

type DatabaseConfig struct {
	// postgres | sqlite
	Driver string `mapstructure:"driver" yaml:"driver"`
	DSN    string `mapstructure:"dsn" yaml:"dsn"`
}

type MailConfig struct {
	// smtp | sendgrid | log
	Transport string `mapstructure:"transport" yaml:"transport"`
	Host      string `mapstructure:"host" yaml:"host"`
	Port      int    `mapstructure:"port" yaml:"port"`
	Username  string `mapstructure:"username" yaml:"username"`
	Password  string `mapstructure:"password" yaml:"password"`
	APIKey    string `mapstructure:"api_key" yaml:"api_key"`
	From      string `mapstructure:"from" yaml:"from"`
	// Endereço fixo do abrigo que recebe as solicitações.
	To string `mapstructure:"to" yaml:"to"`
}

type TelegramConfig struct {
	Token  string `mapstructure:"token" yaml:"token"`
	ChatID int64  `mapstructure:"chat_id" yaml:"chat_id"`
}

type MediaConfig struct {
	Dir            string `mapstructure:"dir" yaml:"dir"`
	URLPrefix      string `mapstructure:"url_prefix" yaml:"url_prefix"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes" yaml:"max_upload_bytes"`
}

type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	ListTTL   time.Duration `mapstructure:"list_ttl" yaml:"list_ttl"`
	DetailTTL time.Duration `mapstructure:"detail_ttl" yaml:"detail_ttl"`
}

type AuthConfig struct {
	SessionTTL   time.Duration `mapstructure:"session_ttl" yaml:"session_ttl"`
	CookieSecure bool          `mapstructure:"cookie_secure" yaml:"cookie_secure"`
}

type RateLimitConfig struct {
	// Requisições por minuto por IP nos POSTs públicos e no login.
	PerMinute int `mapstructure:"per_minute" yaml:"per_minute"`
	Burst     int `mapstructure:"burst" yaml:"burst"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Defaults devuelve una configuración válida para desarrollo local.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 15 * time.Second,
			Timezone:     "America/Sao_Paulo",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "shelter.sqlite3",
		},
		Mail: MailConfig{
			Transport: "log",
			Host:      "smtp.sendgrid.net",
			Port:      587,
			Username:  "apikey",
			From:      "resgatandovidas4patas@gmail.com",
			To:        "resgatandovidas4patas@gmail.com",
		},
		Media: MediaConfig{
			Dir:            "media",
			URLPrefix:      "/media/",
			MaxUploadBytes: 5 << 20,
		},
		Cache: CacheConfig{
			Enabled:   true,
			ListTTL:   7 * time.Minute,
			DetailTTL: 5 * time.Minute,
		},
		Auth: AuthConfig{
			SessionTTL: 14 * 24 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			PerMinute: 30,
			Burst:     10,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate rechaza valores que el servicio no sabe manejar.
func (c Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("database.driver: unsupported %q", c.Database.Driver))
	}
	if strings.TrimSpace(c.Database.DSN) == "" {
		errs = append(errs, errors.New("database.dsn: required"))
	}

	switch c.Mail.Transport {
	case "smtp":
		if c.Mail.Host == "" || c.Mail.Port <= 0 {
			errs = append(errs, errors.New("mail: smtp requires host and port"))
		}
	case "sendgrid":
		if c.Mail.APIKey == "" && c.Mail.Password == "" {
			errs = append(errs, errors.New("mail: sendgrid requires api_key"))
		}
	case "log":
	default:
		errs = append(errs, fmt.Errorf("mail.transport: unsupported %q", c.Mail.Transport))
	}
	if strings.TrimSpace(c.Mail.To) == "" {
		errs = append(errs, errors.New("mail.to: required"))
	}

	if _, err := time.LoadLocation(c.Server.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("server.timezone: %w", err))
	}
	if c.Media.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("media.max_upload_bytes: must be positive"))
	}
	if c.RateLimit.PerMinute <= 0 || c.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("rate_limit: per_minute and burst must be positive"))
	}

	return errors.Join(errs...)
}

// Location devuelve la zona horaria del abrigo (UTC si no se puede cargar).
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Server.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
