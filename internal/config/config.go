package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"pet-boarding/internal/platform/logger"
)

const DefaultPath = "config.toml"

var ErrInvalid = errors.New("invalid config")

// Duration acepta "90s", "5m" en TOML y en env.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

type App struct {
	Name string `toml:"name"`
	Port int    `toml:"port"`
}

type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type HTTP struct {
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// DB: DSN vacío => store en memoria.
type DB struct {
	DSN     string `toml:"dsn"`
	Migrate bool   `toml:"migrate"`
}

// Auth: secreto vacío => modo dev (X-Debug-User-ID).
type Auth struct {
	JWTSecret string `toml:"jwt_secret"`
	Issuer    string `toml:"issuer"`
}

type Telegram struct {
	Token  string `toml:"token"`
	ChatID int64  `toml:"chat_id"`
}

type Webhook struct {
	URL    string `toml:"url"`
	Secret string `toml:"secret"`
}

type Reminders struct {
	Enabled  bool     `toml:"enabled"`
	Interval Duration `toml:"interval"`
	Telegram Telegram `toml:"telegram"`
	Webhook  Webhook  `toml:"webhook"`
}

type Config struct {
	App       App       `toml:"app"`
	Log       Log       `toml:"log"`
	HTTP      HTTP      `toml:"http"`
	DB        DB        `toml:"db"`
	Auth      Auth      `toml:"auth"`
	Reminders Reminders `toml:"reminders"`
}

func Defaults() Config {
	return Config{
		App: App{Name: "pet-boarding", Port: 8080},
		Log: Log{Level: "info", Format: "text"},
		HTTP: HTTP{
			ReadTimeout:     Duration{5 * time.Second},
			WriteTimeout:    Duration{10 * time.Second},
			ShutdownTimeout: Duration{10 * time.Second},
		},
		DB:        DB{Migrate: true},
		Auth:      Auth{Issuer: "pet-boarding"},
		Reminders: Reminders{Enabled: true, Interval: Duration{60 * time.Second}},
	}
}

// Load: defaults, luego el TOML (si existe), luego .env y variables de entorno.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return LoadFrom(path, os.Getenv)
}

// LoadFrom es Load sin tocar el entorno del proceso.
func LoadFrom(path string, getenv func(string) string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// sin archivo: defaults + env
		case err != nil:
			return Config{}, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}

	str("APP_NAME", &cfg.App.Name)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)
	str("DB_DSN", &cfg.DB.DSN)
	str("JWT_SECRET", &cfg.Auth.JWTSecret)
	str("JWT_ISSUER", &cfg.Auth.Issuer)
	str("TELEGRAM_TOKEN", &cfg.Reminders.Telegram.Token)
	str("WEBHOOK_URL", &cfg.Reminders.Webhook.URL)
	str("WEBHOOK_SECRET", &cfg.Reminders.Webhook.Secret)

	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PORT=%q", ErrInvalid, v)
		}
		cfg.App.Port = p
	}
	if v := strings.TrimSpace(getenv("TELEGRAM_CHAT_ID")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: TELEGRAM_CHAT_ID=%q", ErrInvalid, v)
		}
		cfg.Reminders.Telegram.ChatID = id
	}
	if v := strings.TrimSpace(getenv("REMINDER_INTERVAL")); v != "" {
		if err := cfg.Reminders.Interval.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%w: REMINDER_INTERVAL=%q", ErrInvalid, v)
		}
	}
	if v := strings.TrimSpace(getenv("REMINDERS_ENABLED")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: REMINDERS_ENABLED=%q", ErrInvalid, v)
		}
		cfg.Reminders.Enabled = b
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("app.port out of range: %d", c.App.Port))
	}
	if strings.TrimSpace(c.App.Name) == "" {
		errs = append(errs, errors.New("app.name is empty"))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level unknown: %q", c.Log.Level))
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if c.Reminders.Interval.Duration < time.Second {
		errs = append(errs, fmt.Errorf("reminders.interval too short: %s", c.Reminders.Interval))
	}
	tg := c.Reminders.Telegram
	if (tg.Token == "") != (tg.ChatID == 0) {
		errs = append(errs, errors.New("reminders.telegram needs both token and chat_id"))
	}
	if c.HTTP.ShutdownTimeout.Duration <= 0 {
		errs = append(errs, errors.New("http.shutdown_timeout must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

func (c Config) Addr() string { return ":" + strconv.Itoa(c.App.Port) }

func (c Config) TelegramEnabled() bool {
	return c.Reminders.Telegram.Token != "" && c.Reminders.Telegram.ChatID != 0
}

// Logger arma el logger de la app a partir de la sección [log].
func (c Config) Logger() logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(c.Log.Level),
		Format: logger.ParseFormat(c.Log.Format),
		App:    c.App.Name,
	})
}
