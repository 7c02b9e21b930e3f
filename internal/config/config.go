package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/idilsaglam/brewbuddy/internal/model"
	"github.com/idilsaglam/brewbuddy/internal/status"
)

var ErrInvalid = errors.New("invalid config")

// Speech engine names accepted by BREWBUDDY_SPEECH.
const (
	SpeechKeyboard = "keyboard"
	SpeechScript   = "script"
	SpeechNone     = "none"
)

// Theme names accepted by BREWBUDDY_THEME.
const (
	ThemeClassic = "classic"
	ThemeNeon    = "neon"
	ThemeMono    = "mono"
)

// Config holds the kiosk settings read from the environment (and an
// optional .env file in the working directory).
type Config struct {
	Language        string        `env:"BREWBUDDY_LANGUAGE" envDefault:"en"`
	Theme           string        `env:"BREWBUDDY_THEME" envDefault:"classic"`
	Speech          string        `env:"BREWBUDDY_SPEECH" envDefault:"keyboard"`
	SpeechScript    string        `env:"BREWBUDDY_SPEECH_SCRIPT" envDefault:""`
	ProcessingDelay time.Duration `env:"BREWBUDDY_PROCESSING_DELAY" envDefault:"2s"`
	PendingDelay    time.Duration `env:"BREWBUDDY_PENDING_DELAY" envDefault:"1s"`
	PreparingDelay  time.Duration `env:"BREWBUDDY_PREPARING_DELAY" envDefault:"5s"`
	ReadyDelay      time.Duration `env:"BREWBUDDY_READY_DELAY" envDefault:"5s"`
	ReadyHold       time.Duration `env:"BREWBUDDY_READY_HOLD" envDefault:"1s"`
	LogFile         string        `env:"BREWBUDDY_LOG_FILE" envDefault:""`
	NoColor         bool          `env:"BREWBUDDY_NO_COLOR" envDefault:"false"`
}

// Load reads .env if present, then the process environment, applying
// defaults for unset variables.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup fills a Config using lookup instead of the environment. Only
// type errors are reported here; call Validate once flag overrides are in.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := range t.NumField() {
		field := t.Field(i)
		envTag := field.Tag.Get("env")
		if envTag == "" {
			continue
		}
		value, exists := lookup(envTag)
		if !exists {
			value = field.Tag.Get("envDefault")
		}
		if err := set(v.Field(i), value); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, envTag, err)
		}
	}
	return cfg, nil
}

func set(f reflect.Value, value string) error {
	if f.Type() == reflect.TypeOf(time.Duration(0)) {
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		f.SetInt(int64(d))
		return nil
	}
	switch f.Kind() {
	case reflect.String:
		f.SetString(value)
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		f.SetInt(int64(n))
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		f.SetBool(b)
	default:
		return fmt.Errorf("unsupported field kind %s", f.Kind())
	}
	return nil
}

// Validate checks values that the loader cannot type-check.
func (c *Config) Validate() error {
	if _, err := model.ParseLanguage(c.Language); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch strings.ToLower(c.Theme) {
	case ThemeClassic, ThemeNeon, ThemeMono:
	default:
		return fmt.Errorf("%w: unknown theme %q", ErrInvalid, c.Theme)
	}
	switch c.Speech {
	case SpeechKeyboard, SpeechScript, SpeechNone:
	default:
		return fmt.Errorf("%w: unknown speech engine %q", ErrInvalid, c.Speech)
	}
	if c.ProcessingDelay < 0 || c.ReadyHold < 0 {
		return fmt.Errorf("%w: negative delay", ErrInvalid)
	}
	if err := c.StatusTable().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// DefaultLanguage is the parsed BREWBUDDY_LANGUAGE.
func (c *Config) DefaultLanguage() model.Language {
	l, err := model.ParseLanguage(c.Language)
	if err != nil {
		return model.DefaultLanguage
	}
	return l
}

// StatusTable is the tracking screen's delay table.
func (c *Config) StatusTable() status.Table {
	return status.NewTable(c.PendingDelay, c.PreparingDelay, c.ReadyDelay)
}
