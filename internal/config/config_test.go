package config

import (
	"errors"
	"testing"
	"time"

	"github.com/idilsaglam/brewbuddy/internal/model"
)

func lookup(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := FromLookup(lookup(nil))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Speech != SpeechKeyboard || cfg.Theme != "classic" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ProcessingDelay != 2*time.Second || cfg.ReadyHold != time.Second {
		t.Fatalf("unexpected delays: %+v", cfg)
	}
	if cfg.StatusTable().Duration() != 11*time.Second {
		t.Fatalf("status table = %+v", cfg.StatusTable())
	}
	if cfg.DefaultLanguage() != model.English {
		t.Fatalf("language = %s", cfg.DefaultLanguage())
	}
}

func TestOverrides(t *testing.T) {
	cfg, err := FromLookup(lookup(map[string]string{
		"BREWBUDDY_LANGUAGE":         "ko-KR",
		"BREWBUDDY_SPEECH":           "script",
		"BREWBUDDY_SPEECH_SCRIPT":    "latte, croissant",
		"BREWBUDDY_PROCESSING_DELAY": "0s",
		"BREWBUDDY_PREPARING_DELAY":  "250ms",
		"BREWBUDDY_NO_COLOR":         "true",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultLanguage() != model.Korean || cfg.Speech != SpeechScript || !cfg.NoColor {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.ProcessingDelay != 0 || cfg.PreparingDelay != 250*time.Millisecond {
		t.Fatalf("durations not applied: %+v", cfg)
	}
}

func TestMalformedValues(t *testing.T) {
	bad := []map[string]string{
		{"BREWBUDDY_PROCESSING_DELAY": "soon"},
		{"BREWBUDDY_NO_COLOR": "maybe"},
	}
	for _, env := range bad {
		if _, err := FromLookup(lookup(env)); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%v: expected ErrInvalid, got %v", env, err)
		}
	}
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	bad := []map[string]string{
		{"BREWBUDDY_LANGUAGE": "fr"},
		{"BREWBUDDY_SPEECH": "telepathy"},
		{"BREWBUDDY_THEME": "bogus"},
		{"BREWBUDDY_READY_DELAY": "-1s"},
		{"BREWBUDDY_READY_HOLD": "-1s"},
	}
	for _, env := range bad {
		cfg, err := FromLookup(lookup(env))
		if err != nil {
			t.Fatalf("%v: load should defer validation, got %v", env, err)
		}
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%v: expected ErrInvalid, got %v", env, err)
		}
	}
}

func TestValidateAcceptsThemesCaseInsensitively(t *testing.T) {
	for _, name := range []string{ThemeClassic, ThemeNeon, "MONO"} {
		cfg, err := FromLookup(lookup(map[string]string{"BREWBUDDY_THEME": name}))
		if err != nil {
			t.Fatal(err)
		}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("BREWBUDDY_THEME", "neon")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "neon" {
		t.Fatalf("theme = %q", cfg.Theme)
	}
}
