package i18n

import (
	"strings"
	"testing"

	"github.com/idilsaglam/brewbuddy/internal/model"
)

func TestEveryLanguageHasEveryKey(t *testing.T) {
	for _, l := range model.Languages() {
		if missing := Missing(l); len(missing) != 0 {
			t.Fatalf("%s is missing keys: %v", l, missing)
		}
		if len(translations[l]) != len(Keys()) {
			t.Fatalf("%s has %d keys, english has %d", l, len(translations[l]), len(Keys()))
		}
	}
}

func TestTranslationsDifferFromEnglish(t *testing.T) {
	for _, l := range []model.Language{model.Hindi, model.Korean} {
		if T(l, Welcome) == T(model.English, Welcome) {
			t.Fatalf("%s welcome falls back to english", l)
		}
	}
}

func TestTFallbacks(t *testing.T) {
	if got := T(model.Language("fr"), Welcome); got != "Welcome to BrewBuddy" {
		t.Fatalf("unknown language fallback = %q", got)
	}
	if got := T(model.English, Key("nope")); got != "nope" {
		t.Fatalf("unknown key = %q", got)
	}
}

func TestTFormatsArgs(t *testing.T) {
	got := T(model.Korean, SpeechError, "no-speech")
	if !strings.HasSuffix(got, "no-speech") {
		t.Fatalf("args not applied: %q", got)
	}
}

func TestStatusText(t *testing.T) {
	if got := StatusText(model.English, model.StatusPreparing); got != "Preparing Your Order" {
		t.Fatalf("preparing = %q", got)
	}
	if got := StatusText(model.Hindi, model.StatusReady); got != "ऑर्डर तैयार!" {
		t.Fatalf("ready = %q", got)
	}
}
