package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/brewbuddy/internal/config"
	"github.com/idilsaglam/brewbuddy/internal/model"
	"github.com/idilsaglam/brewbuddy/internal/tui"
	"github.com/idilsaglam/brewbuddy/internal/ui"
	"github.com/idilsaglam/brewbuddy/internal/voice"
)

func setup(t *testing.T) (*bytes.Buffer, *bytes.Buffer, *config.Config) {
	t.Helper()
	var out, errb bytes.Buffer
	prevOut, prevErr := ui.Out, ui.Err
	ui.Out, ui.Err = &out, &errb
	t.Cleanup(func() { ui.Out, ui.Err = prevOut, prevErr })

	env := map[string]string{
		"BREWBUDDY_PROCESSING_DELAY": "0s",
		"BREWBUDDY_PENDING_DELAY":    "0s",
		"BREWBUDDY_PREPARING_DELAY":  "0s",
		"BREWBUDDY_READY_DELAY":      "0s",
		"BREWBUDDY_READY_HOLD":       "0s",
	}
	cfg, err := config.FromLookup(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	if err != nil {
		t.Fatal(err)
	}
	return &out, &errb, cfg
}

func TestHelpAndUsage(t *testing.T) {
	out, errb, cfg := setup(t)
	if code := Run([]string{"help"}, cfg, Options{}); code != 0 {
		t.Fatalf("help exit %d", code)
	}
	if !strings.Contains(out.String(), "Subcommands:") {
		t.Fatalf("help output %q", out.String())
	}
	for _, args := range [][]string{{"frobnicate"}, {"order"}, {"qr"}, {"simulate", "a", "b"}} {
		if code := Run(args, cfg, Options{}); code != 2 {
			t.Fatalf("%v: exit %d, want 2", args, code)
		}
	}
	if !strings.Contains(errb.String(), "unknown subcommand: frobnicate") {
		t.Fatalf("stderr %q", errb.String())
	}
}

func TestInvalidFlagValue(t *testing.T) {
	_, errb, cfg := setup(t)
	if code := Run([]string{"languages"}, cfg, Options{Language: "fr"}); code != 2 {
		t.Fatalf("exit %d", code)
	}
	if errb.Len() == 0 {
		t.Fatalf("no error printed")
	}
}

func TestFlagsOverrideInvalidEnvironment(t *testing.T) {
	out, errb, _ := setup(t)
	cfg, err := config.FromLookup(func(k string) (string, bool) {
		if k == "BREWBUDDY_LANGUAGE" {
			return "fr", true
		}
		return "", false
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if code := Run([]string{"languages"}, cfg, Options{Language: "en"}); code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errb.String())
	}
	if !strings.Contains(out.String(), "ko-KR") {
		t.Fatalf("languages output %q", out.String())
	}
}

func TestUnknownThemeIsUsageError(t *testing.T) {
	_, errb, cfg := setup(t)
	if code := Run([]string{"languages"}, cfg, Options{Theme: "bogus"}); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if !strings.Contains(errb.String(), `unknown theme "bogus"`) {
		t.Fatalf("stderr %q", errb.String())
	}
}

func TestOrderWithoutItemsIsLocalized(t *testing.T) {
	out, _, cfg := setup(t)
	if code := Run([]string{"order", " , , "}, cfg, Options{Language: "ko"}); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out.String(), "(항목 없음)") || strings.Contains(out.String(), "(none)") {
		t.Fatalf("summary:\n%s", out.String())
	}
}

func TestOrderPrintsLocalizedSummary(t *testing.T) {
	out, _, cfg := setup(t)
	code := Run([]string{"order", "latte,", "croissant,", "latte"}, cfg, Options{Language: "ko", Theme: "mono"})
	t.Cleanup(func() { ui.SetColorForcing(false, false); ui.SetTheme("classic") })
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	s := out.String()
	for _, want := range []string{"주문 요약", "• latte", "• croissant", "총액 $", "QR 코드", "##"} {
		if !strings.Contains(s, want) {
			t.Fatalf("missing %q in:\n%s", want, s)
		}
	}
	if strings.Count(s, "• latte") != 2 {
		t.Fatalf("duplicate items collapsed:\n%s", s)
	}
}

func TestQR(t *testing.T) {
	out, _, cfg := setup(t)
	if code := Run([]string{"qr", "BREWBUDDY-ABCDE1234"}, cfg, Options{}); code != 0 {
		t.Fatalf("exit %d", code)
	}
	first := out.String()
	out.Reset()
	Run([]string{"qr", "BREWBUDDY-ABCDE1234"}, cfg, Options{})
	if out.String() != first {
		t.Fatalf("qr output is not stable")
	}
	if !strings.Contains(first, "hash ") {
		t.Fatalf("qr output:\n%s", first)
	}
}

func TestSimulateVisitsStatusesInOrder(t *testing.T) {
	out, _, cfg := setup(t)
	if code := Run([]string{"simulate", "ABCDE1234"}, cfg, Options{}); code != 0 {
		t.Fatalf("exit %d", code)
	}
	s := out.String()
	a := strings.Index(s, "Order Received")
	b := strings.Index(s, "Preparing Your Order")
	c := strings.LastIndex(s, "Order Ready!")
	if a < 0 || b < a || c < b {
		t.Fatalf("statuses out of order:\n%s", s)
	}
	if !strings.Contains(s, "Order #ABCDE1234") || !strings.Contains(s, "3/3") {
		t.Fatalf("simulate output:\n%s", s)
	}
}

func TestSimulateAlignsWideScripts(t *testing.T) {
	out, _, cfg := setup(t)
	if code := Run([]string{"simulate", "ABCDE1234"}, cfg, Options{Language: "hi", Theme: "classic"}); code != 0 {
		t.Fatalf("exit %d", code)
	}
	col := -1
	for _, ln := range strings.Split(out.String(), "\n") {
		i := strings.Index(ln, "█")
		if i < 0 {
			continue
		}
		c := lipgloss.Width(ln[:i])
		if col >= 0 && c != col {
			t.Fatalf("progress bars start at different columns:\n%s", out.String())
		}
		col = c
	}
	if col < 0 {
		t.Fatalf("no progress bars:\n%s", out.String())
	}
}

func TestLanguages(t *testing.T) {
	out, _, cfg := setup(t)
	if code := Run([]string{"languages"}, cfg, Options{}); code != 0 {
		t.Fatalf("exit %d", code)
	}
	for _, want := range []string{"en-US", "hi-IN", "ko-KR", "한국어"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("missing %q in:\n%s", want, out.String())
		}
	}
}

func TestKioskIsDefaultAndWiresOptions(t *testing.T) {
	_, errb, cfg := setup(t)
	var got tui.Options
	runKiosk = func(o tui.Options) error { got = o; return nil }
	t.Cleanup(func() { runKiosk = tui.Run })

	if code := Run(nil, cfg, Options{Language: "hi", Speech: "none"}); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if _, ok := got.Engine.(voice.Unavailable); !ok {
		t.Fatalf("engine %T", got.Engine)
	}
	if got.Language != model.Hindi || got.Logger == nil || got.Factory == nil {
		t.Fatalf("options %+v", got)
	}
	if err := got.Table.Validate(); err != nil {
		t.Fatal(err)
	}

	runKiosk = func(tui.Options) error { return errors.New("no tty") }
	if code := Run([]string{"kiosk"}, cfg, Options{}); code != 1 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(errb.String(), "no tty") {
		t.Fatalf("stderr %q", errb.String())
	}
}

func TestEngineSelection(t *testing.T) {
	_, _, cfg := setup(t)
	if _, ok := Engine(cfg).(*voice.Keyboard); !ok {
		t.Fatalf("default engine %T", Engine(cfg))
	}
	cfg.Speech, cfg.SpeechScript = config.SpeechScript, "latte | scone"
	s, ok := Engine(cfg).(*voice.Script)
	if !ok || len(s.Segments) != 2 {
		t.Fatalf("script engine %T %+v", Engine(cfg), s)
	}
}
