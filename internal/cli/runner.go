package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/samber/lo"

	"github.com/idilsaglam/brewbuddy/internal/config"
	"github.com/idilsaglam/brewbuddy/internal/i18n"
	"github.com/idilsaglam/brewbuddy/internal/logger"
	"github.com/idilsaglam/brewbuddy/internal/model"
	"github.com/idilsaglam/brewbuddy/internal/order"
	"github.com/idilsaglam/brewbuddy/internal/qr"
	"github.com/idilsaglam/brewbuddy/internal/status"
	"github.com/idilsaglam/brewbuddy/internal/tui"
	"github.com/idilsaglam/brewbuddy/internal/ui"
	"github.com/idilsaglam/brewbuddy/internal/voice"
)

// Options tune behavior from root flags. Empty fields keep the config value.
type Options struct {
	Language string
	Theme    string
	Speech   string
}

// runKiosk is swapped in tests; the real one needs a terminal.
var runKiosk = tui.Run

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, cfg *config.Config, opt Options) int {
	if err := apply(cfg, opt); err != nil {
		ui.Fail(err.Error())
		return 2
	}
	ui.SetTheme(cfg.Theme)
	if cfg.NoColor {
		ui.SetColorForcing(false, true)
	}

	log, closeLog, err := openLogger(cfg)
	if err != nil {
		ui.Fail("log: " + err.Error())
		return 1
	}
	defer closeLog()

	cmd, a := "kiosk", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "kiosk":
		return doKiosk(cfg, log)

	case "languages":
		return doLanguages()

	case "order":
		if len(a) == 0 {
			ui.Fail("usage: brewbuddy order <transcript...>")
			return 2
		}
		return doOrder(cfg, log, strings.Join(a, " "))

	case "qr":
		if len(a) == 0 {
			ui.Fail("usage: brewbuddy qr <text...>")
			return 2
		}
		return doQR(strings.Join(a, " "))

	case "simulate":
		if len(a) > 1 {
			ui.Fail("usage: brewbuddy simulate [order-id]")
			return 2
		}
		id := ""
		if len(a) == 1 {
			id = a[0]
		}
		return doSimulate(cfg, log, id)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Err)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprint(ui.Out, `brewbuddy - a voice ordering kiosk for the terminal

Usage:
  brewbuddy [flags] [subcommand] [args]

Subcommands:
  kiosk                  Run the interactive kiosk (default)
  order <transcript...>  Place one simulated order and print its summary
  qr <text...>           Print the pickup code pattern for text
  simulate [order-id]    Print the simulated status progression
  languages              List supported languages

Flags:
  -lang en|hi|ko               Kiosk language (BREWBUDDY_LANGUAGE)
  -theme classic|neon|mono     Output theme (BREWBUDDY_THEME)
  -speech keyboard|script|none Speech engine (BREWBUDDY_SPEECH)

Examples:
  brewbuddy
  brewbuddy -lang ko order "latte, croissant"
  brewbuddy qr BREWBUDDY-ABCDE1234
  BREWBUDDY_PREPARING_DELAY=1s brewbuddy simulate
`)
}

func apply(cfg *config.Config, opt Options) error {
	if opt.Language != "" {
		cfg.Language = opt.Language
	}
	if opt.Theme != "" {
		cfg.Theme = opt.Theme
	}
	if opt.Speech != "" {
		cfg.Speech = opt.Speech
	}
	return cfg.Validate()
}

func openLogger(cfg *config.Config) (*logger.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logger.Discard("brewbuddy"), func() {}, nil
	}
	l, c, err := logger.OpenFile("brewbuddy", cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}
	return l, func() { _ = c.Close() }, nil
}

// Engine builds the speech engine named by the config.
func Engine(cfg *config.Config) voice.Engine {
	switch cfg.Speech {
	case config.SpeechScript:
		return voice.ParseScript(cfg.SpeechScript)
	case config.SpeechNone:
		return voice.Unavailable{}
	}
	return voice.NewKeyboard()
}

// -------------- subcommand impls ----------------

func doKiosk(cfg *config.Config, log *logger.Logger) int {
	err := runKiosk(tui.Options{
		Engine:          Engine(cfg),
		Factory:         &order.Factory{},
		Logger:          log,
		Table:           cfg.StatusTable(),
		ProcessingDelay: cfg.ProcessingDelay,
		ReadyHold:       cfg.ReadyHold,
		Language:        cfg.DefaultLanguage(),
	})
	if err != nil {
		ui.Fail("kiosk: " + err.Error())
		return 1
	}
	return 0
}

func doLanguages() int {
	t := ui.Current()
	lines := lo.Map(model.Languages(), func(l model.Language, _ int) string {
		return fmt.Sprintf("%s  %s  %-8s %s",
			ui.C(t.Accent, string(l)), l.Flag(), l.Locale().String(), l.NativeName())
	})
	ui.Panel(append([]string{ui.C(t.Title, "Languages"), ""}, lines...))
	return 0
}

func doOrder(cfg *config.Config, log *logger.Logger, transcript string) int {
	lang := cfg.DefaultLanguage()
	var f order.Factory
	o, err := f.New(transcript, lang)
	if err != nil {
		log.Error("order_failed", err, nil)
		ui.Fail("order: " + err.Error())
		return 1
	}
	log.Info("order_placed", map[string]any{"order_id": o.ID, "items": o.Items, "total": o.Total})
	printSummary(ui.Out, o)
	return 0
}

func printSummary(w io.Writer, o *model.Order) {
	t := ui.Current()
	tr := func(k i18n.Key) string { return i18n.T(o.Language, k) }

	lines := []string{
		ui.C(t.Title, tr(i18n.OrderSummary)),
		"",
		fmt.Sprintf("%s %s", tr(i18n.OrderNumber), ui.C(t.Brew, o.ID)),
	}
	if len(o.Items) == 0 {
		lines = append(lines, ui.C(t.Muted, tr(i18n.NoItems)))
	}
	for _, it := range o.Items {
		lines = append(lines, "• "+it)
	}
	lines = append(lines,
		"",
		fmt.Sprintf("%s %s", tr(i18n.Total), ui.C(t.Success, fmt.Sprintf("$%d", o.Total))),
		ui.C(t.Muted, o.CreatedAt.Format("2006-01-02 15:04:05")),
		"",
		tr(i18n.YourQRCode),
	)
	lines = append(lines, strings.Split(qr.Render(qr.Generate(o.QRPayload()), t.QROn, t.QROff), "\n")...)
	ui.Fpanel(w, lines)
}

func doQR(text string) int {
	t := ui.Current()
	g := qr.Generate(text)
	lines := strings.Split(qr.Render(g, t.QROn, t.QROff), "\n")
	lines = append(lines, "", ui.C(t.Muted, fmt.Sprintf("%s  hash %d  dark %d/%d", text, qr.Hash(text), g.Dark(), qr.Size*qr.Size)))
	ui.Panel(lines)
	return 0
}

func doSimulate(cfg *config.Config, log *logger.Logger, id string) int {
	if id == "" {
		var f order.Factory
		o, err := f.New("simulation", cfg.DefaultLanguage())
		if err != nil {
			ui.Fail("simulate: " + err.Error())
			return 1
		}
		id = o.ID
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	t := ui.Current()
	lang := cfg.DefaultLanguage()
	var p status.Progress
	fmt.Fprintln(ui.Out, ui.C(t.Title, i18n.T(lang, i18n.OrderStatus))+"  "+i18n.T(lang, i18n.OrderNumber)+id)
	err := cfg.StatusTable().Run(ctx, id, func(u status.Update) {
		if err := p.Advance(u.Status); err != nil {
			log.Error("status_rejected", err, map[string]any{"order_id": u.OrderID})
			return
		}
		done, total := p.Fraction()
		log.Info("status_changed", map[string]any{"order_id": u.OrderID, "status": string(u.Status)})
		fmt.Fprintf(ui.Out, "%s %s %s\n",
			ui.C(t.Brew, ui.PadRight(t.StatusIcon(u.Status), 3)),
			ui.PadRight(i18n.StatusText(lang, u.Status), 28),
			ui.C(t.Muted, ui.ProgressBar(done, total, 24)))
	})
	if err != nil {
		ui.Fail("simulate: " + err.Error())
		return 1
	}
	ui.OK(i18n.T(lang, i18n.Ready))
	return 0
}
