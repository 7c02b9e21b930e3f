package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/brewbuddy/internal/cli"
	"github.com/idilsaglam/brewbuddy/internal/config"
	"github.com/idilsaglam/brewbuddy/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand); they override the environment.
	lang := flag.String("lang", "", "kiosk language: en, hi or ko")
	theme := flag.String("theme", "", "output theme: classic, neon or mono")
	speech := flag.String("speech", "", "speech engine: keyboard, script or none")
	flag.Usage = cli.PrintHelp
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}

	code := cli.Run(flag.Args(), cfg, cli.Options{
		Language: *lang,
		Theme:    *theme,
		Speech:   *speech,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
