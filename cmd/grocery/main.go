package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/grocery/internal/cli"
	"github.com/idilsaglam/grocery/internal/config"
	"github.com/idilsaglam/grocery/internal/logger"
	"github.com/idilsaglam/grocery/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "path to a YAML config file")
	theme := flag.String("theme", "", "classic, neon or mono (overrides ui.theme)")
	flag.Parse()

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stdout)
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}
	if *theme != "" {
		cfg.UI.Theme = *theme
	}
	ui.SetTheme(cfg.UI.Theme)

	// The interactive list owns the terminal; without a log file its logs go nowhere.
	var fallback io.Writer = os.Stderr
	if args[0] == "ui" {
		fallback = io.Discard
	}
	log, closeLog, err := logger.Setup(cfg.Log, fallback)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}
	log.Debug("configuration loaded",
		"backend", cfg.Storage.Backend,
		"session", cfg.Session.ID,
		"theme", cfg.UI.Theme)

	code := cli.Run(args, cli.Options{
		Config: cfg,
		Logger: log,
	})
	_ = closeLog()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
