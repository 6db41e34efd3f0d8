package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/CodexForgeBR/has/internal/cli"
	"github.com/CodexForgeBR/has/internal/config"
	"github.com/CodexForgeBR/has/internal/exitcode"
	"github.com/CodexForgeBR/has/internal/logging"
	"github.com/CodexForgeBR/has/internal/probe"
	"github.com/CodexForgeBR/has/internal/report"
	"github.com/CodexForgeBR/has/internal/style"
)

// version is injected via ldflags at build time
var version = "v2.0.0"

func main() {
	cfg := config.NewDefaultConfig()
	cfg.Version = version

	logging.SetVerbose(cfg.Verbose)

	// color.NoColor also reflects NO_COLOR and TERM=dumb.
	styles := style.New(style.IsInteractive(os.Stdout.Fd()) && !color.NoColor)

	driver := &report.Driver{
		Prober: probe.NewProber(cfg, nil),
		Styles: styles,
		Out:    os.Stdout,
	}

	exit := exitcode.Success
	rootCmd := cli.NewRootCommand(cfg, driver, &exit)

	if err := cli.Execute(rootCmd, os.Args[1:]); err != nil {
		logging.Error(err.Error())
		os.Exit(exitcode.Usage)
	}
	os.Exit(exit)
}
