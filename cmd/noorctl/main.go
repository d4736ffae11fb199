package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/comitanigiacomo/noor-sync-engine/internal/cli"
	"github.com/comitanigiacomo/noor-sync-engine/internal/logger"
)

var CLI struct {
	Version  kong.VersionFlag
	LogLevel string `help:"Log level." default:"warn" enum:"debug,info,warn,error"`

	Stats cli.StatsCmd `cmd:"" help:"Compute statistics from an activity export."`
	Page  cli.PageCmd  `cmd:"" help:"Approximate mushaf page of a verse."`
	Hijri cli.HijriCmd `cmd:"" help:"Show the Hijri date of a day."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("noorctl"),
		kong.Description("Offline tools for the Noor sync engine"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	logger.Init(logger.Config{Level: CLI.LogLevel, Output: os.Stderr})

	if err := ctx.Run(&cli.Context{Out: os.Stdout, Now: time.Now}); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}
