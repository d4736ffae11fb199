package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

type Config struct {
	Level  string
	Format string
	Output io.Writer
}

// New builds a logger from cfg. Unknown levels fall back to info and unknown
// formats to text.
func New(cfg Config) *log.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}

	formatter := log.TextFormatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	return log.NewWithOptions(out, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		ReportCaller:    level == log.DebugLevel,
		Prefix:          "noor",
	})
}

// Init installs the logger as the package default used by log.Info and friends.
func Init(cfg Config) *log.Logger {
	l := New(cfg)
	log.SetDefault(l)
	return l
}
