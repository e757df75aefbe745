package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Options selects the level and output format of the logger.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text, logfmt, json
	Output io.Writer
}

// New builds an slog.Logger backed by charmbracelet/log.
func New(opts Options) *slog.Logger {
	var formatter log.Formatter
	switch strings.ToLower(opts.Format) {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	default:
		formatter = log.TextFormatter
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	handler := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "netease-rename",
		Formatter:       formatter,
		Level:           ParseLevel(opts.Level),
	})
	handler.SetStyles(styles())

	return slog.New(handler)
}

// ParseLevel maps a level name to a log.Level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString(">>>>").
		Bold(true).
		Foreground(lipgloss.Color("#FFE66D"))
	s.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B"))
	s.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	s.Keys["song_id"] = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	return s
}
