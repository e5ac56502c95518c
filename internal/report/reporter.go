package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Prefix is shown in front of every log line
const Prefix = "tolgee-merge-namespaces"

// Reporter receives progress and failure events from the pipeline
type Reporter interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, err error, keyvals ...any)
}

// Color palette for level badges
const (
	colorDebug = lipgloss.Color("#9CA3AF")
	colorInfo  = lipgloss.Color("#10B981")
	colorWarn  = lipgloss.Color("#F59E0B")
	colorError = lipgloss.Color("#EF4444")
	colorKey   = lipgloss.Color("#3B82F6")
)

// Options configures NewLogger
type Options struct {
	Verbose bool
	// Format is one of text, json or logfmt. Empty means text.
	Format string
}

// NewLogger creates the application logger writing to w
func NewLogger(w io.Writer, opts Options) (*log.Logger, error) {
	formatter, err := parseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:    Prefix,
		Level:     level,
		Formatter: formatter,
	})
	logger.SetStyles(styles())

	return logger, nil
}

func parseFormat(format string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("unknown log format %q (want text, json or logfmt)", format)
	}
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.DebugLevel] = badge("DEBU", colorDebug)
	s.Levels[log.InfoLevel] = badge("INFO", colorInfo)
	s.Levels[log.WarnLevel] = badge("WARN", colorWarn)
	s.Levels[log.ErrorLevel] = badge("ERRO", colorError)
	s.Keys["err"] = lipgloss.NewStyle().Foreground(colorError)
	s.Values["err"] = lipgloss.NewStyle().Bold(true)
	s.Key = lipgloss.NewStyle().Foreground(colorKey)
	return s
}

func badge(label string, color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Bold(true).
		MaxWidth(4).
		Foreground(color)
}

// LogReporter adapts a charmbracelet logger to the Reporter interface
type LogReporter struct {
	logger *log.Logger
}

// NewLogReporter wraps logger
func NewLogReporter(logger *log.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Debug logs a debug event
func (r *LogReporter) Debug(msg string, keyvals ...any) {
	r.logger.Debug(msg, keyvals...)
}

// Info logs an informational event
func (r *LogReporter) Info(msg string, keyvals ...any) {
	r.logger.Info(msg, keyvals...)
}

// Warn logs a warning
func (r *LogReporter) Warn(msg string, keyvals ...any) {
	r.logger.Warn(msg, keyvals...)
}

// Error logs a failure with its cause under the "err" key
func (r *LogReporter) Error(msg string, err error, keyvals ...any) {
	if err != nil {
		keyvals = append(keyvals, "err", err)
	}
	r.logger.Error(msg, keyvals...)
}

// Discard is a Reporter that drops every event
var Discard Reporter = discard{}

type discard struct{}

func (discard) Debug(string, ...any)        {}
func (discard) Info(string, ...any)         {}
func (discard) Warn(string, ...any)         {}
func (discard) Error(string, error, ...any) {}
