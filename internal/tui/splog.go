package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// simpleHandler writes bare messages to the console, no timestamps or level
// prefixes. Output is suppressed while quiet mode is on.
type simpleHandler struct {
	writer io.Writer
	quiet  *bool // Shared with the owning Splog so it can flip at runtime
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	if *h.quiet {
		return nil
	}
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// createLumberjackLogger builds the rotating file writer. Rotation limits
// default to 1MB, 2 backups, 30 days and can be overridden through the
// GITGUD_LOG_MAX_SIZE, GITGUD_LOG_MAX_BACKUPS, and GITGUD_LOG_MAX_AGE
// environment variables.
func createLumberjackLogger(logFilePath string) *lumberjack.Logger {
	config := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,
		MaxBackups: 2,
		MaxAge:     30,
		Compress:   false,
	}

	if maxSizeStr := os.Getenv("GITGUD_LOG_MAX_SIZE"); maxSizeStr != "" {
		if maxSize, err := strconv.Atoi(maxSizeStr); err == nil && maxSize > 0 {
			config.MaxSize = maxSize
		}
	}

	if maxBackupsStr := os.Getenv("GITGUD_LOG_MAX_BACKUPS"); maxBackupsStr != "" {
		if maxBackups, err := strconv.Atoi(maxBackupsStr); err == nil && maxBackups >= 0 {
			config.MaxBackups = maxBackups
		}
	}

	if maxAgeStr := os.Getenv("GITGUD_LOG_MAX_AGE"); maxAgeStr != "" {
		if maxAge, err := strconv.Atoi(maxAgeStr); err == nil && maxAge > 0 {
			config.MaxAge = maxAge
		}
	}

	return config
}

// multiHandler fans out log records to the console and file handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// Splog is the user-facing output channel: plain console messages, mirrored
// with timestamps into a rotating log file when one is configured.
type Splog struct {
	logger    *slog.Logger
	writer    *os.File
	logWriter io.WriteCloser
	quiet     bool // Suppresses console output while the TUI owns the screen
}

// NewSplog creates a console-only splog
func NewSplog() *Splog {
	splog, _ := NewSplogWithLogFile("")
	return splog
}

// NewSplogWithLogFile creates a splog that also mirrors messages into the
// given file, creating its directory if needed. An empty path means
// console-only.
func NewSplogWithLogFile(logFilePath string) (*Splog, error) {
	splog := &Splog{
		writer: os.Stdout,
	}

	handlers := []slog.Handler{&simpleHandler{
		writer: splog.writer,
		quiet:  &splog.quiet,
	}}

	if logFilePath != "" {
		logDir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(logDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		lumberjackLogger := createLumberjackLogger(logFilePath)
		splog.logWriter = lumberjackLogger

		// File records keep timestamps; quiet mode does not apply to them
		fileHandler := slog.NewTextHandler(lumberjackLogger, &slog.HandlerOptions{
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		})
		handlers = append(handlers, fileHandler)
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

// SetQuiet suppresses or restores console output. Used while a bubbletea
// program owns the terminal.
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

func (s *Splog) log(level slog.Level, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, msg)
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	s.log(slog.LevelInfo, format, args)
}

// Page writes pre-rendered content as-is, bypassing quiet mode
func (s *Splog) Page(content string) {
	_, _ = fmt.Fprint(s.writer, content)
}

// Newline writes a newline
func (s *Splog) Newline() {
	_, _ = fmt.Fprintln(s.writer)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	s.log(slog.LevelWarn, "⚠️  "+format, args)
}

// Error writes an error message
func (s *Splog) Error(format string, args ...interface{}) {
	s.log(slog.LevelError, "❌ "+format, args)
}

// Tip writes a hint about what to try next
func (s *Splog) Tip(format string, args ...interface{}) {
	s.log(slog.LevelInfo, "💡 "+format, args)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
