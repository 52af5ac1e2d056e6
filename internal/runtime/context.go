// Package runtime provides a context type that holds the engine and logger
// for use throughout the application. This avoids passing multiple parameters.
package runtime

import (
	"os"

	"gitgud.dev/gitgud/internal/config"
	"gitgud.dev/gitgud/internal/engine"
	"gitgud.dev/gitgud/internal/tui"
)

// Context provides access to engine and output for commands
type Context struct {
	Engine engine.Engine
	Splog  *tui.Splog
	Config *config.Config
}

// NewContext creates a new context with the given engine
func NewContext(eng engine.Engine) *Context {
	return &Context{
		Engine: eng,
		Splog:  tui.NewSplog(),
		Config: &config.Config{},
	}
}

// IsDemoMode returns true if GITGUD_DEMO environment variable is set
func IsDemoMode() bool {
	return os.Getenv("GITGUD_DEMO") != ""
}

// DemoEngineFactory is a function that creates a pre-populated demo engine.
// This is set by the demo package to avoid circular imports.
var DemoEngineFactory func() engine.Engine

// GetContext creates the context for a command invocation. In demo mode the
// engine comes pre-populated; otherwise it starts empty.
func GetContext() (*Context, error) {
	var eng engine.Engine
	if IsDemoMode() && DemoEngineFactory != nil {
		eng = DemoEngineFactory()
	} else {
		eng = engine.NewTree()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	ctx := NewContext(eng)
	ctx.Config = cfg

	logFile := cfg.GetLogFile()
	if logFile == "" {
		logFile = tui.GetLogFilePath()
	}
	if splog, err := tui.NewSplogWithLogFile(logFile); err == nil {
		ctx.Splog = splog
	}

	return ctx, nil
}

// Close releases resources held by the context
func (c *Context) Close() error {
	if c.Splog != nil {
		return c.Splog.Close()
	}
	return nil
}
