// Package logging configures the hclog logger shared by every component and
// routes the standard library logger through it.
package logging

import (
	"io"
	"log"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Config describes the root logger.
type Config struct {
	Name   string
	Level  string // trace|debug|info|warn|error, info when empty or unknown
	JSON   bool
	Output io.Writer // stderr when nil, so stdout stays free for results
}

// New creates a root logger from cfg.
func New(cfg Config) hclog.Logger {
	level := hclog.LevelFromString(cfg.Level)
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:            cfg.Name,
		Level:           level,
		Output:          out,
		JSONFormat:      cfg.JSON,
		IncludeLocation: level <= hclog.Debug,
	})
}

// InitLogging creates the root logger and redirects the standard log package
// into it, inferring levels from "[WARN]"-style prefixes.
func InitLogging(cfg Config) hclog.Logger {
	logger := New(cfg)
	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(logger.StandardWriter(&hclog.StandardLoggerOptions{InferLevels: true}))
	return logger
}
