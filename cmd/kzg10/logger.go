package main

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const loggerKey = "logger"

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// loggerFrom returns the logger created for this invocation, or a no-op
// logger if the app was run without its Before hook.
func loggerFrom(c *cli.Context) *zap.Logger {
	if logger, ok := c.App.Metadata[loggerKey].(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}
