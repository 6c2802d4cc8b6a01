// Package logs builds the application slog.Logger from config.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"thames/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params collects the logger's dependencies for fx.
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the root logger. Output is JSON for aggregation; the pretty
// text handler is meant for local development only.
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if params.Config.Env.Log.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler), nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
