package bootstrap

import (
	"context"
	"fmt"
	"time"

	coreconfig "github.com/m3rciful/demobot/core/config"
	"github.com/m3rciful/demobot/core/logger"
	"log/slog"
)

// Options control the generic bootstrap pipeline shared between bots.
type Options struct {
	Config *coreconfig.Config

	LoggerInit func(*coreconfig.Config) error

	// Warmups run after the logger is ready, in order. A failing warmup
	// aborts startup.
	Warmups []Warmup
}

// Run initializes the logger and executes the configured warmups.
func Run(ctx context.Context, opts Options) error {
	if opts.Config == nil {
		return fmt.Errorf("bootstrap: nil config provided")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.InitLogger
	}
	if err := loggerInit(opts.Config); err != nil {
		return fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	for _, w := range opts.Warmups {
		if w.Run == nil {
			continue
		}
		start := time.Now()
		if err := w.Run(ctx); err != nil {
			return fmt.Errorf("bootstrap: warmup %s failed: %w", w.Name, err)
		}
		logger.Debug(ctx, "app", "warmup",
			slog.String("status", "ok"),
			slog.String("name", w.Name),
			slog.Duration("duration", logger.RoundMS(time.Since(start))),
		)
	}

	return nil
}
