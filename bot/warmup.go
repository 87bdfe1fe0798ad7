package bot

import (
	"context"
	"fmt"

	"github.com/m3rciful/demobot/core/bootstrap"
	"github.com/m3rciful/demobot/core/logger"
	"log/slog"
)

// Warmups returns the startup checks for this bot: the static catalog must
// be coherent before the first update arrives.
func (a *App) Warmups() []bootstrap.Warmup {
	return []bootstrap.Warmup{
		bootstrap.WarmupFunc("catalog.validate", a.validateCatalog),
	}
}

func (a *App) validateCatalog(ctx context.Context) error {
	if len(a.catalog.Products) == 0 {
		return fmt.Errorf("catalog: no products configured")
	}
	if len(a.catalog.Services) == 0 {
		return fmt.Errorf("catalog: no services configured")
	}
	if len(a.catalog.Slots) == 0 {
		return fmt.Errorf("catalog: no booking slots configured")
	}
	for id, p := range a.catalog.Products {
		if p.ID != id || p.Name == "" || p.Price <= 0 || p.Category == "" {
			return fmt.Errorf("catalog: invalid product %d", id)
		}
	}
	for id, s := range a.catalog.Services {
		if s.ID != id || s.Name == "" || s.Price <= 0 {
			return fmt.Errorf("catalog: invalid service %d", id)
		}
	}

	logger.SVCCatalog.LogAttrs(ctx, slog.LevelInfo, "catalog.loaded",
		slog.Int("count", len(a.catalog.Products)),
		slog.Int("services", len(a.catalog.Services)),
		slog.Int("categories", len(a.catalog.Categories())),
	)
	return nil
}
