package cmd

import (
	"fmt"

	"github.com/templui/folio/internal/app"
	"github.com/templui/folio/internal/config"
	"github.com/templui/folio/internal/logger"
)

// loadApp reads the environment, sets up logging and wires the services.
// The returned func flushes buffered log sinks.
func loadApp() (*app.App, func(), error) {
	cfg := config.Load()
	flush := logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	a, err := app.New(cfg)
	if err != nil {
		flush()
		return nil, nil, fmt.Errorf("failed to initialize app: %w", err)
	}
	return a, flush, nil
}
