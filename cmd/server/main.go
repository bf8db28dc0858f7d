package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/templui/folio/internal/app"
	"github.com/templui/folio/internal/config"
	"github.com/templui/folio/internal/logger"
	"github.com/templui/folio/internal/routes"
)

func main() {
	cfg := config.Load()

	flush := logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)
	defer flush()

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		panic(err)
	}

	handler := routes.SetupRoutes(app)
	slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv, "url", "http://localhost:"+cfg.Port)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	err = server.ListenAndServe()
	if err != nil {
		slog.Error("server failed", "error", err)
		panic(err)
	}
}
