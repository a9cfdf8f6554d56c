package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/vergerducoin/verger-clients/api/routes"
	"github.com/vergerducoin/verger-clients/internal/app"
	"github.com/vergerducoin/verger-clients/pkg/config"
	"github.com/vergerducoin/verger-clients/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{AppName: "pos"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		AppName:   "pos",
		Level:     logger.ParseLevel(cfg.App.LogLevel),
		WarnStack: cfg.App.LogWarnStack,
	})

	application, err := app.Bootstrap(context.Background(), "pos", cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap application", err)
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(); err != nil {
			logg.Error(context.Background(), "error closing state backend", err)
		}
	}()

	addr := ":" + cfg.App.Port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"register": cfg.POS.RegisterID,
		"location": cfg.POS.LocationID,
	})
	logg.Info(ctx, "starting pos kiosk")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewPOSRouter(routes.Deps{
			Config:       cfg,
			Logger:       logg,
			Cart:         application.Cart,
			Session:      application.Session,
			Gateway:      application.Gateway,
			StateBackend: application.StateBackend,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "pos kiosk stopped unexpectedly", err)
		os.Exit(1)
	}
}
