package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/savioruz/turfics/config"
	"github.com/savioruz/turfics/pkg/helper"
)

//go:generate go run github.com/google/wire/cmd/wire

func Run(cfg *config.Config) {
	if err := helper.InitTimezone(cfg.App.Timezone); err != nil {
		panic(fmt.Sprintf("failed to load timezone: %v", err))
	}

	app, err := InitializeApp(cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize application: %v", err))
	}

	defer app.Redis.Close()
	defer app.Holds.Close()

	if err := app.Redis.Ping(context.Background()); err != nil {
		app.Logger.Fatal(fmt.Errorf("app - Run - redis.Ping: %w", err))
	}

	scheduler := Cron(app.Holds, cfg, app.Logger)
	defer scheduler.Stop()

	app.HTTPServer.Start()
	app.Logger.Info("app - Run - listening on " + app.HTTPServer.Address())

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		app.Logger.Info("app - Run - signal: " + s.String())
	case err = <-app.HTTPServer.Notify():
		app.Logger.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	err = app.HTTPServer.Shutdown()
	if err != nil {
		app.Logger.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
