package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"studycafe/pkg/app"
	"studycafe/pkg/config"
	apperrors "studycafe/pkg/errors"
)

const serviceName = "studycafe"

func main() {
	cfg := config.Load(serviceName)
	cfg.Log.Info("Starting study cafe pass kiosk")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.NewApplication(cfg, os.Stdin, os.Stdout)
	if err := application.Run(ctx); err != nil {
		appErr := apperrors.AsAppError(err)
		cfg.Log.Error("Pass kiosk stopped",
			"code", appErr.Code,
			"details", appErr.Details,
			"error", err,
		)
		stop()
		os.Exit(apperrors.ExitCode(err))
	}

	cfg.Log.Info("Pass kiosk finished")
}
