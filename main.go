package main

import (
	"context"

	"github.com/asistenciapp/backend/internal/bootstrap"
	"github.com/asistenciapp/backend/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		panic(err)
	}

	logger.InfoLog(ctx, "Attendance backend initialized, starting server")
	if err := app.Run(); err != nil {
		logger.ErrorLog(ctx, "Server stopped: %v", err)
		panic(err)
	}
}
