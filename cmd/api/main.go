package main

import (
	"context"
	"os"

	"github.com/intered/portal/internal/pkg/logger"
	"github.com/intered/portal/internal/server"
)

// @title InterEd Portal API
// @version 1.0
// @description Admin API for the InterEd education agency portal

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name intered_sid
// @description Session cookie set by /auth/login

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description API token issued by /auth/token

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
