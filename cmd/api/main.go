package main

import (
	"os"

	"github.com/mvidal/gestifp/internal/pkg/logger"
	"github.com/mvidal/gestifp/internal/server"
)

// @title GestiFP API
// @version 1.0
// @description Academic record ledger and grade resolution API for a vocational training center
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email soporte@gestifp.es

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
