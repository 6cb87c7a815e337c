package main

import (
	"os"

	"github.com/yigit/collegeforms/internal/pkg/logger"
	"github.com/yigit/collegeforms/internal/server"
)

func main() {
	// NewServer orchestrates config, logger, database, dependencies and router
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		logger.Close()
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	logger.Close()
}
