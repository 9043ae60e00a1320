package main

import (
	"os"
	"outcomes-service/internal/app/config"
	"outcomes-service/internal/app/drivers/logger"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(driverConfig, internalConfig, os.Stderr)

	rootCmd := newRootCmd(log, os.Stdin, os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
