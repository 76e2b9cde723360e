package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)

	err = rootCmd.Execute()
	if syncErr := logger.Sync(); syncErr != nil {
		zap.L().Debug("failed to sync logger", zap.Error(syncErr))
	}
	if err != nil {
		os.Exit(1)
	}
}
