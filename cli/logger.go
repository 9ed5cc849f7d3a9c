// Package main provides debug logging utilities for the bonsai CLI.
//
// This file implements a debug logger that writes log messages to
// ~/.bonsai/debug.log for troubleshooting CLI operations and request traces.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/faisalkhan91/bonsai-cli/cli/internal/config"
)

var debugLogger *log.Logger

func initLogger() error {
	logDir := config.Dir()
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	logFile := filepath.Join(logDir, "debug.log")
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	debugLogger = log.New(file, "", log.LstdFlags|log.Lshortfile)
	debugLogger.Printf("=== Bonsai CLI started ===")
	return nil
}
