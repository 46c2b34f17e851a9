package app

import (
	"errors"
	"os"

	"github.com/akulinov/passbook/internal/config"
	"github.com/akulinov/passbook/internal/logger"
	"github.com/akulinov/passbook/internal/services"
	"github.com/akulinov/passbook/internal/shell"
	"github.com/akulinov/passbook/internal/storage"
)

// Run - builds the store and the manager, restores an existing snapshot and
// hands control to the interactive shell until the user leaves.
func Run(config config.Config) {
	store := storage.NewFileStore()
	manager := services.NewManager(store, config.AllowOverdraft)

	// a missing snapshot just means a first run
	if _, err := os.Stat(config.DataFile); err == nil {
		if msg, err := manager.Load(config.DataFile); err != nil {
			logger.Error("Failed to restore accounts:", err)
		} else {
			logger.Info(msg)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		logger.Error("Failed to check snapshot file:", err)
	}

	logger.Info("Starting shell, config:", config)
	shell.New(manager, config.DataFile, os.Stdin, os.Stdout).Run()
	logger.Info("Shell stopped")
}
