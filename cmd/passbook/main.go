package main

import (
	"fmt"

	"github.com/akulinov/passbook/internal/app"
	"github.com/akulinov/passbook/internal/config"
	"github.com/akulinov/passbook/internal/logger"
)

func main() {
	// load the config
	config := config.NewConfig()
	// set up the logger
	if err := logger.Initialize(config.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// run the interactive shell
	app.Run(config)
}
