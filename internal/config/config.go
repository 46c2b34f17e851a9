package config

import (
	"fmt"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	DataFile       string `env:"PASSBOOK_FILE" envDefault:"passbook.json"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	AllowOverdraft bool   `env:"PASSBOOK_ALLOW_OVERDRAFT" envDefault:"false"`
}

// Config - program settings: snapshot file, logging and withdrawal policy
type Config struct {
	DataFile       string
	LogLevel       string
	AllowOverdraft bool
}

// NewConfig - builds the settings from environment variables with
// command-line flags layered on top.
func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		dataFile  = pflag.StringP("file", "f", args.DataFile, "Path to the snapshot file accounts are saved to and loaded from.")
		logLevel  = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		overdraft = pflag.BoolP("allow_overdraft", "o", args.AllowOverdraft, "Permit withdrawals above the balance (balance may go negative).")
	)
	pflag.Parse()

	return Config{
		DataFile:       *dataFile,
		LogLevel:       *logLevel,
		AllowOverdraft: *overdraft,
	}
}

func DefaultConfig() Config {
	return Config{
		DataFile:       "passbook.json",
		LogLevel:       "info",
		AllowOverdraft: false,
	}
}
