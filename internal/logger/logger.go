package logger

import (
	"go.uber.org/zap"
)

var instance *zap.SugaredLogger = nil

// Initialize - sets up the logger singleton with the requested logging level.
// Entries go to stderr so they never mix with the interactive output on stdout.
func Initialize(level string) error {
	// translate the textual level into a zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	// install the singleton
	instance = logger.Sugar()
	return nil
}

// Get - returns the logger singleton
func Get() *zap.SugaredLogger {
	if instance == nil {
		panic("logger not initialized, call Initialize()")
	}
	return instance
}

// Sync - flushes buffered log entries
func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}

// Debug - wrapper over the Debug level
func Debug(args ...interface{}) {
	Get().Debugln(args...)
}

// Info - wrapper over the Info level
func Info(args ...interface{}) {
	Get().Infoln(args...)
}

// Warn - wrapper over the Warn level
func Warn(args ...interface{}) {
	Get().Warnln(args...)
}

// Error - wrapper over the Error level
func Error(args ...interface{}) {
	Get().Errorln(args...)
}

// Panic - wrapper over the Panic level
func Panic(args ...interface{}) {
	Get().Panicln(args...)
}
