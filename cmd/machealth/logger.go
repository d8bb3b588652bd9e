package main

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Guliveer/machealth/internal/config"
)

// initLogger creates a zap logger based on the configuration.
// Console output goes to stderr since stdout carries the report; a JSON log
// file is added when configured. The returned func flushes and closes it.
func initLogger(cfg *config.Config, stderr io.Writer) (*zap.Logger, func()) {
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zapcore.WarnLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(stderr),
		level,
	)

	cores := []zapcore.Core{consoleCore}

	var (
		file    *os.File
		fileErr error
	)
	if cfg.Logging.File != "" {
		file, fileErr = os.OpenFile(cfg.Logging.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if fileErr == nil {
			fileCore := zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(file),
				level,
			)
			cores = append(cores, fileCore)
		}
	}

	logger := zap.New(zapcore.NewTee(cores...))
	if fileErr != nil {
		logger.Warn("Log file unavailable, logging to stderr only",
			zap.String("file", cfg.Logging.File),
			zap.Error(fileErr))
	}

	return logger, func() {
		_ = logger.Sync()
		if file != nil {
			_ = file.Close()
		}
	}
}
