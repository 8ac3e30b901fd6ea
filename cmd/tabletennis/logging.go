package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// maxLogSize triggers rotation to <path>.old on startup
	maxLogSize = 10 * 1024 * 1024
)

// setupLogging returns a JSON file logger when debug is set, otherwise a no-op logger
// The standard library logger is discarded or redirected so nothing reaches the terminal
func setupLogging(debug bool, path string) (*zap.Logger, *os.File) {
	if !debug {
		log.SetOutput(io.Discard)
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return zap.NewNop(), nil
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		// Rotation failure is not fatal, the old file keeps growing
		_ = os.Rename(path, path+".old")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return zap.NewNop(), nil
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(f),
		zap.DebugLevel,
	)
	logger := zap.New(core, zap.AddCaller())
	zap.RedirectStdLog(logger)
	return logger, f
}
