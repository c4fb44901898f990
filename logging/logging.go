// Package logging builds the error log: an append-only file of
// "timestamp - LEVEL - message" lines.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New opens the log file at path (appending, creating if needed) and
// returns a logger that writes one formatted line per event. The
// default level is Error; verbose lowers it to Debug. The returned
// function flushes and closes the file; call it before exit.
func New(path string, verbose bool) (*zap.SugaredLogger, func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	level := zapcore.ErrorLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.AddSync(f), level)
	logger := zap.New(core)

	done := func() {
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger.Sugar(), done, nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " - ",
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05"),
	}
}
