// Package logging configures structured logging for command line programs.
//
// Setup installs a console logger on stderr whose level follows a verbosity
// count, the way -v / -q flags accumulate. The configured logger is also made
// the zap global, so code that reaches for zap.L() sees the same output.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a structured, leveled logger.
type Logger = zap.Logger

// SugaredLogger is the loosely typed variant of Logger.
type SugaredLogger = zap.SugaredLogger

// Field is a strongly typed log field.
type Field = zap.Field

// Setup builds a console logger writing to stderr and installs it as the
// global logger. Verbosity shifts the level: 0 shows warnings and errors, 1
// adds info, 2 adds debug and anything higher also annotates the caller;
// negative values quiet the output down to errors and then nothing. Colors
// are used when stderr is a terminal, or unconditionally when forceColors is
// set.
func Setup(verbosity int, forceColors bool) *Logger {
	colors := forceColors || isatty.IsTerminal(os.Stderr.Fd())
	return install(os.Stderr, verbosity, colors)
}

// SetupWriter is Setup with an explicit destination and no color detection.
func SetupWriter(w io.Writer, verbosity int) *Logger {
	return install(w, verbosity, false)
}

func install(w io.Writer, verbosity int, colors bool) *Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	if colors {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(w),
		level(verbosity),
	)

	opts := []zap.Option{zap.ErrorOutput(zapcore.AddSync(w))}
	if verbosity >= 3 {
		opts = append(opts, zap.AddCaller())
	}

	logger := zap.New(core, opts...)
	zap.ReplaceGlobals(logger)
	return logger
}

func level(verbosity int) zapcore.Level {
	switch {
	case verbosity >= 2:
		return zapcore.DebugLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	case verbosity == 0:
		return zapcore.WarnLevel
	case verbosity == -1:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}
