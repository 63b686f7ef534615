package log

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level       string
	Development bool

	// File enables an additional JSON sink rotated by lumberjack.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var logger = zap.NewNop()

func Init(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid log level %q", opts.Level)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder(opts.Development), zapcore.Lock(os.Stderr), level),
	}

	if len(opts.File) > 0 {
		sink := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(sink),
			level,
		))
	}

	options := []zap.Option{zap.AddStacktrace(zap.ErrorLevel)}
	if opts.Development {
		options = append(options, zap.Development(), zap.AddCaller())
	}

	logger = zap.New(zapcore.NewTee(cores...), options...)
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func consoleEncoder(development bool) zapcore.Encoder {
	config := zap.NewProductionEncoderConfig()
	if development {
		config = zap.NewDevelopmentEncoderConfig()
	}
	config.EncodeLevel = zapcore.CapitalLevelEncoder
	if term.IsTerminal(int(os.Stderr.Fd())) {
		config.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.ConsoleSeparator = " "
	config.EncodeTime = zapcore.TimeEncoderOfLayout(time.StampMilli)
	return zapcore.NewConsoleEncoder(config)
}

func Sync() {
	_ = logger.Sync()
}
