package logging

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the interface used throughout the engine for structured logging.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field represents a single structured log field.
type Field = zapcore.Field

// Common field constructors, re-exported from zap so callers never import it directly.
var (
	String  = zap.String
	Int     = zap.Int
	Int64   = zap.Int64
	Uint16  = zap.Uint16
	Bool    = zap.Bool
	Error   = zap.Error
	Any     = zap.Any
	Strings = zap.Strings
)

type zapLogger struct {
	logger *zap.Logger
}

// Config controls logger construction.
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json, console
	Output      string // stdout, stderr, or file path
	Development bool
	AddCaller   bool
}

// NewLogger builds a structured logger from Config.
func NewLogger(cfg Config) (Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var encoderConfig zapcore.EncoderConfig
	if cfg.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
	}
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	var writer io.Writer
	switch cfg.Output {
	case "", "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	default:
		file, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		writer = file
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(writer), level)

	opts := []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}
	if cfg.AddCaller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(1))
	}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{logger: zap.New(core, opts...)}, nil
}

// NewNopLogger returns a logger that discards everything, used by FromContext
// when the context carries no logger.
func NewNopLogger() Logger {
	return &zapLogger{logger: zap.NewNop()}
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.logger.Debug(msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.logger.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.logger.Warn(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.logger.Error(msg, fields...) }

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{logger: l.logger.With(fields...)}
}

type contextKey string

const loggerKey contextKey = "promoengine_logger"

// WithLogger attaches a logger to ctx.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger attached to ctx, or a no-op logger if none was set.
func FromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey).(Logger); ok {
		return logger
	}
	return NewNopLogger()
}
