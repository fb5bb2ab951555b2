package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ledsc/go-ledsc/device"
)

// newLogger builds the daemon logger. An empty path logs to the console;
// otherwise output goes to a size-rotated file.
func newLogger(path string, level zapcore.Level) (*zap.SugaredLogger, func(), error) {
	if path == "" {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		logger, err := cfg.Build()
		if err != nil {
			return nil, nil, err
		}
		return logger.Sugar(), func() { _ = logger.Sync() }, nil
	}

	// lumberjack.Logger is already safe for concurrent use, so we don't need to lock it.
	rotated := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100, // megabytes
		MaxBackups: 2,
		MaxAge:     15, // days
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(rotated)), level)
	logger := zap.New(core, zap.AddCaller())
	return logger.Sugar(), func() { _ = logger.Sync() }, nil
}

// deviceLogger adapts a zap sugared logger to the device.Logger interface.
type deviceLogger struct {
	s *zap.SugaredLogger
}

var _ device.Logger = deviceLogger{}

func (l deviceLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l deviceLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Infow(msg, keysAndValues...)
}

func (l deviceLogger) Error(msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, keysAndValues...)
}
