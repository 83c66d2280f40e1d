package bloglogger

import (
	"fmt"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	blogconfig "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_config"
)

// New builds a console logger or a rotating JSON file logger from settings
func New(settings blogconfig.LoggerSettings) (*zap.Logger, error) {
	level, err := ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, err
	}

	if settings.LogType == blogconfig.LogTypeFile {
		return newFileLogger(settings, level), nil
	}

	logConf := zap.NewDevelopmentConfig()
	logConf.Level = zap.NewAtomicLevelAt(level)
	logConf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logConf.DisableStacktrace = true

	logger, err := logConf.Build()
	if err != nil {
		return nil, fmt.Errorf("building console logger: %w", err)
	}

	return logger, nil
}

func newFileLogger(settings blogconfig.LoggerSettings, level zapcore.Level) *zap.Logger {
	writer := &lumberjack.Logger{
		Compress:   true,
		Filename:   settings.FilePath,
		MaxAge:     settings.MaxAge,
		MaxBackups: settings.MaxBackups,
		MaxSize:    settings.MaxSize,
	}

	encoderConf := zap.NewProductionEncoderConfig()
	encoderConf.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConf), zapcore.AddSync(writer), level)
	return zap.New(core, zap.AddCaller())
}

// ParseLevel maps a config log level onto zap's levels
func ParseLevel(level string) (zapcore.Level, error) {
	switch level {
	case blogconfig.LogLevelDebug:
		return zapcore.DebugLevel, nil
	case "", blogconfig.LogLevelInfo:
		return zapcore.InfoLevel, nil
	case blogconfig.LogLevelWarning:
		return zapcore.WarnLevel, nil
	case blogconfig.LogLevelError:
		return zapcore.ErrorLevel, nil
	}

	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
}
