package lumber

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogFileSizeMB = 100
	maxLogFileAge    = 28
)

type zapLogger struct {
	sugaredLogger *zap.SugaredLogger
}

func getEncoder(isJSON bool) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if isJSON {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func getZapLevel(level string) zapcore.Level {
	switch level {
	case Info:
		return zapcore.InfoLevel
	case Warn:
		return zapcore.WarnLevel
	case Debug:
		return zapcore.DebugLevel
	case Error:
		return zapcore.ErrorLevel
	case Fatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func newZapLogger(config LoggingConfig, verbose bool) Logger {
	cores := []zapcore.Core{}

	if config.EnableConsole {
		level := getZapLevel(config.ConsoleLevel)
		if verbose {
			level = zapcore.DebugLevel
		}
		writer := zapcore.Lock(os.Stdout)
		cores = append(cores, zapcore.NewCore(getEncoder(config.ConsoleJSONFormat), writer, level))
	}

	if config.EnableFile {
		level := getZapLevel(config.FileLevel)
		if verbose {
			level = zapcore.DebugLevel
		}
		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename: config.FileLocation,
			MaxSize:  maxLogFileSizeMB,
			MaxAge:   maxLogFileAge,
			Compress: true,
		})
		cores = append(cores, zapcore.NewCore(getEncoder(config.FileJSONFormat), writer, level))
	}

	return NewZapLoggerWithCore(zapcore.NewTee(cores...))
}

// NewZapLoggerWithCore wraps an already configured zap core,
// tests use it with an observer core to assert on emitted entries.
func NewZapLoggerWithCore(core zapcore.Core) Logger {
	logger := zap.New(core, zap.AddCallerSkip(1), zap.AddCaller()).Sugar()
	return &zapLogger{sugaredLogger: logger}
}

func (l *zapLogger) Debugf(format string, args ...interface{}) {
	l.sugaredLogger.Debugf(format, args...)
}

func (l *zapLogger) Infof(format string, args ...interface{}) {
	l.sugaredLogger.Infof(format, args...)
}

func (l *zapLogger) Warnf(format string, args ...interface{}) {
	l.sugaredLogger.Warnf(format, args...)
}

func (l *zapLogger) Errorf(format string, args ...interface{}) {
	l.sugaredLogger.Errorf(format, args...)
}

func (l *zapLogger) Fatalf(format string, args ...interface{}) {
	l.sugaredLogger.Fatalf(format, args...)
}

func (l *zapLogger) Panicf(format string, args ...interface{}) {
	l.sugaredLogger.Panicf(format, args...)
}

func (l *zapLogger) WithFields(fields Fields) Logger {
	var f = make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		f = append(f, k, v)
	}
	newLogger := l.sugaredLogger.With(f...)
	return &zapLogger{newLogger}
}
