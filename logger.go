package main

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *zap.SugaredLogger

// setupLogging initializes the zap logger writing to a rotating client.log
// under the base directory. Debug level is opt-in via the -debug flag since
// move traffic is chatty.
func setupLogging(debug bool) {
	lj := &lumberjack.Logger{
		Filename:   filepath.Join(baseDir, "logs", "client.log"),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		CallerKey:    "caller",
		MessageKey:   "msg",
		LineEnding:   zapcore.DefaultLineEnding,
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), level)
	logger = zap.New(core, zap.AddCaller()).Sugar()
}

func syncLogging() {
	if logger != nil {
		_ = logger.Sync()
	}
}

func logError(format string, v ...interface{}) {
	if logger != nil {
		logger.Errorf(format, v...)
	}
}

func logInfo(format string, v ...interface{}) {
	if logger != nil {
		logger.Infof(format, v...)
	}
}

func logDebug(format string, v ...interface{}) {
	if logger != nil {
		logger.Debugf(format, v...)
	}
}
