package logger

import (
	"os"
	"path/filepath"

	"pumpsizer/pkg/conf"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger *zap.SugaredLogger

// InitLogger builds the process-wide sugared logger. Log files rotate via
// lumberjack; everything is mirrored to stdout. Must run after conf.InitConf.
func InitLogger(name string) {
	dir := "./logs"
	maxSize, maxBackups, maxAge := 64, 7, 30
	if conf.Conf != nil {
		if d := conf.Conf.GetString("log.dir"); d != "" {
			dir = d
		}
		if v := conf.Conf.GetInt("log.maxSizeMB"); v > 0 {
			maxSize = v
		}
		if v := conf.Conf.GetInt("log.maxBackups"); v > 0 {
			maxBackups = v
		}
		if v := conf.Conf.GetInt("log.maxAgeDays"); v > 0 {
			maxAge = v
		}
	}

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(dir, name+".log"),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotator), zapcore.InfoLevel),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stdout), zapcore.DebugLevel),
	)

	Logger = zap.New(core, zap.AddCaller()).Sugar()
}
