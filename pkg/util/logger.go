package util

import (
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

func init() {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	// stdout carries the result of the command
	config.OutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	var err error
	Logger, err = config.Build()
	if err != nil {
		panic(err)
	}
}

// LogConfig controls where Logger writes. An empty Filename keeps the default
// stderr logger.
type LogConfig struct {
	Filename string
	Level    string
}

const defaultLogLevel = "info"

// InitLogger replaces Logger with a rotating file logger built by pingcap/log
// when cfg.Filename is set.
func InitLogger(cfg LogConfig) error {
	if cfg.Filename == "" {
		return nil
	}
	level := cfg.Level
	if level == "" {
		level = defaultLogLevel
	}
	logger, props, err := log.InitLogger(&log.Config{
		Level:  level,
		Format: "text",
		File: log.FileLogConfig{
			Filename: cfg.Filename,
		},
	})
	if err != nil {
		return errors.Annotatef(err, "init logger to file %s", cfg.Filename)
	}
	log.ReplaceGlobals(logger, props)
	Logger = logger
	return nil
}
