package initializers

import (
	"company-settings-backend/config"
	"company-settings-backend/fiberlog"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func newFormatter() log.Formatter {
	return &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
}

func InitLogger() *fiberlog.Config {
	level, err := log.ParseLevel(config.Conf.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	var out io.Writer = os.Stdout
	if config.Conf.Log.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   config.Conf.Log.File,
			MaxSize:    config.Conf.Log.MaxSizeMB,
			MaxBackups: config.Conf.Log.MaxBackups,
			MaxAge:     config.Conf.Log.MaxAgeDays,
			Compress:   true,
		})
	}
	log.SetFormatter(newFormatter())
	log.SetOutput(out)
	log.SetLevel(level)
	if err != nil {
		log.WithField("level", config.Conf.Log.Level).Warn("неизвестный уровень логирования, используется info")
	}

	logger := log.New()
	logger.SetFormatter(newFormatter())
	logger.SetOutput(out)
	logger.SetLevel(log.DebugLevel)
	return &fiberlog.Config{
		Logger: logger,
		Tags: []string{
			fiberlog.TagBody,
			fiberlog.TagResBody,
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagCompanyID,
			fiberlog.TagRequestID,
		},
		SkipPaths: []string{"/metrics"},
	}
}
