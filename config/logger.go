package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogger : настраивает стандартный логгер logrus под окружение.
// local: текстовый вывод и debug, dev/prod: JSON.
func SetupLogger(env string) *logrus.Logger {
	logger := logrus.StandardLogger()
	logger.SetOutput(os.Stdout)

	switch env {
	case EnvLocal:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logger.SetLevel(logrus.DebugLevel)
	case EnvDev:
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetLevel(logrus.DebugLevel)
	default:
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger
}
