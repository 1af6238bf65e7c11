package util

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// LogError : логирует ошибку и возвращает её обёрнутой в message
func LogError(message string, err error) error {
	logrus.WithError(err).Error(message)
	return fmt.Errorf("%s: %w", message, err)
}

// Component : логгер с полем component
func Component(name string) *logrus.Entry {
	return logrus.WithField("component", name)
}
