package logger

import (
	"carexpert-service/internal/app/config"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the logger used by CLI commands (the seeder).
func NewLogrusLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if internalConfig.App.Env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
