package logger

import (
	"os"

	"nivlek-client/internal/app/config"

	"github.com/sirupsen/logrus"
)

// InitLogrus configures the process-level logrus logger used by main for
// start/stop messages. Structured operation logging goes through zap.
func InitLogrus(internalConfig *config.InternalConfig, driverConfig *config.DriverConfig) {
	switch internalConfig.App.Env {
	case "production":
		logrus.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile(driverConfig.Logger.OutputFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logrus.SetOutput(file)
		} else {
			logrus.Info("Failed to log to file, using default stderr")
		}
	default:
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetOutput(os.Stderr)
	}
}
