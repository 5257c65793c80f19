package config

import (
	"nivlek-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		SQLite: SQLite{
			Path: utils.GetEnvString("SQLITE_PATH", "nivlek.db"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			// Interactive runs stay quiet unless asked; raise to info or
			// debug when diagnosing a request.
			Level:               utils.GetEnvString("LOGGER_LEVEL", "error"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "nivlek.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "nivlek_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                     utils.GetEnvString("APP_ENV", "development"),
			TokenStoreBackend:       utils.GetEnvString("APP_TOKEN_STORE_BACKEND", "sqlite"),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 0),
		},
		Backend: Backend{
			BaseUrl: utils.GetEnvString("BACKEND_BASE_URL", "https://patient-management-system-in-python.onrender.com/api"),
		},
		Demo: Demo{
			Enabled:             utils.GetEnvBool("DEMO_MODE", false),
			AdminUsername:       utils.GetEnvString("DEMO_ADMIN_USERNAME", "admin"),
			AdminPasswordHash:   utils.GetEnvString("DEMO_ADMIN_PASSWORD_HASH", ""),
			JWTSecret:           utils.GetEnvString("DEMO_JWT_SECRET", "nivlek-demo"),
			TokenExpTimeInHours: utils.GetEnvInt("DEMO_TOKEN_EXP_TIME_IN_HOURS", 1),
		},
	}
}
