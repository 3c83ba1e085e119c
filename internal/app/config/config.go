package config

import (
	"infomed-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Port:                   utils.GetEnvString("POSTGRES_PORT", "5432"),
			Host:                   utils.GetEnvString("POSTGRES_HOST", "localhost"),
			DBName:                 utils.GetEnvString("POSTGRES_DB_NAME", "infomed"),
			Username:               utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password:               utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			MaxOpenConnections:     utils.GetEnvInt("POSTGRES_MAX_OPEN_CONNECTIONS", 25),
			MaxIdleConnections:     utils.GetEnvInt("POSTGRES_MAX_IDLE_CONNECTIONS", 5),
			ConnMaxLifetimeMinutes: utils.GetEnvInt("POSTGRES_CONN_MAX_LIFETIME_MINUTES", 30),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":3000"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 8),
		},
	}
}
