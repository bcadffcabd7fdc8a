package config

import (
	"carexpert-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "carexpert"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
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
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "carexpert-reports"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Address:                  utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:          utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			SessionExpiryTimeInHours: utils.GetEnvInt("APP_SESSION_EXPIRY_TIME_IN_HOURS", 24),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		AI: AI{
			BaseUrl:              utils.GetEnvString("AI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			ApiKey:               utils.GetEnvString("AI_API_KEY", ""),
			Model:                utils.GetEnvString("AI_MODEL", "gemini-2.0-flash"),
			RequestsPerSecond:    utils.GetEnvFloat("AI_REQUESTS_PER_SECOND", 5),
			HTTPTimeoutInSeconds: utils.GetEnvInt("AI_HTTP_TIMEOUT_IN_SECONDS", 30),
		},
		Report: Report{
			MaxUploadSizeInMB: utils.GetEnvInt64("REPORT_MAX_UPLOAD_SIZE_IN_MB", 10),
			WorkerCount:       utils.GetEnvInt("REPORT_WORKER_COUNT", 2),
			MaxQueue:          utils.GetEnvInt("REPORT_MAX_QUEUE", 10),
			MaxRetries:        utils.GetEnvInt("REPORT_MAX_RETRIES", 3),
		},
	}
}
