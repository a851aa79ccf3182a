package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	SessionTTL time.Duration

	// Blob storage. FolderPath is the root of the local backend; the
	// MinIO settings apply when BlobBackend is "minio".
	BlobBackend   string
	FolderPath    string
	MinioHost     string
	MinioPort     string
	MinioUsername string
	MinioPassword string
	BucketName    string

	// Thumbnail queue. "memory" runs the consumer in-process, "amqp"
	// publishes to RabbitMQ for the standalone worker binary.
	QueueBackend     string
	RabbitMQURL      string
	RabbitMQPrefetch int

	ThumbWorkerConcurrency int
	ThumbRate              float64
	ThumbBurst             int
}

var AppConfig Config

// getEnv returns the environment value or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// InitConfig loads configuration from the environment.
func InitConfig() {
	rabbitHost := getEnv("RABBITMQ_HOST", "localhost")
	rabbitPort := getEnv("RABBITMQ_PORT", "5672")
	rabbitUser := getEnv("RABBITMQ_USER", "guest")
	rabbitPass := getEnv("RABBITMQ_PASSWORD", "guest")
	rabbitVhost := getEnv("RABBITMQ_VHOST", "/")
	rabbitURL := getEnv("RABBITMQ_URL", "")
	if rabbitURL == "" {
		rabbitURL = fmt.Sprintf(
			"amqp://%s:%s@%s:%s/%s",
			url.PathEscape(rabbitUser),
			url.PathEscape(rabbitPass),
			rabbitHost,
			rabbitPort,
			url.PathEscape(rabbitVhost),
		)
	}
	AppConfig = Config{
		Port:                   getEnv("PORT", "5000"),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "3306"),
		DBUser:                 getEnv("DB_USER", "root"),
		DBPass:                 getEnv("DB_PASS", "root"),
		DBName:                 getEnv("DB_NAME", "files_manager"),
		RedisHost:              getEnv("REDIS_HOST", "localhost"),
		RedisPort:              getEnv("REDIS_PORT", "6379"),
		RedisPassword:          getEnv("REDIS_PASSWORD", ""),
		RedisDB:                getEnvInt("REDIS_DB", 0),
		SessionTTL:             getEnvDuration("SESSION_TTL", 24*time.Hour),
		BlobBackend:            getEnv("BLOB_BACKEND", "local"),
		FolderPath:             getEnv("FOLDER_PATH", "/tmp/files_manager"),
		MinioHost:              getEnv("MINIO_HOST", "localhost"),
		MinioPort:              getEnv("MINIO_PORT", "9000"),
		MinioUsername:          getEnv("MINIO_USERNAME", "minioadmin"),
		MinioPassword:          getEnv("MINIO_PASSWORD", "minioadmin"),
		BucketName:             getEnv("BUCKET_NAME", "files-manager"),
		QueueBackend:           getEnv("QUEUE_BACKEND", "memory"),
		RabbitMQURL:            rabbitURL,
		RabbitMQPrefetch:       getEnvInt("RABBITMQ_PREFETCH", 8),
		ThumbWorkerConcurrency: getEnvInt("THUMB_WORKER_CONCURRENCY", 4),
		ThumbRate:              getEnvFloat("THUMB_RATE", 0),
		ThumbBurst:             getEnvInt("THUMB_BURST", 4),
	}
}
