package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	Port        int
	DatabaseURL string

	// Auth: HS256 shared secret, or RS256 via JWKS when AuthJWKSURL is set.
	JWTSecret   string
	AuthJWKSURL string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	// PublicStorageURL is the base the persisted image URLs are built from.
	PublicStorageURL string
	// UploadsDisabled short-circuits image ingestion: vehicles are created
	// with an empty image list instead of uploading the payloads.
	UploadsDisabled bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads .env (when present) and the environment. Only DATABASE_URL
// is mandatory; everything else has development defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		AuthJWKSURL:      os.Getenv("AUTH_JWKS_URL"),
		MinioEndpoint:    getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey:   getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey:   getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:      getEnv("MINIO_BUCKET", "vehicle-images"),
		PublicStorageURL: os.Getenv("PUBLIC_STORAGE_URL"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" && cfg.AuthJWKSURL == "" {
		return nil, fmt.Errorf("either JWT_SECRET or AUTH_JWKS_URL is required")
	}

	cfg.Port = getEnvInt("PORT", 8080)
	cfg.RedisDB = getEnvInt("REDIS_DB", 0)
	cfg.MinioUseSSL = os.Getenv("MINIO_USE_SSL") == "true"
	cfg.UploadsDisabled = os.Getenv("UPLOADS_DISABLED") == "true"

	if cfg.PublicStorageURL == "" {
		scheme := "http"
		if cfg.MinioUseSSL {
			scheme = "https"
		}
		cfg.PublicStorageURL = fmt.Sprintf("%s://%s", scheme, cfg.MinioEndpoint)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
