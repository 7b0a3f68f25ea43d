package config

import (
	"os"
)

type Config struct {
	Port         string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	JWTSecret    string
	UploadDir    string
	CORSOrigin   string
	GinMode      string
	OpenAIAPIKey string
}

func Load() *Config {
	return &Config{
		Port:         getEnv("APP_PORT", "3333"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "todouser"),
		DBPassword:   getEnv("DB_PASSWORD", "todopassword"),
		DBName:       getEnv("DB_NAME", "todo_list"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		JWTSecret:    getEnv("JWT_SECRET", "default-secret-key-change-me"),
		UploadDir:    getEnv("UPLOAD_DIR", "/tmp"),
		CORSOrigin:   getEnv("DOMAIN_URL", "*"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
