package infra

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv       string
	Port         string
	PostgresURL  string
	JWTSecret    string
	TokenTTL     time.Duration
	AdminEmail   string
	AdminName    string
	AdminPass    string
	Timezone     string
	CORSOrigins  []string
	RedisURL     string
	LogFile      string
	CookieSecure bool
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:       getEnvWithDefault("APP_ENV", "development"),
		Port:         getEnvWithDefault("PORT", "8080"),
		PostgresURL:  os.Getenv("POSTGRES_URL"),
		JWTSecret:    getEnvWithDefault("JWT_SECRET", "carebuilds-dev-secret"),
		TokenTTL:     time.Duration(getEnvAsInt("TOKEN_TTL_MINUTES", 24*60)) * time.Minute,
		AdminEmail:   getEnvWithDefault("ADMIN_EMAIL", "admin@demo.com"),
		AdminName:    getEnvWithDefault("ADMIN_NAME", "Admin User"),
		AdminPass:    getEnvWithDefault("ADMIN_PASSWORD", "admin123"),
		Timezone:     getEnvWithDefault("TIMEZONE", "Local"),
		CORSOrigins:  splitList(getEnvWithDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		RedisURL:     os.Getenv("REDIS_URL"),
		LogFile:      os.Getenv("LOG_FILE"),
		CookieSecure: getEnvAsBool("COOKIE_SECURE", false),
	}
}

func (c Config) IsProduction() bool {
	switch strings.ToLower(c.AppEnv) {
	case "prod", "production":
		return true
	}
	return false
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return defaultValue
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
