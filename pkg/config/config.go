package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Mail     MailConfig
	Deals    DealsConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type JWTConfig struct {
	SecretKey string
}

type MailConfig struct {
	MailBaseUrl           string
	MailBasicAuthUsername string
	MailBasicAuthPassword string
	MailSenderEmail       string
	MailSenderName        string
}

type DealsConfig struct {
	// AES key for sponsored click tokens, must be 16/24/32 bytes.
	ClickTokenKey string
	// How long an impression dedup key lives, i.e. one display cycle.
	ImpressionTTL time.Duration
	// TTL for the cached top-deals list per placement.
	CacheTTL time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	impressionTTL, err := time.ParseDuration(getEnv("DEALS_IMPRESSION_TTL", "30m"))
	if err != nil {
		return nil, errors.New("invalid deals impression ttl")
	}

	cacheTTL, err := time.ParseDuration(getEnv("DEALS_CACHE_TTL", "60s"))
	if err != nil {
		return nil, errors.New("invalid deals cache ttl")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Agent Services Marketplace API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "agent_market"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Mail: MailConfig{
			MailBaseUrl:           getEnv("MAIL_BASE_URL", ""),
			MailBasicAuthUsername: getEnv("MAIL_BASIC_AUTH_USERNAME", ""),
			MailBasicAuthPassword: getEnv("MAIL_BASIC_AUTH_PASSWORD", ""),
			MailSenderEmail:       getEnv("MAIL_SENDER_EMAIL", ""),
			MailSenderName:        getEnv("MAIL_SENDER_NAME", ""),
		},
		Deals: DealsConfig{
			ClickTokenKey: getEnv("DEALS_CLICK_TOKEN_KEY", ""),
			ImpressionTTL: impressionTTL,
			CacheTTL:      cacheTTL,
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if keyLen := len(cfg.Deals.ClickTokenKey); keyLen != 16 && keyLen != 24 && keyLen != 32 {
		return nil, errors.New("deals click token key must be 16, 24 or 32 bytes")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
