package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	JWTSecret string
	JWTTTL    time.Duration

	StorageDriver string // memory|postgres|redis

	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	DBSSLMode string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	InstitutionDomain string
	Timezone          string
	PublicBaseURL     string
	UpcomingLimit     int
}

func NewConfigFromEnv() (*Config, error) {
	redisDB, _ := strconv.Atoi(getenv("REDIS_DB", "0"))
	upcomingLimit, _ := strconv.Atoi(getenv("UPCOMING_LIMIT", "4"))
	jwtTTL, err := time.ParseDuration(getenv("JWT_TTL", "24h"))
	if err != nil {
		return nil, errors.New("JWT_TTL must be a duration")
	}

	cfg := &Config{
		Port:              getenv("PORT", "3000"),
		Env:               getenv("ENV", "development"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		JWTSecret:         getenv("JWT_SECRET", ""),
		JWTTTL:            jwtTTL,
		StorageDriver:     getenv("STORAGE_DRIVER", "memory"),
		DBHost:            getenv("DB_HOST", "localhost"),
		DBPort:            getenv("DB_PORT", "5432"),
		DBUser:            getenv("DB_USER", "postgres"),
		DBPass:            getenv("DB_PASSWORD", "postgres"),
		DBName:            getenv("DB_NAME", "campus_events"),
		DBSSLMode:         getenv("DB_SSLMODE", "disable"),
		RedisAddr:         getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getenv("REDIS_PASSWORD", ""),
		RedisDB:           redisDB,
		InstitutionDomain: getenv("INSTITUTION_DOMAIN", "vnrvjiet.in"),
		Timezone:          getenv("TIMEZONE", "Asia/Kolkata"),
		PublicBaseURL:     getenv("PUBLIC_BASE_URL", "http://localhost:3000"),
		UpcomingLimit:     upcomingLimit,
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	switch cfg.StorageDriver {
	case "memory", "postgres", "redis":
	default:
		return nil, errors.New("STORAGE_DRIVER must be memory, postgres or redis")
	}

	if cfg.UpcomingLimit <= 0 {
		cfg.UpcomingLimit = 4
	}

	return cfg, nil
}

// Location resolves Timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) PostgresDSN() string {
	return "host=" + c.DBHost +
		" port=" + c.DBPort +
		" user=" + c.DBUser +
		" password=" + c.DBPass +
		" dbname=" + c.DBName +
		" sslmode=" + c.DBSSLMode
}

func getenv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
