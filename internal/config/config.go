package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// Config holds all configuration
type Config struct {
	MySQL        MySQLConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Kafka        KafkaConfig
	SSLWatch     SSLWatchConfig
	Verification VerificationConfig
	Migrate      bool
	HTTPAddr     string
}

// MySQLConfig holds MySQL configuration
type MySQLConfig struct {
	DSN string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	ExpireMinutes int
	Issuer        string
}

// KafkaConfig holds the lifecycle event publisher configuration.
// The publisher is disabled when Brokers is empty.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// SSLWatchConfig holds certificate expiry scanner configuration
type SSLWatchConfig struct {
	Enabled      bool
	IntervalSec  int
	ExpiringDays int
}

// VerificationConfig holds domain ownership verification configuration
type VerificationConfig struct {
	HTTPTimeoutSec     int
	DNSTimeoutSec      int
	EmailConfirmTTLSec int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		MySQL: MySQLConfig{
			DSN: getEnv("MYSQL_DSN", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASS", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:        os.Getenv("JWT_SECRET"),
			ExpireMinutes: getEnvInt("JWT_EXPIRE_MINUTES", 1440),
			Issuer:        getEnv("JWT_ISSUER", "tenantcfg"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_TOPIC", "tenant-domain-events"),
		},
		SSLWatch: SSLWatchConfig{
			Enabled:      getEnv("SSL_WATCH_ENABLED", "1") == "1",
			IntervalSec:  getEnvInt("SSL_WATCH_INTERVAL_SEC", 3600),
			ExpiringDays: getEnvInt("SSL_WATCH_EXPIRING_DAYS", 15),
		},
		Verification: VerificationConfig{
			HTTPTimeoutSec:     getEnvInt("VERIFY_HTTP_TIMEOUT_SEC", 10),
			DNSTimeoutSec:      getEnvInt("VERIFY_DNS_TIMEOUT_SEC", 5),
			EmailConfirmTTLSec: getEnvInt("VERIFY_EMAIL_CONFIRM_TTL_SEC", 86400),
		},
		Migrate:  getEnv("MIGRATE", "0") == "1",
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
	}

	// Validate required fields
	if cfg.MySQL.DSN == "" {
		return nil, fmt.Errorf("MYSQL_DSN is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// LoadFromINI loads configuration from an INI file with environment variable
// override. Priority: ENV > INI > default.
func LoadFromINI(iniPath string) (*Config, error) {
	cfgFile, err := ini.Load(iniPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load INI file: %w", err)
	}

	getValue := func(envKey, iniSection, iniKey, defaultValue string) string {
		if value := os.Getenv(envKey); value != "" {
			return value
		}
		if value := cfgFile.Section(iniSection).Key(iniKey).String(); value != "" {
			return value
		}
		return defaultValue
	}

	getValueInt := func(envKey, iniSection, iniKey string, defaultValue int) int {
		if value := getValue(envKey, iniSection, iniKey, ""); value != "" {
			if intValue, err := strconv.Atoi(value); err == nil {
				return intValue
			}
		}
		return defaultValue
	}

	cfg := &Config{
		MySQL: MySQLConfig{
			DSN: getValue("MYSQL_DSN", "mysql", "dsn", ""),
		},
		Redis: RedisConfig{
			Addr:     getValue("REDIS_ADDR", "redis", "addr", "localhost:6379"),
			Password: getValue("REDIS_PASS", "redis", "password", ""),
			DB:       getValueInt("REDIS_DB", "redis", "db", 0),
		},
		JWT: JWTConfig{
			Secret:        getValue("JWT_SECRET", "jwt", "secret", ""),
			ExpireMinutes: getValueInt("JWT_EXPIRE_MINUTES", "jwt", "expire_minutes", 1440),
			Issuer:        getValue("JWT_ISSUER", "jwt", "issuer", "tenantcfg"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(getValue("KAFKA_BROKERS", "kafka", "brokers", "")),
			Topic:   getValue("KAFKA_TOPIC", "kafka", "topic", "tenant-domain-events"),
		},
		SSLWatch: SSLWatchConfig{
			Enabled:      getValue("SSL_WATCH_ENABLED", "ssl_watch", "enabled", "1") == "1",
			IntervalSec:  getValueInt("SSL_WATCH_INTERVAL_SEC", "ssl_watch", "interval_sec", 3600),
			ExpiringDays: getValueInt("SSL_WATCH_EXPIRING_DAYS", "ssl_watch", "expiring_days", 15),
		},
		Verification: VerificationConfig{
			HTTPTimeoutSec:     getValueInt("VERIFY_HTTP_TIMEOUT_SEC", "verification", "http_timeout_sec", 10),
			DNSTimeoutSec:      getValueInt("VERIFY_DNS_TIMEOUT_SEC", "verification", "dns_timeout_sec", 5),
			EmailConfirmTTLSec: getValueInt("VERIFY_EMAIL_CONFIRM_TTL_SEC", "verification", "email_confirm_ttl_sec", 86400),
		},
		Migrate:  getValue("MIGRATE", "app", "migrate", "0") == "1",
		HTTPAddr: getValue("HTTP_ADDR", "app", "http_addr", ":8080"),
	}

	if cfg.MySQL.DSN == "" {
		return nil, fmt.Errorf("mysql dsn is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
