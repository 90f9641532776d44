package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	os.Setenv("MYSQL_DSN", "user:pass@tcp(localhost:3306)/test")
	os.Setenv("JWT_SECRET", "test-secret")
	defer func() {
		os.Unsetenv("MYSQL_DSN")
		os.Unsetenv("JWT_SECRET")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.MySQL.DSN == "" {
		t.Error("MySQL DSN should not be empty")
	}

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("Expected HTTPAddr :8080, got %s", cfg.HTTPAddr)
	}

	if cfg.Kafka.Brokers != nil {
		t.Errorf("Expected Kafka disabled by default, got brokers %v", cfg.Kafka.Brokers)
	}

	if cfg.SSLWatch.ExpiringDays != 15 {
		t.Errorf("Expected default expiring days 15, got %d", cfg.SSLWatch.ExpiringDays)
	}
}

func TestLoad_MissingMySQLDSN(t *testing.T) {
	os.Unsetenv("MYSQL_DSN")
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when MYSQL_DSN is missing")
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	os.Setenv("MYSQL_DSN", "user:pass@tcp(localhost:3306)/test")
	os.Unsetenv("JWT_SECRET")
	defer os.Unsetenv("MYSQL_DSN")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when JWT_SECRET is missing")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Setenv("MYSQL_DSN", "custom:dsn@tcp(localhost:3306)/custom")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("REDIS_ADDR", "redis.example.com:6379")
	os.Setenv("REDIS_DB", "5")
	os.Setenv("HTTP_ADDR", ":9090")
	os.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")

	defer func() {
		os.Unsetenv("MYSQL_DSN")
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("REDIS_ADDR")
		os.Unsetenv("REDIS_DB")
		os.Unsetenv("HTTP_ADDR")
		os.Unsetenv("KAFKA_BROKERS")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Redis.Addr != "redis.example.com:6379" {
		t.Errorf("Expected custom Redis addr, got %s", cfg.Redis.Addr)
	}

	if cfg.Redis.DB != 5 {
		t.Errorf("Expected Redis DB 5, got %d", cfg.Redis.DB)
	}

	if cfg.HTTPAddr != ":9090" {
		t.Errorf("Expected HTTPAddr :9090, got %s", cfg.HTTPAddr)
	}

	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "broker2:9092" {
		t.Errorf("Expected two trimmed brokers, got %v", cfg.Kafka.Brokers)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"single", "a:9092", 1},
		{"multiple with spaces", "a:9092, b:9092 ,c:9092", 3},
		{"trailing comma", "a:9092,", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitList(tt.input); len(got) != tt.want {
				t.Errorf("splitList(%q) = %v, want %d entries", tt.input, got, tt.want)
			}
		})
	}
}
