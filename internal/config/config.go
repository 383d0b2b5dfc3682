package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string           `json:"env"`
	Http       HttpConfig       `json:"http"`
	Postgres   PostgresConfig   `json:"postgres"`
	Redis      RedisConfig      `json:"redis"`
	APIKey     string           `json:"api_key,omitempty"`
	Auth       AuthConfig       `json:"auth"`
	Cloudinary CloudinaryConfig `json:"cloudinary"`
	Webhook    WebhookConfig    `json:"webhook"`
	Reports    ReportsConfig    `json:"reports"`
	Directory  DirectoryConfig  `json:"directory"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	RateLimitRPS    float64       `json:"rate_limit_rps"`
	RateLimitBurst  int           `json:"rate_limit_burst"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

// DSN is the pgx connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Database, p.SSLMode)
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type AuthConfig struct {
	JWTSecret string `json:"-"`
	Issuer    string `json:"issuer"`
}

type CloudinaryConfig struct {
	CloudName string `json:"cloud_name"`
	APIKey    string `json:"-"`
	APISecret string `json:"-"`
	Folder    string `json:"folder"`
}

// Enabled reports whether image uploads can be served.
func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type WebhookConfig struct {
	URL        string        `json:"url"`
	Disabled   bool          `json:"disabled"`
	Timeout    time.Duration `json:"timeout"`
	MaxRetries int           `json:"max_retries"`
	QueueKey   string        `json:"queue_key"`
}

type ReportsConfig struct {
	QuorumThreshold    int     `json:"quorum_threshold"`
	SearchRadiusMeters float64 `json:"search_radius_meters"`
}

type DirectoryConfig struct {
	RefreshInterval time.Duration `json:"refresh_interval"`
	CacheTTL        time.Duration `json:"cache_ttl"`
}

func Load(logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			RateLimitRPS:    getEnvFloat("HTTP_RATE_LIMIT_RPS", 10),
			RateLimitBurst:  getEnvInt("HTTP_RATE_LIMIT_BURST", 20),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "emergency_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        int32(getEnvInt("POSTGRES_MAX_CONNS", 20)),
			MinConns:        int32(getEnvInt("POSTGRES_MIN_CONNS", 1)),
			MaxConnLifetime: getEnvDuration("POSTGRES_MAX_CONN_LIFETIME", time.Hour),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		APIKey: getEnv("API_KEY", ""),
		Auth: AuthConfig{
			JWTSecret: getEnv("AUTH_JWT_SECRET", ""),
			Issuer:    getEnv("AUTH_JWT_ISSUER", ""),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
			Folder:    getEnv("CLOUDINARY_FOLDER", "images-reports"),
		},
		Webhook: WebhookConfig{
			URL:        getEnv("WEBHOOK_URL", ""),
			Disabled:   getEnvBool("WEBHOOK_DISABLED", false),
			Timeout:    getEnvDuration("WEBHOOK_TIMEOUT", 5*time.Second),
			MaxRetries: getEnvInt("WEBHOOK_MAX_RETRIES", 3),
			QueueKey:   getEnv("WEBHOOK_QUEUE_KEY", "reports:events"),
		},
		Reports: ReportsConfig{
			QuorumThreshold:    getEnvInt("QUORUM_THRESHOLD", 3),
			SearchRadiusMeters: getEnvFloat("SEARCH_RADIUS_METERS", 3000),
		},
		Directory: DirectoryConfig{
			RefreshInterval: getEnvDuration("DIRECTORY_REFRESH_INTERVAL", 5*time.Minute),
			CacheTTL:        getEnvDuration("DIRECTORY_CACHE_TTL", 10*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Webhook.Disabled || cfg.Webhook.URL == "" {
		logger.Warn("report event webhooks disabled")
	}

	logger.Info("config loaded",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Int("quorum", cfg.Reports.QuorumThreshold),
		slog.Bool("uploads", cfg.Cloudinary.Enabled()))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}
	if c.APIKey == "" {
		return errors.New("API_KEY required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return errors.New("AUTH_JWT_SECRET must be at least 32 characters")
	}
	if c.Reports.QuorumThreshold < 1 {
		return errors.New("QUORUM_THRESHOLD must be >= 1")
	}
	if c.Reports.SearchRadiusMeters <= 0 {
		return errors.New("SEARCH_RADIUS_METERS must be > 0")
	}
	if c.Directory.RefreshInterval <= 0 {
		return errors.New("DIRECTORY_REFRESH_INTERVAL must be > 0")
	}
	return nil
}

// WebhookEnabled reports whether the event sender should run.
func (c *Config) WebhookEnabled() bool {
	return !c.Webhook.Disabled && c.Webhook.URL != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
