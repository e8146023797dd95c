package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// DevJWTSecret используется только локально. В production запуск с ним запрещен.
const DevJWTSecret = "dev-only-secret-change-me-at-least-32-chars"

type Config struct {
	Server struct {
		Host           string   `yaml:"host" env:"SERVER_HOST"`
		Port           int      `yaml:"port" env:"PORT"`
		Env            string   `yaml:"env" env:"APP_ENV"`
		FrontendURL    string   `yaml:"frontend_url" env:"FRONTEND_URL"`
		AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ORIGINS" envSeparator:","`
	} `yaml:"server"`

	Database struct {
		Driver      string `yaml:"driver" env:"DB_DRIVER"` // postgres, mysql, sqlite
		DSN         string `yaml:"url" env:"DATABASE_URL"`
		AutoMigrate bool   `yaml:"auto_migrate" env:"DB_AUTO_MIGRATE"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host" env:"SMTP_HOST"`
		SMTPPort     int    `yaml:"smtp_port" env:"SMTP_PORT"`
		SMTPUsername string `yaml:"smtp_user" env:"EMAIL_USER"`
		SMTPPassword string `yaml:"smtp_password" env:"EMAIL_PASS"`
		FromEmail    string `yaml:"from_email" env:"EMAIL_FROM"`
		FromName     string `yaml:"from_name" env:"EMAIL_FROM_NAME"`
	} `yaml:"email"`

	JWT struct {
		Secret string        `yaml:"secret" env:"JWT_SECRET"`
		TTL    time.Duration `yaml:"ttl" env:"JWT_TTL"`
	} `yaml:"jwt"`

	Auth struct {
		ResetTokenTTL        time.Duration `yaml:"reset_token_ttl" env:"RESET_TOKEN_TTL"`
		ResetCleanupSchedule string        `yaml:"reset_cleanup_schedule" env:"RESET_CLEANUP_SCHEDULE"`
		RateLimitRPS         float64       `yaml:"rate_limit_rps" env:"AUTH_RATE_LIMIT_RPS"`
		RateLimitBurst       int           `yaml:"rate_limit_burst" env:"AUTH_RATE_LIMIT_BURST"`
		PhoneDefaultRegion   string        `yaml:"phone_default_region" env:"PHONE_DEFAULT_REGION"`
	} `yaml:"auth"`

	Storage struct {
		Type      string `yaml:"type" env:"STORAGE_TYPE"`           // s3, local, memory
		BasePath  string `yaml:"base_path" env:"STORAGE_BASE_PATH"` // для local
		BaseURL   string `yaml:"base_url" env:"STORAGE_BASE_URL"`   // публичный префикс URL
		Bucket    string `yaml:"bucket" env:"AWS_BUCKET_NAME"`
		Region    string `yaml:"region" env:"AWS_REGION"`
		AccessKey string `yaml:"access_key" env:"AWS_ACCESS_KEY_ID"`
		SecretKey string `yaml:"secret_key" env:"AWS_SECRET_ACCESS_KEY"`
		Endpoint  string `yaml:"endpoint" env:"S3_ENDPOINT"` // S3-совместимые хранилища (R2, MinIO)
	} `yaml:"storage"`

	Upload struct {
		ImageMaxSize        int64 `yaml:"image_max_size" env:"UPLOAD_IMAGE_MAX_SIZE"`
		StudentImageMaxSize int64 `yaml:"student_image_max_size" env:"UPLOAD_STUDENT_IMAGE_MAX_SIZE"`
		MediaMaxSize        int64 `yaml:"media_max_size" env:"UPLOAD_MEDIA_MAX_SIZE"`
	} `yaml:"upload"`

	FirstAdminEmail    string `yaml:"first_admin_email" env:"FIRST_ADMIN_EMAIL"`
	FirstAdminPassword string `yaml:"first_admin_password" env:"FIRST_ADMIN_PASSWORD"`
}

// Default возвращает конфигурацию для локальной разработки
func Default() *Config {
	var cfg Config

	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 5000
	cfg.Server.Env = "development"
	cfg.Server.FrontendURL = "http://localhost:3000"

	cfg.Database.Driver = "postgres"
	cfg.Database.AutoMigrate = true

	cfg.Email.SMTPHost = "smtp.gmail.com"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromName = "Jharkhand IT Solutions"

	cfg.JWT.Secret = DevJWTSecret
	cfg.JWT.TTL = 7 * 24 * time.Hour

	cfg.Auth.ResetTokenTTL = 10 * time.Minute
	cfg.Auth.ResetCleanupSchedule = "@every 10m"
	cfg.Auth.RateLimitRPS = 1
	cfg.Auth.RateLimitBurst = 10
	cfg.Auth.PhoneDefaultRegion = "IN"

	cfg.Storage.Type = "s3"
	cfg.Storage.BasePath = "./uploads"

	cfg.Upload.ImageMaxSize = 20 << 20
	cfg.Upload.StudentImageMaxSize = 10 << 20
	cfg.Upload.MediaMaxSize = 100 << 20

	return &cfg
}

// Load собирает конфигурацию: значения по умолчанию, затем YAML-файл (если есть),
// затем .env и переменные окружения. Последний источник побеждает.
func Load() (*Config, error) {
	cfg := Default()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	if err := loadFile(cfg, configPath); err != nil {
		return nil, err
	}

	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	return nil
}

// Validate проверяет обязательные настройки
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.IsProduction() && c.JWT.Secret == DevJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.Storage.Type == "s3" && c.Storage.Bucket == "" {
		return errors.New("AWS_BUCKET_NAME is required for s3 storage")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// CORSOrigins - локальный фронтенд, FRONTEND_URL и дополнительные источники из CORS_ORIGINS
func (c *Config) CORSOrigins() []string {
	seen := make(map[string]bool)
	var origins []string
	for _, o := range append([]string{"http://localhost:3000", c.Server.FrontendURL}, c.Server.AllowedOrigins...) {
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		origins = append(origins, o)
	}
	return origins
}
