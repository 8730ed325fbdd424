package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type CatalogConfig struct {
	BaseURL       string
	CatalogItemID string
	Username      string
	Password      string
	Timeout       time.Duration
}

type SubmissionConfig struct {
	UploadDir string
	LogPath   string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Catalog     CatalogConfig
	Submission  SubmissionConfig
}

func Load() (*Config, error) {
	v := newViper()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:           v.GetString("HTTP_HOST"),
			Port:           v.GetInt("HTTP_PORT"),
			AllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Catalog: CatalogConfig{
			BaseURL:       strings.TrimRight(v.GetString("CATALOG_BASE_URL"), "/"),
			CatalogItemID: v.GetString("CATALOG_ITEM_ID"),
			Username:      v.GetString("CATALOG_USERNAME"),
			Password:      v.GetString("CATALOG_PASSWORD"),
			Timeout:       v.GetDuration("CATALOG_TIMEOUT"),
		},
		Submission: SubmissionConfig{
			UploadDir: v.GetString("UPLOAD_DIR"),
			LogPath:   v.GetString("SUBMISSION_LOG_PATH"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 3000
	}
	if cfg.Catalog.Timeout <= 0 {
		cfg.Catalog.Timeout = 30 * time.Second
	}
	if cfg.Submission.UploadDir == "" {
		cfg.Submission.UploadDir = "uploads"
	}
	if cfg.Submission.LogPath == "" {
		cfg.Submission.LogPath = "submission_log.txt"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ClientConfig is the configuration of the onboarding CLI.
type ClientConfig struct {
	Environment string
	ServerURL   string
	Timeout     time.Duration
}

func LoadClient() *ClientConfig {
	v := newViper()

	cfg := &ClientConfig{
		Environment: v.GetString("APP_ENV"),
		ServerURL:   strings.TrimRight(v.GetString("ONBOARDING_SERVER_URL"), "/"),
		Timeout:     v.GetDuration("ONBOARDING_CLIENT_TIMEOUT"),
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://localhost:3000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	_ = v.ReadInConfig()
	return v
}

func validate(cfg *Config) error {
	if cfg.Catalog.BaseURL == "" {
		return fmt.Errorf("CATALOG_BASE_URL is required")
	}
	if cfg.Catalog.CatalogItemID == "" {
		return fmt.Errorf("CATALOG_ITEM_ID is required")
	}
	if cfg.Catalog.Username == "" || cfg.Catalog.Password == "" {
		return fmt.Errorf("CATALOG_USERNAME and CATALOG_PASSWORD are required")
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
