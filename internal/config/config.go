// Package config loads application configuration from a YAML file with
// environment overrides for secrets. A .env file is honored when present.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port        int `yaml:"port"`
		MetricsPort int `yaml:"metrics_port"`
	} `yaml:"server"`

	Database struct {
		Dialect string `yaml:"dialect"` // sqlite3 or postgres
		Source  string `yaml:"source"`
	} `yaml:"database"`

	Auth struct {
		SessionSecret string `yaml:"session_secret"`
		AdminPassword string `yaml:"admin_password"`
		AdminCode     string `yaml:"admin_registration_code"`
	} `yaml:"auth"`

	Email struct {
		ResendAPIKey string `yaml:"resend_api_key"`
		From         string `yaml:"from"`
		To           string `yaml:"to"`
	} `yaml:"email"`

	Pushover struct {
		UserKey  string `yaml:"user_key"`
		APIToken string `yaml:"api_token"`
	} `yaml:"pushover"`

	Telegram struct {
		Token  string `yaml:"token"`
		ChatID int64  `yaml:"chat_id"`
	} `yaml:"telegram"`

	Images struct {
		OpenAIKey     string `yaml:"openai_key"`
		OpenAIBaseURL string `yaml:"openai_base_url"`
		Cloudinary    struct {
			CloudName string `yaml:"cloud_name"`
			APIKey    string `yaml:"api_key"`
			APISecret string `yaml:"api_secret"`
		} `yaml:"cloudinary"`
	} `yaml:"images"`
}

// Load reads the YAML file at path (missing file is not an error) and then
// applies environment overrides.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.MetricsPort = 9090
	cfg.Database.Dialect = "sqlite3"
	cfg.Database.Source = "soupshoppe.db"
	cfg.Email.From = "Soup Shoppe <onboarding@resend.dev>"

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	overrideString(&cfg.Database.Dialect, "DB_DIALECT")
	overrideString(&cfg.Database.Source, "DATABASE_URL")
	overrideString(&cfg.Auth.SessionSecret, "SESSION_SECRET")
	overrideString(&cfg.Auth.AdminPassword, "ADMIN_PASSWORD")
	overrideString(&cfg.Auth.AdminCode, "ADMIN_REGISTRATION_CODE")
	overrideString(&cfg.Email.ResendAPIKey, "RESEND_API_KEY")
	overrideString(&cfg.Email.To, "NOTIFY_EMAIL")
	overrideString(&cfg.Pushover.UserKey, "PUSHOVER_USER_KEY")
	overrideString(&cfg.Pushover.APIToken, "PUSHOVER_API_TOKEN")
	overrideString(&cfg.Telegram.Token, "TELEGRAM_TOKEN")
	overrideInt64(&cfg.Telegram.ChatID, "TELEGRAM_CHAT_ID")
	overrideString(&cfg.Images.OpenAIKey, "OPENAI_API_KEY")
	overrideString(&cfg.Images.OpenAIBaseURL, "OPENAI_BASE_URL")
	overrideString(&cfg.Images.Cloudinary.CloudName, "CLOUDINARY_CLOUD_NAME")
	overrideString(&cfg.Images.Cloudinary.APIKey, "CLOUDINARY_API_KEY")
	overrideString(&cfg.Images.Cloudinary.APISecret, "CLOUDINARY_API_SECRET")

	if cfg.Auth.SessionSecret == "" {
		return nil, fmt.Errorf("session secret is required (set SESSION_SECRET)")
	}
	return cfg, nil
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt64(dst *int64, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		*dst = n
	}
}
