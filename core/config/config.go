package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// TelegramConfig holds Telegram bot related settings.
type TelegramConfig struct {
	Token   string `yaml:"token" envconfig:"TELEGRAM_TOKEN"`
	RunMode string `yaml:"run_mode" envconfig:"TELEGRAM_RUN_MODE"`
	// LongPollTimeoutSeconds defines long polling timeout; 0 -> default
	LongPollTimeoutSeconds int `yaml:"longpoll_timeout_seconds" envconfig:"TELEGRAM_LONGPOLL_TIMEOUT_SECONDS"`
}

// WebhookConfig specifies webhook (push mode) settings.
type WebhookConfig struct {
	URL    string `yaml:"url" envconfig:"WEBHOOK_URL"`
	Listen string `yaml:"listen" envconfig:"WEBHOOK_LISTEN"`
	Port   int    `yaml:"port" envconfig:"PORT"`
	// HealthListen is the listen address of the liveness endpoint
	// started alongside the webhook listener.
	HealthListen string `yaml:"health_listen" envconfig:"HEALTH_LISTEN"`
}

// CatalogConfig carries the WooCommerce REST credentials. The consumer
// key pair authorizes standard catalog calls; the media pair is a
// WordPress user used only for media uploads.
type CatalogConfig struct {
	BaseURL        string `yaml:"base_url" envconfig:"WP_URL"`
	ConsumerKey    string `yaml:"consumer_key" envconfig:"WP_CONSUMER_KEY"`
	ConsumerSecret string `yaml:"consumer_secret" envconfig:"WP_CONSUMER_SECRET"`
	MediaUser      string `yaml:"media_user" envconfig:"WP_USERNAME"`
	MediaPassword  string `yaml:"media_password" envconfig:"WP_PASSWORD"`
}

// AccessConfig holds the operator allow-list.
type AccessConfig struct {
	AllowedUsers []int64 `yaml:"allowed_users" envconfig:"ALLOWED_USERS"`
}

// LoggingConfig defines logging related configuration.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	KeysOrder   string `yaml:"keys_order"`
	DebugSample string `yaml:"debug_sample"`
	Dir         string `yaml:"dir"`
	BotFile     string `yaml:"bot_file"`
	// Profile indicates environment profile such as "debug" or "prod".
	Profile string `yaml:"profile"`
}

const (
	// RunModeWebhook selects webhook (push) mode for Telegram updates.
	RunModeWebhook = "webhook"
	// RunModeLongpoll selects long-polling (pull) mode for Telegram updates.
	RunModeLongpoll = "longpoll"
)

// Config aggregates the whole bot configuration.
type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Webhook  WebhookConfig  `yaml:"webhook"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Access   AccessConfig   `yaml:"access"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CoreConfig returns the configuration itself, satisfying the runner's
// carrier interface.
func (c *Config) CoreConfig() *Config { return c }

// Load reads configuration from an optional .env file, an optional YAML
// file, and environment variables. Environment values win over YAML.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse YAML config: %w", err)
			}
		case os.IsNotExist(err):
			// env-only deployment
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize performs basic validation of required configuration fields and adjusts defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}

	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram token is required")
	}
	if strings.TrimSpace(cfg.Catalog.BaseURL) == "" {
		return fmt.Errorf("catalog.base_url is required")
	}
	cfg.Catalog.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Catalog.BaseURL), "/")
	if cfg.Catalog.ConsumerKey == "" || cfg.Catalog.ConsumerSecret == "" {
		return fmt.Errorf("catalog consumer key pair is required")
	}
	if cfg.Catalog.MediaUser == "" || cfg.Catalog.MediaPassword == "" {
		return fmt.Errorf("catalog media credential pair is required")
	}

	rm := strings.ToLower(strings.TrimSpace(cfg.Telegram.RunMode))
	if rm == "" {
		rm = RunModeLongpoll
	}
	if rm == "polling" { // accept alias
		rm = RunModeLongpoll
	}
	switch rm {
	case RunModeWebhook:
		if strings.TrimSpace(cfg.Webhook.URL) == "" {
			return fmt.Errorf("webhook.url is required when telegram.run_mode is 'webhook'")
		}
		if strings.TrimSpace(cfg.Webhook.Listen) == "" {
			cfg.Webhook.Listen = "0.0.0.0"
		}
		if cfg.Webhook.Port <= 0 {
			cfg.Webhook.Port = 8443
		}
		if strings.TrimSpace(cfg.Webhook.HealthListen) == "" {
			cfg.Webhook.HealthListen = ":8081"
		}
	case RunModeLongpoll:
		if cfg.Telegram.LongPollTimeoutSeconds < 0 {
			return fmt.Errorf("telegram.longpoll_timeout_seconds must be >= 0")
		}
	default:
		return fmt.Errorf("invalid telegram.run_mode %q; allowed: webhook, longpoll", cfg.Telegram.RunMode)
	}
	cfg.Telegram.RunMode = rm

	return nil
}
