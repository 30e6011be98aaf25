package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds everything the server needs, loaded from environment
// variables layered over built-in defaults.
type Config struct {
	HTTPPort        string        `koanf:"http.port"`
	RequestTimeout  time.Duration `koanf:"http.request_timeout"`
	ShutdownTimeout time.Duration `koanf:"http.shutdown_timeout"`

	MongoURI    string `koanf:"mongo.uri"`
	MongoDBName string `koanf:"mongo.db_name"`

	RedisAddr     string `koanf:"redis.addr"`
	RedisPassword string `koanf:"redis.password"`

	RazorpayKeyID     string `koanf:"razorpay.key_id"`
	RazorpayKeySecret string `koanf:"razorpay.key_secret"`

	MailjetAPIKey    string `koanf:"mailjet.api_key"`
	MailjetSecretKey string `koanf:"mailjet.secret_key"`
	SenderEmail      string `koanf:"mail.sender_email"`
	SenderName       string `koanf:"mail.sender_name"`
	AdminEmail       string `koanf:"mail.admin_email"`

	OrderTTL     time.Duration `koanf:"checkout.order_ttl"`
	FetchTimeout time.Duration `koanf:"checkout.fetch_timeout"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"http.port":              "5000",
		"http.request_timeout":   60 * time.Second,
		"http.shutdown_timeout":  15 * time.Second,
		"mongo.uri":              "mongodb://localhost:27017",
		"mongo.db_name":          "miraara",
		"mail.sender_name":       "Miraara Studios",
		"checkout.order_ttl":     time.Hour,
		"checkout.fetch_timeout": 30 * time.Second,
	}
}

// envMappings maps environment variable names (lowercased) to config paths.
// Unmapped variables are dropped so random env vars don't leak into config.
var envMappings = map[string]string{
	"http_port":           "http.port",
	"request_timeout":     "http.request_timeout",
	"shutdown_timeout":    "http.shutdown_timeout",
	"mongo_uri":           "mongo.uri",
	"mongo_db_name":       "mongo.db_name",
	"redis_addr":          "redis.addr",
	"redis_password":      "redis.password",
	"razorpay_key_id":     "razorpay.key_id",
	"razorpay_key_secret": "razorpay.key_secret",
	"mailjet_api_key":     "mailjet.api_key",
	"mailjet_secret_key":  "mailjet.secret_key",
	"sender_email":        "mail.sender_email",
	"sender_name":         "mail.sender_name",
	"admin_email":         "mail.admin_email",
	"order_ttl":           "checkout.order_ttl",
	"fetch_timeout":       "checkout.fetch_timeout",
}

// Load builds the configuration: defaults first, then environment
// variables on top.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	envProvider := env.Provider("", ".", func(key string) string {
		if mapped, ok := envMappings[strings.ToLower(key)]; ok {
			return mapped
		}
		return ""
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	unmarshalConf := koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}
	if err := k.UnmarshalWithConf("", cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPPort == "" {
		return fmt.Errorf("http port must not be empty")
	}
	if c.OrderTTL <= 0 {
		return fmt.Errorf("order TTL must be positive, got %s", c.OrderTTL)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %s", c.FetchTimeout)
	}
	return nil
}
