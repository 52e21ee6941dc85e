package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr         string        `yaml:"addr"`
	APITimeout   time.Duration `yaml:"timeout"`
	DatabasePath string        `yaml:"database_path"`
	Auth         AuthConfig    `yaml:"auth"`
	Mail         MailConfig    `yaml:"mail"`
}

// AuthConfig holds the static credentials for the admin Basic-auth gate.
// Empty credentials mean every admin request is rejected.
type AuthConfig struct {
	User  string `yaml:"user"`
	Pass  string `yaml:"pass"`
	Realm string `yaml:"realm"`
}

// MailConfig configures the outbound contact-form relay.
type MailConfig struct {
	APIKey  string        `yaml:"api_key"`
	From    string        `yaml:"from"`
	To      string        `yaml:"to"`
	Timeout time.Duration `yaml:"timeout"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:         getEnv("EXPO_ADDR", ":8080"),
		APITimeout:   15 * time.Second,
		DatabasePath: getEnv("EXPO_DATABASE_PATH", "exhibition.db"),
		Auth: AuthConfig{
			User:  os.Getenv("EXPO_BASIC_AUTH_USER"),
			Pass:  os.Getenv("EXPO_BASIC_AUTH_PASS"),
			Realm: "Secure Area",
		},
		Mail: MailConfig{
			APIKey:  os.Getenv("EXPO_RESEND_API_KEY"),
			From:    getEnv("EXPO_MAIL_FROM", "Exhibition Website <onboarding@resend.dev>"),
			To:      getEnv("EXPO_MAIL_TO", "hauts0726@gmail.com"),
			Timeout: 10 * time.Second,
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate checks the configuration for values that must not reach
// production. Development tolerates missing credentials: the gate then
// rejects every admin request and the relay fails every send, which is the
// documented degraded behavior.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}

	if os.Getenv("EXPO_ENV") != "production" {
		return nil
	}
	if c.Auth.User == "" || c.Auth.Pass == "" {
		return fmt.Errorf("basic auth credentials are required in production")
	}
	if c.Mail.APIKey == "" {
		return fmt.Errorf("mail api key is required in production")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
