package mailer

import "time"

// Config holds settings for the transactional-email client.
type Config struct {
	// APIKey authenticates against the Resend API. An empty key is allowed
	// at construction time; every send will then fail at the provider.
	APIKey string `yaml:"api_key" json:"api_key"`
	// From is the fixed sender identity, e.g. "Site <onboarding@resend.dev>"
	From string `yaml:"from" json:"from"`
	// To is the site operator's address receiving relayed messages
	To string `yaml:"to" json:"to"`
	// Timeout is the per-send timeout
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		From:    "Exhibition Website <onboarding@resend.dev>",
		Timeout: 10 * time.Second,
	}
}
