package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultModel is the image-capable model used when
	// NANO_BANANA_MODEL_ID is not set.
	DefaultModel = "google/gemini-2.5-flash-image-preview"

	// DefaultBaseURL is the OpenRouter API root.
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultTimeout bounds a single chat completion round trip. Image
	// generation is slow, so this is deliberately generous.
	DefaultTimeout = 120 * time.Second
)

// Config carries everything the server needs at runtime. It is built
// once at process entry and passed down explicitly; nothing else reads
// the environment after Load returns.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Load builds the configuration from the environment. The API key is
// required; everything else has a default.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("model", DefaultModel)
	v.SetDefault("base_url", DefaultBaseURL)

	// BindEnv only fails on an empty key name.
	_ = v.BindEnv("api_key", "OPENROUTER_API_KEY")
	_ = v.BindEnv("model", "NANO_BANANA_MODEL_ID")
	_ = v.BindEnv("base_url", "OPENROUTER_BASE_URL")

	cfg := &Config{
		APIKey:  v.GetString("api_key"),
		Model:   v.GetString("model"),
		BaseURL: v.GetString("base_url"),
		Timeout: DefaultTimeout,
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY environment variable is not set")
	}

	return cfg, nil
}
