// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// DefaultOutputDir is used when the environment does not override it.
const DefaultOutputDir = "output"

// Config carries every externally provided setting the agent needs. Values
// come from the process environment, populated from a .env file by the CLI
// entry point. No code below this package reads environment variables
// directly.
type Config struct {
	// Credentials for the gated job board. Only required when a gated URL
	// is actually scraped, so both may be empty for text and file sources.
	LinkedInEmail    string `validate:"omitempty,email"`
	LinkedInPassword string

	// LLM provider keys. Checked by the operations that need them.
	OpenAIKey string
	GeminiKey string

	// SessionDir holds the day-keyed browser profile directories. Empty
	// selects the session store's own default.
	SessionDir string
	// OutputDir receives generated resumes and fetched job postings.
	OutputDir string `validate:"required"`
}

// FromEnv reads configuration from the process environment. Call this after
// .env loading has run so file-based values are visible.
func FromEnv() *Config {
	cfg := &Config{
		LinkedInEmail:    os.Getenv("LINKEDIN_EMAIL"),
		LinkedInPassword: os.Getenv("LINKEDIN_PASSWORD"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		GeminiKey:        os.Getenv("GEMINI_API_KEY"),
		SessionDir:       os.Getenv("SESSION_DIR"),
		OutputDir:        os.Getenv("OUTPUT_DIR"),
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	return cfg
}

// Validate checks structural validity of whatever was provided. Presence of
// credentials and API keys is enforced by the operations that need them, not
// here, so commands that need no secrets run without any configured.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// HasLinkedInCredentials reports whether both gated-site credentials are set.
func (c *Config) HasLinkedInCredentials() bool {
	return c.LinkedInEmail != "" && c.LinkedInPassword != ""
}

// RequireOpenAIKey returns the OpenAI API key, or an error naming the
// missing environment variable.
func (c *Config) RequireOpenAIKey() (string, error) {
	if c.OpenAIKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY is not set")
	}
	return c.OpenAIKey, nil
}

// RequireGeminiKey returns the Gemini API key, or an error naming the
// missing environment variable.
func (c *Config) RequireGeminiKey() (string, error) {
	if c.GeminiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY is not set")
	}
	return c.GeminiKey, nil
}
