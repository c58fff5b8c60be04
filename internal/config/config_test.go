package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_ReadsAllVariables(t *testing.T) {
	t.Setenv("LINKEDIN_EMAIL", "user@example.com")
	t.Setenv("LINKEDIN_PASSWORD", "hunter2hunter2")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "gm-test")
	t.Setenv("SESSION_DIR", "/tmp/agent-sessions")
	t.Setenv("OUTPUT_DIR", "/tmp/agent-output")

	cfg := FromEnv()

	assert.Equal(t, "user@example.com", cfg.LinkedInEmail)
	assert.Equal(t, "hunter2hunter2", cfg.LinkedInPassword)
	assert.Equal(t, "sk-test", cfg.OpenAIKey)
	assert.Equal(t, "gm-test", cfg.GeminiKey)
	assert.Equal(t, "/tmp/agent-sessions", cfg.SessionDir)
	assert.Equal(t, "/tmp/agent-output", cfg.OutputDir)
}

func TestFromEnv_OutputDirDefault(t *testing.T) {
	t.Setenv("SESSION_DIR", "")
	t.Setenv("OUTPUT_DIR", "")

	cfg := FromEnv()

	// The session store owns its own default, so config passes empty through.
	assert.Empty(t, cfg.SessionDir)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
}

func TestValidate_MinimalConfigPasses(t *testing.T) {
	// No credentials and no keys is a valid configuration; commands that
	// need them fail at point of use instead.
	cfg := &Config{OutputDir: "output"}

	require.NoError(t, cfg.Validate())
}

func TestValidate_BadEmailRejected(t *testing.T) {
	cfg := &Config{
		LinkedInEmail: "not-an-email",
		OutputDir:     "output",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestValidate_MissingOutputDirRejected(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()
	assert.Error(t, err)
}

func TestHasLinkedInCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{name: "both set", email: "user@example.com", password: "secret", want: true},
		{name: "email only", email: "user@example.com", want: false},
		{name: "password only", password: "secret", want: false},
		{name: "neither", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{LinkedInEmail: tt.email, LinkedInPassword: tt.password}
			assert.Equal(t, tt.want, cfg.HasLinkedInCredentials())
		})
	}
}

func TestRequireOpenAIKey(t *testing.T) {
	cfg := &Config{OpenAIKey: "sk-test"}
	key, err := cfg.RequireOpenAIKey()
	require.NoError(t, err)
	assert.Equal(t, "sk-test", key)

	_, err = (&Config{}).RequireOpenAIKey()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestRequireGeminiKey(t *testing.T) {
	cfg := &Config{GeminiKey: "gm-test"}
	key, err := cfg.RequireGeminiKey()
	require.NoError(t, err)
	assert.Equal(t, "gm-test", key)

	_, err = (&Config{}).RequireGeminiKey()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
