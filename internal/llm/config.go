// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy switching between model tiers and providers.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: classification, extraction, basic summarization
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: selection, structured rewriting
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: full-document parsing, planning
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic is the Anthropic/Claude provider (future)
	ProviderAnthropic Provider = "anthropic"
)

// defaultTemperature is used when a tier has no configured temperature.
const defaultTemperature float32 = 0.1

// Config holds the model configuration for the application
type Config struct {
	Provider     Provider
	Models       map[ModelTier]string
	Temperatures map[ModelTier]float32
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperatures: defaultTemperatures(),
	}
}

// DefaultOpenAIConfig returns the default OpenAI configuration
func DefaultOpenAIConfig() *Config {
	return &Config{
		Provider: ProviderOpenAI,
		Models: map[ModelTier]string{
			TierLite:     "gpt-4o-mini-2024-07-18",
			TierStandard: "gpt-4-turbo",
			TierAdvanced: "gpt-4-turbo",
		},
		Temperatures: defaultTemperatures(),
	}
}

// defaultTemperatures maps tiers to sampling temperatures. Extraction tasks
// run deterministic, rewriting tasks get a little freedom.
func defaultTemperatures() map[ModelTier]float32 {
	return map[ModelTier]float32{
		TierLite:     0,
		TierStandard: 0.2,
		TierAdvanced: 0.4,
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return "" // No model configured
}

// GetTemperature returns the sampling temperature for a given tier
func (c *Config) GetTemperature(tier ModelTier) float32 {
	if temp, ok := c.Temperatures[tier]; ok {
		return temp
	}
	return defaultTemperature
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider:     c.Provider,
		Models:       make(map[ModelTier]string),
		Temperatures: make(map[ModelTier]float32),
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	for k, v := range c.Temperatures {
		newConfig.Temperatures[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
