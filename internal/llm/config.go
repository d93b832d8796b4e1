// Package llm provides the client abstraction for the remote text-generation
// service and its configuration.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// DefaultModel is used when no model is configured explicitly.
const DefaultModel = "gemini-2.5-flash"

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultModel,
	}
}

// WithModel returns a new Config with the given model, falling back to the
// default when model is empty.
func (c *Config) WithModel(model string) *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Model:    model,
	}
	if newConfig.Model == "" {
		newConfig.Model = DefaultModel
	}
	return newConfig
}
