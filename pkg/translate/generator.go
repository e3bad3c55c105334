package translate

import (
	"fmt"
	"time"
)

// supported generator providers
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// GeneratorOpts configures a model client
type GeneratorOpts struct {
	Provider    string // gemini (default) or openai
	APIKey      string
	BaseURL     string // alternate API base, provider default if empty
	APIVersion  string // gemini API version path segment, v1beta if empty
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// NewGenerator creates a generator for the configured provider.
// Returns nil generator without error if no API key is set, translation is disabled in this case.
func NewGenerator(opts GeneratorOpts) (Generator, error) {
	if opts.APIKey == "" {
		return nil, nil
	}

	switch opts.Provider {
	case "", ProviderGemini:
		return NewGeminiClient(opts), nil
	case ProviderOpenAI:
		return NewOpenAIClient(opts), nil
	default:
		return nil, fmt.Errorf("unknown translation provider %q", opts.Provider)
	}
}
