// Package llm provides optional LLM-written recommendation text for
// synthesized assessment records. It is strictly additive: any provider
// failure degrades to the static recommendation table, and nothing else in
// the toolchain depends on it.
package llm

import (
	"context"
	"fmt"

	"github.com/fleetlab/ocmr/internal/model"
)

// Provider generates one maintenance recommendation sentence for a record
// with the given assessment status and parameter summary.
type Provider interface {
	Name() string
	Recommend(ctx context.Context, status string, summary string) (string, error)
}

// NewProvider constructs the configured provider. Only OpenAI-compatible
// endpoints are supported; BaseURL redirects to self-hosted ones.
func NewProvider(cfg model.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		return newOpenAIProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", cfg.Provider)
	}
}
