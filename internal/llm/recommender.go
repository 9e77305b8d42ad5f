package llm

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/fleetlab/ocmr/internal/model"
)

// Recommender wraps a provider with rate limiting so record generation
// cannot hammer the completion endpoint.
type Recommender struct {
	provider Provider
	limiter  *rate.Limiter
}

// NewRecommender builds a rate-limited recommender from config
func NewRecommender(cfg model.LLMConfig) (*Recommender, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}

	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &Recommender{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}, nil
}

// Name returns the underlying provider name
func (r *Recommender) Name() string {
	return r.provider.Name()
}

// Recommend waits for rate-limit clearance, then asks the provider
func (r *Recommender) Recommend(ctx context.Context, status string, summary string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return r.provider.Recommend(ctx, status, summary)
}
