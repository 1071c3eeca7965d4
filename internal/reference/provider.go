// Package reference obtains pronunciations from external phonemizers so
// converter output can be compared against them.
package reference

import (
	"context"
	"fmt"
	"log/slog"
)

// Provider defines the interface for reference phonemizers
type Provider interface {
	// Phonemize returns the provider's transcription of word
	Phonemize(ctx context.Context, word string) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds configuration for reference providers
type Config struct {
	Provider string // Provider name: "espeak-ng" or "espeak"
	Voice    string // Voice passed to -v
	Fallback bool   // Fall back to the other espeak binary on failure
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider: "espeak-ng",
		Voice:    "en-us",
		Fallback: true,
	}
}

// NewProvider creates the appropriate reference provider based on configuration
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	var primary, secondary string
	switch config.Provider {
	case "espeak-ng":
		primary, secondary = "espeak-ng", "espeak"
	case "espeak":
		primary, secondary = "espeak", "espeak-ng"
	default:
		return nil, fmt.Errorf("unknown reference provider: %s", config.Provider)
	}

	p := NewESpeak(&ESpeakConfig{Binary: primary, Voice: config.Voice})
	if !config.Fallback {
		return p, nil
	}
	return NewProviderWithFallback(p, NewESpeak(&ESpeakConfig{Binary: secondary, Voice: config.Voice})), nil
}

// ProviderWithFallback wraps a primary provider with a fallback option
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
	log      *slog.Logger
}

// NewProviderWithFallback creates a provider that falls back to secondary if primary fails
func NewProviderWithFallback(primary, fallback Provider) Provider {
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
		log:      slog.Default(),
	}
}

// Phonemize tries primary provider first, falls back to secondary on error
func (p *ProviderWithFallback) Phonemize(ctx context.Context, word string) (string, error) {
	out, err := p.primary.Phonemize(ctx, word)
	if err == nil {
		return out, nil
	}
	if ctx.Err() != nil {
		return "", err
	}

	p.log.Warn("primary reference provider failed",
		"provider", p.primary.Name(),
		"fallback", p.fallback.Name(),
		"error", err,
	)
	return p.fallback.Phonemize(ctx, word)
}

// Name returns the provider name
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
