package reference

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// mockProvider implements Provider interface for testing
type mockProvider struct {
	name           string
	output         string
	phonemizeErr   error
	availableErr   error
	phonemizeCalls int
}

func (m *mockProvider) Phonemize(ctx context.Context, word string) (string, error) {
	m.phonemizeCalls++
	return m.output, m.phonemizeErr
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) IsAvailable() error {
	return m.availableErr
}

func TestDefaultProviderConfig(t *testing.T) {
	config := DefaultProviderConfig()

	if config.Provider != "espeak-ng" {
		t.Errorf("Expected provider 'espeak-ng', got '%s'", config.Provider)
	}
	if config.Voice != "en-us" {
		t.Errorf("Expected voice 'en-us', got '%s'", config.Voice)
	}
	if !config.Fallback {
		t.Error("Expected fallback to be enabled")
	}
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		wantName string
		wantErr  bool
	}{
		{"nil config uses defaults", nil, "espeak-ng (fallback: espeak)", false},
		{"espeak without fallback", &Config{Provider: "espeak"}, "espeak", false},
		{"espeak with fallback", &Config{Provider: "espeak", Fallback: true}, "espeak (fallback: espeak-ng)", false},
		{"unknown provider", &Config{Provider: "festival"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !strings.Contains(err.Error(), "unknown reference provider") {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}

func TestProviderWithFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("primary succeeds", func(t *testing.T) {
		primary := &mockProvider{name: "primary", output: "k'at"}
		fallback := &mockProvider{name: "fallback"}
		p := NewProviderWithFallback(primary, fallback)

		got, err := p.Phonemize(ctx, "cat")
		if err != nil || got != "k'at" {
			t.Errorf("Phonemize() = %q, %v", got, err)
		}
		if fallback.phonemizeCalls != 0 {
			t.Error("Fallback should not be called")
		}
	})

	t.Run("primary fails", func(t *testing.T) {
		primary := &mockProvider{name: "primary", phonemizeErr: errors.New("boom")}
		fallback := &mockProvider{name: "fallback", output: "d'0g"}
		p := NewProviderWithFallback(primary, fallback)

		got, err := p.Phonemize(ctx, "dog")
		if err != nil || got != "d'0g" {
			t.Errorf("Phonemize() = %q, %v", got, err)
		}
		if primary.phonemizeCalls != 1 || fallback.phonemizeCalls != 1 {
			t.Errorf("Unexpected calls: primary=%d fallback=%d", primary.phonemizeCalls, fallback.phonemizeCalls)
		}
	})

	t.Run("cancelled context skips fallback", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		primary := &mockProvider{name: "primary", phonemizeErr: context.Canceled}
		fallback := &mockProvider{name: "fallback"}
		p := NewProviderWithFallback(primary, fallback)

		if _, err := p.Phonemize(cctx, "dog"); !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
		if fallback.phonemizeCalls != 0 {
			t.Error("Fallback should not be called after cancellation")
		}
	})
}

func TestProviderWithFallbackIsAvailable(t *testing.T) {
	down := errors.New("down")
	tests := []struct {
		name       string
		primaryErr error
		backupErr  error
		wantErr    bool
	}{
		{"both available", nil, nil, false},
		{"primary only", nil, down, false},
		{"fallback only", down, nil, false},
		{"neither", down, down, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProviderWithFallback(
				&mockProvider{name: "a", availableErr: tt.primaryErr},
				&mockProvider{name: "b", availableErr: tt.backupErr},
			)
			if err := p.IsAvailable(); (err != nil) != tt.wantErr {
				t.Errorf("IsAvailable() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
