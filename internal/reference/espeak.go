package reference

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// ESpeakConfig holds configuration for the espeak phonemizer
type ESpeakConfig struct {
	Binary      string        // espeak-ng or espeak
	Voice       string        // Voice variant (e.g., "en-us", "en-gb")
	MaxFailures uint32        // Consecutive failures before the breaker opens
	OpenTimeout time.Duration // How long the breaker stays open
}

// DefaultConfig returns the default configuration for American English
func DefaultConfig() *ESpeakConfig {
	return &ESpeakConfig{
		Binary:      "espeak-ng",
		Voice:       "en-us",
		MaxFailures: 3,
		OpenTimeout: 30 * time.Second,
	}
}

type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// ESpeak reads mnemonic phonemes from espeak with "-q -x". Calls go
// through a circuit breaker so a broken binary stops being invoked.
type ESpeak struct {
	config *ESpeakConfig
	cb     *gobreaker.CircuitBreaker
	run    commandRunner
}

// NewESpeak creates a new ESpeak instance with the given configuration.
// Zero fields take their defaults.
func NewESpeak(config *ESpeakConfig) *ESpeak {
	def := DefaultConfig()
	if config == nil {
		config = def
	}
	cfg := *config
	if cfg.Binary == "" {
		cfg.Binary = def.Binary
	}
	if cfg.Voice == "" {
		cfg.Voice = def.Voice
	}
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = def.MaxFailures
	}
	if cfg.OpenTimeout == 0 {
		cfg.OpenTimeout = def.OpenTimeout
	}

	e := &ESpeak{config: &cfg, run: execRunner}
	e.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    cfg.Binary,
		Timeout: cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("reference breaker state changed", "provider", name, "from", from.String(), "to", to.String())
		},
	})
	return e
}

// Phonemize runs espeak for a single word
func (e *ESpeak) Phonemize(ctx context.Context, word string) (string, error) {
	if err := ValidateWord(word); err != nil {
		return "", err
	}

	out, err := e.cb.Execute(func() (interface{}, error) {
		args := []string{"-q", "-x", "-v", e.config.Voice, word}
		output, err := e.run(ctx, e.config.Binary, args...)
		if err != nil {
			return nil, fmt.Errorf("%s failed: %w\nOutput: %s", e.config.Binary, err, string(output))
		}
		return cleanOutput(string(output)), nil
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

// Name returns the provider name
func (e *ESpeak) Name() string {
	return e.config.Binary
}

// IsAvailable checks if the binary is installed
func (e *ESpeak) IsAvailable() error {
	if _, err := e.run(context.Background(), e.config.Binary, "--version"); err != nil {
		return fmt.Errorf("%s is not installed or not in PATH: %w", e.config.Binary, err)
	}
	return nil
}

// State reports the circuit breaker state
func (e *ESpeak) State() gobreaker.State {
	return e.cb.State()
}

// cleanOutput joins espeak's output lines into one space separated string
func cleanOutput(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
