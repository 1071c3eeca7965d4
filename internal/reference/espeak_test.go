package reference

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/sony/gobreaker"
)

type fakeRunner struct {
	output []byte
	err    error
	calls  [][]string
}

func (f *fakeRunner) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.output, f.err
}

func newTestESpeak(f *fakeRunner, config *ESpeakConfig) *ESpeak {
	e := NewESpeak(config)
	e.run = f.run
	return e
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Binary != "espeak-ng" {
		t.Errorf("Expected binary 'espeak-ng', got '%s'", config.Binary)
	}
	if config.Voice != "en-us" {
		t.Errorf("Expected voice 'en-us', got '%s'", config.Voice)
	}
	if config.MaxFailures != 3 {
		t.Errorf("Expected 3 max failures, got %d", config.MaxFailures)
	}
}

func TestNewESpeakFillsDefaults(t *testing.T) {
	e := NewESpeak(&ESpeakConfig{Binary: "espeak"})
	if e.config.Voice != "en-us" || e.config.MaxFailures != 3 {
		t.Errorf("Defaults not applied: %+v", e.config)
	}
	if e.Name() != "espeak" {
		t.Errorf("Expected name 'espeak', got '%s'", e.Name())
	}
}

func TestPhonemize(t *testing.T) {
	f := &fakeRunner{output: []byte(" h@l'oU\n")}
	e := newTestESpeak(f, nil)

	got, err := e.Phonemize(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Phonemize() error = %v", err)
	}
	if got != "h@l'oU" {
		t.Errorf("Phonemize() = %q, want %q", got, "h@l'oU")
	}

	want := []string{"espeak-ng", "-q", "-x", "-v", "en-us", "hello"}
	if len(f.calls) != 1 || !reflect.DeepEqual(f.calls[0], want) {
		t.Errorf("Unexpected command: %v", f.calls)
	}
}

func TestPhonemizeInvalidWord(t *testing.T) {
	f := &fakeRunner{}
	e := newTestESpeak(f, nil)

	for _, word := range []string{"", "two words", "123", "-v"} {
		if _, err := e.Phonemize(context.Background(), word); err == nil {
			t.Errorf("Expected error for %q", word)
		}
	}
	if len(f.calls) != 0 {
		t.Errorf("Invalid words must not run the binary, got %d calls", len(f.calls))
	}
}

func TestCircuitBreakerOpens(t *testing.T) {
	f := &fakeRunner{err: errors.New("exit status 1")}
	e := newTestESpeak(f, &ESpeakConfig{MaxFailures: 2})

	for i := 0; i < 2; i++ {
		if _, err := e.Phonemize(context.Background(), "word"); err == nil {
			t.Fatal("Expected failure")
		}
	}
	if e.State() != gobreaker.StateOpen {
		t.Fatalf("Expected open breaker, got %s", e.State())
	}

	_, err := e.Phonemize(context.Background(), "word")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Expected ErrOpenState, got %v", err)
	}
	if len(f.calls) != 2 {
		t.Errorf("Expected 2 binary calls, got %d", len(f.calls))
	}
}

func TestIsAvailable(t *testing.T) {
	ok := newTestESpeak(&fakeRunner{}, nil)
	if err := ok.IsAvailable(); err != nil {
		t.Errorf("IsAvailable() error = %v", err)
	}

	missing := newTestESpeak(&fakeRunner{err: errors.New("not found")}, nil)
	if err := missing.IsAvailable(); err == nil {
		t.Error("Expected error for missing binary")
	}
}

func TestCleanOutput(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{" k'at\n", "k'at"},
		{"h@l'oU\n w'3:ld\n", "h@l'oU w'3:ld"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := cleanOutput(tt.input); got != tt.want {
			t.Errorf("cleanOutput(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
