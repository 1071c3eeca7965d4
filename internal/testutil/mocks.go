package testutil

import (
	"context"
	"fmt"
	"sync"
)

// MockProvider mocks a reference phonemizer
type MockProvider struct {
	Responses map[string]string
	Errors    map[string]error
	Missing   error // returned by IsAvailable

	mu    sync.Mutex
	Calls []string
}

// Name implements the provider interface
func (m *MockProvider) Name() string {
	return "mock"
}

// IsAvailable implements the provider interface
func (m *MockProvider) IsAvailable() error {
	return m.Missing
}

// Phonemize returns the canned response for word
func (m *MockProvider) Phonemize(ctx context.Context, word string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, word)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := m.Errors[word]; ok {
		return "", err
	}
	if out, ok := m.Responses[word]; ok {
		return out, nil
	}
	return fmt.Sprintf("mock-%s", word), nil
}
