package reference

import (
	"context"
	"strings"
	"sync"
)

// Cache stores reference transcriptions in memory for batch operations
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewCache creates a new transcription cache
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]string),
	}
}

// Add adds a transcription to the cache
func (c *Cache) Add(word, transcription string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[strings.ToLower(word)] = transcription
}

// Get retrieves a transcription from the cache
func (c *Cache) Get(word string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.entries[strings.ToLower(word)]
	return t, ok
}

// GetAll returns all cached transcriptions
func (c *Cache) GetAll() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]string, len(c.entries))
	for k, v := range c.entries {
		result[k] = v
	}
	return result
}

// CachedProvider answers repeated words from a Cache. Failures are not cached.
type CachedProvider struct {
	Provider
	cache *Cache
}

// NewCachedProvider wraps p with an empty cache
func NewCachedProvider(p Provider) *CachedProvider {
	return &CachedProvider{Provider: p, cache: NewCache()}
}

// Phonemize returns the cached transcription or asks the wrapped provider
func (p *CachedProvider) Phonemize(ctx context.Context, word string) (string, error) {
	if t, ok := p.cache.Get(word); ok {
		return t, nil
	}
	t, err := p.Provider.Phonemize(ctx, word)
	if err != nil {
		return "", err
	}
	p.cache.Add(word, t)
	return t, nil
}

// Cache returns the underlying cache
func (p *CachedProvider) Cache() *Cache {
	return p.cache
}
