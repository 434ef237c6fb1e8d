package search

import (
	"context"
	"strings"
	"sync"
)

// MemoryProvider is an in-memory inverted index over row field values.
// It is the default provider for locally served dimensions.
type MemoryProvider struct {
	mu sync.RWMutex
	// index maps field -> lowercased value -> set of row keys.
	index map[string]map[string]map[string]struct{}
	// rows holds the last indexed row per key, so re-indexing a key can
	// drop the postings of its previous values.
	rows map[string]map[string]string
}

// NewMemoryProvider creates an empty inverted-index provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		index: make(map[string]map[string]map[string]struct{}),
		rows:  make(map[string]map[string]string),
	}
}

// Index implements Provider. Re-indexing a key replaces its previous
// postings, so a query never returns a key through a value its current
// row no longer holds.
func (p *MemoryProvider) Index(ctx context.Context, key string, row map[string]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if old, ok := p.rows[key]; ok {
		p.unindex(key, old)
	}

	stored := make(map[string]string, len(row))
	for field, value := range row {
		stored[field] = value
		byValue, ok := p.index[field]
		if !ok {
			byValue = make(map[string]map[string]struct{})
			p.index[field] = byValue
		}
		normalized := strings.ToLower(value)
		keys, ok := byValue[normalized]
		if !ok {
			keys = make(map[string]struct{})
			byValue[normalized] = keys
		}
		keys[key] = struct{}{}
	}
	p.rows[key] = stored
	return nil
}

// unindex removes key from the postings of every value in row. Callers
// hold the write lock.
func (p *MemoryProvider) unindex(key string, row map[string]string) {
	for field, value := range row {
		normalized := strings.ToLower(value)
		keys := p.index[field][normalized]
		delete(keys, key)
		if len(keys) == 0 {
			delete(p.index[field], normalized)
		}
	}
}

// Query implements Provider.
func (p *MemoryProvider) Query(ctx context.Context, field, value string) ([]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var out []string
	for key := range p.index[field][strings.ToLower(value)] {
		out = append(out, key)
	}
	return out, nil
}

// Size implements Provider.
func (p *MemoryProvider) Size(ctx context.Context) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.rows), nil
}
