package search

import (
	"context"
	"strings"
	"sync"
)

// ScanProvider keeps rows verbatim and answers queries by linear scan with
// substring matching. Slower than MemoryProvider but supports partial
// matches, which makes it the right choice for small, free-text-heavy
// dimensions.
type ScanProvider struct {
	mu   sync.RWMutex
	rows map[string]map[string]string
}

// NewScanProvider creates an empty linear-scan provider.
func NewScanProvider() *ScanProvider {
	return &ScanProvider{rows: make(map[string]map[string]string)}
}

// Index implements Provider.
func (p *ScanProvider) Index(ctx context.Context, key string, row map[string]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	copied := make(map[string]string, len(row))
	for k, v := range row {
		copied[k] = v
	}
	p.rows[key] = copied
	return nil
}

// Query implements Provider. A row matches when its field contains value
// case-insensitively.
func (p *ScanProvider) Query(ctx context.Context, field, value string) ([]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	needle := strings.ToLower(value)
	var out []string
	for key, row := range p.rows {
		if strings.Contains(strings.ToLower(row[field]), needle) {
			out = append(out, key)
		}
	}
	return out, nil
}

// Size implements Provider.
func (p *ScanProvider) Size(ctx context.Context) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.rows), nil
}
