package foundry

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vk/foundry/internal/ctxlog"
)

// defaultLoadParallelism bounds how many builds the eager pass runs at
// once. Disjoint names never block each other, so a small pool is enough
// to overlap slow backends without flooding them.
const defaultLoadParallelism = 8

// Load eagerly materializes every named entry of every concept known to
// both the source and the registry, surfacing configuration errors at
// startup instead of at first use. One entry's failure does not stop the
// walk: failures are collected per name and returned joined, so a
// misconfiguration in one entry cannot mask failures in unrelated ones.
//
// Load runs the walk once per Foundry; repeat calls return the first
// walk's result.
func (f *Foundry) Load(ctx context.Context) error {
	f.loadOnce.Do(func() {
		f.loadErr = f.loadAll(ctx)
	})
	return f.loadErr
}

func (f *Foundry) loadAll(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx).With("foundry", f.id)
	logger.Debug("Eager load starting.")

	var (
		mu       sync.Mutex
		failures []error
	)
	g := new(errgroup.Group)
	g.SetLimit(defaultLoadParallelism)

	for _, concept := range f.source.Concepts() {
		if _, known := f.registry[concept]; !known {
			// Entries for unregistered concepts fail lazily with
			// UnknownType; the eager pass reports them up front too.
			mu.Lock()
			failures = append(failures, &UnknownTypeError{Concept: concept})
			mu.Unlock()
			continue
		}
		for _, name := range f.source.Names(concept) {
			concept, name := concept, name
			g.Go(func() error {
				if _, err := f.Get(ctx, concept, name); err != nil {
					logger.Error("Resource failed to build during eager load.",
						"concept", concept, "name", name, "error", err)
					mu.Lock()
					failures = append(failures, err)
					mu.Unlock()
				}
				return nil
			})
		}
	}
	// Workers always return nil; failures are collected above so one bad
	// entry does not cancel the rest of the walk.
	_ = g.Wait()

	if len(failures) > 0 {
		logger.Warn("Eager load finished with failures.", "failed", len(failures))
		return errors.Join(failures...)
	}
	logger.Debug("Eager load finished.")
	return nil
}
