package foundry

import (
	"slices"
	"sync"
)

// waitGraph records, for every build in flight, the resource it is
// currently resolving. A factory resolves its dependencies sequentially,
// so each in-flight ref has at most one outgoing edge at a time.
//
// The resolver chain alone can only see cycles confined to one resolution
// path. When the eager-load pass starts both halves of a cycle on
// different workers, each worker claims its own dictionary slot and
// neither chain ever contains the other's frames; without coordination
// both would block forever on the other's slot. The wait graph is that
// coordination: before a build recurses into or blocks on another
// resource, the new edge is checked against the edges already recorded,
// and an edge that leads back to the requester's own path is refused as a
// cycle. Refused edges are never recorded, which keeps the graph acyclic
// and every walk finite.
type waitGraph struct {
	mu      sync.Mutex
	pending map[Ref]Ref
}

func newWaitGraph() *waitGraph {
	return &waitGraph{pending: make(map[Ref]Ref)}
}

// await records that owner, whose resolution path is chain, is about to
// resolve ref. It fails with a CycleError naming the offending path when
// following the recorded edges from ref leads back to any frame of chain,
// meaning the request would ultimately wait on itself. Every successful
// await must be paired with a release.
func (w *waitGraph) await(owner, ref Ref, chain []Ref) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	path := []Ref{ref}
	for walk := ref; ; {
		if slices.Contains(chain, walk) {
			return &CycleError{Chain: append(slices.Clone(chain), path...)}
		}
		next, ok := w.pending[walk]
		if !ok {
			break
		}
		walk = next
		path = append(path, walk)
	}
	w.pending[owner] = ref
	return nil
}

// release removes owner's edge once its resolution attempt returns.
func (w *waitGraph) release(owner Ref) {
	w.mu.Lock()
	delete(w.pending, owner)
	w.mu.Unlock()
}
