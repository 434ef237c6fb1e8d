package foundry

import (
	"fmt"
	"sync"
)

// slot is the promise for one named instance. done is closed exactly once,
// after which val and err never change.
type slot struct {
	done chan struct{}
	val  any
	err  error
}

// dictionary is the memoized get-or-build cache for one concept.
//
// The first requester of a name claims its slot under the mutex and runs
// the build outside it; concurrent requesters for the same name block on
// the slot's done channel, while disjoint names proceed independently. A
// failed build is cached like a successful one: repeat lookups surface the
// same error without re-invoking the factory.
type dictionary struct {
	mu    sync.Mutex
	slots map[string]*slot
}

func newDictionary() *dictionary {
	return &dictionary{slots: make(map[string]*slot)}
}

// getOrBuild returns the memoized instance for name, invoking build at
// most once across all callers for the lifetime of the dictionary.
func (d *dictionary) getOrBuild(name string, build func() (any, error)) (any, error) {
	d.mu.Lock()
	if s, ok := d.slots[name]; ok {
		d.mu.Unlock()
		<-s.done
		return s.val, s.err
	}
	s := &slot{done: make(chan struct{})}
	d.slots[name] = s
	d.mu.Unlock()

	// The slot must complete on every exit path. A factory panic is
	// memoized as an error so waiters and repeat requesters are not
	// stranded on an open slot.
	func() {
		defer func() {
			if r := recover(); r != nil {
				s.err = fmt.Errorf("build of %q panicked: %v", name, r)
			}
			close(s.done)
		}()
		s.val, s.err = build()
	}()
	return s.val, s.err
}

// len reports how many names have completed or in-flight slots.
func (d *dictionary) len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.slots)
}
