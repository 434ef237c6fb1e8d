package foundry

import (
	"fmt"
	"strings"

	"github.com/vk/foundry/internal/catalog"
)

// Ref identifies one resolution frame: a (concept, name) pair.
type Ref struct {
	Concept catalog.Concept
	Name    string
}

func (r Ref) String() string {
	return string(r.Concept) + "/" + r.Name
}

// UnknownTypeError reports a concept or builder discriminator with no
// registered factory.
type UnknownTypeError struct {
	Concept catalog.Concept
	Builder string
}

func (e *UnknownTypeError) Error() string {
	if e.Builder == "" {
		return fmt.Sprintf("no factories registered for concept %q", e.Concept)
	}
	return fmt.Sprintf("no %s factory registered for builder %q", e.Concept, e.Builder)
}

// CycleError reports a resolution that re-entered a resource still under
// construction. Chain holds every frame from the outermost request to the
// repeated one.
type CycleError struct {
	Chain []Ref
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Chain))
	for i, ref := range e.Chain {
		parts[i] = ref.String()
	}
	return "dependency cycle detected: " + strings.Join(parts, " -> ")
}

// BuildError wraps a factory failure with the (concept, name) frame it
// occurred in. Nested BuildErrors spell out the full dependency chain.
type BuildError struct {
	Ref Ref
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("building %s: %v", e.Ref, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }
