package fibonacci

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Calculator computes a single term of the sequence.
type Calculator interface {
	// Name returns the registry key of the calculator.
	Name() string
	// Calculate returns T(n), or an error if ctx is done first or the term
	// overflows.
	Calculate(ctx context.Context, n uint64) (uint64, error)
}

// RecursiveCalculator adapts RecursiveContext to the Calculator interface.
type RecursiveCalculator struct{}

// Name implements Calculator.
func (RecursiveCalculator) Name() string { return "recursive" }

// Calculate implements Calculator.
func (RecursiveCalculator) Calculate(ctx context.Context, n uint64) (uint64, error) {
	return RecursiveContext(ctx, n)
}

// IterativeCalculator adapts Iterative to the Calculator interface.
type IterativeCalculator struct{}

// Name implements Calculator.
func (IterativeCalculator) Name() string { return "iterative" }

// Calculate implements Calculator. The loop is at most MaxIndex steps long,
// so ctx is only checked once up front.
func (IterativeCalculator) Calculate(ctx context.Context, n uint64) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return Iterative(n)
}

// DefaultAlgorithm is the calculator used when none is configured.
const DefaultAlgorithm = "recursive"

// Registry maps algorithm names to calculators.
type Registry struct {
	mu          sync.RWMutex
	calculators map[string]Calculator
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{calculators: make(map[string]Calculator)}
}

// NewDefaultRegistry creates a Registry holding the recursive and iterative
// calculators.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(RecursiveCalculator{})
	r.Register(IterativeCalculator{})
	return r
}

// Register adds c under c.Name(), replacing any previous entry.
func (r *Registry) Register(c Calculator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calculators[c.Name()] = c
}

// Get returns the calculator registered under name.
func (r *Registry) Get(name string) (Calculator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.calculators[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q (available: %v)", name, r.listLocked())
	}
	return c, nil
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked()
}

func (r *Registry) listLocked() []string {
	names := make([]string, 0, len(r.calculators))
	for name := range r.calculators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
