package lambda

import (
	"strconv"
	"sync"
)

// Registry maps generated variable names back to the name they replaced.
// It is only consulted for display.
type Registry struct {
	mu    sync.RWMutex
	names map[string]string
}

func NewRegistry() *Registry {
	return &Registry{names: make(map[string]string)}
}

// Record maps unique to original. The last write wins.
func (r *Registry) Record(unique, original string) {
	r.mu.Lock()
	r.names[unique] = original
	r.mu.Unlock()
}

// Lookup returns the original name for name, or name itself when it was
// never recorded.
func (r *Registry) Lookup(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if original, ok := r.names[name]; ok {
		return original
	}
	return name
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Reset forgets every mapping. Meant for test harnesses.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.names = make(map[string]string)
	r.mu.Unlock()
}

// Generator mints fresh variable names of the form "u<n>".
//
// Generated names are distinct from each other but not from user names
// of the same shape.
type Generator struct {
	mu       sync.Mutex
	counter  uint64
	registry *Registry
}

func NewGenerator(registry *Registry) *Generator {
	return &Generator{registry: registry}
}

// Fresh returns a new variable standing in for original and records the
// mapping. A generated original is resolved to the user name it stands for.
func (g *Generator) Fresh(original Var) Var {
	root := g.registry.Lookup(original.Name)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	unique := "u" + strconv.FormatUint(g.counter, 10)
	g.registry.Record(unique, root)
	return Var{Name: unique}
}

// Count returns how many names have been generated since the last Reset.
func (g *Generator) Count() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counter
}

func (g *Generator) Reset() {
	g.mu.Lock()
	g.counter = 0
	g.mu.Unlock()
}
