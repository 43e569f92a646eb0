package format

import (
	"sort"
	"sync"
)

// Registry maps document types to formatters.
// Lookup on an unregistered type is a normal outcome, not an error: most
// document types have no custom rendering and keep the raw captured link.
type Registry struct {
	mu sync.RWMutex

	// byType maps document type names to formatters
	byType map[string]Formatter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byType: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry, keyed by its document type.
// The last registration for a given type wins.
func (r *Registry) Register(f Formatter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byType[f.DocType()] = f
}

// RegisterFunc registers a plain function as the formatter for docType.
func (r *Registry) RegisterFunc(docType string, fn func(url, description string) string) {
	r.Register(NewFunc(docType, fn))
}

// Unregister removes the formatter for a document type.
func (r *Registry) Unregister(docType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byType, docType)
}

// Lookup returns the formatter for the given document type.
func (r *Registry) Lookup(docType string) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.byType[docType]
	return f, ok
}

// Has returns true if a formatter is registered for the document type.
func (r *Registry) Has(docType string) bool {
	_, ok := r.Lookup(docType)
	return ok
}

// Types returns all registered document type names, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.byType))
	for dt := range r.byType {
		types = append(types, dt)
	}
	sort.Strings(types)
	return types
}

// Count returns the number of registered document types.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byType)
}

// DefaultRegistry returns a registry seeded with the built-in formatters.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, f := range builtins() {
		r.Register(f)
	}
	return r
}
