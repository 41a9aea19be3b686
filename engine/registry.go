package engine

import (
	"sort"
	"sync"

	"github.com/BaSui01/formflow/types"
)

// Registry is a thread-safe registry mapping furniture type tags to their
// Template implementations. It supports registering, resolving, and listing
// templates. Resolution of an unregistered tag is the one failure mode the
// engine does not route around: it surfaces as ErrUnknownTemplate.
type Registry struct {
	templates map[string]Template
	mu        sync.RWMutex
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry under the given type tag.
// If a template with the same tag already exists, it is replaced.
func (r *Registry) Register(typeTag string, t Template) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[typeTag] = t
}

// Resolve retrieves a template by type tag.
// Returns a fatal UnknownTemplateType error when the tag is not registered.
func (r *Registry) Resolve(typeTag string) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[typeTag]
	if !ok {
		return nil, types.NewUnknownTemplateError(typeTag)
	}
	return t, nil
}

// List returns the sorted tags of all registered templates.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.templates))
	for tag := range r.templates {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Unregister removes a template from the registry.
func (r *Registry) Unregister(typeTag string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.templates, typeTag)
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}
