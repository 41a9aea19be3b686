package templates

import (
	"github.com/BaSui01/formflow/engine"
)

// RegisterBuiltins populates a registry with every built-in template.
func RegisterBuiltins(registry *engine.Registry) {
	registry.Register("chair", NewChair())
	registry.Register("bench", NewBench())
	registry.Register("table", NewTable("table"))
	registry.Register("coffee-table", NewTable("coffee-table"))
	registry.Register("desk", NewTable("desk"))
	registry.Register("side-table", NewTable("side-table"))
	registry.Register("lamp", NewLamp())
}

// NewRegistry creates a registry preloaded with the built-in templates.
func NewRegistry() *engine.Registry {
	registry := engine.NewRegistry()
	RegisterBuiltins(registry)
	return registry
}
