// Package tools exposes the invoicing operations as named tools: a registry of
// descriptors with JSON-Schema inputs, and a dispatcher that runs a tool by
// name and always answers with text.
package tools

import (
	"context"
	"encoding/json"
)

// Handler runs a tool on its raw arguments and returns a JSON-encodable result.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Definition describes a single tool.
type Definition struct {
	Name        string
	Description string
	InputSchema json.RawMessage // JSON Schema of the arguments object

	// RequiresConfirmation marks tools the assistant must confirm with the
	// user before calling. Irreversible ones cannot be undone once called.
	RequiresConfirmation bool
	Irreversible         bool

	Handler Handler
}

// Registry holds the tools in presentation order.
type Registry struct {
	tools []Definition
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a tool. A later registration with the same name replaces the
// earlier one in place.
func (r *Registry) Register(d Definition) {
	for i := range r.tools {
		if r.tools[i].Name == d.Name {
			r.tools[i] = d
			return
		}
	}
	r.tools = append(r.tools, d)
}

// Get returns the tool with the given name, and whether it was found.
func (r *Registry) Get(name string) (Definition, bool) {
	for _, d := range r.tools {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// All returns the registered tools in order.
func (r *Registry) All() []Definition {
	return r.tools
}

// Names returns the tool names in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for _, d := range r.tools {
		names = append(names, d.Name)
	}
	return names
}
