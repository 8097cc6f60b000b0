package script

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/mitchellh/mapstructure"

	"github.com/okvist/espalier"
)

// Registry maps external event names to typed event constructors, so
// surfaces that receive events as text (YAML scripts, HTTP requests, CLI
// flags) can build the concrete event values a machine dispatches on.
type Registry struct {
	factories map[string]func(payload map[string]any) (espalier.Event, error)
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]func(map[string]any) (espalier.Event, error))}
}

// Register binds name to event type E. A payload map, when present, is
// decoded into the event value field-by-field. Registering the same name
// twice replaces the earlier binding.
func Register[E espalier.Event](r *Registry, name string) {
	t := reflect.TypeOf((*E)(nil)).Elem()
	pointer := t.Kind() == reflect.Pointer
	if pointer {
		t = t.Elem()
	}
	r.factories[name] = func(payload map[string]any) (espalier.Event, error) {
		ptr := reflect.New(t)
		if len(payload) > 0 {
			if err := mapstructure.Decode(payload, ptr.Interface()); err != nil {
				return nil, fmt.Errorf("decode payload for event %q: %w", name, err)
			}
		}
		if pointer {
			return ptr.Interface().(espalier.Event), nil
		}
		return ptr.Elem().Interface().(espalier.Event), nil
	}
}

// New constructs the event registered under name, decoding payload into it.
func (r *Registry) New(name string, payload map[string]any) (espalier.Event, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown event %q (known: %v)", name, r.Names())
	}
	return factory(payload)
}

// Names lists registered event names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
