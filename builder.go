package espalier

import (
	"io"
	"log/slog"
	"reflect"
)

// Builder collects the declaration of one machine: its closed, ordered set
// of state instances and the handlers each state declares. Declarations are
// validated once, in Build; a machine that builds successfully has no
// dispatch-time failure mode left.
type Builder struct {
	states   []State
	handlers []handlerDecl
	built    bool
}

type handlerDecl struct {
	state   reflect.Type
	event   reflect.Type
	target  reflect.Type
	actions []func(State, Event)
	ignore  bool

	eventName string
}

// NewBuilder returns an empty machine declaration.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add declares state instances in active-order. The first state added is the
// machine's initial state. Instances are owned by the machine after Build;
// callers must not retain aliases that mutate them concurrently.
func (b *Builder) Add(states ...State) *Builder {
	b.states = append(b.states, states...)
	return b
}

// On declares that state S answers event E by moving to state T. Optional
// actions run with the typed state and event before the transition executes,
// mirroring a handler body. S, E and T are checked against the capability
// contracts by the compiler; membership of S and T in the declared set is
// checked by Build.
func On[S State, E Event, T State](b *Builder, actions ...func(S, E)) {
	adapted := make([]func(State, Event), 0, len(actions))
	for _, fn := range actions {
		fn := fn
		adapted = append(adapted, func(s State, e Event) {
			fn(s.(S), e.(E))
		})
	}
	b.handlers = append(b.handlers, handlerDecl{
		state:     reflect.TypeOf((*S)(nil)).Elem(),
		event:     reflect.TypeOf((*E)(nil)).Elem(),
		target:    reflect.TypeOf((*T)(nil)).Elem(),
		actions:   adapted,
		eventName: eventTypeName(reflect.TypeOf((*E)(nil)).Elem()),
	})
}

// Ignore declares that state S explicitly swallows event E. Dispatching E
// while S is active is indistinguishable from having no handler at all; the
// declaration only shows up in Describe and protects the pair against a
// conflicting On declaration.
func Ignore[S State, E Event](b *Builder) {
	b.handlers = append(b.handlers, handlerDecl{
		state:     reflect.TypeOf((*S)(nil)).Elem(),
		event:     reflect.TypeOf((*E)(nil)).Elem(),
		ignore:    true,
		eventName: eventTypeName(reflect.TypeOf((*E)(nil)).Elem()),
	})
}

// eventTypeName resolves the display name of an event type, honoring a
// Named implementation on a zero instance.
func eventTypeName(t reflect.Type) string {
	var zero any
	if t.Kind() == reflect.Pointer {
		zero = reflect.New(t.Elem()).Interface()
	} else {
		zero = reflect.New(t).Elem().Interface()
	}
	if n, ok := zero.(Named); ok {
		return n.Name()
	}
	return typeName(t)
}

// Build validates the declaration and constructs the machine. All states are
// instantiated eagerly by the caller (via Add) and the first declared state
// becomes active without firing its enter hook.
func (b *Builder) Build(opts ...Option) (*Machine, error) {
	if b.built {
		return nil, ErrBuilderReused
	}
	if len(b.states) == 0 {
		return nil, ErrNoStates
	}

	index := make(map[reflect.Type]int, len(b.states))
	for i, s := range b.states {
		t := reflect.TypeOf(s)
		if _, dup := index[t]; dup {
			return nil, &DuplicateStateError{StateType: typeName(t)}
		}
		index[t] = i
	}

	handlers := make(map[handlerKey]handlerEntry, len(b.handlers))
	topology := make([]TransitionInfo, 0, len(b.handlers))
	for _, decl := range b.handlers {
		if _, ok := index[decl.state]; !ok {
			return nil, &UnknownStateError{StateType: typeName(decl.state)}
		}
		if !decl.ignore {
			if _, ok := index[decl.target]; !ok {
				return nil, &UnknownStateError{StateType: typeName(decl.target)}
			}
		}
		key := handlerKey{state: decl.state, event: decl.event}
		if _, dup := handlers[key]; dup {
			return nil, &DuplicateHandlerError{
				StateType: typeName(decl.state),
				EventType: decl.eventName,
			}
		}
		handlers[key] = handlerEntry{
			target:  decl.target,
			actions: decl.actions,
			ignore:  decl.ignore,
		}

		info := TransitionInfo{
			From:   StateName(b.states[index[decl.state]]),
			Event:  decl.eventName,
			Ignore: decl.ignore,
		}
		if !decl.ignore {
			info.To = StateName(b.states[index[decl.target]])
		}
		topology = append(topology, info)
	}

	m := &Machine{
		states:   b.states,
		index:    index,
		handlers: handlers,
		topology: topology,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}

	b.built = true
	return m, nil
}
