package fsm

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a trigger is not permitted from the current state
var ErrInvalidTransition = errors.New("invalid transition")

// Hook runs on state entry or exit
type Hook[S comparable, E comparable] func(from, to S, trigger E)

// Machine is a flat finite state machine driven by triggers
// Transitions form an immutable table once the machine is in use
type Machine[S comparable, E comparable] struct {
	state       S
	transitions map[S]map[E]S
	onEnter     map[S][]Hook[S, E]
	onExit      map[S][]Hook[S, E]
	onAny       []Hook[S, E]
}

// NewMachine creates a machine in the initial state
func NewMachine[S comparable, E comparable](initial S) *Machine[S, E] {
	return &Machine[S, E]{
		state:       initial,
		transitions: make(map[S]map[E]S),
		onEnter:     make(map[S][]Hook[S, E]),
		onExit:      make(map[S][]Hook[S, E]),
	}
}

// Permit adds a transition from -> to on trigger
func (m *Machine[S, E]) Permit(from S, trigger E, to S) *Machine[S, E] {
	row, ok := m.transitions[from]
	if !ok {
		row = make(map[E]S)
		m.transitions[from] = row
	}
	row[trigger] = to
	return m
}

// OnEnter registers a hook run after entering s
func (m *Machine[S, E]) OnEnter(s S, fn Hook[S, E]) *Machine[S, E] {
	m.onEnter[s] = append(m.onEnter[s], fn)
	return m
}

// OnExit registers a hook run before leaving s
func (m *Machine[S, E]) OnExit(s S, fn Hook[S, E]) *Machine[S, E] {
	m.onExit[s] = append(m.onExit[s], fn)
	return m
}

// OnTransition registers a hook run after every successful transition
func (m *Machine[S, E]) OnTransition(fn Hook[S, E]) *Machine[S, E] {
	m.onAny = append(m.onAny, fn)
	return m
}

// State returns the current state
func (m *Machine[S, E]) State() S {
	return m.state
}

// Can reports whether trigger is permitted from the current state
func (m *Machine[S, E]) Can(trigger E) bool {
	_, ok := m.transitions[m.state][trigger]
	return ok
}

// Fire applies trigger: exit hooks, state change, enter hooks, transition hooks
func (m *Machine[S, E]) Fire(trigger E) error {
	to, ok := m.transitions[m.state][trigger]
	if !ok {
		return fmt.Errorf("%w: %v on %v", ErrInvalidTransition, m.state, trigger)
	}

	from := m.state
	for _, fn := range m.onExit[from] {
		fn(from, to, trigger)
	}
	m.state = to
	for _, fn := range m.onEnter[to] {
		fn(from, to, trigger)
	}
	for _, fn := range m.onAny {
		fn(from, to, trigger)
	}
	return nil
}
