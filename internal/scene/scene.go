// Package scene implements the two-state screen machine (Menu, Game) with
// enter/exit hooks. Transitions are queued during a frame and applied once at
// its end, so systems never observe a half-switched scene.
package scene

import "fmt"

// State is a top-level screen of the game.
type State int

const (
	Menu State = iota
	Game
)

// String returns the scene name.
func (s State) String() string {
	switch s {
	case Menu:
		return "menu"
	case Game:
		return "game"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Hook runs when a state is entered or exited.
type Hook func()

// Machine tracks the current state and runs hooks on transitions.
type Machine struct {
	current State
	next    State
	queued  bool
	reenter bool
	onEnter map[State][]Hook
	onExit  map[State][]Hook
}

// NewMachine creates a machine with no hooks. Call Start before use.
func NewMachine() *Machine {
	return &Machine{
		onEnter: make(map[State][]Hook),
		onExit:  make(map[State][]Hook),
	}
}

// OnEnter registers a hook run each time s becomes current.
func (m *Machine) OnEnter(s State, h Hook) {
	m.onEnter[s] = append(m.onEnter[s], h)
}

// OnExit registers a hook run each time s stops being current.
func (m *Machine) OnExit(s State, h Hook) {
	m.onExit[s] = append(m.onExit[s], h)
}

// Start makes initial current and runs its enter hooks.
// Any queued transition is dropped.
func (m *Machine) Start(initial State) {
	m.current = initial
	m.queued = false
	m.reenter = false
	m.run(m.onEnter[initial])
}

// Current returns the active state.
func (m *Machine) Current() State {
	return m.current
}

// Set queues a transition to next. Hooks run on the next Apply.
func (m *Machine) Set(next State) {
	m.next = next
	m.queued = true
	m.reenter = false
}

// Restart queues an exit and re-entry of the current state.
func (m *Machine) Restart() {
	m.next = m.current
	m.queued = true
	m.reenter = true
}

// Apply performs the queued transition: exit hooks of the current state,
// then enter hooks of the next one. It reports whether a transition ran.
func (m *Machine) Apply() bool {
	if !m.queued {
		return false
	}
	next, reenter := m.next, m.reenter
	m.queued = false
	m.reenter = false

	if next == m.current && !reenter {
		return false
	}

	from := m.current
	m.run(m.onExit[from])
	m.current = next
	m.run(m.onEnter[next])
	return true
}

func (m *Machine) run(hooks []Hook) {
	for _, h := range hooks {
		h()
	}
}
