// Package states implements the scenes run by the game loop.
package states

import (
	"github.com/Faultbox/terrain-scenes/internal/engine/input"
	"github.com/Faultbox/terrain-scenes/internal/engine/renderer"
)

// State represents a scene (terrain, shapes, etc.)
type State interface {
	// Enter is called when entering this state, after the GL context exists.
	Enter(r *renderer.Renderer) error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every frame with the polled input.
	Update(dt float64, in *input.Input) error

	// Render is called every frame to draw the state.
	Render(r *renderer.Renderer) error
}

// Manager manages state transitions.
type Manager struct {
	renderer *renderer.Renderer
	current  State
	next     State
}

// NewManager creates a new state manager drawing with r.
func NewManager(r *renderer.Renderer) *Manager {
	return &Manager{renderer: r}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change.
func (m *Manager) Change(next State) {
	m.next = next
}

// Update processes state changes and updates current state.
func (m *Manager) Update(dt float64, in *input.Input) error {
	// Handle state transition
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(m.renderer); err != nil {
			return err
		}
	}

	// Update current state
	if m.current != nil {
		return m.current.Update(dt, in)
	}
	return nil
}

// Render renders the current state.
func (m *Manager) Render() error {
	if m.current != nil {
		return m.current.Render(m.renderer)
	}
	return nil
}

// Close exits the current state.
func (m *Manager) Close() error {
	if m.current == nil {
		return nil
	}
	err := m.current.Exit()
	m.current = nil
	return err
}
