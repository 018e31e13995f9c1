// Package history keeps linear undo/redo over whole-collection snapshots.
//
// Callers snapshot the collection BEFORE applying an edit and hand it to
// PushState. Undo and Redo take the current collection so it can be parked on
// the opposite stack.
package history

import "asciitree-cli/internal/model"

type Manager struct {
	undo  []model.Snapshot
	redo  []model.Snapshot
	limit int
}

type Option func(*Manager)

// WithLimit caps the undo stack at n entries, dropping the oldest first.
// Zero or negative means unbounded.
func WithLimit(n int) Option {
	return func(m *Manager) {
		if n < 0 {
			n = 0
		}
		m.limit = n
	}
}

func New(opts ...Option) *Manager {
	m := &Manager{}
	for _, o := range opts {
		o(m)
	}
	return m
}

// PushState records s as the most recent undo point and discards every redo
// entry.
func (m *Manager) PushState(s []model.Node) {
	m.undo = append(m.undo, model.Clone(s))
	if m.limit > 0 && len(m.undo) > m.limit {
		m.undo = append([]model.Snapshot(nil), m.undo[len(m.undo)-m.limit:]...)
	}
	m.redo = nil
}

// Undo pops the latest undo point and parks current on the redo stack.
// ok is false when there is nothing to undo; the returned snapshot must then
// be ignored.
func (m *Manager) Undo(current []model.Node) (model.Snapshot, bool) {
	if len(m.undo) == 0 {
		return nil, false
	}
	prev := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, model.Clone(current))
	return model.Clone(prev), true
}

// Redo is the mirror of Undo.
func (m *Manager) Redo(current []model.Node) (model.Snapshot, bool) {
	if len(m.redo) == 0 {
		return nil, false
	}
	next := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, model.Clone(current))
	if m.limit > 0 && len(m.undo) > m.limit {
		m.undo = append([]model.Snapshot(nil), m.undo[len(m.undo)-m.limit:]...)
	}
	return model.Clone(next), true
}

func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// Len returns the depth of both stacks.
func (m *Manager) Len() (undo, redo int) {
	return len(m.undo), len(m.redo)
}

func (m *Manager) Reset() {
	m.undo = nil
	m.redo = nil
}
