// Package session is the editing session the shells talk to. It owns the
// node collection, the undo history and the selection, and applies every
// structural edit transactionally: the pre-edit collection is pushed onto the
// history only when the edit actually changed something.
package session

import (
	"github.com/sirupsen/logrus"

	"asciitree-cli/internal/debug"
	"asciitree-cli/internal/history"
	"asciitree-cli/internal/model"
	"asciitree-cli/internal/mutate"
	"asciitree-cli/internal/render"
	"asciitree-cli/internal/selection"
	"asciitree-cli/internal/store"
)

// State is what a shell needs to redraw after a command.
type State struct {
	Nodes    []model.Node
	Selected *string
	Text     string
	CanUndo  bool
	CanRedo  bool
}

// Empty reports whether the tree has no nodes.
func (s State) Empty() bool {
	return len(s.Nodes) == 0
}

// Display returns Text, or the placeholder for an empty tree.
func (s State) Display() string {
	if s.Text == "" {
		return render.Placeholder
	}
	return s.Text
}

type Session struct {
	tree    *store.Tree
	history *history.Manager
	sel     selection.Selection
	log     *logrus.Entry
}

type options struct {
	nodes        []model.Node
	historyLimit int
	logger       *logrus.Logger
}

type Option func(*options)

// WithNodes seeds the session. The nodes are copied.
func WithNodes(nodes []model.Node) Option {
	return func(o *options) { o.nodes = model.Clone(nodes) }
}

// WithSample seeds the session with the demo tree.
func WithSample() Option {
	return func(o *options) { o.nodes = store.Sample() }
}

func WithHistoryLimit(n int) Option {
	return func(o *options) { o.historyLimit = n }
}

func WithLogger(l *logrus.Logger) Option {
	return func(o *options) { o.logger = l }
}

func New(opts ...Option) *Session {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = debug.Discard()
	}
	return &Session{
		tree:    store.New(o.nodes),
		history: history.New(history.WithLimit(o.historyLimit)),
		log:     o.logger.WithField("component", "session"),
	}
}

// Nodes returns a copy of the current sequence.
func (s *Session) Nodes() []model.Node {
	return s.tree.Snapshot()
}

func (s *Session) Selected() *string {
	return s.sel.ID()
}

func (s *Session) Render() string {
	return render.Render(s.tree.Nodes)
}

// Lines returns the rendered rows, for shells that draw the tree themselves.
func (s *Session) Lines() []render.Line {
	return render.RenderLines(s.tree.Nodes)
}

// Highlight returns the display role of every node for the current selection.
func (s *Session) Highlight() map[string]selection.Role {
	return selection.Highlight(s.tree, s.sel.ID())
}

func (s *Session) State() State {
	return State{
		Nodes:    s.Nodes(),
		Selected: s.sel.ID(),
		Text:     s.Render(),
		CanUndo:  s.history.CanUndo(),
		CanRedo:  s.history.CanRedo(),
	}
}

// Parse converts text into nodes without touching the session.
func (s *Session) Parse(text string) []model.Node {
	return render.Parse(text)
}

// apply runs fn against the tree and records an undo point when it changed
// something.
func (s *Session) apply(op string, fn func(t *store.Tree) mutate.Result) mutate.Result {
	pre := s.tree.Snapshot()
	res := fn(s.tree)
	if !res.Changed {
		s.log.WithField("op", op).Debug("no-op")
		return res
	}
	s.history.PushState(pre)
	if s.sel.Reconcile(s.tree) {
		s.log.WithField("op", op).Debug("selection cleared")
	}
	s.log.WithFields(logrus.Fields{"op": op, "nodes": s.tree.Len()}).Debug("applied")
	return res
}

// Add creates a node under the current selection, or a root when nothing is
// selected.
func (s *Session) Add(name string) State {
	return s.AddTo(s.sel.ID(), name)
}

func (s *Session) AddTo(parentID *string, name string) State {
	s.apply("add", func(t *store.Tree) mutate.Result {
		return mutate.Add(t, parentID, name)
	})
	return s.State()
}

func (s *Session) Delete(id string) State {
	s.apply("delete", func(t *store.Tree) mutate.Result {
		return mutate.Delete(t, id)
	})
	return s.State()
}

func (s *Session) Rename(id, name string) State {
	s.apply("rename", func(t *store.Tree) mutate.Result {
		return mutate.Rename(t, id, name)
	})
	return s.State()
}

// SetKind returns model.ErrInvalidKind for unknown kinds; unknown ids are
// ignored.
func (s *Session) SetKind(id, kind string) (State, error) {
	var kindErr error
	s.apply("set-kind", func(t *store.Tree) mutate.Result {
		res, err := mutate.SetKind(t, id, kind)
		kindErr = err
		return res
	})
	return s.State(), kindErr
}

func (s *Session) Indent(id string) State {
	s.apply("indent", func(t *store.Tree) mutate.Result {
		return mutate.Indent(t, id)
	})
	return s.State()
}

func (s *Session) Unindent(id string) State {
	s.apply("unindent", func(t *store.Tree) mutate.Result {
		return mutate.Unindent(t, id)
	})
	return s.State()
}

func (s *Session) MoveUp(id string) State {
	s.apply("move-up", func(t *store.Tree) mutate.Result {
		return mutate.MoveUp(t, id)
	})
	return s.State()
}

func (s *Session) MoveDown(id string) State {
	s.apply("move-down", func(t *store.Tree) mutate.Result {
		return mutate.MoveDown(t, id)
	})
	return s.State()
}

func (s *Session) Clear() State {
	s.apply("clear", mutate.Clear)
	s.sel.Clear()
	return s.State()
}

// Import replaces the tree with the nodes parsed from text.
func (s *Session) Import(text string) State {
	s.apply("import", func(t *store.Tree) mutate.Result {
		return mutate.Import(t, text)
	})
	return s.State()
}

// Select sets the selection. Unknown ids clear it.
func (s *Session) Select(id *string) State {
	if id != nil && !s.tree.Has(*id) {
		id = nil
	}
	s.sel.Select(id)
	return s.State()
}

func (s *Session) Undo() State {
	prev, ok := s.history.Undo(s.tree.Nodes)
	if !ok {
		s.log.WithField("op", "undo").Debug("nothing to undo")
		return s.State()
	}
	s.tree.Replace(prev)
	s.sel.Reconcile(s.tree)
	s.log.WithField("op", "undo").Debug("applied")
	return s.State()
}

func (s *Session) Redo() State {
	next, ok := s.history.Redo(s.tree.Nodes)
	if !ok {
		s.log.WithField("op", "redo").Debug("nothing to redo")
		return s.State()
	}
	s.tree.Replace(next)
	s.sel.Reconcile(s.tree)
	s.log.WithField("op", "redo").Debug("applied")
	return s.State()
}

func (s *Session) CanIndent(id string) bool   { return mutate.CanIndent(s.tree, id) }
func (s *Session) CanUnindent(id string) bool { return mutate.CanUnindent(s.tree, id) }
func (s *Session) CanMoveUp(id string) bool   { return mutate.CanMoveUp(s.tree, id) }
func (s *Session) CanMoveDown(id string) bool { return mutate.CanMoveDown(s.tree, id) }
func (s *Session) CanUndo() bool              { return s.history.CanUndo() }
func (s *Session) CanRedo() bool              { return s.history.CanRedo() }
