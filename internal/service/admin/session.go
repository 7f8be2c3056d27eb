// Package admin is the edit surface: a per-user session holding the loaded
// nodes, the selection, the edit form and pending notifications.
package admin

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	service "github.com/nathan-pham/gradcap-mvp/internal/service/pathway"
)

// State is the lifecycle phase of a session.
type State int

const (
	StateLoading State = iota
	StateLoaded
	StateSaving
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateSaving:
		return "saving"
	default:
		return "unknown"
	}
}

var (
	// ErrSaveInFlight is returned while a save of the same session is pending.
	ErrSaveInFlight = errors.New("a save is already in progress")
	// ErrUnknownNode is returned when selecting an id that is not loaded.
	ErrUnknownNode = errors.New("node is not in the loaded pathway")
	// ErrUnknownField is returned by SetField for names other than the form fields.
	ErrUnknownField = errors.New("unknown form field")
)

// Recorder receives edit surface metrics.
type Recorder interface {
	RecordSave(ok bool)
	RecordNotification(level string)
}

// View is an immutable snapshot of a session for renderers.
type View struct {
	State    State
	Nodes    []pathway.Node
	Selected *pathway.Node
	Form     FormInput
}

// HasSelection reports whether a node is selected.
func (v View) HasSelection() bool {
	return v.Selected != nil
}

// IsSelected reports whether id is the selected node.
func (v View) IsSelected(id string) bool {
	return v.Selected != nil && v.Selected.ID == id
}

// Session is the edit state of one admin user. Its methods are safe for
// concurrent use; store calls run without holding the lock.
type Session struct {
	id       string
	accessor *service.Accessor
	logger   *zap.Logger
	recorder Recorder

	mu            sync.Mutex
	state         State
	nodes         []pathway.Node
	selected      *pathway.Node
	form          FormInput
	notifications []Notification
	lastSaveErr   error
	// saves counts confirmed saves; a Load that overlaps one discards its list.
	saves uint64
}

// NewSession creates a session in the Loading state. The accessor is bound
// to the session so its failures become this session's notifications.
func NewSession(id string, accessor *service.Accessor, logger *zap.Logger, recorder Recorder) *Session {
	s := &Session{
		id:       id,
		logger:   logger.With(zap.String("session_id", id)),
		recorder: recorder,
		state:    StateLoading,
		nodes:    []pathway.Node{},
	}
	s.accessor = accessor.WithReporter(s)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// ReportFailure implements service.Reporter.
func (s *Session) ReportFailure(op service.Operation, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch op {
	case service.OperationList:
		s.notifyLocked(notifyLoadFailed)
	case service.OperationUpdate:
		// Save raises the notification once it sees the nil result.
		s.lastSaveErr = err
	}
}

// Load fetches all nodes and enters Loaded. A failed read leaves an empty
// collection and an error notification. The selection is kept when the
// selected node is still present. A list read before a save confirmed is
// dropped so it cannot overwrite the saved node.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateSaving {
		s.mu.Unlock()
		return ErrSaveInFlight
	}
	s.state = StateLoading
	saves := s.saves
	s.mu.Unlock()

	nodes := s.accessor.ListNodes(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateLoading {
		s.state = StateLoaded
	}
	if s.saves != saves {
		s.logger.Debug("Discarding list read that overlapped a save")
		return nil
	}
	s.nodes = nodes
	if s.selected != nil {
		if current, ok := pathway.Find(nodes, s.selected.ID); ok {
			s.selected = &current
		} else {
			s.clearSelectionLocked()
		}
	}
	return nil
}

// Select toggles the selection. Selecting the selected node clears the
// selection and the form; selecting another node copies it and derives the
// form from it.
func (s *Session) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSaving {
		return ErrSaveInFlight
	}
	if s.selected != nil && s.selected.ID == id {
		s.clearSelectionLocked()
		return nil
	}

	node, ok := pathway.Find(s.nodes, id)
	if !ok {
		return ErrUnknownNode
	}
	s.selected = &node
	s.form = FormFromNode(node)
	return nil
}

// SetField updates one form field. It does nothing without a selection.
func (s *Session) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return nil
	}
	return s.form.set(name, value)
}

// SetDetails replaces the details textarea.
func (s *Session) SetDetails(text string) {
	_ = s.SetField(FieldDetails, text)
}

// Apply replaces the whole form with a submitted one. An empty ID keeps the
// current form's ID.
func (s *Session) Apply(input FormInput) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return
	}
	if input.ID == "" {
		input.ID = s.form.ID
	}
	s.form = input
}

// Save sends the form to the store. Without a selection it does nothing and
// returns nil. In-memory state changes only after the store returns the
// updated row; on failure the nodes, selection and form are left as they were
// and nil is returned.
func (s *Session) Save(ctx context.Context) (*pathway.Node, error) {
	s.mu.Lock()
	if s.state == StateSaving {
		s.mu.Unlock()
		return nil, ErrSaveInFlight
	}
	if s.selected == nil {
		s.mu.Unlock()
		return nil, nil
	}
	node := BuildNode(*s.selected, s.form)
	s.state = StateSaving
	s.lastSaveErr = nil
	s.mu.Unlock()

	updated := s.accessor.UpdateNode(ctx, node)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateLoaded

	if updated == nil {
		s.logger.Warn("Save failed", zap.String("node_id", node.ID), zap.NamedError("cause", s.lastSaveErr))
		s.notifyLocked(notifySaveFailed)
		s.record(false)
		return nil, nil
	}

	s.saves++
	result := updated.Clone()
	if !pathway.Replace(s.nodes, result) {
		s.logger.Debug("Saved node is not in the loaded collection", zap.String("node_id", result.ID))
	}
	s.selected = &result
	s.form = FormFromNode(result)
	s.notifyLocked(notifySaved)
	s.record(true)

	out := result.Clone()
	return &out, nil
}

// DrainNotifications returns and clears pending notifications.
func (s *Session) DrainNotifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.notifications
	s.notifications = nil
	return out
}

// View returns a snapshot that shares nothing with the session.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		State: s.state,
		Nodes: pathway.CloneAll(s.nodes),
		Form:  s.form,
	}
	if s.selected != nil {
		sel := s.selected.Clone()
		v.Selected = &sel
	}
	return v
}

func (s *Session) clearSelectionLocked() {
	s.selected = nil
	s.form = FormInput{}
}

func (s *Session) notifyLocked(n Notification) {
	s.notifications = append(s.notifications, n)
	if s.recorder != nil {
		s.recorder.RecordNotification(string(n.Level))
	}
}

func (s *Session) record(ok bool) {
	if s.recorder != nil {
		s.recorder.RecordSave(ok)
	}
}
