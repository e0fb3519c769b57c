package editor

import (
	"fmt"
	"slices"
	"time"

	"github.com/Notifuse/emailbuilder/internal/domain"
	"github.com/Notifuse/emailbuilder/pkg/emailhtml"
	"github.com/Notifuse/emailbuilder/pkg/logger"
)

// Clipboard receives exported HTML
type Clipboard interface {
	WriteText(text string) error
}

// Option configures a Session
type Option func(*Session)

// WithClock sets the time source used to mint component ids
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithDocument starts the session from an existing tree
func WithDocument(doc domain.Document) Option {
	return func(s *Session) {
		s.doc = doc
	}
}

// Session holds the state of one editing session: the document, the selection and the
// drag gesture in progress. Every operation runs to completion before the next one, so
// a Session must not be shared between goroutines.
type Session struct {
	logger      logger.Logger
	now         func() time.Time
	doc         domain.Document
	selected    string
	drag        DragController
	subscribers []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func(domain.Document)
}

// NewSession creates a session over an empty document
func NewSession(log logger.Logger, opts ...Option) *Session {
	s := &Session{
		logger: log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Document returns the current tree
func (s *Session) Document() domain.Document {
	return s.doc
}

// Subscribe registers fn to be called with the new tree after every change, in
// subscription order.
// The returned function removes the subscription.
func (s *Session) Subscribe(fn func(domain.Document)) func() {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		s.subscribers = slices.DeleteFunc(s.subscribers, func(sub subscriber) bool { return sub.id == id })
	}
}

func (s *Session) commit(doc domain.Document) {
	s.doc = doc
	if s.selected != "" && !doc.Contains(s.selected) {
		s.selected = ""
	}
	for _, sub := range slices.Clone(s.subscribers) {
		sub.fn(doc)
	}
}

// AddComponent creates a component with default content. It goes into the selected
// component when that is a grid, and at the end of the document otherwise.
func (s *Session) AddComponent(t domain.ComponentType) (string, domain.Placement) {
	parentID := ""
	if node, ok := s.SelectedNode(); ok && node.IsContainer() {
		parentID = node.ID
	}
	return s.AddComponentTo(t, parentID)
}

// AddComponentTo creates a component inside the grid parentID, or at the root when
// parentID is empty. An unusable parent sends the component to the root.
func (s *Session) AddComponentTo(t domain.ComponentType, parentID string) (string, domain.Placement) {
	if !t.Valid() {
		s.logger.WithField("type", t.String()).Warn("Unknown component type")
		return "", domain.PlacementRejected
	}
	id := s.doc.NextID(t, s.now())
	doc, placement := s.doc.AddComponent(domain.NewComponent(t, id), parentID)

	switch placement {
	case domain.PlacementRejected:
		s.logger.WithField("id", id).Warn("Component could not be added")
		return "", placement
	case domain.RedirectedToRoot:
		s.logger.WithFields(map[string]interface{}{
			"id":        id,
			"parent_id": parentID,
		}).Warn("Parent cannot take the component, added at the root instead")
	default:
		s.logger.WithFields(map[string]interface{}{
			"id":        id,
			"placement": placement.String(),
		}).Debug("Component added")
	}
	s.commit(doc)
	return id, placement
}

// Select makes id the selected component. Unknown ids are ignored.
func (s *Session) Select(id string) bool {
	if !s.doc.Contains(id) {
		s.logger.WithField("id", id).Debug("Ignoring selection of unknown component")
		return false
	}
	s.selected = id
	return true
}

// Deselect clears the selection
func (s *Session) Deselect() {
	s.selected = ""
}

// Selected returns the id of the selected component, or ""
func (s *Session) Selected() string {
	return s.selected
}

// SelectedNode returns a copy of the selected component
func (s *Session) SelectedNode() (domain.Node, bool) {
	if s.selected == "" {
		return domain.Node{}, false
	}
	return s.doc.FindComponent(s.selected)
}

// Panel returns the property panel of the selected component
func (s *Session) Panel() (Panel, bool) {
	node, ok := s.SelectedNode()
	if !ok {
		return Panel{}, false
	}
	return ResolvePanel(node), true
}

// SetField edits one field of the selected component
func (s *Session) SetField(field, raw string) error {
	panel, ok := s.Panel()
	if !ok {
		return domain.NewValidationError("no component selected")
	}
	content, err := panel.Apply(field, raw)
	if err != nil {
		return err
	}
	doc, ok := s.doc.UpdateComponent(panel.Node.ID, content)
	if !ok {
		return domain.NewValidationError(fmt.Sprintf("grid %s holds %d components, reduce them before lowering columns",
			panel.Node.ID, len(panel.Node.Children)))
	}
	s.commit(doc)
	return nil
}

// Delete removes a component and everything inside it
func (s *Session) Delete(id string) bool {
	doc, ok := s.doc.DeleteComponent(id)
	if !ok {
		s.logger.WithField("id", id).Debug("Nothing to delete")
		return false
	}
	s.commit(doc)
	return true
}

// DeleteSelected removes the selected component
func (s *Session) DeleteSelected() bool {
	if s.selected == "" {
		return false
	}
	return s.Delete(s.selected)
}

// ClearAll empties the document and resets selection and drag state
func (s *Session) ClearAll() {
	s.selected = ""
	s.drag.Cancel()
	s.commit(s.doc.Clear())
}

// DragStart begins dragging a component
func (s *Session) DragStart(id string) bool {
	if !s.doc.Contains(id) {
		s.drag.Cancel()
		return false
	}
	s.drag.Start(id)
	return true
}

// DragOver reports the pointer over component id, offsetY pixels from its top edge
func (s *Session) DragOver(id string, offsetY, height float64) domain.DropPosition {
	node, ok := s.doc.FindComponent(id)
	if !ok {
		return domain.DropNone
	}
	s.drag.Over(id, node.IsContainer(), offsetY, height)
	return s.drag.Indicator(id)
}

// DragState returns the gesture in progress
func (s *Session) DragState() DragState {
	return s.drag.State()
}

// DragCancel abandons the gesture in progress
func (s *Session) DragCancel() {
	s.drag.Cancel()
}

// Drop completes the gesture and moves the dragged component
func (s *Session) Drop() domain.MoveOutcome {
	intent, ok := s.drag.Drop()
	if !ok {
		s.logger.Debug("Drop without a target position")
		return domain.MoveNoPosition
	}
	return s.Move(intent.DraggedID, intent.TargetID, intent.Position)
}

// Move relocates a component relative to a target
func (s *Session) Move(draggedID, targetID string, position domain.DropPosition) domain.MoveOutcome {
	doc, outcome := s.doc.MoveComponent(draggedID, targetID, position)
	if outcome != domain.Moved {
		s.logger.WithFields(map[string]interface{}{
			"dragged":  draggedID,
			"target":   targetID,
			"position": position.String(),
			"outcome":  outcome.String(),
		}).Warn("Move refused")
		return outcome
	}
	s.commit(doc)
	return outcome
}

// HTML serializes the document
func (s *Session) HTML() string {
	return emailhtml.Render(s.doc)
}

// CopyHTML exports the serialized document to the clipboard
func (s *Session) CopyHTML(clipboard Clipboard) error {
	html := s.HTML()
	if report, err := emailhtml.Inspect(html); err == nil {
		for _, warning := range report.Warnings() {
			s.logger.Warn(warning)
		}
	}
	if err := clipboard.WriteText(html); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to copy HTML: %v", err))
		return fmt.Errorf("failed to copy html: %w", err)
	}
	s.logger.WithField("bytes", len(html)).Info("HTML copied to clipboard")
	return nil
}
