package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Document is the ordered forest of components that make up an email.
// It is an immutable value: every operation returns a new Document and never
// modifies the receiver or nodes previously obtained from it.
type Document struct {
	nodes []Node
}

// NewDocument builds a document from root nodes. The nodes are copied.
func NewDocument(nodes ...Node) Document {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.clone()
	}
	return Document{nodes: out}
}

// Nodes returns a deep copy of the root nodes
func (d Document) Nodes() []Node {
	out := make([]Node, len(d.nodes))
	for i, n := range d.nodes {
		out[i] = n.clone()
	}
	return out
}

// Len returns the number of root nodes
func (d Document) Len() int {
	return len(d.nodes)
}

// IsEmpty reports whether the document has no nodes
func (d Document) IsEmpty() bool {
	return len(d.nodes) == 0
}

// Count returns the total number of nodes at any depth
func (d Document) Count() int {
	total := 0
	for _, n := range d.nodes {
		total += n.count()
	}
	return total
}

// Walk visits every node depth-first in document order.
// parentID is empty for root nodes. Returning false from fn stops the walk.
func (d Document) Walk(fn func(n Node, parentID string, depth int) bool) {
	walkNodes(d.nodes, "", 0, fn)
}

func walkNodes(nodes []Node, parentID string, depth int, fn func(Node, string, int) bool) bool {
	for _, n := range nodes {
		if !fn(n, parentID, depth) {
			return false
		}
		if !walkNodes(n.Children, n.ID, depth+1, fn) {
			return false
		}
	}
	return true
}

// FindComponent returns a copy of the first node with the given id, searching depth-first
func (d Document) FindComponent(id string) (Node, bool) {
	n, ok := findNode(d.nodes, id)
	if !ok {
		return Node{}, false
	}
	return n.clone(), true
}

func findNode(nodes []Node, id string) (Node, bool) {
	for _, n := range nodes {
		if n.ID == id {
			return n, true
		}
		if n.Children != nil {
			if found, ok := findNode(n.Children, id); ok {
				return found, true
			}
		}
	}
	return Node{}, false
}

// Contains reports whether a node with the given id exists at any depth
func (d Document) Contains(id string) bool {
	_, ok := findNode(d.nodes, id)
	return ok
}

// ParentOf returns the id of the grid holding the node, or "" for root nodes.
// The boolean is false when the node does not exist.
func (d Document) ParentOf(id string) (string, bool) {
	parent, found := "", false
	d.Walk(func(n Node, parentID string, _ int) bool {
		if n.ID == id {
			parent, found = parentID, true
			return false
		}
		return true
	})
	return parent, found
}

// NextID returns an id for a new component of type t created at now.
// Ids are "<type>_<unix millis>", suffixed when the document already holds that id.
func (d Document) NextID(t ComponentType, now time.Time) string {
	base := fmt.Sprintf("%s_%d", t, now.UnixMilli())
	if !d.Contains(base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d", base, i)
		if !d.Contains(candidate) {
			return candidate
		}
	}
}

// AddComponent appends a node to the grid parentID, or to the root when parentID is empty.
// A parent that is missing, not a grid, or already full redirects the node to the root.
func (d Document) AddComponent(node Node, parentID string) (Document, Placement) {
	if !node.Type.Valid() || node.ID == "" {
		return d, PlacementRejected
	}
	node = normalize(node)
	collision := false
	walkNodes([]Node{node}, "", 0, func(n Node, _ string, _ int) bool {
		if d.Contains(n.ID) {
			collision = true
			return false
		}
		return true
	})
	if collision {
		return d, PlacementRejected
	}

	if parentID != "" {
		if parent, ok := findNode(d.nodes, parentID); ok && parent.IsContainer() && len(parent.Children) < parent.Capacity() {
			nodes, _ := replaceNode(d.nodes, parentID, func(p Node) Node {
				children := make([]Node, 0, len(p.Children)+1)
				children = append(children, p.Children...)
				p.Children = append(children, node)
				return p
			})
			return Document{nodes: nodes}, PlacedInGrid
		}
		return d.appendRoot(node), RedirectedToRoot
	}
	return d.appendRoot(node), PlacedAtRoot
}

func (d Document) appendRoot(node Node) Document {
	nodes := make([]Node, 0, len(d.nodes)+1)
	nodes = append(nodes, d.nodes...)
	return Document{nodes: append(nodes, node)}
}

// normalize enforces the containment invariant on a node about to enter the tree
func normalize(n Node) Node {
	n = n.clone()
	if n.Content == nil {
		n.Content = Content{}
	}
	if !n.IsContainer() {
		n.Children = nil
		return n
	}
	if n.Children == nil {
		n.Children = []Node{}
	}
	for i, child := range n.Children {
		n.Children[i] = normalize(child)
	}
	return n
}

// UpdateComponent replaces the whole content of the node with the given id.
// It returns false, leaving the document unchanged, when the id is unknown or when a
// grid would end up with fewer columns than children.
func (d Document) UpdateComponent(id string, content Content) (Document, bool) {
	target, ok := findNode(d.nodes, id)
	if !ok {
		return d, false
	}
	next := content.Clone()
	if target.IsContainer() {
		probe := Node{Type: target.Type, Content: next}
		if len(target.Children) > probe.Capacity() {
			return d, false
		}
	}
	nodes, _ := replaceNode(d.nodes, id, func(n Node) Node {
		n.Content = next
		return n
	})
	return Document{nodes: nodes}, true
}

// replaceNode rebuilds the path to the first node matching id, applying fn to it.
// Untouched subtrees are shared with the input.
func replaceNode(nodes []Node, id string, fn func(Node) Node) ([]Node, bool) {
	for i, n := range nodes {
		if n.ID == id {
			out := make([]Node, len(nodes))
			copy(out, nodes)
			out[i] = fn(n)
			return out, true
		}
		if n.Children != nil {
			if children, ok := replaceNode(n.Children, id, fn); ok {
				out := make([]Node, len(nodes))
				copy(out, nodes)
				n.Children = children
				out[i] = n
				return out, true
			}
		}
	}
	return nodes, false
}

// DeleteComponent removes the node with the given id, and its whole subtree,
// from wherever it is in the tree. It returns false when nothing was removed.
func (d Document) DeleteComponent(id string) (Document, bool) {
	nodes, removed := removeNodes(d.nodes, id)
	if !removed {
		return d, false
	}
	return Document{nodes: nodes}, true
}

func removeNodes(nodes []Node, id string) ([]Node, bool) {
	removed := false
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n.ID == id {
			removed = true
			continue
		}
		if n.Children != nil {
			if children, ok := removeNodes(n.Children, id); ok {
				n.Children = children
				removed = true
			}
		}
		out = append(out, n)
	}
	if !removed {
		return nodes, false
	}
	return out, true
}

// Clear returns an empty document
func (d Document) Clear() Document {
	return Document{}
}

// MoveComponent relocates the dragged node, with its subtree, relative to the target.
// Before and after insert among the target's siblings; inside appends to a grid target.
// Any outcome other than Moved leaves the document unchanged.
func (d Document) MoveComponent(draggedID, targetID string, position DropPosition) (Document, MoveOutcome) {
	if draggedID == targetID {
		return d, MoveSelf
	}
	dragged, ok := findNode(d.nodes, draggedID)
	if !ok {
		return d, MoveSourceMissing
	}
	if position != DropBefore && position != DropAfter && position != DropInside {
		return d, MoveNoPosition
	}
	if !d.Contains(targetID) {
		return d, MoveTargetMissing
	}
	if _, inside := findNode(dragged.Children, targetID); inside {
		return d, MoveIntoDescendant
	}

	remaining, _ := removeNodes(d.nodes, draggedID)
	nodes, outcome := insertRelative(remaining, -1, targetID, dragged, position)
	if outcome != Moved {
		return d, outcome
	}
	return Document{nodes: nodes}, Moved
}

// insertRelative places node next to or inside the target. capacity is the limit of
// the enclosing grid, or -1 for the document root.
func insertRelative(nodes []Node, capacity int, targetID string, node Node, position DropPosition) ([]Node, MoveOutcome) {
	for i, n := range nodes {
		if n.ID == targetID {
			switch position {
			case DropInside:
				if !n.IsContainer() {
					return nodes, MoveInsideNonGrid
				}
				if len(n.Children) >= n.Capacity() {
					return nodes, MoveGridFull
				}
				children := make([]Node, 0, len(n.Children)+1)
				children = append(children, n.Children...)
				n.Children = append(children, node)
				out := make([]Node, len(nodes))
				copy(out, nodes)
				out[i] = n
				return out, Moved
			default:
				if capacity >= 0 && len(nodes) >= capacity {
					return nodes, MoveGridFull
				}
				at := i
				if position == DropAfter {
					at = i + 1
				}
				out := make([]Node, 0, len(nodes)+1)
				out = append(out, nodes[:at]...)
				out = append(out, node)
				out = append(out, nodes[at:]...)
				return out, Moved
			}
		}
		if n.Children != nil {
			if _, ok := findNode(n.Children, targetID); !ok {
				continue
			}
			children, outcome := insertRelative(n.Children, n.Capacity(), targetID, node, position)
			if outcome != Moved {
				return nodes, outcome
			}
			out := make([]Node, len(nodes))
			copy(out, nodes)
			n.Children = children
			out[i] = n
			return out, Moved
		}
	}
	return nodes, MoveTargetMissing
}

// Validate checks the structural invariants of the document
func (d Document) Validate() error {
	seen := make(map[string]bool)
	var err error
	d.Walk(func(n Node, _ string, _ int) bool {
		switch {
		case n.ID == "":
			err = fmt.Errorf("node of type %s has an empty id", n.Type)
		case seen[n.ID]:
			err = fmt.Errorf("duplicate node id: %s", n.ID)
		case !n.Type.Valid():
			err = fmt.Errorf("node %s has unknown type %q", n.ID, n.Type)
		case n.IsContainer() && n.Children == nil:
			err = fmt.Errorf("grid %s has no children list", n.ID)
		case !n.IsContainer() && n.Children != nil:
			err = fmt.Errorf("node %s of type %s must not have children", n.ID, n.Type)
		case n.IsContainer() && len(n.Children) > n.Capacity():
			err = fmt.Errorf("grid %s holds %d children but has %d columns", n.ID, len(n.Children), n.Capacity())
		}
		seen[n.ID] = true
		return err == nil
	})
	return err
}

// MarshalJSON encodes the document as an array of root nodes
func (d Document) MarshalJSON() ([]byte, error) {
	if d.nodes == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.nodes)
}
