package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ComponentType identifies the kind of an editor component
type ComponentType string

const (
	ComponentTypeHeading ComponentType = "heading"
	ComponentTypeText    ComponentType = "text"
	ComponentTypeImage   ComponentType = "image"
	ComponentTypeButton  ComponentType = "button"
	ComponentTypeDivider ComponentType = "divider"
	ComponentTypeSpacer  ComponentType = "spacer"
	ComponentTypeList    ComponentType = "list"
	ComponentTypeGrid    ComponentType = "grid"
)

// ComponentTypeInfo describes a component type as shown in the components palette
type ComponentTypeInfo struct {
	Type  ComponentType `json:"type"`
	Label string        `json:"label"`
}

var componentPalette = []ComponentTypeInfo{
	{Type: ComponentTypeHeading, Label: "Heading"},
	{Type: ComponentTypeText, Label: "Text Block"},
	{Type: ComponentTypeImage, Label: "Image"},
	{Type: ComponentTypeButton, Label: "Button"},
	{Type: ComponentTypeDivider, Label: "Divider"},
	{Type: ComponentTypeSpacer, Label: "Spacer"},
	{Type: ComponentTypeList, Label: "List"},
	{Type: ComponentTypeGrid, Label: "Grid Layout"},
}

// ComponentTypes returns every component type in palette order
func ComponentTypes() []ComponentTypeInfo {
	out := make([]ComponentTypeInfo, len(componentPalette))
	copy(out, componentPalette)
	return out
}

// ParseComponentType converts a string into a ComponentType
func ParseComponentType(s string) (ComponentType, error) {
	t := ComponentType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", NewValidationError(fmt.Sprintf("unknown component type: %q", s))
	}
	return t, nil
}

// Valid reports whether t is one of the known component types
func (t ComponentType) Valid() bool {
	_, ok := defaultContents[t]
	return ok
}

// IsContainer reports whether components of this type own children
func (t ComponentType) IsContainer() bool {
	return t == ComponentTypeGrid
}

func (t ComponentType) String() string {
	return string(t)
}

// Content maps a component's field names to their values.
// Strings hold CSS lengths, colors and copy; "columns" is an int and "items" a []string.
type Content map[string]any

// String returns the string value of a field, or "" when missing or not a string
func (c Content) String(key string) string {
	switch v := c[key].(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case int, int64, float64:
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}

// Int returns the integer value of a field.
// JSON numbers and numeric strings are accepted, anything else yields 0.
func (c Content) Int(key string) int {
	switch v := c[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Strings returns the string slice value of a field
func (c Content) Strings(key string) []string {
	switch v := c[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, _ := item.(string)
			out = append(out, s)
		}
		return out
	default:
		return nil
	}
}

// Clone returns a copy of the content that shares no mutable state with c
func (c Content) Clone() Content {
	if c == nil {
		return Content{}
	}
	out := make(Content, len(c))
	for k, v := range c {
		switch tv := v.(type) {
		case []string:
			items := make([]string, len(tv))
			copy(items, tv)
			out[k] = items
		case []any:
			items := make([]any, len(tv))
			copy(items, tv)
			out[k] = items
		default:
			out[k] = v
		}
	}
	return out
}

// With returns a copy of the content with one field overwritten
func (c Content) With(key string, value any) Content {
	out := c.Clone()
	out[key] = value
	return out
}

var defaultContents = map[ComponentType]Content{
	ComponentTypeHeading: {
		"text":       "Your Heading Here",
		"level":      "h1",
		"size":       "32px",
		"color":      "#000000",
		"align":      "left",
		"fontWeight": "bold",
	},
	ComponentTypeText: {
		"text":       "Add your text content here. This is a paragraph block.",
		"color":      "#333333",
		"align":      "left",
		"fontSize":   "16px",
		"lineHeight": "1.6",
	},
	ComponentTypeImage: {
		"url":   "https://via.placeholder.com/600x300",
		"alt":   "Image description",
		"width": "100%",
		"align": "center",
	},
	ComponentTypeButton: {
		"text":         "Click Here",
		"url":          "#",
		"bgColor":      "#0066cc",
		"textColor":    "#ffffff",
		"align":        "left",
		"borderRadius": "4px",
		"padding":      "12px 30px",
	},
	ComponentTypeDivider: {
		"color":  "#cccccc",
		"height": "1px",
		"width":  "100%",
	},
	ComponentTypeSpacer: {
		"height": "40px",
	},
	ComponentTypeList: {
		"items": []string{"List item 1", "List item 2", "List item 3"},
		"style": "bullet",
		"color": "#333333",
	},
	ComponentTypeGrid: {
		"columns":     2,
		"gap":         "20px",
		"columnRatio": "1:1",
	},
}

// DefaultContent returns a fresh copy of the default content for a component type
func DefaultContent(t ComponentType) Content {
	return defaultContents[t].Clone()
}

// Node is a single component of the email document.
// Children is non-nil if and only if the node is a grid.
type Node struct {
	ID       string        `json:"id"`
	Type     ComponentType `json:"type"`
	Content  Content       `json:"content"`
	Children []Node        `json:"children,omitempty"`
}

// NewComponent creates a node with the default content of its type
func NewComponent(t ComponentType, id string) Node {
	n := Node{
		ID:      id,
		Type:    t,
		Content: DefaultContent(t),
	}
	if t.IsContainer() {
		n.Children = []Node{}
	}
	return n
}

// IsContainer reports whether the node may own children
func (n Node) IsContainer() bool {
	return n.Type.IsContainer()
}

// Capacity returns the maximum number of children a grid accepts.
// Leaves have no capacity.
func (n Node) Capacity() int {
	if !n.IsContainer() {
		return 0
	}
	if columns := n.Content.Int("columns"); columns > 0 {
		return columns
	}
	// columns missing or malformed, fall back to the ratio segment count
	return len(strings.Split(n.Content.String("columnRatio"), ":"))
}

// MarshalJSON always emits "children" for grids and never for leaves
func (n Node) MarshalJSON() ([]byte, error) {
	type leaf struct {
		ID      string        `json:"id"`
		Type    ComponentType `json:"type"`
		Content Content       `json:"content"`
	}
	type container struct {
		ID       string        `json:"id"`
		Type     ComponentType `json:"type"`
		Content  Content       `json:"content"`
		Children []Node        `json:"children"`
	}
	if n.IsContainer() {
		children := n.Children
		if children == nil {
			children = []Node{}
		}
		return json.Marshal(container{ID: n.ID, Type: n.Type, Content: n.Content, Children: children})
	}
	return json.Marshal(leaf{ID: n.ID, Type: n.Type, Content: n.Content})
}

// clone returns a deep copy of the node and its subtree
func (n Node) clone() Node {
	out := Node{
		ID:      n.ID,
		Type:    n.Type,
		Content: n.Content.Clone(),
	}
	if n.Children != nil {
		out.Children = make([]Node, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = child.clone()
		}
	}
	return out
}

// count returns the number of nodes in the subtree rooted at n, n included
func (n Node) count() int {
	total := 1
	for _, child := range n.Children {
		total += child.count()
	}
	return total
}
