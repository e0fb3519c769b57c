package editor

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/Notifuse/emailbuilder/internal/domain"
)

// FieldKind is the input control used to edit a field
type FieldKind string

const (
	FieldText      FieldKind = "text"
	FieldTextarea  FieldKind = "textarea"
	FieldSelect    FieldKind = "select"
	FieldColor     FieldKind = "color"
	FieldAlignment FieldKind = "alignment"
	// FieldLines edits a string list, one entry per line
	FieldLines FieldKind = "lines"
)

// Field describes one editable property of a component
type Field struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Kind        FieldKind `json:"kind"`
	Options     []string  `json:"options,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
}

var alignments = []string{"left", "center", "right"}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func alignField() Field {
	return Field{Name: "align", Label: "Alignment", Kind: FieldAlignment, Options: alignments}
}

func colorField(name, label string) Field {
	return Field{Name: name, Label: label, Kind: FieldColor}
}

var panelFields = map[domain.ComponentType][]Field{
	domain.ComponentTypeHeading: {
		{Name: "text", Label: "Text", Kind: FieldText},
		{Name: "level", Label: "Heading Level", Kind: FieldSelect, Options: []string{"h1", "h2", "h3", "h4"}},
		{Name: "size", Label: "Font Size", Kind: FieldText, Placeholder: "32px"},
		{Name: "fontWeight", Label: "Font Weight", Kind: FieldSelect, Options: []string{"normal", "bold", "lighter", "bolder"}},
		alignField(),
		colorField("color", "Color"),
	},
	domain.ComponentTypeText: {
		{Name: "text", Label: "Text", Kind: FieldTextarea},
		{Name: "fontSize", Label: "Font Size", Kind: FieldText, Placeholder: "16px"},
		{Name: "lineHeight", Label: "Line Height", Kind: FieldText, Placeholder: "1.6"},
		alignField(),
		colorField("color", "Color"),
	},
	domain.ComponentTypeImage: {
		{Name: "url", Label: "Image URL", Kind: FieldText, Placeholder: "https://"},
		{Name: "alt", Label: "Alt Text", Kind: FieldText},
		{Name: "width", Label: "Width", Kind: FieldText, Placeholder: "100%"},
		alignField(),
	},
	domain.ComponentTypeButton: {
		{Name: "text", Label: "Button Text", Kind: FieldText},
		{Name: "url", Label: "Link URL", Kind: FieldText, Placeholder: "https://"},
		alignField(),
		colorField("bgColor", "Background Color"),
		colorField("textColor", "Text Color"),
		{Name: "borderRadius", Label: "Border Radius", Kind: FieldText, Placeholder: "4px"},
		{Name: "padding", Label: "Padding", Kind: FieldText, Placeholder: "12px 30px"},
	},
	domain.ComponentTypeDivider: {
		colorField("color", "Color"),
		{Name: "height", Label: "Thickness", Kind: FieldText, Placeholder: "1px"},
		{Name: "width", Label: "Width", Kind: FieldText, Placeholder: "100%"},
	},
	domain.ComponentTypeSpacer: {
		{Name: "height", Label: "Height", Kind: FieldText, Placeholder: "40px"},
	},
	domain.ComponentTypeList: {
		{Name: "style", Label: "List Style", Kind: FieldSelect, Options: []string{"bullet", "numbered"}},
		{Name: "items", Label: "Items (one per line)", Kind: FieldLines},
		colorField("color", "Color"),
	},
	domain.ComponentTypeGrid: {
		{Name: "columns", Label: "Columns", Kind: FieldSelect, Options: []string{"2", "3", "4"}},
		{Name: "columnRatio", Label: "Column Ratio", Kind: FieldText, Placeholder: "1:1"},
		{Name: "gap", Label: "Gap", Kind: FieldText, Placeholder: "20px"},
	},
}

// Panel is the property editor for one selected component
type Panel struct {
	Node   domain.Node `json:"node"`
	Fields []Field     `json:"fields"`
}

// ResolvePanel returns the editable fields of a node together with the node itself.
// Unknown types get a panel without fields.
func ResolvePanel(node domain.Node) Panel {
	fields := panelFields[node.Type]
	out := make([]Field, len(fields))
	copy(out, fields)
	return Panel{Node: node, Fields: out}
}

// Field looks up a field by name
func (p Panel) Field(name string) (Field, bool) {
	for _, f := range p.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// AcceptsChildren reports whether the panel offers adding components into the node
func (p Panel) AcceptsChildren() bool {
	return p.Node.IsContainer()
}

// Value returns the current value of a field as it would be shown in its input
func (p Panel) Value(name string) string {
	f, ok := p.Field(name)
	if !ok {
		return ""
	}
	if f.Kind == FieldLines {
		return strings.Join(p.Node.Content.Strings(name), "\n")
	}
	return p.Node.Content.String(name)
}

// Apply converts raw input for one field and returns the node's content with exactly
// that field overwritten
func (p Panel) Apply(name, raw string) (domain.Content, error) {
	f, ok := p.Field(name)
	if !ok {
		return nil, domain.NewValidationError(fmt.Sprintf("component %s has no field %q", p.Node.Type, name))
	}

	var value any = raw
	switch f.Kind {
	case FieldSelect, FieldAlignment:
		if !slices.Contains(f.Options, raw) {
			return nil, domain.NewValidationError(fmt.Sprintf("invalid %s: %q (must be one of %s)", f.Name, raw, strings.Join(f.Options, ", ")))
		}
		if f.Name == "columns" {
			columns, err := strconv.Atoi(raw)
			if err != nil {
				return nil, domain.NewValidationError(fmt.Sprintf("invalid columns: %q", raw))
			}
			value = columns
		}
	case FieldColor:
		if !colorPattern.MatchString(raw) {
			return nil, domain.NewValidationError(fmt.Sprintf("invalid %s: %q (expected #rrggbb)", f.Name, raw))
		}
	case FieldLines:
		value = strings.Split(raw, "\n")
	}

	return p.Node.Content.With(name, value), nil
}
