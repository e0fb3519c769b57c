package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComponentType(t *testing.T) {
	for _, info := range ComponentTypes() {
		ct, err := ParseComponentType(string(info.Type))
		require.NoError(t, err)
		assert.Equal(t, info.Type, ct)
	}

	ct, err := ParseComponentType("  Grid ")
	require.NoError(t, err)
	assert.Equal(t, ComponentTypeGrid, ct)

	_, err = ParseComponentType("video")
	assert.Error(t, err)
	assert.IsType(t, ValidationError{}, err)
}

func TestComponentTypes_PaletteOrder(t *testing.T) {
	types := ComponentTypes()
	require.Len(t, types, 8)
	assert.Equal(t, ComponentTypeHeading, types[0].Type)
	assert.Equal(t, "Grid Layout", types[7].Label)

	// callers cannot alter the palette
	types[0].Label = "changed"
	assert.Equal(t, "Heading", ComponentTypes()[0].Label)
}

func TestNewComponent(t *testing.T) {
	tests := []struct {
		componentType ComponentType
		field         string
		expected      any
	}{
		{ComponentTypeHeading, "level", "h1"},
		{ComponentTypeText, "lineHeight", "1.6"},
		{ComponentTypeImage, "width", "100%"},
		{ComponentTypeButton, "padding", "12px 30px"},
		{ComponentTypeDivider, "color", "#cccccc"},
		{ComponentTypeSpacer, "height", "40px"},
		{ComponentTypeList, "style", "bullet"},
		{ComponentTypeGrid, "columnRatio", "1:1"},
	}

	for _, tt := range tests {
		t.Run(string(tt.componentType), func(t *testing.T) {
			n := NewComponent(tt.componentType, "id")
			assert.Equal(t, tt.expected, n.Content[tt.field])
			if tt.componentType == ComponentTypeGrid {
				assert.NotNil(t, n.Children)
				assert.Empty(t, n.Children)
			} else {
				assert.Nil(t, n.Children)
			}
		})
	}
}

func TestDefaultContent_IsIndependent(t *testing.T) {
	c := DefaultContent(ComponentTypeList)
	items := c.Strings("items")
	items[0] = "changed"
	c["color"] = "#000000"

	fresh := DefaultContent(ComponentTypeList)
	assert.Equal(t, "List item 1", fresh.Strings("items")[0])
	assert.Equal(t, "#333333", fresh.String("color"))
}

func TestContent_Accessors(t *testing.T) {
	c := Content{
		"s":       "value",
		"i":       3,
		"f":       float64(4),
		"n":       json.Number("5"),
		"str_int": " 6 ",
		"bad":     "x",
		"items":   []any{"a", "b"},
	}

	assert.Equal(t, "value", c.String("s"))
	assert.Equal(t, "3", c.String("i"))
	assert.Equal(t, "", c.String("missing"))
	assert.Equal(t, 3, c.Int("i"))
	assert.Equal(t, 4, c.Int("f"))
	assert.Equal(t, 5, c.Int("n"))
	assert.Equal(t, 6, c.Int("str_int"))
	assert.Equal(t, 0, c.Int("bad"))
	assert.Equal(t, []string{"a", "b"}, c.Strings("items"))
	assert.Nil(t, c.Strings("s"))
}

func TestContent_With(t *testing.T) {
	c := DefaultContent(ComponentTypeHeading)
	next := c.With("text", "New")
	assert.Equal(t, "New", next.String("text"))
	assert.Equal(t, "Your Heading Here", c.String("text"))
	assert.Equal(t, c.String("color"), next.String("color"))
}

func TestNode_Capacity(t *testing.T) {
	grid := NewComponent(ComponentTypeGrid, "g")
	assert.Equal(t, 2, grid.Capacity())

	grid.Content["columns"] = 4
	assert.Equal(t, 4, grid.Capacity())

	grid.Content["columns"] = "oops"
	grid.Content["columnRatio"] = "1:1:1"
	assert.Equal(t, 3, grid.Capacity())

	assert.Equal(t, 0, NewComponent(ComponentTypeText, "t").Capacity())
}
