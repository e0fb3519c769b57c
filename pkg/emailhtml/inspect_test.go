package emailhtml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Notifuse/emailbuilder/internal/domain"
)

func TestInspect(t *testing.T) {
	grid := domain.NewComponent(domain.ComponentTypeGrid, "g")
	grid.Children = []domain.Node{
		domain.NewComponent(domain.ComponentTypeText, "t"),
		domain.NewComponent(domain.ComponentTypeImage, "i"),
	}
	heading := domain.NewComponent(domain.ComponentTypeHeading, "h")
	heading.Content["level"] = "h2"
	doc := domain.NewDocument(
		heading,
		grid,
		domain.NewComponent(domain.ComponentTypeList, "l"),
		domain.NewComponent(domain.ComponentTypeButton, "b"),
	)

	report, err := Inspect(Render(doc))
	require.NoError(t, err)

	assert.Equal(t, "Email Template", report.Title)
	assert.Equal(t, 4, report.Blocks)
	assert.Equal(t, []Heading{{Level: 2, Text: "Your Heading Here"}}, report.Headings)
	assert.Equal(t, []Link{{Href: "#", Text: "Click Here"}}, report.Links)
	assert.Equal(t, []Image{{Src: "https://via.placeholder.com/600x300", Alt: "Image description"}}, report.Images)
	assert.Equal(t, 3, report.ListItems)
	// two grid cells plus the button cell
	assert.Equal(t, 3, report.Cells)

	warnings := report.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "placeholder url")
}

func TestInspect_EmptyDocument(t *testing.T) {
	report, err := Inspect(Render(domain.NewDocument()))
	require.NoError(t, err)

	assert.Equal(t, 0, report.Blocks)
	assert.Empty(t, report.Links)
	assert.Equal(t, []string{"email has no content"}, report.Warnings())
}

func TestReport_Warnings_MissingAlt(t *testing.T) {
	report := &Report{
		Blocks: 1,
		Images: []Image{{Src: "https://example.com/a.png", Alt: " "}},
		Links:  []Link{{Href: "https://example.com", Text: "ok"}},
	}
	assert.Equal(t, []string{"image https://example.com/a.png has no alt text"}, report.Warnings())
}
