// Package emailhtml renders an editor document into a standalone, table-based HTML email.
package emailhtml

import (
	"fmt"
	"html"
	"strings"

	"github.com/Notifuse/emailbuilder/internal/domain"
)

// ContainerWidth is the fixed width of the email body table, in pixels
const ContainerWidth = 600

// renderFunc renders a single component into an HTML fragment
type renderFunc func(n domain.Node) string

// renderers holds one entry per component type. Adding a component type means adding
// an entry here.
var renderers map[domain.ComponentType]renderFunc

func init() {
	renderers = map[domain.ComponentType]renderFunc{
		domain.ComponentTypeHeading: renderHeading,
		domain.ComponentTypeText:    renderText,
		domain.ComponentTypeImage:   renderImage,
		domain.ComponentTypeButton:  renderButton,
		domain.ComponentTypeDivider: renderDivider,
		domain.ComponentTypeSpacer:  renderSpacer,
		domain.ComponentTypeList:    renderList,
		domain.ComponentTypeGrid:    renderGrid,
	}
}

// attr escapes a value placed inside a double-quoted attribute
func attr(s string) string {
	return html.EscapeString(s)
}

// RenderNode renders one component, and its children for grids.
// Unknown component types render as an empty string.
func RenderNode(n domain.Node) string {
	render, ok := renderers[n.Type]
	if !ok {
		return ""
	}
	return render(n)
}

var headingLevels = map[string]bool{"h1": true, "h2": true, "h3": true, "h4": true}

func renderHeading(n domain.Node) string {
	c := n.Content
	level := strings.ToLower(c.String("level"))
	if !headingLevels[level] {
		level = "h1"
	}
	return fmt.Sprintf(`<%s style="font-size: %s; color: %s; margin: 20px 0; font-weight: %s; text-align: %s;">%s</%s>`,
		level, attr(c.String("size")), attr(c.String("color")), attr(c.String("fontWeight")), attr(c.String("align")), c.String("text"), level)
}

func renderText(n domain.Node) string {
	c := n.Content
	return fmt.Sprintf(`<p style="font-size: %s; line-height: %s; color: %s; margin: 15px 0; text-align: %s;">%s</p>`,
		attr(c.String("fontSize")), attr(c.String("lineHeight")), attr(c.String("color")), attr(c.String("align")), c.String("text"))
}

func renderImage(n domain.Node) string {
	c := n.Content
	return fmt.Sprintf(`<div style="text-align: %s; margin: 20px 0;"><img src="%s" alt="%s" style="width: %s; height: auto; display: inline-block;" /></div>`,
		attr(c.String("align")), attr(c.String("url")), attr(c.String("alt")), attr(c.String("width")))
}

// renderButton emits a bulletproof button: the cell carries the background, padding and
// radius so clients that strip <button> still draw it.
func renderButton(n domain.Node) string {
	c := n.Content
	return fmt.Sprintf(`<div style="text-align: %s; margin: 20px 0;"><table cellpadding="0" cellspacing="0" border="0" style="display: inline-block;"><tr><td style="background-color: %s; padding: %s; border-radius: %s;"><a href="%s" style="color: %s; text-decoration: none; font-weight: bold; font-size: 16px;">%s</a></td></tr></table></div>`,
		attr(c.String("align")), attr(c.String("bgColor")), attr(c.String("padding")), attr(c.String("borderRadius")),
		attr(c.String("url")), attr(c.String("textColor")), c.String("text"))
}

func renderDivider(n domain.Node) string {
	c := n.Content
	return fmt.Sprintf(`<hr style="border: none; border-top: %s solid %s; margin: 30px 0; width: %s;" />`,
		attr(c.String("height")), attr(c.String("color")), attr(c.String("width")))
}

func renderSpacer(n domain.Node) string {
	return fmt.Sprintf(`<div style="height: %s;"></div>`, attr(n.Content.String("height")))
}

func renderList(n domain.Node) string {
	c := n.Content
	tag := "ul"
	if c.String("style") == "numbered" {
		tag = "ol"
	}
	var items strings.Builder
	for _, item := range c.Strings("items") {
		items.WriteString(`<li style="margin: 8px 0;">`)
		items.WriteString(item)
		items.WriteString(`</li>`)
	}
	return fmt.Sprintf(`<%s style="color: %s; padding-left: 20px; margin: 15px 0;">%s</%s>`,
		tag, attr(c.String("color")), items.String(), tag)
}

// renderGrid lays the children out as a single-row table. The column ratio decides
// how many cells there are; the child at index i fills cell i.
func renderGrid(n domain.Node) string {
	var cells strings.Builder
	for i, width := range ColumnWidths(n.Content.String("columnRatio")) {
		content := ""
		if i < len(n.Children) {
			content = RenderNode(n.Children[i])
		}
		fmt.Fprintf(&cells, `<td style="width: %s; vertical-align: top; padding: 10px;">%s</td>`, FormatPercent(width), content)
	}
	return fmt.Sprintf(`<table cellpadding="0" cellspacing="0" border="0" width="100%%" style="margin: 20px 0;"><tr>%s</tr></table>`, cells.String())
}

const documentTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Email Template</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
  <table cellpadding="0" cellspacing="0" border="0" width="100%%" style="background-color: #f4f4f4; padding: 20px 0;">
    <tr>
      <td align="center">
        <table cellpadding="0" cellspacing="0" border="0" width="%d" style="background-color: #ffffff; padding: 40px;">
          <tr>
            <td>
              %s
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

// Render serializes the whole document. It is a pure function of the tree: node ids
// never reach the output and equal trees give equal strings.
func Render(doc domain.Document) string {
	nodes := doc.Nodes()
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = RenderNode(n)
	}
	return fmt.Sprintf(documentTemplate, ContainerWidth, strings.Join(parts, "\n              "))
}
