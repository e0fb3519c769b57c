package mjml

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/Notifuse/emailbuilder/internal/domain"
	"github.com/Notifuse/emailbuilder/pkg/emailhtml"
)

// indentPad returns a string of n spaces
func indentPad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// lineAttributes converts attrs to sorted key="value" pairs, skipping empty values
func lineAttributes(attrs map[string]string) string {
	keys := make([]string, 0, len(attrs))
	for k, v := range attrs {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf(`%s="%s"`, k, html.EscapeString(attrs[k])))
	}
	if len(pairs) == 0 {
		return ""
	}
	return " " + strings.Join(pairs, " ")
}

// DocumentToMJML converts an editor document into an MJML template that the
// backend can store and compile. Every root component becomes a section; a grid
// becomes a section with one column per ratio segment.
func DocumentToMJML(doc domain.Document) string {
	var b strings.Builder
	b.WriteString("<mjml>\n")
	b.WriteString("  <mj-head>\n")
	b.WriteString("    <mj-title>Email Template</mj-title>\n")
	b.WriteString("  </mj-head>\n")
	fmt.Fprintf(&b, "  <mj-body width=\"%dpx\" background-color=\"#f4f4f4\">\n", emailhtml.ContainerWidth)
	for _, node := range doc.Nodes() {
		writeSection(&b, node, 4)
	}
	b.WriteString("  </mj-body>\n")
	b.WriteString("</mjml>\n")
	return b.String()
}

func writeSection(b *strings.Builder, node domain.Node, indent int) {
	pad := indentPad(indent)
	fmt.Fprintf(b, "%s<mj-section background-color=\"#ffffff\" padding=\"10px 20px\">\n", pad)
	if node.IsContainer() {
		widths := emailhtml.ColumnWidths(node.Content.String("columnRatio"))
		for i, width := range widths {
			fmt.Fprintf(b, "%s<mj-column width=\"%s\">\n", indentPad(indent+2), emailhtml.FormatPercent(width))
			if i < len(node.Children) {
				writeBlock(b, node.Children[i], indent+4)
			}
			fmt.Fprintf(b, "%s</mj-column>\n", indentPad(indent+2))
		}
	} else {
		fmt.Fprintf(b, "%s<mj-column>\n", indentPad(indent+2))
		writeBlock(b, node, indent+4)
		fmt.Fprintf(b, "%s</mj-column>\n", indentPad(indent+2))
	}
	fmt.Fprintf(b, "%s</mj-section>\n", pad)
}

// writeBlock writes a component placed inside a column. MJML columns cannot hold
// sections, so the children of a nested grid are stacked in the column.
func writeBlock(b *strings.Builder, node domain.Node, indent int) {
	pad := indentPad(indent)
	c := node.Content

	switch node.Type {
	case domain.ComponentTypeHeading:
		level := c.String("level")
		switch level {
		case "h1", "h2", "h3", "h4":
		default:
			level = "h1"
		}
		attrs := map[string]string{
			"align":       c.String("align"),
			"color":       c.String("color"),
			"font-size":   c.String("size"),
			"font-weight": c.String("fontWeight"),
		}
		fmt.Fprintf(b, "%s<mj-text%s><%s style=\"margin: 0;\">%s</%s></mj-text>\n", pad, lineAttributes(attrs), level, c.String("text"), level)
	case domain.ComponentTypeText:
		attrs := map[string]string{
			"align":       c.String("align"),
			"color":       c.String("color"),
			"font-size":   c.String("fontSize"),
			"line-height": c.String("lineHeight"),
		}
		fmt.Fprintf(b, "%s<mj-text%s><p style=\"margin: 0;\">%s</p></mj-text>\n", pad, lineAttributes(attrs), c.String("text"))
	case domain.ComponentTypeImage:
		attrs := map[string]string{
			"src":   c.String("url"),
			"alt":   c.String("alt"),
			"align": c.String("align"),
		}
		// mj-image only takes pixel widths, anything else fills the column
		if width := c.String("width"); strings.HasSuffix(width, "px") {
			attrs["width"] = width
		}
		fmt.Fprintf(b, "%s<mj-image%s />\n", pad, lineAttributes(attrs))
	case domain.ComponentTypeButton:
		attrs := map[string]string{
			"href":             c.String("url"),
			"align":            c.String("align"),
			"background-color": c.String("bgColor"),
			"color":            c.String("textColor"),
			"border-radius":    c.String("borderRadius"),
			"inner-padding":    c.String("padding"),
		}
		fmt.Fprintf(b, "%s<mj-button%s>%s</mj-button>\n", pad, lineAttributes(attrs), c.String("text"))
	case domain.ComponentTypeDivider:
		attrs := map[string]string{
			"border-color": c.String("color"),
			"border-width": c.String("height"),
			"width":        c.String("width"),
		}
		fmt.Fprintf(b, "%s<mj-divider%s />\n", pad, lineAttributes(attrs))
	case domain.ComponentTypeSpacer:
		fmt.Fprintf(b, "%s<mj-spacer%s />\n", pad, lineAttributes(map[string]string{"height": c.String("height")}))
	case domain.ComponentTypeList:
		tag := "ul"
		if c.String("style") == "numbered" {
			tag = "ol"
		}
		items := make([]string, 0, len(c.Strings("items")))
		for _, item := range c.Strings("items") {
			items = append(items, "<li>"+item+"</li>")
		}
		fmt.Fprintf(b, "%s<mj-text%s><%s style=\"margin: 0; padding-left: 20px;\">%s</%s></mj-text>\n",
			pad, lineAttributes(map[string]string{"color": c.String("color")}), tag, strings.Join(items, ""), tag)
	case domain.ComponentTypeGrid:
		for _, child := range node.Children {
			writeBlock(b, child, indent)
		}
	}
}
