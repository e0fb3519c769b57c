package emailhtml

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Link is an anchor found in a rendered email
type Link struct {
	Href string `json:"href"`
	Text string `json:"text"`
}

// Image is an <img> found in a rendered email
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Heading is an h1-h4 found in a rendered email
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Report summarizes the content of a rendered email
type Report struct {
	Title     string    `json:"title"`
	Links     []Link    `json:"links"`
	Images    []Image   `json:"images"`
	Headings  []Heading `json:"headings"`
	ListItems int       `json:"list_items"`
	Cells     int       `json:"cells"`
	Blocks    int       `json:"blocks"`
}

// Inspect parses rendered email HTML and collects what a sender would want to check
// before exporting it
func Inspect(html string) (*Report, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	report := &Report{
		Title:    strings.TrimSpace(doc.Find("title").First().Text()),
		Links:    []Link{},
		Images:   []Image{},
		Headings: []Heading{},
	}

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		report.Links = append(report.Links, Link{Href: href, Text: strings.TrimSpace(s.Text())})
	})

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		alt, _ := s.Attr("alt")
		report.Images = append(report.Images, Image{Src: src, Alt: alt})
	})

	doc.Find("h1, h2, h3, h4").Each(func(_ int, s *goquery.Selection) {
		level := int(goquery.NodeName(s)[1] - '0')
		report.Headings = append(report.Headings, Heading{Level: level, Text: strings.TrimSpace(s.Text())})
	})

	report.ListItems = doc.Find("li").Length()

	// the inner container cell holds every top-level block
	container := doc.Find("body > table > tbody > tr > td > table > tbody > tr > td").First()
	report.Blocks = container.Children().Length()
	report.Cells = container.Find("td").Length()

	return report, nil
}

// Warnings lists problems that usually mean the email is not ready to send
func (r *Report) Warnings() []string {
	var warnings []string
	if r.Blocks == 0 {
		warnings = append(warnings, "email has no content")
	}
	for _, link := range r.Links {
		if link.Href == "" || link.Href == "#" {
			warnings = append(warnings, fmt.Sprintf("link %q has a placeholder url", link.Text))
		}
	}
	for _, img := range r.Images {
		if strings.TrimSpace(img.Alt) == "" {
			warnings = append(warnings, fmt.Sprintf("image %s has no alt text", img.Src))
		}
	}
	return warnings
}
