package domain

import (
	"fmt"
	"strings"
)

// TemplateType tells system templates apart from the ones users saved themselves
type TemplateType string

const (
	TemplateTypeSystem TemplateType = "SYSTEM"
	TemplateTypeUser   TemplateType = "USER"
)

// Template is an MJML email template stored by the backend
type Template struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	MjmlContent string       `json:"mjmlContent"`
	Type        TemplateType `json:"type"`
	UserID      *string      `json:"userId,omitempty"`
}

// IsUserTemplate reports whether the template belongs to a user
func (t *Template) IsUserTemplate() bool {
	return t.Type == TemplateTypeUser
}

// Validate checks a template before it is sent to the backend
func (t *Template) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("invalid template: name is required")
	}
	if len(t.Name) > 255 {
		return fmt.Errorf("invalid template: name length must be between 1 and 255")
	}
	if strings.TrimSpace(t.MjmlContent) == "" {
		return fmt.Errorf("invalid template: mjmlContent is required")
	}
	if !strings.Contains(t.MjmlContent, "<mjml") {
		return fmt.Errorf("invalid template: mjmlContent must contain an <mjml> root")
	}
	return nil
}

// TemplatePage is one page of the template catalogue
type TemplatePage struct {
	Content       []Template `json:"content"`
	TotalPages    int        `json:"totalPages"`
	TotalElements int64      `json:"totalElements"`
	Number        int        `json:"number"` // current page, zero-based
	Size          int        `json:"size"`
	First         bool       `json:"first"`
	Last          bool       `json:"last"`
}

// HasNext reports whether a following page exists
func (p *TemplatePage) HasNext() bool {
	return !p.Last && p.Number+1 < p.TotalPages
}
