package mjml

import (
	"context"
	"fmt"
	"strings"

	mjmlgo "github.com/Boostport/mjml-go"
)

// PreviewRequest asks for the HTML of an MJML template, personalised with Data
// when it is not empty
type PreviewRequest struct {
	MJML string         `json:"mjml"`
	Data map[string]any `json:"data,omitempty"`
}

// Validate ensures the request carries an MJML document
func (r *PreviewRequest) Validate() error {
	if strings.TrimSpace(r.MJML) == "" {
		return fmt.Errorf("invalid preview request: mjml is required")
	}
	if !strings.Contains(r.MJML, "<mjml") {
		return fmt.Errorf("invalid preview request: mjml must contain an <mjml> root")
	}
	return nil
}

// PreviewResult is the outcome of a preview compilation. A failed compilation
// is reported through Error, next to the MJML that was compiled.
type PreviewResult struct {
	Success bool          `json:"success"`
	MJML    *string       `json:"mjml,omitempty"`
	HTML    *string       `json:"html,omitempty"`
	Error   *mjmlgo.Error `json:"error,omitempty"`
}

// ErrorMessage returns the compilation error in the "MJML Errors: ..." form, or
// an empty string on success
func (r *PreviewResult) ErrorMessage() string {
	if r.Error == nil {
		return ""
	}
	return "MJML Errors: " + r.Error.Message
}

// Compiler turns MJML templates into HTML
type Compiler struct {
	liquid *LiquidEngine
}

// NewCompiler creates a compiler using engine for personalisation.
// A nil engine gets the default limits.
func NewCompiler(engine *LiquidEngine) *Compiler {
	if engine == nil {
		engine = NewLiquidEngine()
	}
	return &Compiler{liquid: engine}
}

// Compile renders the Liquid tags of the request then compiles the MJML.
// Invalid requests return an error; compilation problems are reported in the
// result so the caller can still show what it has.
func (c *Compiler) Compile(ctx context.Context, req PreviewRequest) (*PreviewResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	source := req.MJML
	if len(req.Data) > 0 {
		rendered, err := c.liquid.Render(ctx, source, req.Data)
		if err != nil {
			return &PreviewResult{
				Success: false,
				Error:   &mjmlgo.Error{Message: err.Error()},
			}, nil
		}
		source = rendered
	}

	html, err := mjmlgo.ToHTML(ctx, source)
	if err != nil {
		return &PreviewResult{
			Success: false,
			MJML:    &source,
			Error:   &mjmlgo.Error{Message: err.Error()},
		}, nil
	}

	return &PreviewResult{
		Success: true,
		MJML:    &source,
		HTML:    &html,
	}, nil
}
