package service

import (
	"context"
	"fmt"

	"github.com/Notifuse/emailbuilder/internal/domain"
	"github.com/Notifuse/emailbuilder/pkg/logger"
	"github.com/Notifuse/emailbuilder/pkg/mjml"
	"github.com/Notifuse/emailbuilder/pkg/tracing"
)

// PreviewService compiles stored templates to HTML for previewing
type PreviewService struct {
	templates domain.TemplateService
	compiler  *mjml.Compiler
	logger    logger.Logger
}

// NewPreviewService creates a new PreviewService
func NewPreviewService(templates domain.TemplateService, compiler *mjml.Compiler, logger logger.Logger) *PreviewService {
	return &PreviewService{
		templates: templates,
		compiler:  compiler,
		logger:    logger,
	}
}

// PreviewTemplate compiles the template with the given id. When contact is set
// the template is personalised with its data first.
func (s *PreviewService) PreviewTemplate(ctx context.Context, templateID int64, contact *domain.Contact) (*domain.Template, *mjml.PreviewResult, error) {
	template, err := s.templates.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, nil, err
	}

	var data map[string]any
	if contact != nil {
		data = contact.TemplateData()
	}

	result, err := s.PreviewMJML(ctx, template.MjmlContent, data)
	if err != nil {
		return template, nil, err
	}
	return template, result, nil
}

// PreviewMJML compiles an MJML document, personalised with data when it is not empty
func (s *PreviewService) PreviewMJML(ctx context.Context, source string, data map[string]any) (*mjml.PreviewResult, error) {
	return tracing.TraceMethodWithResult(ctx, "PreviewService", "PreviewMJML", func(ctx context.Context) (*mjml.PreviewResult, error) {
		tracing.AddAttribute(ctx, "mjml_size", len(source))

		result, err := s.compiler.Compile(ctx, mjml.PreviewRequest{MJML: source, Data: data})
		if err != nil {
			return nil, fmt.Errorf("failed to compile template: %w", err)
		}

		tracing.AddAttribute(ctx, "compilation_success", result.Success)
		if !result.Success {
			s.logger.Warn(result.ErrorMessage())
		}
		return result, nil
	})
}
