package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Notifuse/emailbuilder/internal/domain"
	"github.com/Notifuse/emailbuilder/pkg/logger"
	"github.com/Notifuse/emailbuilder/pkg/mjml"
	"github.com/Notifuse/emailbuilder/pkg/tracing"
)

// TemplateService reads templates from the backend and saves user templates
type TemplateService struct {
	client *APIClient
	logger logger.Logger
}

// NewTemplateService creates a new TemplateService
func NewTemplateService(client *APIClient, logger logger.Logger) *TemplateService {
	return &TemplateService{
		client: client,
		logger: logger,
	}
}

// ListTemplates returns one page of the template catalogue, starting at page 0
func (s *TemplateService) ListTemplates(ctx context.Context, page int) (*domain.TemplatePage, error) {
	if page < 0 {
		return nil, domain.NewValidationError("page must be zero or positive")
	}

	return tracing.TraceMethodWithResult(ctx, "TemplateService", "ListTemplates", func(ctx context.Context) (*domain.TemplatePage, error) {
		tracing.AddAttribute(ctx, "page", page)

		var result domain.TemplatePage
		if err := s.client.getJSON(ctx, "/templates/", url.Values{"page": {strconv.Itoa(page)}}, &result); err != nil {
			s.logger.WithField("page", page).Error(fmt.Sprintf("Failed to list templates: %v", err))
			return nil, fmt.Errorf("failed to list templates: %w", err)
		}
		return &result, nil
	})
}

// GetTemplate returns a template by id
func (s *TemplateService) GetTemplate(ctx context.Context, id int64) (*domain.Template, error) {
	return tracing.TraceMethodWithResult(ctx, "TemplateService", "GetTemplate", func(ctx context.Context) (*domain.Template, error) {
		tracing.AddAttribute(ctx, "template_id", id)

		var template domain.Template
		if err := s.client.getJSON(ctx, fmt.Sprintf("/templates/%d", id), nil, &template); err != nil {
			var backendErr *domain.BackendError
			if errors.As(err, &backendErr) && backendErr.IsNotFound() {
				return nil, &domain.ErrNotFound{Entity: "template", ID: strconv.FormatInt(id, 10)}
			}
			s.logger.WithField("template_id", id).Error(fmt.Sprintf("Failed to get template: %v", err))
			return nil, fmt.Errorf("failed to get template: %w", err)
		}
		return &template, nil
	})
}

// CreateUserTemplate saves a new template owned by the signed-in user
func (s *TemplateService) CreateUserTemplate(ctx context.Context, template *domain.Template) (*domain.Template, error) {
	if err := template.Validate(); err != nil {
		return nil, err
	}

	return tracing.TraceMethodWithResult(ctx, "TemplateService", "CreateUserTemplate", func(ctx context.Context) (*domain.Template, error) {
		payload := *template
		payload.Type = domain.TemplateTypeUser

		var created domain.Template
		if err := s.client.sendJSON(ctx, http.MethodPost, "/templates/user", nil, &payload, &created); err != nil {
			s.logger.WithField("template_name", template.Name).Error(fmt.Sprintf("Failed to create template: %v", err))
			return nil, fmt.Errorf("failed to create template: %w", err)
		}

		s.logger.WithField("template_id", created.ID).Info("Template created")
		return &created, nil
	})
}

// SaveDocument stores an editor document as a new user template
func (s *TemplateService) SaveDocument(ctx context.Context, name string, doc domain.Document) (*domain.Template, error) {
	if doc.IsEmpty() {
		return nil, domain.NewValidationError("the email has no content")
	}
	return s.CreateUserTemplate(ctx, &domain.Template{
		Name:        strings.TrimSpace(name),
		MjmlContent: mjml.DocumentToMJML(doc),
		Type:        domain.TemplateTypeUser,
	})
}
