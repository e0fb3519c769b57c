package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Notifuse/emailbuilder/internal/domain"
	"github.com/Notifuse/emailbuilder/pkg/logger"
	"github.com/Notifuse/emailbuilder/pkg/tracing"
)

// ContactGroupService manages the contact groups campaigns are sent to
type ContactGroupService struct {
	client *APIClient
	logger logger.Logger
}

// NewContactGroupService creates a new ContactGroupService
func NewContactGroupService(client *APIClient, logger logger.Logger) *ContactGroupService {
	return &ContactGroupService{
		client: client,
		logger: logger,
	}
}

// ListContactGroups returns every group of the signed-in user
func (s *ContactGroupService) ListContactGroups(ctx context.Context) ([]domain.ContactGroup, error) {
	return tracing.TraceMethodWithResult(ctx, "ContactGroupService", "ListContactGroups", func(ctx context.Context) ([]domain.ContactGroup, error) {
		groups := []domain.ContactGroup{}
		if err := s.client.getJSON(ctx, "/contact-groups", nil, &groups); err != nil {
			s.logger.Error(fmt.Sprintf("Failed to list contact groups: %v", err))
			return nil, fmt.Errorf("failed to list contact groups: %w", err)
		}
		tracing.AddAttribute(ctx, "group_count", len(groups))
		return groups, nil
	})
}

// CreateContactGroup creates a group
func (s *ContactGroupService) CreateContactGroup(ctx context.Context, request *domain.CreateContactGroupRequest) (*domain.ContactGroup, error) {
	if err := request.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	return tracing.TraceMethodWithResult(ctx, "ContactGroupService", "CreateContactGroup", func(ctx context.Context) (*domain.ContactGroup, error) {
		var group domain.ContactGroup
		if err := s.client.sendJSON(ctx, http.MethodPost, "/contact-groups", nil, request, &group); err != nil {
			s.logger.WithField("group_name", request.Name).Error(fmt.Sprintf("Failed to create contact group: %v", err))
			return nil, fmt.Errorf("failed to create contact group: %w", err)
		}
		return &group, nil
	})
}

// DeleteContactGroup deletes a group and returns the backend's confirmation
func (s *ContactGroupService) DeleteContactGroup(ctx context.Context, groupID int64) (string, error) {
	return tracing.TraceMethodWithResult(ctx, "ContactGroupService", "DeleteContactGroup", func(ctx context.Context) (string, error) {
		tracing.AddAttribute(ctx, "group_id", groupID)

		message, err := s.client.sendText(ctx, http.MethodDelete, fmt.Sprintf("/contact-groups/%d", groupID), nil, nil)
		if err != nil {
			s.logger.WithField("group_id", groupID).Error(fmt.Sprintf("Failed to delete contact group: %v", err))
			return "", fmt.Errorf("failed to delete contact group: %w", err)
		}
		return message, nil
	})
}
