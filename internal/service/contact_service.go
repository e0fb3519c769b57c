package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Notifuse/emailbuilder/internal/domain"
	"github.com/Notifuse/emailbuilder/pkg/logger"
	"github.com/Notifuse/emailbuilder/pkg/tracing"
)

// ContactService manages the contacts of the signed-in user
type ContactService struct {
	client *APIClient
	logger logger.Logger
}

// NewContactService creates a new ContactService
func NewContactService(client *APIClient, logger logger.Logger) *ContactService {
	return &ContactService{
		client: client,
		logger: logger,
	}
}

// ListContacts returns one page of contacts, restricted to a group when groupID is set
func (s *ContactService) ListContacts(ctx context.Context, page int, groupID *int64) (*domain.PaginatedContacts, error) {
	if page < 0 {
		return nil, domain.NewValidationError("page must be zero or positive")
	}

	return tracing.TraceMethodWithResult(ctx, "ContactService", "ListContacts", func(ctx context.Context) (*domain.PaginatedContacts, error) {
		query := url.Values{"page": {strconv.Itoa(page)}}
		if groupID != nil {
			query.Set("groupId", strconv.FormatInt(*groupID, 10))
			tracing.AddAttribute(ctx, "group_id", *groupID)
		}

		var result domain.PaginatedContacts
		if err := s.client.getJSON(ctx, "/contacts", query, &result); err != nil {
			s.logger.Error(fmt.Sprintf("Failed to list contacts: %v", err))
			return nil, fmt.Errorf("failed to list contacts: %w", err)
		}
		return &result, nil
	})
}

// CreateContact creates a contact, optionally inside a group
func (s *ContactService) CreateContact(ctx context.Context, request *domain.CreateContactRequest) (*domain.Contact, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	return tracing.TraceMethodWithResult(ctx, "ContactService", "CreateContact", func(ctx context.Context) (*domain.Contact, error) {
		var contact domain.Contact
		if err := s.client.sendJSON(ctx, http.MethodPost, "/contacts", nil, request, &contact); err != nil {
			s.logger.WithField("email", request.Email).Error(fmt.Sprintf("Failed to create contact: %v", err))
			return nil, fmt.Errorf("failed to create contact: %w", err)
		}
		return &contact, nil
	})
}

// UpdateContact replaces the details of a contact
func (s *ContactService) UpdateContact(ctx context.Context, contactID int64, request *domain.CreateContactRequest) (*domain.Contact, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	return tracing.TraceMethodWithResult(ctx, "ContactService", "UpdateContact", func(ctx context.Context) (*domain.Contact, error) {
		tracing.AddAttribute(ctx, "contact_id", contactID)

		var contact domain.Contact
		if err := s.client.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/contacts/%d", contactID), nil, request, &contact); err != nil {
			s.logger.WithField("contact_id", contactID).Error(fmt.Sprintf("Failed to update contact: %v", err))
			return nil, fmt.Errorf("failed to update contact: %w", err)
		}
		return &contact, nil
	})
}

// DeleteContacts deletes contacts in bulk and returns the backend's confirmation
func (s *ContactService) DeleteContacts(ctx context.Context, contactIDs []int64) (string, error) {
	if len(contactIDs) == 0 {
		return "", domain.NewValidationError("at least one contact is required")
	}

	return tracing.TraceMethodWithResult(ctx, "ContactService", "DeleteContacts", func(ctx context.Context) (string, error) {
		tracing.AddAttribute(ctx, "contact_count", len(contactIDs))

		message, err := s.client.sendText(ctx, http.MethodDelete, "/contacts/bulk", nil, contactIDs)
		if err != nil {
			s.logger.WithField("contact_count", len(contactIDs)).Error(fmt.Sprintf("Failed to delete contacts: %v", err))
			return "", fmt.Errorf("failed to delete contacts: %w", err)
		}
		return message, nil
	})
}

// MoveContacts moves contacts from one group to another
func (s *ContactService) MoveContacts(ctx context.Context, request *domain.TransferContactsRequest) (string, error) {
	return s.transfer(ctx, "MoveContacts", "/contacts/move", request)
}

// CopyContacts copies contacts into another group, keeping them in the first one
func (s *ContactService) CopyContacts(ctx context.Context, request *domain.TransferContactsRequest) (string, error) {
	return s.transfer(ctx, "CopyContacts", "/contacts/copy", request)
}

func (s *ContactService) transfer(ctx context.Context, method, path string, request *domain.TransferContactsRequest) (string, error) {
	if err := request.Validate(); err != nil {
		return "", domain.NewValidationError(err.Error())
	}

	return tracing.TraceMethodWithResult(ctx, "ContactService", method, func(ctx context.Context) (string, error) {
		query := url.Values{
			"existingGroupId":  {strconv.FormatInt(request.ExistingGroupID, 10)},
			"toBeMovedGroupId": {strconv.FormatInt(request.TargetGroupID, 10)},
		}

		message, err := s.client.sendText(ctx, http.MethodPost, path, query, request.ContactIDs)
		if err != nil {
			s.logger.WithFields(map[string]interface{}{
				"from_group": request.ExistingGroupID,
				"to_group":   request.TargetGroupID,
			}).Error(fmt.Sprintf("Failed to transfer contacts: %v", err))
			return "", fmt.Errorf("failed to transfer contacts: %w", err)
		}
		return message, nil
	})
}
