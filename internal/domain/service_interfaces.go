package domain

import (
	"context"
	"net/http"
)

//go:generate mockgen -destination=./mocks/mock_service_interfaces.go -package=mocks github.com/Notifuse/emailbuilder/internal/domain HTTPClient,TokenProvider,TemplateService,ContactService,ContactGroupService,CampaignService

// HTTPClient defines the interface for HTTP operations
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenProvider returns the bearer token issued by the identity provider
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// TemplateService reads and saves templates on the backend
type TemplateService interface {
	ListTemplates(ctx context.Context, page int) (*TemplatePage, error)
	GetTemplate(ctx context.Context, id int64) (*Template, error)
	CreateUserTemplate(ctx context.Context, template *Template) (*Template, error)
}

// ContactService manages contacts on the backend
type ContactService interface {
	ListContacts(ctx context.Context, page int, groupID *int64) (*PaginatedContacts, error)
	CreateContact(ctx context.Context, request *CreateContactRequest) (*Contact, error)
	UpdateContact(ctx context.Context, contactID int64, request *CreateContactRequest) (*Contact, error)
	DeleteContacts(ctx context.Context, contactIDs []int64) (string, error)
	MoveContacts(ctx context.Context, request *TransferContactsRequest) (string, error)
	CopyContacts(ctx context.Context, request *TransferContactsRequest) (string, error)
}

// ContactGroupService manages contact groups on the backend
type ContactGroupService interface {
	ListContactGroups(ctx context.Context) ([]ContactGroup, error)
	CreateContactGroup(ctx context.Context, request *CreateContactGroupRequest) (*ContactGroup, error)
	DeleteContactGroup(ctx context.Context, groupID int64) (string, error)
}

// CampaignService schedules campaigns on the backend
type CampaignService interface {
	ScheduleCampaign(ctx context.Context, campaign *Campaign) (*Campaign, error)
	PrepareCampaign(ctx context.Context, templateID int64) (*CampaignDraft, error)
}
