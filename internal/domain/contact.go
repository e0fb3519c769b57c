package domain

import (
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"
)

// Contact is a recipient known to the backend
type Contact struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email"`
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	IsSubscribed bool    `json:"isSubscribed"`
	UserID       string  `json:"userId"`
}

// FullName joins the first and last names that are set
func (c *Contact) FullName() string {
	parts := make([]string, 0, 2)
	if c.FirstName != nil && *c.FirstName != "" {
		parts = append(parts, *c.FirstName)
	}
	if c.LastName != nil && *c.LastName != "" {
		parts = append(parts, *c.LastName)
	}
	return strings.Join(parts, " ")
}

// TemplateData exposes the contact to Liquid templates as {{ contact.* }}
func (c *Contact) TemplateData() MapOfAny {
	data := MapOfAny{
		"email":         c.Email,
		"is_subscribed": c.IsSubscribed,
		"full_name":     c.FullName(),
	}
	if c.FirstName != nil {
		data["first_name"] = *c.FirstName
	}
	if c.LastName != nil {
		data["last_name"] = *c.LastName
	}
	return MapOfAny{"contact": data}
}

// MapOfAny is a generic JSON object
type MapOfAny map[string]any

// PaginatedContacts is one page of contacts
type PaginatedContacts struct {
	Content       []Contact `json:"content"`
	Page          int       `json:"page"`
	TotalPages    int       `json:"totalPages"`
	TotalElements int64     `json:"totalElements"`
}

// CreateContactRequest is the body used to create or update a contact
type CreateContactRequest struct {
	Email          string  `json:"email" valid:"required,email"`
	FirstName      *string `json:"firstName,omitempty" valid:"optional"`
	LastName       *string `json:"lastName,omitempty" valid:"optional"`
	IsSubscribed   bool    `json:"isSubscribed"`
	ContactGroupID *int64  `json:"contactGroupId,omitempty" valid:"optional"`
}

// Validate ensures the request carries a well-formed email
func (r *CreateContactRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !govalidator.IsEmail(r.Email) {
		return fmt.Errorf("invalid email format")
	}
	if _, err := govalidator.ValidateStruct(r); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

// ContactGroup is a named set of contacts a campaign can target
type ContactGroup struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	ContactCount *int64  `json:"contactCount,omitempty"`
}

// CreateContactGroupRequest is the body used to create a contact group
type CreateContactGroupRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Validate ensures the group has a name
func (r *CreateContactGroupRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(r.Name) > 100 {
		return fmt.Errorf("name length must be between 1 and 100")
	}
	return nil
}

// TransferContactsRequest moves or copies contacts from one group to another
type TransferContactsRequest struct {
	ContactIDs      []int64
	ExistingGroupID int64
	TargetGroupID   int64
}

// Validate checks the transfer has contacts and two distinct groups
func (r *TransferContactsRequest) Validate() error {
	if len(r.ContactIDs) == 0 {
		return fmt.Errorf("at least one contact is required")
	}
	if r.ExistingGroupID == r.TargetGroupID {
		return fmt.Errorf("source and target groups must differ")
	}
	return nil
}
