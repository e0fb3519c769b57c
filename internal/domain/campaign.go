package domain

import (
	"fmt"
	"strings"
	"time"
)

// Campaign schedules a template to be sent to contact groups
type Campaign struct {
	ID              *int64  `json:"id,omitempty"`
	Name            string  `json:"name"`
	TemplateID      int64   `json:"templateId"`
	ContactGroupIDs []int64 `json:"contactGroupIds"`
	ScheduledAt     string  `json:"scheduledAt"`
}

// Validate applies the same checks as the scheduling form
func (c *Campaign) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("Please enter a campaign name")
	}
	if len(c.ContactGroupIDs) == 0 {
		return NewValidationError("Please select at least one contact group")
	}
	if c.ScheduledAt == "" {
		return NewValidationError("Please select a date and time")
	}
	if _, err := time.Parse(time.RFC3339, c.ScheduledAt); err != nil {
		return NewValidationError(fmt.Sprintf("invalid scheduledAt: %v", err))
	}
	return nil
}

// ScheduleAt sets ScheduledAt from a local date ("2006-01-02") and time ("15:04")
func (c *Campaign) ScheduleAt(date, clock string, loc *time.Location) error {
	if date == "" || clock == "" {
		return NewValidationError("Please select a date and time")
	}
	if loc == nil {
		loc = time.Local
	}
	at, err := time.ParseInLocation("2006-01-02T15:04", date+"T"+clock, loc)
	if err != nil {
		return NewValidationError(fmt.Sprintf("invalid schedule: %v", err))
	}
	c.ScheduledAt = at.UTC().Format("2006-01-02T15:04:05.000Z")
	return nil
}

// ToggleGroup adds the group to the selection, or removes it when already selected
func (c *Campaign) ToggleGroup(groupID int64) {
	for i, id := range c.ContactGroupIDs {
		if id == groupID {
			c.ContactGroupIDs = append(c.ContactGroupIDs[:i], c.ContactGroupIDs[i+1:]...)
			return
		}
	}
	c.ContactGroupIDs = append(c.ContactGroupIDs, groupID)
}

// CampaignDraft gathers what is needed to schedule a campaign for a template
type CampaignDraft struct {
	Template      *Template
	ContactGroups []ContactGroup
	Campaign      Campaign
}

// NewCampaignDraft prefills the campaign name and schedule from the template
func NewCampaignDraft(template *Template, groups []ContactGroup, now time.Time) *CampaignDraft {
	return &CampaignDraft{
		Template:      template,
		ContactGroups: groups,
		Campaign: Campaign{
			Name:            fmt.Sprintf("Campaign - %s", template.Name),
			TemplateID:      template.ID,
			ContactGroupIDs: []int64{},
			ScheduledAt:     now.UTC().Format("2006-01-02T15:04:05.000Z"),
		},
	}
}
