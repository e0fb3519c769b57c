package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Notifuse/emailbuilder/internal/domain"
	"github.com/Notifuse/emailbuilder/pkg/logger"
	"github.com/Notifuse/emailbuilder/pkg/tracing"
)

// CampaignService schedules campaigns and prepares their drafts
type CampaignService struct {
	client    *APIClient
	templates domain.TemplateService
	groups    domain.ContactGroupService
	logger    logger.Logger
	now       func() time.Time
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(client *APIClient, templates domain.TemplateService, groups domain.ContactGroupService, logger logger.Logger) *CampaignService {
	return &CampaignService{
		client:    client,
		templates: templates,
		groups:    groups,
		logger:    logger,
		now:       time.Now,
	}
}

// ScheduleCampaign validates the campaign and submits it to the backend
func (s *CampaignService) ScheduleCampaign(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	if err := campaign.Validate(); err != nil {
		return nil, err
	}

	return tracing.TraceMethodWithResult(ctx, "CampaignService", "ScheduleCampaign", func(ctx context.Context) (*domain.Campaign, error) {
		tracing.AddAttribute(ctx, "template_id", campaign.TemplateID)
		tracing.AddAttribute(ctx, "group_count", len(campaign.ContactGroupIDs))

		var scheduled domain.Campaign
		if err := s.client.sendJSON(ctx, http.MethodPost, "/campaigns", nil, campaign, &scheduled); err != nil {
			s.logger.WithFields(map[string]interface{}{
				"campaign_name": campaign.Name,
				"template_id":   campaign.TemplateID,
			}).Error(fmt.Sprintf("Failed to schedule campaign: %v", err))
			return nil, fmt.Errorf("failed to schedule campaign: %w", err)
		}

		s.logger.WithFields(map[string]interface{}{
			"campaign_name": scheduled.Name,
			"scheduled_at":  scheduled.ScheduledAt,
		}).Info("Campaign scheduled")
		return &scheduled, nil
	})
}

// PrepareCampaign loads the template and the contact groups in parallel and
// returns a draft prefilled from the template
func (s *CampaignService) PrepareCampaign(ctx context.Context, templateID int64) (*domain.CampaignDraft, error) {
	return tracing.TraceMethodWithResult(ctx, "CampaignService", "PrepareCampaign", func(ctx context.Context) (*domain.CampaignDraft, error) {
		var (
			template *domain.Template
			groups   []domain.ContactGroup
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			t, err := s.templates.GetTemplate(gctx, templateID)
			if err != nil {
				return err
			}
			template = t
			return nil
		})
		g.Go(func() error {
			list, err := s.groups.ListContactGroups(gctx)
			if err != nil {
				return err
			}
			groups = list
			return nil
		})

		if err := g.Wait(); err != nil {
			s.logger.WithField("template_id", templateID).Error(fmt.Sprintf("Failed to load campaign data: %v", err))
			return nil, fmt.Errorf("failed to load data: %w", err)
		}

		return domain.NewCampaignDraft(template, groups, s.now()), nil
	})
}
