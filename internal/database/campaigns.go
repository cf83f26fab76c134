package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"faris/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// CampaignService handles campaign storage scoped to an organization
type CampaignService struct {
	db *sqlx.DB
}

// NewCampaignService creates a new campaign service
func NewCampaignService(db *sqlx.DB) *CampaignService {
	return &CampaignService{db: db}
}

// List returns all campaigns for an organization, newest first
func (s *CampaignService) List(ctx context.Context, orgID string) ([]models.Campaign, error) {
	campaigns := []models.Campaign{}
	err := s.db.SelectContext(ctx, &campaigns,
		`SELECT * FROM campaigns WHERE org_id = $1 ORDER BY created_at DESC`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// Get returns a campaign by id scoped to the organization, or nil when absent
func (s *CampaignService) Get(ctx context.Context, orgID, campaignID string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := s.db.GetContext(ctx, &campaign,
		`SELECT * FROM campaigns WHERE id = $1 AND org_id = $2`, campaignID, orgID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query campaign: %w", err)
	}
	return &campaign, nil
}

// Create inserts a new draft campaign and returns it
func (s *CampaignService) Create(ctx context.Context, orgID string, req *models.CampaignCreateRequest) (*models.Campaign, error) {
	now := time.Now().UTC()

	channels := req.Channels
	if len(channels) == 0 {
		channels = []string{"email"}
	}
	statuses := req.TargetStatuses
	if len(statuses) == 0 {
		statuses = []string{"new"}
	}
	dailyLimit := req.DailyLimit
	if dailyLimit <= 0 {
		dailyLimit = 20
	}

	var sendTimes []byte
	if req.SendTimes != nil {
		var err error
		sendTimes, err = json.Marshal(req.SendTimes)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal send times: %w", err)
		}
	}

	campaign := &models.Campaign{
		ID:               uuid.NewString(),
		OrgID:            orgID,
		Name:             req.Name,
		Description:      req.Description,
		TargetIndustries: pq.StringArray(req.TargetIndustries),
		TargetStatuses:   pq.StringArray(statuses),
		MinScore:         req.MinScore,
		MaxLeads:         req.MaxLeads,
		Channels:         pq.StringArray(channels),
		DailyLimit:       dailyLimit,
		SendTimes:        sendTimes,
		SubjectTemplate:  req.SubjectTemplate,
		MessageTemplate:  req.MessageTemplate,
		Status:           "draft",
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO campaigns (
			id, org_id, name, description, target_industries, target_statuses,
			min_score, max_leads, channels, daily_limit, send_times,
			email_subject_template, message_template, status,
			leads_contacted, replies_received, meetings_booked, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, 0, 0, 0, $15, $15)`,
		campaign.ID, campaign.OrgID, campaign.Name, campaign.Description,
		campaign.TargetIndustries, campaign.TargetStatuses, campaign.MinScore,
		campaign.MaxLeads, campaign.Channels, campaign.DailyLimit, campaign.SendTimes,
		campaign.SubjectTemplate, campaign.MessageTemplate, campaign.Status, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	return campaign, nil
}

// Start marks a campaign active and stamps started_at
func (s *CampaignService) Start(ctx context.Context, orgID, campaignID string) (bool, error) {
	return s.setStatus(ctx, orgID, campaignID, "active", "started_at")
}

// Pause marks a campaign paused and stamps paused_at
func (s *CampaignService) Pause(ctx context.Context, orgID, campaignID string) (bool, error) {
	return s.setStatus(ctx, orgID, campaignID, "paused", "paused_at")
}

func (s *CampaignService) setStatus(ctx context.Context, orgID, campaignID, status, stampColumn string) (bool, error) {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		`UPDATE campaigns SET status = $1, `+stampColumn+` = $2, updated_at = $2 WHERE id = $3 AND org_id = $4`,
		status, now, campaignID, orgID)
	if err != nil {
		return false, fmt.Errorf("failed to update campaign status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}
