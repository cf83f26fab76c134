package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"faris/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// IntegrationService handles third-party integration storage
type IntegrationService struct {
	db *sqlx.DB
}

// NewIntegrationService creates a new integration service
func NewIntegrationService(db *sqlx.DB) *IntegrationService {
	return &IntegrationService{db: db}
}

// List returns an organization's integrations
func (s *IntegrationService) List(ctx context.Context, orgID string) ([]models.Integration, error) {
	integrations := []models.Integration{}
	err := s.db.SelectContext(ctx, &integrations,
		`SELECT * FROM integrations WHERE org_id = $1 ORDER BY created_at DESC`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list integrations: %w", err)
	}
	return integrations, nil
}

// ExistsByType reports whether the organization already connected this
// integration type. One connection per type per tenant.
func (s *IntegrationService) ExistsByType(ctx context.Context, orgID, integrationType string) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM integrations WHERE org_id = $1 AND type = $2`, orgID, integrationType)
	if err != nil {
		return false, fmt.Errorf("failed to check integration existence: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new integration and returns it
func (s *IntegrationService) Create(ctx context.Context, orgID string, req *models.IntegrationCreateRequest) (*models.Integration, error) {
	now := time.Now().UTC()

	configJSON := []byte("{}")
	if req.Config != nil {
		var err error
		configJSON, err = json.Marshal(req.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal integration config: %w", err)
		}
	}

	integration := &models.Integration{
		ID:         uuid.NewString(),
		OrgID:      orgID,
		Type:       req.Type,
		Name:       req.Name,
		Config:     configJSON,
		IsActive:   true,
		DailyLimit: req.DailyLimit,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO integrations (id, org_id, type, name, config, is_active, daily_limit, used_today, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, TRUE, $6, 0, $7, $7)`,
		integration.ID, integration.OrgID, integration.Type, integration.Name,
		integration.Config, integration.DailyLimit, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create integration: %w", err)
	}

	return integration, nil
}

// Delete removes an integration scoped to the organization
func (s *IntegrationService) Delete(ctx context.Context, orgID, integrationID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM integrations WHERE id = $1 AND org_id = $2`, integrationID, orgID)
	if err != nil {
		return fmt.Errorf("failed to delete integration: %w", err)
	}
	return nil
}
