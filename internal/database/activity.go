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

// ActivityService records and reads the per-tenant audit trail
type ActivityService struct {
	db *sqlx.DB
}

// NewActivityService creates a new activity service
func NewActivityService(db *sqlx.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Record appends an activity entry. Details may be nil.
func (s *ActivityService) Record(ctx context.Context, orgID string, userID *string, action, entityType, entityID string, details map[string]interface{}) error {
	detailsJSON := []byte("{}")
	if details != nil {
		var err error
		detailsJSON, err = json.Marshal(details)
		if err != nil {
			return fmt.Errorf("failed to marshal activity details: %w", err)
		}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO activity_log (id, org_id, user_id, action, entity_type, entity_id, details, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.NewString(), orgID, userID, action, entityType, entityID, detailsJSON, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// Recent returns the newest activity entries for an organization
func (s *ActivityService) Recent(ctx context.Context, orgID string, limit int) ([]models.ActivityEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	entries := []models.ActivityEntry{}
	err := s.db.SelectContext(ctx, &entries,
		`SELECT * FROM activity_log WHERE org_id = $1 ORDER BY created_at DESC LIMIT $2`, orgID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	return entries, nil
}
