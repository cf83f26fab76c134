package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// UsageService tracks per-month consumption counters for billing
type UsageService struct {
	db *sqlx.DB
}

// NewUsageService creates a new usage service
func NewUsageService(db *sqlx.DB) *UsageService {
	return &UsageService{db: db}
}

// currentMonth returns the first day of the current UTC month
func currentMonth() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (s *UsageService) increment(ctx context.Context, orgID, column string, delta int) error {
	query := fmt.Sprintf(
		`INSERT INTO usage (id, org_id, month, %s) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (org_id, month) DO UPDATE SET %s = usage.%s + $4`,
		column, column, column)
	_, err := s.db.ExecContext(ctx, query, uuid.NewString(), orgID, currentMonth(), delta)
	if err != nil {
		return fmt.Errorf("failed to increment usage %s: %w", column, err)
	}
	return nil
}

// AddLeadsImported bumps the monthly imported-lead counter
func (s *UsageService) AddLeadsImported(ctx context.Context, orgID string, count int) error {
	return s.increment(ctx, orgID, "leads_imported", count)
}

// AddMessageSent bumps the monthly sent-message counter
func (s *UsageService) AddMessageSent(ctx context.Context, orgID string) error {
	return s.increment(ctx, orgID, "messages_sent", 1)
}

// AddGeneration records one AI generation and its token spend
func (s *UsageService) AddGeneration(ctx context.Context, orgID string, tokens int) error {
	if err := s.increment(ctx, orgID, "ai_generations", 1); err != nil {
		return err
	}
	return s.increment(ctx, orgID, "ai_tokens_used", tokens)
}
