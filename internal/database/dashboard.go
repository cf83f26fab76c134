package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"faris/internal/models"

	"github.com/jmoiron/sqlx"
)

// DashboardService aggregates tenant-wide stats for the dashboard
type DashboardService struct {
	db *sqlx.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *sqlx.DB) *DashboardService {
	return &DashboardService{db: db}
}

type countRow struct {
	Key   string `db:"key"`
	Count int    `db:"count"`
}

// Stats computes the dashboard aggregates for an organization. Each query
// is org-scoped; the reply rate is a percentage rounded to one decimal.
func (s *DashboardService) Stats(ctx context.Context, orgID string) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{
		LeadsByStatus:   map[string]int{},
		LeadsByScore:    map[string]int{"high": 0, "medium": 0, "low": 0},
		LeadsByIndustry: map[string]int{},
	}

	err := s.db.GetContext(ctx, &stats.TotalLeads,
		`SELECT COUNT(*) FROM leads WHERE org_id = $1`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	monthStart := time.Now().UTC()
	monthStart = time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, time.UTC)
	err = s.db.GetContext(ctx, &stats.LeadsThisMonth,
		`SELECT COUNT(*) FROM leads WHERE org_id = $1 AND created_at >= $2`, orgID, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count monthly leads: %w", err)
	}

	err = s.db.GetContext(ctx, &stats.MessagesSent,
		`SELECT COUNT(*) FROM messages WHERE org_id = $1 AND status = 'sent'`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count sent messages: %w", err)
	}

	err = s.db.GetContext(ctx, &stats.RepliesReceived,
		`SELECT COUNT(*) FROM messages WHERE org_id = $1 AND replied_at IS NOT NULL`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count replies: %w", err)
	}

	if stats.MessagesSent > 0 {
		rate := float64(stats.RepliesReceived) / float64(stats.MessagesSent) * 100
		stats.ReplyRate = math.Round(rate*10) / 10
	}

	err = s.db.GetContext(ctx, &stats.ActiveCampaigns,
		`SELECT COUNT(*) FROM campaigns WHERE org_id = $1 AND status = 'active'`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count campaigns: %w", err)
	}

	statusRows := []countRow{}
	err = s.db.SelectContext(ctx, &statusRows,
		`SELECT status AS key, COUNT(*) AS count FROM leads WHERE org_id = $1 GROUP BY status`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to group leads by status: %w", err)
	}
	for _, row := range statusRows {
		stats.LeadsByStatus[row.Key] = row.Count
	}

	scoreRows := []countRow{}
	err = s.db.SelectContext(ctx, &scoreRows,
		`SELECT CASE WHEN score >= 7 THEN 'high' WHEN score >= 4 THEN 'medium' ELSE 'low' END AS key,
		        COUNT(*) AS count
		 FROM leads WHERE org_id = $1 GROUP BY 1`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to group leads by score: %w", err)
	}
	for _, row := range scoreRows {
		stats.LeadsByScore[row.Key] = row.Count
	}

	industryRows := []countRow{}
	err = s.db.SelectContext(ctx, &industryRows,
		`SELECT industry AS key, COUNT(*) AS count
		 FROM leads WHERE org_id = $1 AND industry IS NOT NULL
		 GROUP BY industry ORDER BY count DESC LIMIT 10`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to group leads by industry: %w", err)
	}
	for _, row := range industryRows {
		stats.LeadsByIndustry[row.Key] = row.Count
	}

	return stats, nil
}
