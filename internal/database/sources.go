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

// SourceService handles industry source and data source storage
type SourceService struct {
	db *sqlx.DB
}

// NewSourceService creates a new source service
func NewSourceService(db *sqlx.DB) *SourceService {
	return &SourceService{db: db}
}

// ListIndustrySources returns all active curated sources
func (s *SourceService) ListIndustrySources(ctx context.Context) ([]models.IndustrySource, error) {
	sources := []models.IndustrySource{}
	err := s.db.SelectContext(ctx, &sources,
		`SELECT * FROM industry_sources WHERE is_active = TRUE ORDER BY industry, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list industry sources: %w", err)
	}
	return sources, nil
}

// GetIndustrySource returns a curated source by id, or nil when absent
func (s *SourceService) GetIndustrySource(ctx context.Context, id string) (*models.IndustrySource, error) {
	var source models.IndustrySource
	err := s.db.GetContext(ctx, &source, `SELECT * FROM industry_sources WHERE id = $1`, id)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query industry source: %w", err)
	}
	return &source, nil
}

// ListDataSources returns an organization's data sources
func (s *SourceService) ListDataSources(ctx context.Context, orgID string) ([]models.DataSource, error) {
	sources := []models.DataSource{}
	err := s.db.SelectContext(ctx, &sources,
		`SELECT * FROM data_sources WHERE org_id = $1 ORDER BY created_at DESC`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list data sources: %w", err)
	}
	return sources, nil
}

// CreateDataSource inserts a tenant-defined data source
func (s *SourceService) CreateDataSource(ctx context.Context, orgID string, req *models.DataSourceCreateRequest) (*models.DataSource, error) {
	now := time.Now().UTC()

	scrapeConfig := []byte("{}")
	if req.ScrapeConfig != nil {
		var err error
		scrapeConfig, err = json.Marshal(req.ScrapeConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal scrape config: %w", err)
		}
	}

	source := &models.DataSource{
		ID:           uuid.NewString(),
		OrgID:        orgID,
		Name:         req.Name,
		SourceType:   req.SourceType,
		URL:          req.URL,
		ScrapeConfig: scrapeConfig,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO data_sources (id, org_id, name, source_type, url, scrape_config, is_active, leads_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, TRUE, 0, $7, $7)`,
		source.ID, source.OrgID, source.Name, source.SourceType, source.URL, source.ScrapeConfig, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create data source: %w", err)
	}

	return source, nil
}

// EnableIndustrySource copies a curated source into the organization's data
// sources and returns the new data source.
func (s *SourceService) EnableIndustrySource(ctx context.Context, orgID string, industrySource *models.IndustrySource) (*models.DataSource, error) {
	now := time.Now().UTC()
	source := &models.DataSource{
		ID:               uuid.NewString(),
		OrgID:            orgID,
		IndustrySourceID: &industrySource.ID,
		Name:             industrySource.Name,
		SourceType:       industrySource.SourceType,
		URL:              &industrySource.URL,
		ScrapeConfig:     industrySource.ScrapeConfig,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO data_sources (id, org_id, industry_source_id, name, source_type, url, scrape_config, is_active, leads_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, 0, $8, $8)`,
		source.ID, source.OrgID, source.IndustrySourceID, source.Name,
		source.SourceType, source.URL, source.ScrapeConfig, now)
	if err != nil {
		return nil, fmt.Errorf("failed to enable industry source: %w", err)
	}

	return source, nil
}
