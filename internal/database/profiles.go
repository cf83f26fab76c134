package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"faris/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ProfileService handles company profile storage
type ProfileService struct {
	db *sqlx.DB
}

// NewProfileService creates a new profile service
func NewProfileService(db *sqlx.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetByOrg returns the company profile for an organization, or nil when absent
func (s *ProfileService) GetByOrg(ctx context.Context, orgID string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := s.db.GetContext(ctx, &profile, `SELECT * FROM company_profiles WHERE org_id = $1`, orgID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query company profile: %w", err)
	}
	return &profile, nil
}

// Update applies non-nil fields from the request to the profile and returns
// the updated record.
func (s *ProfileService) Update(ctx context.Context, orgID string, req *models.ProfileUpdateRequest) (*models.CompanyProfile, error) {
	profile, err := s.GetByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	applyStr(&profile.CompanyName, req.CompanyName)
	applyStr(&profile.CompanyNameAr, req.CompanyNameAr)
	applyStr(&profile.Industry, req.Industry)
	applyStr(&profile.Website, req.Website)
	applyStr(&profile.ValueProposition, req.ValueProposition)
	applyStr(&profile.ValuePropositionAr, req.ValuePropositionAr)
	applyStr(&profile.TargetAudience, req.TargetAudience)
	applyStr(&profile.SDRScript, req.SDRScript)
	applyStr(&profile.SDRScriptAr, req.SDRScriptAr)
	if req.PainPoints != nil {
		profile.PainPoints = pq.StringArray(req.PainPoints)
	}
	if req.Differentiators != nil {
		profile.Differentiators = pq.StringArray(req.Differentiators)
	}
	if req.Tone != nil {
		profile.Tone = *req.Tone
	}
	if req.Language != nil {
		profile.Language = *req.Language
	}
	profile.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx,
		`UPDATE company_profiles SET
			company_name = $1, company_name_ar = $2, industry = $3, website = $4,
			value_proposition = $5, value_proposition_ar = $6, target_audience = $7,
			pain_points = $8, differentiators = $9, tone = $10, language = $11,
			sdr_script = $12, sdr_script_ar = $13, updated_at = $14
		 WHERE org_id = $15`,
		profile.CompanyName, profile.CompanyNameAr, profile.Industry, profile.Website,
		profile.ValueProposition, profile.ValuePropositionAr, profile.TargetAudience,
		profile.PainPoints, profile.Differentiators, profile.Tone, profile.Language,
		profile.SDRScript, profile.SDRScriptAr, profile.UpdatedAt, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to update company profile: %w", err)
	}

	return profile, nil
}

// applyStr copies a non-nil request value into the target field
func applyStr(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}

// isNoRows reports whether the error is the sql no-rows sentinel
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
