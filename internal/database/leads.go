package database

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"faris/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// LeadService handles lead storage scoped to an organization
type LeadService struct {
	db *sqlx.DB
}

// NewLeadService creates a new lead service
func NewLeadService(db *sqlx.DB) *LeadService {
	return &LeadService{db: db}
}

// LeadFilter narrows a lead listing
type LeadFilter struct {
	Status   string
	Industry string
	MinScore *int
	Search   string // Matches company_name or contact_name, case-insensitive
	Page     int
	PageSize int
}

// List returns one page of leads for an organization plus the total count
func (s *LeadService) List(ctx context.Context, orgID string, filter LeadFilter) ([]models.Lead, int, error) {
	where := []string{"org_id = $1"}
	args := []interface{}{orgID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.Industry != "" {
		args = append(args, filter.Industry)
		where = append(where, "industry = $"+strconv.Itoa(len(args)))
	}
	if filter.MinScore != nil {
		args = append(args, *filter.MinScore)
		where = append(where, "score >= $"+strconv.Itoa(len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		where = append(where, "(company_name ILIKE $"+n+" OR contact_name ILIKE $"+n+")")
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	err := s.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM leads WHERE "+whereClause, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count leads: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	args = append(args, pageSize, offset)
	query := "SELECT * FROM leads WHERE " + whereClause +
		" ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args))

	leads := []models.Lead{}
	if err := s.db.SelectContext(ctx, &leads, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list leads: %w", err)
	}

	return leads, total, nil
}

// Get returns a lead by id scoped to the organization, or nil when absent
func (s *LeadService) Get(ctx context.Context, orgID, leadID string) (*models.Lead, error) {
	var lead models.Lead
	err := s.db.GetContext(ctx, &lead, `SELECT * FROM leads WHERE id = $1 AND org_id = $2`, leadID, orgID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query lead: %w", err)
	}
	return &lead, nil
}

// Create inserts a new lead and returns it
func (s *LeadService) Create(ctx context.Context, orgID string, req *models.LeadCreateRequest) (*models.Lead, error) {
	now := time.Now().UTC()
	lead := &models.Lead{
		ID:             uuid.NewString(),
		OrgID:          orgID,
		CompanyName:    req.CompanyName,
		CompanyNameAr:  req.CompanyNameAr,
		Website:        req.Website,
		Industry:       req.Industry,
		ContactName:    req.ContactName,
		ContactTitle:   req.ContactTitle,
		Email:          req.Email,
		Phone:          req.Phone,
		LinkedInURL:    req.LinkedInURL,
		FundingAmount:  req.FundingAmount,
		FundingStage:   req.FundingStage,
		EmployeeCount:  req.EmployeeCount,
		Location:       req.Location,
		Score:          0,
		ScoreBreakdown: []byte("{}"),
		Status:         "new",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO leads (
			id, org_id, company_name, company_name_ar, website, industry,
			contact_name, contact_title, email, phone, linkedin_url,
			funding_amount, funding_stage, employee_count, location,
			score, score_breakdown, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $19)`,
		lead.ID, lead.OrgID, lead.CompanyName, lead.CompanyNameAr, lead.Website, lead.Industry,
		lead.ContactName, lead.ContactTitle, lead.Email, lead.Phone, lead.LinkedInURL,
		lead.FundingAmount, lead.FundingStage, lead.EmployeeCount, lead.Location,
		lead.Score, lead.ScoreBreakdown, lead.Status, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	return lead, nil
}

// Update applies non-nil fields from the request and returns the updated lead
func (s *LeadService) Update(ctx context.Context, orgID, leadID string, req *models.LeadUpdateRequest) (*models.Lead, error) {
	lead, err := s.Get(ctx, orgID, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, nil
	}

	if req.CompanyName != nil {
		lead.CompanyName = *req.CompanyName
	}
	applyStr(&lead.CompanyNameAr, req.CompanyNameAr)
	applyStr(&lead.Website, req.Website)
	applyStr(&lead.Industry, req.Industry)
	applyStr(&lead.ContactName, req.ContactName)
	applyStr(&lead.ContactTitle, req.ContactTitle)
	applyStr(&lead.Email, req.Email)
	applyStr(&lead.Phone, req.Phone)
	applyStr(&lead.LinkedInURL, req.LinkedInURL)
	applyStr(&lead.FundingAmount, req.FundingAmount)
	applyStr(&lead.FundingStage, req.FundingStage)
	applyStr(&lead.EmployeeCount, req.EmployeeCount)
	applyStr(&lead.Location, req.Location)
	applyStr(&lead.Notes, req.Notes)
	if req.Status != nil {
		lead.Status = *req.Status
	}
	if req.Tags != nil {
		lead.Tags = pq.StringArray(req.Tags)
	}
	lead.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx,
		`UPDATE leads SET
			company_name = $1, company_name_ar = $2, website = $3, industry = $4,
			contact_name = $5, contact_title = $6, email = $7, phone = $8,
			linkedin_url = $9, funding_amount = $10, funding_stage = $11,
			employee_count = $12, location = $13, status = $14, notes = $15,
			tags = $16, updated_at = $17
		 WHERE id = $18 AND org_id = $19`,
		lead.CompanyName, lead.CompanyNameAr, lead.Website, lead.Industry,
		lead.ContactName, lead.ContactTitle, lead.Email, lead.Phone,
		lead.LinkedInURL, lead.FundingAmount, lead.FundingStage,
		lead.EmployeeCount, lead.Location, lead.Status, lead.Notes,
		lead.Tags, lead.UpdatedAt, leadID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	return lead, nil
}

// Delete removes a lead scoped to the organization
func (s *LeadService) Delete(ctx context.Context, orgID, leadID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1 AND org_id = $2`, leadID, orgID)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	return nil
}

// ExistsByCompanyName reports whether the organization already has a lead
// with this exact company name. Used by CSV import deduplication.
func (s *LeadService) ExistsByCompanyName(ctx context.Context, orgID, companyName string) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM leads WHERE org_id = $1 AND company_name = $2`, orgID, companyName)
	if err != nil {
		return false, fmt.Errorf("failed to check lead existence: %w", err)
	}
	return count > 0, nil
}

// UpdateScore persists the scorer's result. Only this method writes the
// score and breakdown columns.
func (s *LeadService) UpdateScore(ctx context.Context, orgID, leadID string, score int, breakdown map[string]int) error {
	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal score breakdown: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE leads SET score = $1, score_breakdown = $2, updated_at = $3 WHERE id = $4 AND org_id = $5`,
		score, breakdownJSON, time.Now().UTC(), leadID, orgID)
	if err != nil {
		return fmt.Errorf("failed to update lead score: %w", err)
	}
	return nil
}
