package database

import (
	"context"
	"fmt"
	"time"

	"faris/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// OrgService handles organization and account provisioning
type OrgService struct {
	db *sqlx.DB
}

// NewOrgService creates a new organization service
func NewOrgService(db *sqlx.DB) *OrgService {
	return &OrgService{db: db}
}

// Register provisions a new tenant: the organization, its owner user and an
// empty company profile, all in one transaction.
func (s *OrgService) Register(ctx context.Context, orgName, slug, email, passwordHash, userName string) (*models.User, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	orgID := uuid.NewString()
	userID := uuid.NewString()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO organizations (id, name, slug, subscription_tier, settings, created_at, updated_at)
		 VALUES ($1, $2, $3, 'free', '{}', $4, $4)`,
		orgID, orgName, slug, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, name, org_id, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, 'owner', $6, $6)`,
		userID, email, passwordHash, userName, orgID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO company_profiles (id, org_id, company_name, tone, language, created_at, updated_at)
		 VALUES ($1, $2, $3, 'professional', 'mixed', $4, $4)`,
		uuid.NewString(), orgID, orgName, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create company profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit registration: %w", err)
	}

	return &models.User{
		ID:           userID,
		Email:        email,
		PasswordHash: &passwordHash,
		Name:         &userName,
		OrgID:        orgID,
		Role:         "owner",
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// GetUserByEmail returns the user with the given email, or nil when absent
func (s *OrgService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE email = $1`, email)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}
	return &user, nil
}

// GetUserByID returns the user with the given id, or nil when absent
func (s *OrgService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1`, id)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query user by id: %w", err)
	}
	return &user, nil
}

// TouchLastLogin records a successful login
func (s *OrgService) TouchLastLogin(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE users SET last_login_at = $1, updated_at = $1 WHERE id = $2`,
		time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}
