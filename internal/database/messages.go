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

// MessageService handles outreach message storage
type MessageService struct {
	db *sqlx.DB
}

// NewMessageService creates a new message service
func NewMessageService(db *sqlx.DB) *MessageService {
	return &MessageService{db: db}
}

// CreateDraft stores an AI-generated message in draft status and returns it
func (s *MessageService) CreateDraft(ctx context.Context, orgID, leadID, channel string, subject *string, body string, personalization map[string]string) (*models.Message, error) {
	now := time.Now().UTC()

	personalizationJSON := []byte("{}")
	if personalization != nil {
		var err error
		personalizationJSON, err = json.Marshal(personalization)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal personalization data: %w", err)
		}
	}

	message := &models.Message{
		ID:                  uuid.NewString(),
		OrgID:               orgID,
		LeadID:              leadID,
		Channel:             channel,
		Subject:             subject,
		Body:                body,
		AIGenerated:         true,
		PersonalizationData: personalizationJSON,
		Status:              "draft",
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (id, org_id, lead_id, channel, subject, body, ai_generated, personalization_data, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, 'draft', $8, $8)`,
		message.ID, message.OrgID, message.LeadID, message.Channel,
		message.Subject, message.Body, message.PersonalizationData, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return message, nil
}

// Get fetches a single message scoped to the organization, nil when not found
func (s *MessageService) Get(ctx context.Context, orgID, messageID string) (*models.Message, error) {
	var message models.Message
	err := s.db.GetContext(ctx, &message,
		`SELECT * FROM messages WHERE id = $1 AND org_id = $2`, messageID, orgID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return &message, nil
}

// ListByLead returns all messages for a lead, newest first
func (s *MessageService) ListByLead(ctx context.Context, orgID, leadID string) ([]models.Message, error) {
	messages := []models.Message{}
	err := s.db.SelectContext(ctx, &messages,
		`SELECT * FROM messages WHERE org_id = $1 AND lead_id = $2 ORDER BY created_at DESC`, orgID, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// MarkSent transitions a message to sent and stamps the send time
func (s *MessageService) MarkSent(ctx context.Context, orgID, messageID string) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`UPDATE messages SET status = 'sent', sent_at = $1, updated_at = $1 WHERE id = $2 AND org_id = $3`,
		now, messageID, orgID)
	if err != nil {
		return fmt.Errorf("failed to mark message sent: %w", err)
	}
	return nil
}

// MarkFailed transitions a message to failed and records the delivery error
func (s *MessageService) MarkFailed(ctx context.Context, orgID, messageID, reason string) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`UPDATE messages SET status = 'failed', error_message = $1, updated_at = $2 WHERE id = $3 AND org_id = $4`,
		reason, now, messageID, orgID)
	if err != nil {
		return fmt.Errorf("failed to mark message failed: %w", err)
	}
	return nil
}
