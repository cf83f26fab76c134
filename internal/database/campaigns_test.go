package database

import (
	"context"
	"regexp"
	"testing"

	"faris/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignService_Create_Defaults(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO campaigns").
		WillReturnResult(sqlmock.NewResult(0, 1))

	campaign, err := NewCampaignService(db).Create(context.Background(), "org-1",
		&models.CampaignCreateRequest{Name: "Q3 Fintech Push", MinScore: 5})

	require.NoError(t, err)
	assert.Equal(t, "draft", campaign.Status)
	assert.Equal(t, []string{"email"}, []string(campaign.Channels))
	assert.Equal(t, []string{"new"}, []string(campaign.TargetStatuses))
	assert.Equal(t, 20, campaign.DailyLimit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignService_StartPause(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "existing campaign", affected: 1, want: true},
		{name: "unknown campaign", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)

			mock.ExpectExec(regexp.QuoteMeta(`UPDATE campaigns SET status = $1, started_at = $2, updated_at = $2 WHERE id = $3 AND org_id = $4`)).
				WithArgs("active", sqlmock.AnyArg(), "camp-1", "org-1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			ok, err := NewCampaignService(db).Start(context.Background(), "org-1", "camp-1")

			assert.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCampaignService_Pause_StampsPausedAt(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE campaigns SET status = $1, paused_at = $2, updated_at = $2 WHERE id = $3 AND org_id = $4`)).
		WithArgs("paused", sqlmock.AnyArg(), "camp-1", "org-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := NewCampaignService(db).Pause(context.Background(), "org-1", "camp-1")

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
