package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"faris/internal/database"
	"faris/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMessageHandler_NotConfigured(t *testing.T) {
	c, rec := authedContext(t, http.MethodPost, "/api/ai/generate-message",
		`{"lead_id":"lead-1","channel":"email"}`)

	err := GenerateMessageHandler(nil, nil, nil, nil, nil, nil)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAnalyzeResponseHandler_NotConfigured(t *testing.T) {
	c, rec := authedContext(t, http.MethodPost, "/api/ai/analyze-response",
		`{"message":"ان شاء الله"}`)

	err := AnalyzeResponseHandler(nil)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestScoreLeadHandler(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM leads WHERE id").
		WithArgs("lead-1", "org-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "org_id", "company_name", "funding_amount", "email", "phone", "industry", "score", "status",
		}).AddRow("lead-1", "org-1", "Tamara", "Series B, $100 million", "sara@tamara.co", "+966500000000", "fintech", 0, "new"))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE leads SET score = $1, score_breakdown = $2, updated_at = $3 WHERE id = $4 AND org_id = $5`)).
		WithArgs(9, sqlmock.AnyArg(), sqlmock.AnyArg(), "lead-1", "org-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO activity_log").
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := authedContext(t, http.MethodPost, "/api/ai/score-lead", `{"lead_id":"lead-1"}`)

	err := ScoreLeadHandler(database.NewLeadService(db), database.NewActivityService(db))(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response models.ScoreLeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 9, response.Score)
	assert.Equal(t, 3, response.Breakdown["funding"])
	assert.Equal(t, 2, response.Breakdown["contact"])
	assert.Equal(t, 2, response.Breakdown["industry"])
	assert.Equal(t, 2, response.Breakdown["base"])
	assert.Contains(t, response.Reasons, "large funding")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScoreLeadHandler_LeadNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM leads WHERE id").
		WithArgs("missing", "org-1").
		WillReturnError(sql.ErrNoRows)

	c, rec := authedContext(t, http.MethodPost, "/api/ai/score-lead", `{"lead_id":"missing"}`)

	err := ScoreLeadHandler(database.NewLeadService(db), database.NewActivityService(db))(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
