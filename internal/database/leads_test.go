package database

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"faris/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func leadRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "org_id", "company_name", "score", "status"})
}

func TestLeadService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantNil   bool
		wantError bool
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM leads WHERE id = $1 AND org_id = $2`)).
					WithArgs("lead-1", "org-1").
					WillReturnRows(leadRows().AddRow("lead-1", "org-1", "Tamara", 7, "new"))
			},
		},
		{
			name: "not found returns nil without error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM leads WHERE id = $1 AND org_id = $2`)).
					WithArgs("lead-1", "org-1").
					WillReturnError(sql.ErrNoRows)
			},
			wantNil: true,
		},
		{
			name: "query failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM leads WHERE id = $1 AND org_id = $2`)).
					WithArgs("lead-1", "org-1").
					WillReturnError(sql.ErrConnDone)
			},
			wantNil:   true,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setupMock(mock)

			lead, err := NewLeadService(db).Get(context.Background(), "org-1", "lead-1")

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantNil {
				assert.Nil(t, lead)
			} else {
				require.NotNil(t, lead)
				assert.Equal(t, "Tamara", lead.CompanyName)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLeadService_List_Filters(t *testing.T) {
	db, mock := newMockDB(t)

	minScore := 5
	filter := LeadFilter{
		Status:   "new",
		Industry: "Fintech",
		MinScore: &minScore,
		Search:   "tam",
		Page:     2,
		PageSize: 10,
	}

	countQuery := `SELECT COUNT(*) FROM leads WHERE org_id = $1 AND status = $2 AND industry = $3 AND score >= $4 AND (company_name ILIKE $5 OR contact_name ILIKE $5)`
	mock.ExpectQuery(regexp.QuoteMeta(countQuery)).
		WithArgs("org-1", "new", "Fintech", 5, "%tam%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	listQuery := `SELECT * FROM leads WHERE org_id = $1 AND status = $2 AND industry = $3 AND score >= $4 AND (company_name ILIKE $5 OR contact_name ILIKE $5) ORDER BY created_at DESC LIMIT $6 OFFSET $7`
	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WithArgs("org-1", "new", "Fintech", 5, "%tam%", 10, 10).
		WillReturnRows(leadRows().
			AddRow("lead-1", "org-1", "Tamara", 7, "new").
			AddRow("lead-2", "org-1", "Tamatem", 6, "new"))

	leads, total, err := NewLeadService(db).List(context.Background(), "org-1", filter)

	assert.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Len(t, leads, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadService_List_Defaults(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM leads WHERE org_id = $1`)).
		WithArgs("org-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM leads WHERE org_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`)).
		WithArgs("org-1", 20, 0).
		WillReturnRows(leadRows())

	leads, total, err := NewLeadService(db).List(context.Background(), "org-1", LeadFilter{})

	assert.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, leads)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadService_Create(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO leads").
		WillReturnResult(sqlmock.NewResult(0, 1))

	industry := "Fintech"
	lead, err := NewLeadService(db).Create(context.Background(), "org-1", &models.LeadCreateRequest{
		CompanyName: "Tamara",
		Industry:    &industry,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "org-1", lead.OrgID)
	assert.Equal(t, "new", lead.Status)
	assert.Equal(t, 0, lead.Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadService_UpdateScore(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE leads SET score = $1, score_breakdown = $2, updated_at = $3 WHERE id = $4 AND org_id = $5`)).
		WithArgs(9, sqlmock.AnyArg(), sqlmock.AnyArg(), "lead-1", "org-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewLeadService(db).UpdateScore(context.Background(), "org-1", "lead-1", 9,
		map[string]int{"funding": 3, "contact": 2, "industry": 2, "base": 2})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadService_ExistsByCompanyName(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM leads WHERE org_id = $1 AND company_name = $2`)).
		WithArgs("org-1", "Tamara").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := NewLeadService(db).ExistsByCompanyName(context.Background(), "org-1", "Tamara")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadService_Delete(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM leads WHERE id = $1 AND org_id = $2`)).
		WithArgs("lead-1", "org-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewLeadService(db).Delete(context.Background(), "org-1", "lead-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
