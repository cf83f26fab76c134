package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUsageService_AddLeadsImported(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO usage .+ON CONFLICT \\(org_id, month\\) DO UPDATE SET leads_imported = usage.leads_imported \\+ \\$4").
		WithArgs(sqlmock.AnyArg(), "org-1", sqlmock.AnyArg(), 18).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewUsageService(db).AddLeadsImported(context.Background(), "org-1", 18)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsageService_AddGeneration(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("DO UPDATE SET ai_generations = usage.ai_generations \\+ \\$4").
		WithArgs(sqlmock.AnyArg(), "org-1", sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DO UPDATE SET ai_tokens_used = usage.ai_tokens_used \\+ \\$4").
		WithArgs(sqlmock.AnyArg(), "org-1", sqlmock.AnyArg(), 311).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewUsageService(db).AddGeneration(context.Background(), "org-1", 311)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
