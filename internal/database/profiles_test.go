package database

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"faris/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_Update_PartialFields(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM company_profiles WHERE org_id = $1`)).
		WithArgs("org-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "org_id", "company_name", "tone", "language"}).
			AddRow("profile-1", "org-1", "Riyadh Tech", "professional", "mixed"))
	mock.ExpectExec("UPDATE company_profiles SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	valueProp := "نساعد الشركات على أتمتة المبيعات"
	tone := "friendly"
	profile, err := NewProfileService(db).Update(context.Background(), "org-1", &models.ProfileUpdateRequest{
		ValueProposition: &valueProp,
		Tone:             &tone,
	})

	require.NoError(t, err)
	require.NotNil(t, profile)
	// Untouched fields keep their stored values
	require.NotNil(t, profile.CompanyName)
	assert.Equal(t, "Riyadh Tech", *profile.CompanyName)
	assert.Equal(t, "friendly", profile.Tone)
	assert.Equal(t, "mixed", profile.Language)
	require.NotNil(t, profile.ValueProposition)
	assert.Equal(t, valueProp, *profile.ValueProposition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileService_Update_MissingProfile(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM company_profiles WHERE org_id = $1`)).
		WithArgs("org-1").
		WillReturnError(sql.ErrNoRows)

	profile, err := NewProfileService(db).Update(context.Background(), "org-1", &models.ProfileUpdateRequest{})

	assert.NoError(t, err)
	assert.Nil(t, profile)
	assert.NoError(t, mock.ExpectationsWereMet())
}
