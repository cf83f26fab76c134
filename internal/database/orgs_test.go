package database

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrgService_Register(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO organizations").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO company_profiles").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user, err := NewOrgService(db).Register(context.Background(),
		"Riyadh Tech", "riyadh-tech-a1b2c3d4", "fahad@riyadhtech.sa", "hashed", "Fahad")

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.OrgID)
	assert.Equal(t, "owner", user.Role)
	assert.Equal(t, "fahad@riyadhtech.sa", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrgService_Register_RollsBackOnUserInsertFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO organizations").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	user, err := NewOrgService(db).Register(context.Background(),
		"Riyadh Tech", "riyadh-tech-a1b2c3d4", "fahad@riyadhtech.sa", "hashed", "Fahad")

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "failed to create user")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrgService_GetUserByEmail(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantNil   bool
		wantError bool
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM users WHERE email = $1`)).
					WithArgs("fahad@riyadhtech.sa").
					WillReturnRows(sqlmock.NewRows([]string{"id", "email", "org_id", "role"}).
						AddRow("user-1", "fahad@riyadhtech.sa", "org-1", "owner"))
			},
		},
		{
			name: "absent returns nil without error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM users WHERE email = $1`)).
					WithArgs("fahad@riyadhtech.sa").
					WillReturnError(sql.ErrNoRows)
			},
			wantNil: true,
		},
		{
			name: "query failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM users WHERE email = $1`)).
					WithArgs("fahad@riyadhtech.sa").
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

			user, err := NewOrgService(db).GetUserByEmail(context.Background(), "fahad@riyadhtech.sa")

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantNil {
				assert.Nil(t, user)
			} else {
				require.NotNil(t, user)
				assert.Equal(t, "org-1", user.OrgID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
