package repository

import (
	apperrors "Website_Monitoring_Service/internal/monitoring-service/errors"
	"Website_Monitoring_Service/internal/monitoring-service/model"
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAlert(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAlertRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "alerts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("new-uuid-1"))
	mock.ExpectCommit()

	createdAlert, err := repo.CreateAlert(context.Background(), model.Alert{
		UserID:    "user-1",
		WebsiteID: "website-1",
		Type:      model.AlertTypeDowntime,
		Title:     "Website Down",
		Message:   "Website https://example.com is not accessible: HTTP status 503",
		Severity:  model.AlertSeverityHigh,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, createdAlert.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAlertsByUserId(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewAlertRepository(db)

		rows := sqlmock.NewRows([]string{"id", "user_id", "title", "is_read"}).
			AddRow("alert-2", "user-1", "Website Down", false).
			AddRow("alert-1", "user-1", "Website Down", true)
		mock.ExpectQuery(`SELECT \* FROM "alerts" WHERE user_id = \$1 ORDER BY created_at desc`).
			WillReturnRows(rows)

		alerts, err := repo.GetAlertsByUserId(context.Background(), "user-1", 20, 0)
		require.NoError(t, err)
		assert.Len(t, alerts, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error Database Error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewAlertRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "alerts"`).
			WillReturnError(errors.New("test error"))

		_, err := repo.GetAlertsByUserId(context.Background(), "user-1", 20, 0)
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkAlertRead(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "alerts" SET`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Error Alert Of Another User",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "alerts" SET`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			expectedError: apperrors.ErrAlertNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewAlertRepository(db)

			tc.mockSetup(mock)

			err := repo.MarkAlertRead(context.Background(), "alert-1", "user-1")

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarkAlertSent(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "alerts" SET`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Error Alert Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "alerts" SET`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			expectedError: apperrors.ErrAlertNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewAlertRepository(db)

			tc.mockSetup(mock)

			err := repo.MarkAlertSent(context.Background(), "alert-1")

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
