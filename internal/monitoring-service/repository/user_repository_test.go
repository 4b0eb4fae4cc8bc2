package repository

import (
	apperrors "Website_Monitoring_Service/internal/monitoring-service/errors"
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetUserById(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "email", "telegram_chat_id"}).
					AddRow("user-1", "Alice", "alice@example.com", "123456")
				mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
					WillReturnRows(rows)
			},
		},
		{
			name: "Error Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
					WillReturnError(gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewUserRepository(db)

			tc.mockSetup(mock)

			user, err := repo.GetUserById(context.Background(), "user-1")

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "123456", user.TelegramChatID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
