package repository

import (
	apperrors "Website_Monitoring_Service/internal/monitoring-service/errors"
	"Website_Monitoring_Service/internal/monitoring-service/model"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// UserRepository reads alert owners. Account lifecycle lives upstream; this
// service only needs the delivery address.
type UserRepository interface {
	GetUserById(ctx context.Context, userId string) (model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func (u *userRepository) GetUserById(ctx context.Context, userId string) (model.User, error) {
	var user model.User
	result := u.db.WithContext(ctx).First(&user, "id = ?", userId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return user, fmt.Errorf("UserRepository.GetUserById: %w", apperrors.ErrUserNotFound)
		}
		return user, fmt.Errorf("UserRepository.GetUserById: %w", result.Error)
	}
	return user, nil
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}
