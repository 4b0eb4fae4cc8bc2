package repository

import (
	apperrors "Website_Monitoring_Service/internal/monitoring-service/errors"
	"Website_Monitoring_Service/internal/monitoring-service/model"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type AlertRepository interface {
	CreateAlert(ctx context.Context, alert model.Alert) (model.Alert, error)
	GetAlertsByUserId(ctx context.Context, userId string, limit int, offset int) ([]model.Alert, error)
	MarkAlertRead(ctx context.Context, alertId string, userId string) error
	MarkAlertSent(ctx context.Context, alertId string) error
}

type alertRepository struct {
	db *gorm.DB
}

func (a *alertRepository) CreateAlert(ctx context.Context, alert model.Alert) (model.Alert, error) {
	result := a.db.WithContext(ctx).Create(&alert)
	if result.Error != nil {
		return alert, fmt.Errorf("AlertRepository.CreateAlert: %w", result.Error)
	}
	return alert, nil
}

func (a *alertRepository) GetAlertsByUserId(ctx context.Context, userId string, limit int, offset int) ([]model.Alert, error) {
	var alerts []model.Alert
	result := a.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&alerts)
	if result.Error != nil {
		return nil, fmt.Errorf("AlertRepository.GetAlertsByUserId: %w", result.Error)
	}
	return alerts, nil
}

// MarkAlertRead is scoped by owner so one user cannot acknowledge another
// user's alerts.
func (a *alertRepository) MarkAlertRead(ctx context.Context, alertId string, userId string) error {
	result := a.db.WithContext(ctx).Model(&model.Alert{}).
		Where("id = ? AND user_id = ?", alertId, userId).
		Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("AlertRepository.MarkAlertRead: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("AlertRepository.MarkAlertRead: %w", apperrors.ErrAlertNotFound)
	}
	return nil
}

func (a *alertRepository) MarkAlertSent(ctx context.Context, alertId string) error {
	result := a.db.WithContext(ctx).Model(&model.Alert{}).
		Where("id = ?", alertId).
		Update("sent_via_telegram", true)
	if result.Error != nil {
		return fmt.Errorf("AlertRepository.MarkAlertSent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("AlertRepository.MarkAlertSent: %w", apperrors.ErrAlertNotFound)
	}
	return nil
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{
		db: db,
	}
}
