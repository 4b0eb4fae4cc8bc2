package service

import (
	"Website_Monitoring_Service/internal/monitoring-service/model"
	"Website_Monitoring_Service/internal/monitoring-service/repository"
	"context"
	"fmt"
)

type AlertService interface {
	GetAlerts(ctx context.Context, userId string, limit int, offset int) ([]model.Alert, error)
	MarkAlertRead(ctx context.Context, alertId string, userId string) error
}

type alertService struct {
	alertRepository repository.AlertRepository
}

func (a *alertService) GetAlerts(ctx context.Context, userId string, limit int, offset int) ([]model.Alert, error) {
	alerts, err := a.alertRepository.GetAlertsByUserId(ctx, userId, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("AlertService.GetAlerts: %w", err)
	}
	return alerts, nil
}

func (a *alertService) MarkAlertRead(ctx context.Context, alertId string, userId string) error {
	if err := a.alertRepository.MarkAlertRead(ctx, alertId, userId); err != nil {
		return fmt.Errorf("AlertService.MarkAlertRead: %w", err)
	}
	return nil
}

func NewAlertService(alertRepository repository.AlertRepository) AlertService {
	return &alertService{
		alertRepository: alertRepository,
	}
}
