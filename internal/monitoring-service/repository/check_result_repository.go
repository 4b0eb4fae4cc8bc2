package repository

import (
	"Website_Monitoring_Service/internal/monitoring-service/model"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type CheckResultRepository interface {
	CreateCheckResult(ctx context.Context, checkResult model.CheckResult) (model.CheckResult, error)
	GetWindow(ctx context.Context, websiteId string, since time.Time) ([]model.CheckResult, error)
	GetRecentByWebsiteId(ctx context.Context, websiteId string, limit int) ([]model.CheckResult, error)
}

type checkResultRepository struct {
	db *gorm.DB
}

func (c *checkResultRepository) CreateCheckResult(ctx context.Context, checkResult model.CheckResult) (model.CheckResult, error) {
	result := c.db.WithContext(ctx).Create(&checkResult)
	if result.Error != nil {
		return checkResult, fmt.Errorf("CheckResultRepository.CreateCheckResult: %w", result.Error)
	}
	return checkResult, nil
}

// GetWindow returns every check recorded for the website since the given
// time, oldest first.
func (c *checkResultRepository) GetWindow(ctx context.Context, websiteId string, since time.Time) ([]model.CheckResult, error) {
	var checkResults []model.CheckResult
	result := c.db.WithContext(ctx).
		Where("website_id = ? AND check_time >= ?", websiteId, since).
		Order("check_time asc").
		Find(&checkResults)
	if result.Error != nil {
		return nil, fmt.Errorf("CheckResultRepository.GetWindow: %w", result.Error)
	}
	return checkResults, nil
}

func (c *checkResultRepository) GetRecentByWebsiteId(ctx context.Context, websiteId string, limit int) ([]model.CheckResult, error) {
	var checkResults []model.CheckResult
	result := c.db.WithContext(ctx).
		Where("website_id = ?", websiteId).
		Order("check_time desc").
		Limit(limit).
		Find(&checkResults)
	if result.Error != nil {
		return nil, fmt.Errorf("CheckResultRepository.GetRecentByWebsiteId: %w", result.Error)
	}
	return checkResults, nil
}

func NewCheckResultRepository(db *gorm.DB) CheckResultRepository {
	return &checkResultRepository{
		db: db,
	}
}
