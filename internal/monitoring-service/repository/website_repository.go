package repository

import (
	apperrors "Website_Monitoring_Service/internal/monitoring-service/errors"
	"Website_Monitoring_Service/internal/monitoring-service/model"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MonitoringSummary struct {
	TotalWebsitesCnt        int
	UpWebsitesCnt           int
	DownWebsitesCnt         int
	UnknownWebsitesCnt      int
	AverageUptimePercentage float64
}

type WebsiteRepository interface {
	CreateWebsite(ctx context.Context, website model.Website) (model.Website, error)
	GetWebsiteById(ctx context.Context, websiteId string) (model.Website, error)
	GetWebsitesByUserId(ctx context.Context, userId string) ([]model.Website, error)
	GetEnabledWebsites(ctx context.Context) ([]model.Website, error)
	UpdateWebsite(ctx context.Context, websiteId string, update model.WebsiteUpdate) (model.Website, error)
	UpdateCheckState(ctx context.Context, websiteId string, state model.CheckState) error
	DeleteWebsiteById(ctx context.Context, websiteId string) error
	GetMonitoringSummary(ctx context.Context) (MonitoringSummary, error)
}

type websiteRepository struct {
	db *gorm.DB
}

func (w *websiteRepository) CreateWebsite(ctx context.Context, website model.Website) (model.Website, error) {
	result := w.db.WithContext(ctx).Create(&website)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "websites_user_id_url_key" {
				return website, fmt.Errorf("WebsiteRepository.CreateWebsite: %w", apperrors.ErrWebsiteAlreadyExists)
			}
		}
		return website, fmt.Errorf("WebsiteRepository.CreateWebsite: %w", result.Error)
	}
	return website, nil
}

func (w *websiteRepository) GetWebsiteById(ctx context.Context, websiteId string) (model.Website, error) {
	var website model.Website
	result := w.db.WithContext(ctx).First(&website, "id = ?", websiteId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return website, fmt.Errorf("WebsiteRepository.GetWebsiteById: %w", apperrors.ErrWebsiteNotFound)
		}
		return website, fmt.Errorf("WebsiteRepository.GetWebsiteById: %w", result.Error)
	}
	return website, nil
}

func (w *websiteRepository) GetWebsitesByUserId(ctx context.Context, userId string) ([]model.Website, error) {
	var websites []model.Website
	result := w.db.WithContext(ctx).Where("user_id = ?", userId).Order("created_at desc").Find(&websites)
	if result.Error != nil {
		return nil, fmt.Errorf("WebsiteRepository.GetWebsitesByUserId: %w", result.Error)
	}
	return websites, nil
}

func (w *websiteRepository) GetEnabledWebsites(ctx context.Context) ([]model.Website, error) {
	var websites []model.Website
	result := w.db.WithContext(ctx).Where("monitoring_enabled = ?", true).Order("created_at asc").Find(&websites)
	if result.Error != nil {
		return nil, fmt.Errorf("WebsiteRepository.GetEnabledWebsites: %w", result.Error)
	}
	return websites, nil
}

// UpdateWebsite writes the provided fields with a column map so a
// monitoring_enabled=false or zero-valued field is not skipped the way
// struct updates would skip it.
func (w *websiteRepository) UpdateWebsite(ctx context.Context, websiteId string, update model.WebsiteUpdate) (model.Website, error) {
	fields := map[string]interface{}{}
	if update.Name != "" {
		fields["name"] = update.Name
	}
	if update.URL != "" {
		fields["url"] = update.URL
	}
	if update.MonitoringEnabled != nil {
		fields["monitoring_enabled"] = *update.MonitoringEnabled
	}
	if update.CheckInterval != nil {
		fields["check_interval"] = *update.CheckInterval
	}
	if len(fields) == 0 {
		return w.GetWebsiteById(ctx, websiteId)
	}
	var website model.Website
	result := w.db.WithContext(ctx).Model(&website).Clauses(clause.Returning{}).Where("id = ?", websiteId).Updates(fields)
	if result.Error != nil {
		return website, fmt.Errorf("WebsiteRepository.UpdateWebsite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return website, fmt.Errorf("WebsiteRepository.UpdateWebsite: %w", apperrors.ErrWebsiteNotFound)
	}
	return website, nil
}

// UpdateCheckState writes the derived monitoring fields with a column map so
// zero values (uptime 0, response time 0) are not skipped the way struct
// updates would skip them.
func (w *websiteRepository) UpdateCheckState(ctx context.Context, websiteId string, state model.CheckState) error {
	fields := map[string]interface{}{
		"last_checked":  state.LastChecked,
		"status":        state.Status,
		"response_time": state.ResponseTime,
		"uptime":        state.Uptime,
	}
	if state.PerformanceScore != nil {
		fields["performance_score"] = *state.PerformanceScore
	}
	if state.SEOScore != nil {
		fields["seo_score"] = *state.SEOScore
	}
	if state.SSLValid != nil {
		fields["ssl_valid"] = *state.SSLValid
	}
	result := w.db.WithContext(ctx).Model(&model.Website{}).Where("id = ?", websiteId).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("WebsiteRepository.UpdateCheckState: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("WebsiteRepository.UpdateCheckState: %w", apperrors.ErrWebsiteNotFound)
	}
	return nil
}

func (w *websiteRepository) DeleteWebsiteById(ctx context.Context, websiteId string) error {
	result := w.db.WithContext(ctx).Where("id = ?", websiteId).Delete(&model.Website{})
	if result.Error != nil {
		return fmt.Errorf("WebsiteRepository.DeleteWebsiteById: %w", result.Error)
	}
	return nil
}

func (w *websiteRepository) GetMonitoringSummary(ctx context.Context) (MonitoringSummary, error) {
	var summary MonitoringSummary
	row := w.db.WithContext(ctx).Raw(
		`SELECT count(*),
			count(*) FILTER (WHERE status = ?),
			count(*) FILTER (WHERE status = ?),
			count(*) FILTER (WHERE status = ?),
			COALESCE(avg(uptime), 0)
		FROM websites WHERE monitoring_enabled = true`,
		model.WebsiteStatusUp, model.WebsiteStatusDown, model.WebsiteStatusUnknown).Row()
	err := row.Scan(
		&summary.TotalWebsitesCnt,
		&summary.UpWebsitesCnt,
		&summary.DownWebsitesCnt,
		&summary.UnknownWebsitesCnt,
		&summary.AverageUptimePercentage,
	)
	if err != nil {
		return MonitoringSummary{}, fmt.Errorf("WebsiteRepository.GetMonitoringSummary: %w", err)
	}
	return summary, nil
}

func NewWebsiteRepository(db *gorm.DB) WebsiteRepository {
	return &websiteRepository{
		db: db,
	}
}
