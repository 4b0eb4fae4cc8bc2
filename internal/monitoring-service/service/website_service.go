package service

import (
	apperrors "Website_Monitoring_Service/internal/monitoring-service/errors"
	"Website_Monitoring_Service/internal/monitoring-service/model"
	"Website_Monitoring_Service/internal/monitoring-service/repository"
	"Website_Monitoring_Service/pkg/mail"
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

const defaultCheckIntervalMinutes = 5

type WebsiteStatistics struct {
	TotalChecks      int
	UpChecks         int
	DownChecks       int
	UptimePercentage float64
	AvgResponseTime  float64
}

type WebsiteService interface {
	CreateWebsite(ctx context.Context, website model.Website) (model.Website, error)
	ImportWebsites(ctx context.Context, websites []model.Website) (imported []model.Website, skipped []model.Website, err error)
	GetWebsite(ctx context.Context, websiteId string, userId string) (model.Website, error)
	GetWebsites(ctx context.Context, userId string) ([]model.Website, error)
	UpdateWebsite(ctx context.Context, userId string, websiteId string, update model.WebsiteUpdate) (model.Website, error)
	DeleteWebsite(ctx context.Context, websiteId string, userId string) error
	GetMonitoringHistory(ctx context.Context, websiteId string, userId string, limit int) ([]model.CheckResult, WebsiteStatistics, error)
	SendDailyReport(ctx context.Context) error
}

type websiteService struct {
	websiteRepository     repository.WebsiteRepository
	checkResultRepository repository.CheckResultRepository
	mailSender            mail.Sender
	adminMailAddress      string
}

func (w *websiteService) CreateWebsite(ctx context.Context, website model.Website) (model.Website, error) {
	website.MonitoringEnabled = true
	website.Status = model.WebsiteStatusUnknown
	website.Uptime = 100
	if website.CheckInterval <= 0 {
		website.CheckInterval = defaultCheckIntervalMinutes
	}
	createdWebsite, err := w.websiteRepository.CreateWebsite(ctx, website)
	if err != nil {
		return website, fmt.Errorf("WebsiteService.CreateWebsite: %w", err)
	}
	return createdWebsite, nil
}

func (w *websiteService) ImportWebsites(ctx context.Context, websites []model.Website) (imported []model.Website, skipped []model.Website, err error) {
	for _, website := range websites {
		created, createErr := w.CreateWebsite(ctx, website)
		if createErr != nil {
			if errors.Is(createErr, apperrors.ErrWebsiteAlreadyExists) {
				skipped = append(skipped, website)
				continue
			}
			return imported, skipped, fmt.Errorf("WebsiteService.ImportWebsites: %w", createErr)
		}
		imported = append(imported, created)
	}
	return imported, skipped, nil
}

// GetWebsite hides other users' websites behind not-found instead of
// revealing their existence.
func (w *websiteService) GetWebsite(ctx context.Context, websiteId string, userId string) (model.Website, error) {
	website, err := w.websiteRepository.GetWebsiteById(ctx, websiteId)
	if err != nil {
		return website, fmt.Errorf("WebsiteService.GetWebsite: %w", err)
	}
	if website.UserID != userId {
		return model.Website{}, fmt.Errorf("WebsiteService.GetWebsite: %w", apperrors.ErrWebsiteNotFound)
	}
	return website, nil
}

func (w *websiteService) GetWebsites(ctx context.Context, userId string) ([]model.Website, error) {
	websites, err := w.websiteRepository.GetWebsitesByUserId(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("WebsiteService.GetWebsites: %w", err)
	}
	return websites, nil
}

// UpdateWebsite only touches configuration fields. Derived monitoring state
// belongs to the checker and is never written from here.
func (w *websiteService) UpdateWebsite(ctx context.Context, userId string, websiteId string, update model.WebsiteUpdate) (model.Website, error) {
	if _, err := w.GetWebsite(ctx, websiteId, userId); err != nil {
		return model.Website{}, fmt.Errorf("WebsiteService.UpdateWebsite: %w", err)
	}
	website, err := w.websiteRepository.UpdateWebsite(ctx, websiteId, update)
	if err != nil {
		return website, fmt.Errorf("WebsiteService.UpdateWebsite: %w", err)
	}
	return website, nil
}

func (w *websiteService) DeleteWebsite(ctx context.Context, websiteId string, userId string) error {
	if _, err := w.GetWebsite(ctx, websiteId, userId); err != nil {
		return fmt.Errorf("WebsiteService.DeleteWebsite: %w", err)
	}
	if err := w.websiteRepository.DeleteWebsiteById(ctx, websiteId); err != nil {
		return fmt.Errorf("WebsiteService.DeleteWebsite: %w", err)
	}
	return nil
}

func (w *websiteService) GetMonitoringHistory(ctx context.Context, websiteId string, userId string, limit int) ([]model.CheckResult, WebsiteStatistics, error) {
	if _, err := w.GetWebsite(ctx, websiteId, userId); err != nil {
		return nil, WebsiteStatistics{}, fmt.Errorf("WebsiteService.GetMonitoringHistory: %w", err)
	}
	history, err := w.checkResultRepository.GetRecentByWebsiteId(ctx, websiteId, limit)
	if err != nil {
		return nil, WebsiteStatistics{}, fmt.Errorf("WebsiteService.GetMonitoringHistory: %w", err)
	}
	return history, computeStatistics(history), nil
}

func computeStatistics(history []model.CheckResult) WebsiteStatistics {
	stats := WebsiteStatistics{
		TotalChecks: len(history),
	}
	var responseTimeSum int64
	for _, checkResult := range history {
		if checkResult.Status == model.CheckStatusUp {
			stats.UpChecks++
		}
		responseTimeSum += checkResult.ResponseTime
	}
	stats.DownChecks = stats.TotalChecks - stats.UpChecks
	if stats.TotalChecks > 0 {
		stats.UptimePercentage = round2(float64(stats.UpChecks) / float64(stats.TotalChecks) * 100)
		stats.AvgResponseTime = round2(float64(responseTimeSum) / float64(stats.TotalChecks))
	}
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (w *websiteService) SendDailyReport(ctx context.Context) error {
	summary, err := w.websiteRepository.GetMonitoringSummary(ctx)
	if err != nil {
		return fmt.Errorf("WebsiteService.SendDailyReport: %w", err)
	}
	subject := fmt.Sprintf("Website Monitoring Daily Report %s", time.Now().Format("2006-01-02"))
	textBody := generateTextReportBody(summary)
	htmlBody := generateHTMLReportBody(summary)
	err = w.mailSender.SendMail([]string{w.adminMailAddress}, subject, htmlBody, textBody, nil)
	if err != nil {
		return fmt.Errorf("WebsiteService.SendDailyReport: %w", err)
	}
	return nil
}

func generateTextReportBody(summary repository.MonitoringSummary) string {
	return fmt.Sprintf(
		"--- SUMMARY ---\n"+
			"Monitored Websites: %d\n"+
			"Up: %d\n"+
			"Down: %d\n"+
			"Unknown: %d\n\n"+
			"Average Uptime Across All Websites: %.2f%%",
		summary.TotalWebsitesCnt,
		summary.UpWebsitesCnt,
		summary.DownWebsitesCnt,
		summary.UnknownWebsitesCnt,
		summary.AverageUptimePercentage,
	)
}

func generateHTMLReportBody(summary repository.MonitoringSummary) string {
	htmlFormat := `
<body>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Monitored Websites:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Up:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Down:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Unknown:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Average Uptime Percentage:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%.2f%%</td>
        </tr>
    </table>
</body>`

	return fmt.Sprintf(htmlFormat,
		summary.TotalWebsitesCnt,
		summary.UpWebsitesCnt,
		summary.DownWebsitesCnt,
		summary.UnknownWebsitesCnt,
		summary.AverageUptimePercentage,
	)
}

func NewWebsiteService(
	websiteRepository repository.WebsiteRepository,
	checkResultRepository repository.CheckResultRepository,
	mailSender mail.Sender,
	adminMailAddress string,
) WebsiteService {
	return &websiteService{
		websiteRepository:     websiteRepository,
		checkResultRepository: checkResultRepository,
		mailSender:            mailSender,
		adminMailAddress:      adminMailAddress,
	}
}
