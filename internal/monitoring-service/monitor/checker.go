package monitor

import (
	apperrors "Website_Monitoring_Service/internal/monitoring-service/errors"
	"Website_Monitoring_Service/internal/monitoring-service/model"
	"Website_Monitoring_Service/internal/monitoring-service/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Fixed baseline sub-scores carried in the metrics of every up check.
// Accessibility and best-practices audits are not performed, only the
// performance and SEO scores are computed per check.
const (
	baselineAccessibilityScore = 85
	baselineBestPracticesScore = 80
)

// Checker runs the full evaluation of one website: probe, classify, score,
// aggregate uptime, persist, alert. No failure inside one check may abort a
// batch pass; everything past the initial website lookup is logged instead of
// returned.
type Checker interface {
	CheckWebsite(ctx context.Context, websiteId string) error
	CheckAllWebsites(ctx context.Context)
}

type CheckerConfig struct {
	PacingDelay           time.Duration
	AlertOnTransitionOnly bool
}

type checker struct {
	websites     repository.WebsiteRepository
	checkResults repository.CheckResultRepository
	alerts       repository.AlertRepository
	sink         AlertSink
	prober       Prober
	uptime       UptimeAggregator
	cfg          CheckerConfig
	logger       *zap.Logger
}

// CheckWebsite returns an error only when the website is unknown or has
// monitoring disabled, so a manual-check endpoint can answer not-found.
func (c *checker) CheckWebsite(ctx context.Context, websiteId string) error {
	website, err := c.websites.GetWebsiteById(ctx, websiteId)
	if err != nil {
		return fmt.Errorf("Checker.CheckWebsite: %w", err)
	}
	if !website.MonitoringEnabled {
		return fmt.Errorf("Checker.CheckWebsite: %w", apperrors.ErrMonitoringDisabled)
	}
	c.logger.Info("checking website",
		zap.String("website_id", website.ID), zap.String("url", website.URL))

	start := time.Now()
	res, err := c.prober.Probe(ctx, website.URL)
	now := time.Now()
	if err != nil {
		outcome := ClassifyFailure(err)
		c.handleWebsiteDown(ctx, website, now.Sub(start).Milliseconds(), outcome, now)
		return nil
	}
	outcome := Classify(res.StatusCode, res.Body)
	if outcome.State == model.CheckStatusUp {
		c.handleWebsiteUp(ctx, website, res, now)
	} else {
		c.handleWebsiteDown(ctx, website, res.ResponseTime, outcome, now)
	}
	return nil
}

func (c *checker) handleWebsiteUp(ctx context.Context, website model.Website, res ProbeResult, now time.Time) {
	uptime := c.uptime.Uptime(ctx, website.ID, true)
	performanceScore := PerformanceScore(res.ResponseTime)
	seoScore := SEOScore(res.Body)
	sslValid := strings.HasPrefix(website.URL, "https://")

	_, err := c.checkResults.CreateCheckResult(ctx, model.CheckResult{
		WebsiteID:    website.ID,
		CheckTime:    now,
		Status:       model.CheckStatusUp,
		ResponseTime: res.ResponseTime,
		Metrics: &model.PerformanceMetrics{
			Performance:   performanceScore,
			Accessibility: baselineAccessibilityScore,
			BestPractices: baselineBestPracticesScore,
			SEO:           seoScore,
		},
	})
	if err != nil {
		c.logCheckError(website, "failed to persist check result", err)
	}
	err = c.websites.UpdateCheckState(ctx, website.ID, model.CheckState{
		LastChecked:      now,
		Status:           model.WebsiteStatusUp,
		ResponseTime:     res.ResponseTime,
		Uptime:           uptime,
		PerformanceScore: &performanceScore,
		SEOScore:         &seoScore,
		SSLValid:         &sslValid,
	})
	if err != nil {
		c.logCheckError(website, "failed to update website state", err)
	}
	c.logger.Info("website is up",
		zap.String("website_id", website.ID), zap.String("url", website.URL),
		zap.Int64("response_time_ms", res.ResponseTime), zap.Float64("uptime", uptime))
}

func (c *checker) handleWebsiteDown(ctx context.Context, website model.Website, responseTime int64, outcome Outcome, now time.Time) {
	uptime := c.uptime.Uptime(ctx, website.ID, false)

	_, err := c.checkResults.CreateCheckResult(ctx, model.CheckResult{
		WebsiteID:    website.ID,
		CheckTime:    now,
		Status:       model.CheckStatusDown,
		ResponseTime: responseTime,
		Issues: []model.Issue{{
			Kind:        model.IssueKindDowntime,
			Description: outcome.Reason,
			Severity:    model.IssueSeverityHigh,
		}},
	})
	if err != nil {
		c.logCheckError(website, "failed to persist check result", err)
	}
	err = c.websites.UpdateCheckState(ctx, website.ID, model.CheckState{
		LastChecked:  now,
		Status:       model.WebsiteStatusDown,
		ResponseTime: responseTime,
		Uptime:       uptime,
	})
	if err != nil {
		c.logCheckError(website, "failed to update website state", err)
	}
	c.logger.Warn("website is down",
		zap.String("website_id", website.ID), zap.String("url", website.URL),
		zap.String("reason", outcome.Reason), zap.Bool("maintenance", outcome.Maintenance))

	if outcome.Maintenance {
		return
	}
	if c.cfg.AlertOnTransitionOnly && website.Status == model.WebsiteStatusDown {
		return
	}
	c.emitDowntimeAlert(ctx, website, outcome.Reason)
}

func (c *checker) emitDowntimeAlert(ctx context.Context, website model.Website, reason string) {
	alert, err := c.alerts.CreateAlert(ctx, model.Alert{
		UserID:    website.UserID,
		WebsiteID: website.ID,
		Type:      model.AlertTypeDowntime,
		Title:     "Website Down",
		Message:   fmt.Sprintf("Website %s is not accessible: %s", website.URL, reason),
		Severity:  model.AlertSeverityHigh,
	})
	if err != nil {
		c.logCheckError(website, "failed to create alert", err)
		return
	}
	err = c.sink.Publish(ctx, model.AlertEvent{
		AlertID:   alert.ID,
		UserID:    alert.UserID,
		WebsiteID: alert.WebsiteID,
		Type:      alert.Type,
		Title:     alert.Title,
		Message:   alert.Message,
		Severity:  alert.Severity,
	})
	if err != nil {
		c.logCheckError(website, "failed to publish alert event", err)
	}
}

// CheckAllWebsites walks every enabled website sequentially with a pacing
// delay between sites, so a pass never bursts probes. Per-site failures are
// logged and the loop keeps going.
func (c *checker) CheckAllWebsites(ctx context.Context) {
	websites, err := c.websites.GetEnabledWebsites(ctx)
	if err != nil {
		c.logger.Error("failed to list enabled websites",
			zap.Error(fmt.Errorf("Checker.CheckAllWebsites: %w", err)))
		return
	}
	c.logger.Info("starting monitoring pass", zap.Int("website_count", len(websites)))
	for i, website := range websites {
		if i > 0 {
			select {
			case <-ctx.Done():
				c.logger.Warn("monitoring pass cancelled", zap.Error(ctx.Err()))
				return
			case <-time.After(c.cfg.PacingDelay):
			}
		}
		if err := c.CheckWebsite(ctx, website.ID); err != nil {
			if errors.Is(err, apperrors.ErrWebsiteNotFound) || errors.Is(err, apperrors.ErrMonitoringDisabled) {
				// Deleted or disabled since the pass started.
				c.logger.Info("skipping website", zap.String("website_id", website.ID), zap.Error(err))
				continue
			}
			c.logger.Error("website check failed", zap.String("website_id", website.ID), zap.Error(err))
		}
	}
	c.logger.Info("monitoring pass finished", zap.Int("website_count", len(websites)))
}

func (c *checker) logCheckError(website model.Website, msg string, err error) {
	c.logger.Error(msg,
		zap.Error(fmt.Errorf("Checker.CheckWebsite: %w", err)),
		zap.String("website_id", website.ID),
		zap.String("url", website.URL))
}

func NewChecker(
	websites repository.WebsiteRepository,
	checkResults repository.CheckResultRepository,
	alerts repository.AlertRepository,
	sink AlertSink,
	prober Prober,
	uptime UptimeAggregator,
	cfg CheckerConfig,
	logger *zap.Logger,
) Checker {
	return &checker{
		websites:     websites,
		checkResults: checkResults,
		alerts:       alerts,
		sink:         sink,
		prober:       prober,
		uptime:       uptime,
		cfg:          cfg,
		logger:       logger,
	}
}
