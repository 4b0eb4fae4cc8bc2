package monitor

import (
	"Website_Monitoring_Service/internal/monitoring-service/model"
	"Website_Monitoring_Service/internal/monitoring-service/repository"
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// UptimeAggregator computes the rolling uptime percentage over the trailing
// window, counting the in-flight check that is about to be recorded.
type UptimeAggregator interface {
	Uptime(ctx context.Context, websiteId string, currentIsUp bool) float64
}

type uptimeAggregator struct {
	checkResults repository.CheckResultRepository
	window       time.Duration
	logger       *zap.Logger
}

// Uptime never fails: a history read error degrades to 100 so one storage
// hiccup cannot take the monitoring pass down with it.
func (u *uptimeAggregator) Uptime(ctx context.Context, websiteId string, currentIsUp bool) float64 {
	since := time.Now().Add(-u.window)
	window, err := u.checkResults.GetWindow(ctx, websiteId, since)
	if err != nil {
		err = fmt.Errorf("uptimeAggregator.Uptime: %w", err)
		u.logger.Error("failed to read uptime window, assuming full uptime",
			zap.Error(err), zap.String("website_id", websiteId))
		return 100
	}
	total := len(window) + 1
	up := 0
	for _, checkResult := range window {
		if checkResult.Status == model.CheckStatusUp {
			up++
		}
	}
	if currentIsUp {
		up++
	}
	percentage := float64(up) / float64(total) * 100
	return math.Round(percentage*100) / 100
}

func NewUptimeAggregator(checkResults repository.CheckResultRepository, window time.Duration, logger *zap.Logger) UptimeAggregator {
	return &uptimeAggregator{
		checkResults: checkResults,
		window:       window,
		logger:       logger,
	}
}
