package monitor

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Reporter is whatever sends the daily summary. Wired in by the caller so the
// scheduler owns every recurring job of the service.
type Reporter interface {
	SendDailyReport(ctx context.Context) error
}

// MonitoringScheduler owns the recurring monitoring pass and the daily report
// job. If a pass is still running when the next tick fires, the tick is
// skipped; ticks never queue up.
type MonitoringScheduler interface {
	Start() error
	Stop()
}

type monitoringScheduler struct {
	cron           *cron.Cron
	checker        Checker
	reporter       Reporter
	checkSchedule  string
	reportSchedule string
	logger         *zap.Logger
}

func (s *monitoringScheduler) Start() error {
	skipLogger := cron.PrintfLogger(zap.NewStdLog(s.logger))
	_, err := s.cron.AddJob(s.checkSchedule,
		cron.NewChain(cron.SkipIfStillRunning(skipLogger)).Then(cron.FuncJob(s.runPass)))
	if err != nil {
		return fmt.Errorf("MonitoringScheduler.Start: %w", err)
	}
	if s.reporter != nil {
		_, err = s.cron.AddFunc(s.reportSchedule, s.runReport)
		if err != nil {
			return fmt.Errorf("MonitoringScheduler.Start: %w", err)
		}
	}
	s.cron.Start()
	s.logger.Info("monitoring scheduler started",
		zap.String("check_schedule", s.checkSchedule),
		zap.String("report_schedule", s.reportSchedule))
	return nil
}

// Stop waits for a running pass to finish before returning.
func (s *monitoringScheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("monitoring scheduler stopped")
}

func (s *monitoringScheduler) runPass() {
	s.checker.CheckAllWebsites(context.Background())
}

func (s *monitoringScheduler) runReport() {
	if err := s.reporter.SendDailyReport(context.Background()); err != nil {
		s.logger.Error("failed to send daily report",
			zap.Error(fmt.Errorf("MonitoringScheduler.runReport: %w", err)))
	}
}

func NewMonitoringScheduler(checker Checker, reporter Reporter, checkSchedule string, reportSchedule string, logger *zap.Logger) MonitoringScheduler {
	return &monitoringScheduler{
		cron:           cron.New(),
		checker:        checker,
		reporter:       reporter,
		checkSchedule:  checkSchedule,
		reportSchedule: reportSchedule,
		logger:         logger,
	}
}
