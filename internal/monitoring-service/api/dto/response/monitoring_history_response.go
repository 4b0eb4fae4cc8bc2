package response

import (
	"Website_Monitoring_Service/internal/monitoring-service/model"
	"time"
)

type CheckResultResponse struct {
	ID           string                    `json:"id"`
	CheckTime    time.Time                 `json:"check_time"`
	Status       string                    `json:"status"`
	ResponseTime int64                     `json:"response_time"`
	Metrics      *model.PerformanceMetrics `json:"metrics,omitempty"`
	Issues       []model.Issue             `json:"issues,omitempty"`
}

type StatisticsResponse struct {
	TotalChecks      int     `json:"total_checks"`
	UpChecks         int     `json:"up_checks"`
	DownChecks       int     `json:"down_checks"`
	UptimePercentage float64 `json:"uptime_percentage"`
	AvgResponseTime  float64 `json:"avg_response_time"`
}

type MonitoringHistoryResponse struct {
	History    []CheckResultResponse `json:"history"`
	Statistics StatisticsResponse    `json:"statistics"`
}
