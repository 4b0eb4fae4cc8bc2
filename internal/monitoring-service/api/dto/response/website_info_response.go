package response

import "time"

type WebsiteInfoResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	URL               string     `json:"url"`
	MonitoringEnabled bool       `json:"monitoring_enabled"`
	CheckInterval     int        `json:"check_interval"`
	LastChecked       *time.Time `json:"last_checked"`
	Status            string     `json:"status"`
	ResponseTime      int64      `json:"response_time"`
	Uptime            float64    `json:"uptime"`
	PerformanceScore  int        `json:"performance_score"`
	SEOScore          int        `json:"seo_score"`
	SSLValid          bool       `json:"ssl_valid"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
