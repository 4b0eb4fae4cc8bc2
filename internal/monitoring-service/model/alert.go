package model

import "time"

const (
	AlertTypeDowntime    = "downtime"
	AlertTypePerformance = "performance"
	AlertTypeSEO         = "seo"
	AlertTypeSSL         = "ssl"
	AlertTypeBrokenLinks = "broken_links"
)

const (
	AlertSeverityLow      = "low"
	AlertSeverityMedium   = "medium"
	AlertSeverityHigh     = "high"
	AlertSeverityCritical = "critical"
)

type Alert struct {
	ID              string `gorm:"default:(-)"`
	UserID          string
	WebsiteID       string
	Type            string
	Title           string
	Message         string
	Severity        string
	IsRead          bool
	SentViaTelegram bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AlertEvent is the message published to the alert topic for downstream
// delivery. Keyed by website id so alerts for one site stay ordered.
type AlertEvent struct {
	AlertID   string `json:"alert_id"`
	UserID    string `json:"user_id"`
	WebsiteID string `json:"website_id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
}
