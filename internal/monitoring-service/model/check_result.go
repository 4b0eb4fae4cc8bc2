package model

import "time"

const (
	CheckStatusUp   = "up"
	CheckStatusDown = "down"
)

const (
	IssueKindDowntime = "downtime"

	IssueSeverityLow    = "low"
	IssueSeverityMedium = "medium"
	IssueSeverityHigh   = "high"
)

type PerformanceMetrics struct {
	Performance   int `json:"performance"`
	Accessibility int `json:"accessibility"`
	BestPractices int `json:"best_practices"`
	SEO           int `json:"seo"`
}

type Issue struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// CheckResult is one immutable history record, created exactly once per
// probe and never updated.
type CheckResult struct {
	ID           string `gorm:"default:(-)"`
	WebsiteID    string
	CheckTime    time.Time
	Status       string
	ResponseTime int64               // milliseconds, 0 when unavailable
	Metrics      *PerformanceMetrics `gorm:"serializer:json"`
	Issues       []Issue             `gorm:"serializer:json"`
	CreatedAt    time.Time
}
