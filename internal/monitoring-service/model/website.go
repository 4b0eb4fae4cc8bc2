package model

import "time"

const (
	WebsiteStatusUp      = "up"
	WebsiteStatusDown    = "down"
	WebsiteStatusUnknown = "unknown"
)

type Website struct {
	ID                string `gorm:"default:(-)"`
	UserID            string
	Name              string
	URL               string
	MonitoringEnabled bool
	CheckInterval     int // minutes
	LastChecked       *time.Time
	Status            string
	ResponseTime      int64 // milliseconds
	Uptime            float64
	PerformanceScore  int
	SEOScore          int
	SSLValid          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// WebsiteUpdate carries the configuration fields a user may change.
// Pointer fields separate "set to the zero value" from "not provided",
// so disabling monitoring still reaches the database.
type WebsiteUpdate struct {
	Name              string
	URL               string
	MonitoringEnabled *bool
	CheckInterval     *int
}

// CheckState carries the derived monitoring fields written back to a
// website after one check. Only the orchestrator produces these.
type CheckState struct {
	LastChecked      time.Time
	Status           string
	ResponseTime     int64
	Uptime           float64
	PerformanceScore *int
	SEOScore         *int
	SSLValid         *bool
}
