package model

import "time"

// User holds the few account fields the monitoring side needs. Account
// lifecycle lives behind the gateway and is not managed here.
type User struct {
	ID             string `gorm:"default:(-)"`
	Name           string
	Email          string
	TelegramChatID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
