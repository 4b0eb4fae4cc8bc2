package response

import "time"

type AlertInfoResponse struct {
	ID              string    `json:"id"`
	WebsiteID       string    `json:"website_id"`
	Type            string    `json:"type"`
	Title           string    `json:"title"`
	Message         string    `json:"message"`
	Severity        string    `json:"severity"`
	IsRead          bool      `json:"is_read"`
	SentViaTelegram bool      `json:"sent_via_telegram"`
	CreatedAt       time.Time `json:"created_at"`
}
