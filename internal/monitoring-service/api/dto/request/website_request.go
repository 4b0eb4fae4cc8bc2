package request

type WebsiteRequest struct {
	Name          string `json:"name" binding:"required" validate:"required"`
	URL           string `json:"url" binding:"required,url" validate:"required,url"`
	CheckInterval *int   `json:"check_interval" binding:"omitempty,gte=1" validate:"omitempty,gte=1"`
}
