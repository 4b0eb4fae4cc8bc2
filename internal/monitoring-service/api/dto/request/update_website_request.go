package request

type UpdateWebsiteRequest struct {
	Name              string `json:"name"`
	URL               string `json:"url" binding:"omitempty,url"`
	MonitoringEnabled *bool  `json:"monitoring_enabled"`
	CheckInterval     *int   `json:"check_interval" binding:"omitempty,gte=1"`
}
