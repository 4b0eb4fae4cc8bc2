package response

type ImportWebsiteResponse struct {
	ImportedCount    int      `json:"imported_count"`
	ImportedWebsites []string `json:"imported_websites,omitempty"`
	SkippedCount     int      `json:"skipped_count"`
	SkippedWebsites  []string `json:"skipped_websites,omitempty"`
}
