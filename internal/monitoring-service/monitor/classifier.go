package monitor

import (
	"Website_Monitoring_Service/internal/monitoring-service/model"
	"fmt"
	"strings"
)

// Outcome is the classification of one probe: either up, or down with a
// reason. Maintenance marks downs caused by an intentional maintenance page,
// which update state and history like any other down but never alert.
type Outcome struct {
	State       string
	Reason      string
	Maintenance bool
}

// maintenanceMarkers is the fixed lexicon of phrases that mark a page as an
// intentional outage. Matching is a case-insensitive substring test.
var maintenanceMarkers = []string{
	"temporarily stopped",
	"maintenance mode",
	"site under maintenance",
	"coming soon",
	"be right back",
	"unavailable",
	"stopped",
	"paused",
	"suspended",
}

// Classify decides up or down from a completed probe. Maintenance pages win
// over the status code band so a 503 maintenance page stays alert-free.
func Classify(statusCode int, body string) Outcome {
	bodyLower := strings.ToLower(body)
	for _, marker := range maintenanceMarkers {
		if strings.Contains(bodyLower, marker) {
			return Outcome{
				State:       model.CheckStatusDown,
				Reason:      fmt.Sprintf("maintenance page detected (%q)", marker),
				Maintenance: true,
			}
		}
	}
	if statusCode >= 400 && statusCode <= 599 {
		return Outcome{
			State:  model.CheckStatusDown,
			Reason: fmt.Sprintf("HTTP status %d", statusCode),
		}
	}
	return Outcome{State: model.CheckStatusUp}
}

// ClassifyFailure maps a probe error to a down outcome carrying the error
// text as reason.
func ClassifyFailure(err error) Outcome {
	return Outcome{
		State:  model.CheckStatusDown,
		Reason: err.Error(),
	}
}
