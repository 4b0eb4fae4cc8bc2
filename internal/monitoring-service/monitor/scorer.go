package monitor

import "strings"

// PerformanceScore grades response latency as a step function. There is no
// interpolation between thresholds.
func PerformanceScore(latencyMs int64) int {
	score := 100
	if latencyMs > 5000 {
		score -= 40
	} else if latencyMs > 3000 {
		score -= 25
	} else if latencyMs > 1000 {
		score -= 15
	}
	return clampScore(score)
}

// SEOScore grades a page body on four basic markers. The checks are plain
// case-insensitive substring tests, matching what the page would need at
// minimum rather than a full HTML audit.
func SEOScore(body string) int {
	score := 100
	bodyLower := strings.ToLower(body)
	if !strings.Contains(bodyLower, "<title>") {
		score -= 20
	}
	if !strings.Contains(bodyLower, `meta name="description"`) {
		score -= 20
	}
	if !strings.Contains(bodyLower, "<h1>") {
		score -= 15
	}
	if !strings.Contains(bodyLower, "alt=") {
		score -= 15
	}
	return clampScore(score)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
