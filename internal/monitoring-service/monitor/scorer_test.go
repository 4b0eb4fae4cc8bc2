package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerformanceScore(t *testing.T) {
	testCases := []struct {
		name      string
		latencyMs int64
		expected  int
	}{
		{
			name:      "Fast response keeps full score",
			latencyMs: 900,
			expected:  100,
		},
		{
			name:      "Exactly one second keeps full score",
			latencyMs: 1000,
			expected:  100,
		},
		{
			name:      "Above one second loses fifteen",
			latencyMs: 1500,
			expected:  85,
		},
		{
			name:      "Above three seconds loses twenty five",
			latencyMs: 3500,
			expected:  75,
		},
		{
			name:      "Above five seconds loses forty",
			latencyMs: 6000,
			expected:  60,
		},
		{
			name:      "Threshold boundary at three seconds",
			latencyMs: 3000,
			expected:  85,
		},
		{
			name:      "Threshold boundary at five seconds",
			latencyMs: 5000,
			expected:  75,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PerformanceScore(tc.latencyMs))
		})
	}
}

func TestSEOScore(t *testing.T) {
	fullPage := `<html><head><title>Home</title><meta name="description" content="x"></head>` +
		`<body><h1>Welcome</h1><img src="a.png" alt="logo"></body></html>`

	testCases := []struct {
		name     string
		body     string
		expected int
	}{
		{
			name:     "Page with every marker scores full",
			body:     fullPage,
			expected: 100,
		},
		{
			name:     "Empty body loses everything",
			body:     "",
			expected: 30,
		},
		{
			name:     "Missing title only",
			body:     `<meta name="description" content="x"><h1>Hi</h1><img alt="a">`,
			expected: 80,
		},
		{
			name:     "Missing description only",
			body:     `<title>Hi</title><h1>Hi</h1><img alt="a">`,
			expected: 80,
		},
		{
			name:     "Missing h1 only",
			body:     `<title>Hi</title><meta name="description" content="x"><img alt="a">`,
			expected: 85,
		},
		{
			name:     "Missing alt only",
			body:     `<title>Hi</title><meta name="description" content="x"><h1>Hi</h1>`,
			expected: 85,
		},
		{
			name:     "Markers are matched case insensitively",
			body:     `<TITLE>Hi</TITLE><META NAME="DESCRIPTION"><H1>Hi</H1><img ALT="a">`,
			expected: 100,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SEOScore(tc.body))
		})
	}
}
