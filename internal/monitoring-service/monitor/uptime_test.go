package monitor

import (
	mockrepository "Website_Monitoring_Service/internal/monitoring-service/mocks/repository"
	"Website_Monitoring_Service/internal/monitoring-service/model"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func windowOf(up, down int) []model.CheckResult {
	window := make([]model.CheckResult, 0, up+down)
	for i := 0; i < up; i++ {
		window = append(window, model.CheckResult{Status: model.CheckStatusUp})
	}
	for i := 0; i < down; i++ {
		window = append(window, model.CheckResult{Status: model.CheckStatusDown})
	}
	return window
}

func TestUptimeAggregator_Uptime(t *testing.T) {
	ctx := context.Background()
	websiteID := "website-123"

	testCases := []struct {
		name        string
		setupMocks  func(checkResultRepo *mockrepository.MockCheckResultRepository)
		currentIsUp bool
		expected    float64
	}{
		{
			name: "Mixed window with current check up",
			setupMocks: func(checkResultRepo *mockrepository.MockCheckResultRepository) {
				checkResultRepo.EXPECT().
					GetWindow(ctx, websiteID, gomock.Any()).
					Return(windowOf(9, 1), nil)
			},
			currentIsUp: true,
			expected:    90.91,
		},
		{
			name: "Mixed window with current check down",
			setupMocks: func(checkResultRepo *mockrepository.MockCheckResultRepository) {
				checkResultRepo.EXPECT().
					GetWindow(ctx, websiteID, gomock.Any()).
					Return(windowOf(9, 1), nil)
			},
			currentIsUp: false,
			expected:    81.82,
		},
		{
			name: "Empty window counts only the current check",
			setupMocks: func(checkResultRepo *mockrepository.MockCheckResultRepository) {
				checkResultRepo.EXPECT().
					GetWindow(ctx, websiteID, gomock.Any()).
					Return([]model.CheckResult{}, nil)
			},
			currentIsUp: true,
			expected:    100,
		},
		{
			name: "Empty window with current check down",
			setupMocks: func(checkResultRepo *mockrepository.MockCheckResultRepository) {
				checkResultRepo.EXPECT().
					GetWindow(ctx, websiteID, gomock.Any()).
					Return(nil, nil)
			},
			currentIsUp: false,
			expected:    0,
		},
		{
			name: "History read failure degrades to full uptime",
			setupMocks: func(checkResultRepo *mockrepository.MockCheckResultRepository) {
				checkResultRepo.EXPECT().
					GetWindow(ctx, websiteID, gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			currentIsUp: false,
			expected:    100,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			checkResultRepo := mockrepository.NewMockCheckResultRepository(ctrl)
			tc.setupMocks(checkResultRepo)

			aggregator := NewUptimeAggregator(checkResultRepo, 24*time.Hour, zap.NewNop())
			assert.Equal(t, tc.expected, aggregator.Uptime(ctx, websiteID, tc.currentIsUp))
		})
	}
}

func TestUptimeAggregator_WindowStart(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkResultRepo := mockrepository.NewMockCheckResultRepository(ctrl)
	checkResultRepo.EXPECT().
		GetWindow(ctx, "website-123", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, since time.Time) ([]model.CheckResult, error) {
			assert.WithinDuration(t, time.Now().Add(-24*time.Hour), since, 5*time.Second)
			return nil, nil
		})

	aggregator := NewUptimeAggregator(checkResultRepo, 24*time.Hour, zap.NewNop())
	aggregator.Uptime(ctx, "website-123", true)
}
