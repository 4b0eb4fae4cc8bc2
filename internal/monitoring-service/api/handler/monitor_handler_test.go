package handler

import (
	apperrors "Website_Monitoring_Service/internal/monitoring-service/errors"
	mockmonitor "Website_Monitoring_Service/internal/monitoring-service/mocks/monitor"
	mockservice "Website_Monitoring_Service/internal/monitoring-service/mocks/service"
	"Website_Monitoring_Service/internal/monitoring-service/model"
	"Website_Monitoring_Service/internal/monitoring-service/service"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMonitorHandler_ManualCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		setupMocks     func(mockChecker *mockmonitor.MockChecker, mockService *mockservice.MockWebsiteService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Manual Check",
			setupMocks: func(mockChecker *mockmonitor.MockChecker, mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().GetWebsite(gomock.Any(), "uuid-123", "user-1").Return(model.Website{ID: "uuid-123"}, nil)
				mockChecker.EXPECT().CheckWebsite(gomock.Any(), "uuid-123").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Manual check completed"`,
		},
		{
			name: "Error Website Not Owned By User",
			setupMocks: func(mockChecker *mockmonitor.MockChecker, mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().GetWebsite(gomock.Any(), "uuid-123", "user-1").Return(model.Website{}, apperrors.ErrWebsiteNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Website not found"`,
		},
		{
			name: "Error Monitoring Disabled",
			setupMocks: func(mockChecker *mockmonitor.MockChecker, mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().GetWebsite(gomock.Any(), "uuid-123", "user-1").Return(model.Website{ID: "uuid-123"}, nil)
				mockChecker.EXPECT().CheckWebsite(gomock.Any(), "uuid-123").Return(apperrors.ErrMonitoringDisabled)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Website not found"`,
		},
		{
			name: "Error Check Failed",
			setupMocks: func(mockChecker *mockmonitor.MockChecker, mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().GetWebsite(gomock.Any(), "uuid-123", "user-1").Return(model.Website{ID: "uuid-123"}, nil)
				mockChecker.EXPECT().CheckWebsite(gomock.Any(), "uuid-123").Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockChecker := mockmonitor.NewMockChecker(ctrl)
			mockService := mockservice.NewMockWebsiteService(ctrl)
			tc.setupMocks(mockChecker, mockService)

			handler := NewMonitorHandler(NewLogger(zap.NewNop()), mockChecker, mockService)

			w, c := setupTestContext(t, http.MethodPost, "/websites/uuid-123/check", nil)
			c.Params = gin.Params{{Key: "id", Value: "uuid-123"}}

			handler.ManualCheck()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestMonitorHandler_GetMonitoringHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	history := []model.CheckResult{
		{
			ID:           "check-1",
			WebsiteID:    "uuid-123",
			CheckTime:    time.Now(),
			Status:       model.WebsiteStatusUp,
			ResponseTime: 120,
			Metrics: &model.PerformanceMetrics{
				Performance:   100,
				Accessibility: 85,
				BestPractices: 80,
				SEO:           100,
			},
		},
		{
			ID:           "check-2",
			WebsiteID:    "uuid-123",
			CheckTime:    time.Now(),
			Status:       model.WebsiteStatusDown,
			ResponseTime: 0,
			Issues: []model.Issue{
				{Kind: "downtime", Description: "HTTP status 503", Severity: "high"},
			},
		},
	}
	stats := service.WebsiteStatistics{
		TotalChecks:      2,
		UpChecks:         1,
		DownChecks:       1,
		UptimePercentage: 50,
		AvgResponseTime:  60,
	}

	testCases := []struct {
		name           string
		url            string
		setupMocks     func(mockService *mockservice.MockWebsiteService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success With Default Limit",
			url:  "/websites/uuid-123/history",
			setupMocks: func(mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().
					GetMonitoringHistory(gomock.Any(), "uuid-123", "user-1", 50).
					Return(history, stats, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total_checks":2`,
		},
		{
			name: "Success With Custom Limit",
			url:  "/websites/uuid-123/history?limit=10",
			setupMocks: func(mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().
					GetMonitoringHistory(gomock.Any(), "uuid-123", "user-1", 10).
					Return(history, stats, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"uptime_percentage":50`,
		},
		{
			name: "Success Negative Limit Falls Back To Default",
			url:  "/websites/uuid-123/history?limit=-5",
			setupMocks: func(mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().
					GetMonitoringHistory(gomock.Any(), "uuid-123", "user-1", 50).
					Return(nil, service.WebsiteStatistics{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"history":[]`,
		},
		{
			name:           "Error Limit Not An Integer",
			url:            "/websites/uuid-123/history?limit=abc",
			setupMocks:     func(mockService *mockservice.MockWebsiteService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Limit must be an integer"`,
		},
		{
			name: "Error Website Not Found",
			url:  "/websites/uuid-123/history",
			setupMocks: func(mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().
					GetMonitoringHistory(gomock.Any(), "uuid-123", "user-1", 50).
					Return(nil, service.WebsiteStatistics{}, apperrors.ErrWebsiteNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Website not found"`,
		},
		{
			name: "Error Internal Server Error",
			url:  "/websites/uuid-123/history",
			setupMocks: func(mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().
					GetMonitoringHistory(gomock.Any(), "uuid-123", "user-1", 50).
					Return(nil, service.WebsiteStatistics{}, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockChecker := mockmonitor.NewMockChecker(ctrl)
			mockService := mockservice.NewMockWebsiteService(ctrl)
			tc.setupMocks(mockService)

			handler := NewMonitorHandler(NewLogger(zap.NewNop()), mockChecker, mockService)

			w, c := setupTestContext(t, http.MethodGet, tc.url, nil)
			c.Params = gin.Params{{Key: "id", Value: "uuid-123"}}

			handler.GetMonitoringHistory()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}
