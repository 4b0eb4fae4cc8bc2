package handler

import (
	"Website_Monitoring_Service/internal/monitoring-service/api/dto/response"
	apperrors "Website_Monitoring_Service/internal/monitoring-service/errors"
	"Website_Monitoring_Service/internal/monitoring-service/monitor"
	"Website_Monitoring_Service/internal/monitoring-service/service"
	"Website_Monitoring_Service/pkg/middleware"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultHistoryLimit = 50

type MonitorHandler interface {
	ManualCheck() gin.HandlerFunc
	GetMonitoringHistory() gin.HandlerFunc
}

type monitorHandler struct {
	logger         Logger
	checker        monitor.Checker
	websiteService service.WebsiteService
}

// ManualCheck runs the full check pipeline inline for one owned website.
// Safe to call while a scheduled pass is running; the website's derived
// fields are last-write-wins.
func (m *monitorHandler) ManualCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		websiteId := c.Param("id")
		userId := middleware.UserID(c)
		if _, err := m.websiteService.GetWebsite(c, websiteId, userId); err != nil {
			if errors.Is(err, apperrors.ErrWebsiteNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Website not found",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.ManualCheck: %w", err)
			m.logger.LoggingError(c, err, "failed to load website for manual check", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		if err := m.checker.CheckWebsite(c, websiteId); err != nil {
			if errors.Is(err, apperrors.ErrWebsiteNotFound) || errors.Is(err, apperrors.ErrMonitoringDisabled) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Website not found",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.ManualCheck: %w", err)
			m.logger.LoggingError(c, err, "manual check failed", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Manual check completed",
		})
	}
}

func (m *monitorHandler) GetMonitoringHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := c.DefaultQuery("limit", strconv.Itoa(defaultHistoryLimit))
		l, err := strconv.Atoi(limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be an integer",
			})
			return
		}
		if l <= 0 {
			l = defaultHistoryLimit
		}
		history, stats, err := m.websiteService.GetMonitoringHistory(c, c.Param("id"), middleware.UserID(c), l)
		if err != nil {
			if errors.Is(err, apperrors.ErrWebsiteNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Website not found",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.GetMonitoringHistory: %w", err)
			m.logger.LoggingError(c, err, "failed to get monitoring history", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		historyRes := make([]response.CheckResultResponse, 0)
		for _, checkResult := range history {
			historyRes = append(historyRes, response.CheckResultResponse{
				ID:           checkResult.ID,
				CheckTime:    checkResult.CheckTime,
				Status:       checkResult.Status,
				ResponseTime: checkResult.ResponseTime,
				Metrics:      checkResult.Metrics,
				Issues:       checkResult.Issues,
			})
		}
		c.JSON(http.StatusOK, response.MonitoringHistoryResponse{
			History: historyRes,
			Statistics: response.StatisticsResponse{
				TotalChecks:      stats.TotalChecks,
				UpChecks:         stats.UpChecks,
				DownChecks:       stats.DownChecks,
				UptimePercentage: stats.UptimePercentage,
				AvgResponseTime:  stats.AvgResponseTime,
			},
		})
	}
}

func NewMonitorHandler(logger Logger, checker monitor.Checker, websiteService service.WebsiteService) MonitorHandler {
	return &monitorHandler{
		logger:         logger,
		checker:        checker,
		websiteService: websiteService,
	}
}
