package handler

import (
	"Website_Monitoring_Service/internal/monitoring-service/api/dto/response"
	apperrors "Website_Monitoring_Service/internal/monitoring-service/errors"
	"Website_Monitoring_Service/internal/monitoring-service/service"
	"Website_Monitoring_Service/pkg/middleware"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AlertHandler interface {
	GetAlerts() gin.HandlerFunc
	MarkAlertRead() gin.HandlerFunc
}

type alertHandler struct {
	logger       Logger
	alertService service.AlertService
}

func (a *alertHandler) GetAlerts() gin.HandlerFunc {
	return func(c *gin.Context) {
		offset := c.DefaultQuery("offset", "0")
		o, err := strconv.Atoi(offset)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Offset must be an integer",
			})
			return
		}
		limit := c.DefaultQuery("limit", "20")
		l, err := strconv.Atoi(limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be an integer",
			})
			return
		}
		if o < 0 {
			o = 0
		}
		if l <= 0 {
			l = 20
		}
		alerts, err := a.alertService.GetAlerts(c, middleware.UserID(c), l, o)
		if err != nil {
			err = fmt.Errorf("AlertHandler.GetAlerts: %w", err)
			a.logger.LoggingError(c, err, "failed to get alerts", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		alertsRes := make([]response.AlertInfoResponse, 0)
		for _, alert := range alerts {
			alertsRes = append(alertsRes, response.AlertInfoResponse{
				ID:              alert.ID,
				WebsiteID:       alert.WebsiteID,
				Type:            alert.Type,
				Title:           alert.Title,
				Message:         alert.Message,
				Severity:        alert.Severity,
				IsRead:          alert.IsRead,
				SentViaTelegram: alert.SentViaTelegram,
				CreatedAt:       alert.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, alertsRes)
	}
}

func (a *alertHandler) MarkAlertRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := a.alertService.MarkAlertRead(c, c.Param("id"), middleware.UserID(c))
		if err != nil {
			if errors.Is(err, apperrors.ErrAlertNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Alert not found",
				})
				return
			}
			err = fmt.Errorf("AlertHandler.MarkAlertRead: %w", err)
			a.logger.LoggingError(c, err, "failed to mark alert read", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Alert marked as read",
		})
	}
}

func NewAlertHandler(logger Logger, alertService service.AlertService) AlertHandler {
	return &alertHandler{
		logger:       logger,
		alertService: alertService,
	}
}
