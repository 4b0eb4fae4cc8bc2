package routes

import (
	"Website_Monitoring_Service/internal/monitoring-service/api/handler"
	"Website_Monitoring_Service/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func AddWebsiteRoutes(r *gin.Engine, h handler.WebsiteHandler, m middleware.AuthMiddleware) {
	websiteRoutes := r.Group("/websites", m.RequireUser())
	websiteRoutes.POST("", h.CreateWebsite())
	websiteRoutes.GET("", h.GetWebsites())
	websiteRoutes.GET("/:id", h.GetWebsite())
	websiteRoutes.PATCH("/:id", h.UpdateWebsite())
	websiteRoutes.DELETE("/:id", h.DeleteWebsite())
	websiteRoutes.POST("/import", h.ImportWebsitesFromExcelFile())
	websiteRoutes.GET("/export", h.ExportWebsitesToExcelFile())
}

func AddMonitorRoutes(r *gin.Engine, h handler.MonitorHandler, m middleware.AuthMiddleware) {
	monitorRoutes := r.Group("/monitor", m.RequireUser())
	monitorRoutes.POST("/:id/check", h.ManualCheck())
	monitorRoutes.GET("/:id/history", h.GetMonitoringHistory())
}

func AddAlertRoutes(r *gin.Engine, h handler.AlertHandler, m middleware.AuthMiddleware) {
	alertRoutes := r.Group("/alerts", m.RequireUser())
	alertRoutes.GET("", h.GetAlerts())
	alertRoutes.PATCH("/:id/read", h.MarkAlertRead())
}
