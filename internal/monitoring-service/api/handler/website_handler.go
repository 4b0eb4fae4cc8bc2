package handler

import (
	"Website_Monitoring_Service/internal/monitoring-service/api/dto/request"
	"Website_Monitoring_Service/internal/monitoring-service/api/dto/response"
	apperrors "Website_Monitoring_Service/internal/monitoring-service/errors"
	"Website_Monitoring_Service/internal/monitoring-service/model"
	"Website_Monitoring_Service/internal/monitoring-service/service"
	"Website_Monitoring_Service/pkg/middleware"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	errEmptyFile     = errors.New("file is empty")
	errSheetNotFound = errors.New("sheet not found")
)

type WebsiteHandler interface {
	CreateWebsite() gin.HandlerFunc
	GetWebsites() gin.HandlerFunc
	GetWebsite() gin.HandlerFunc
	UpdateWebsite() gin.HandlerFunc
	DeleteWebsite() gin.HandlerFunc
	ImportWebsitesFromExcelFile() gin.HandlerFunc
	ExportWebsitesToExcelFile() gin.HandlerFunc
}

type websiteHandler struct {
	logger         *zap.Logger
	websiteService service.WebsiteService
}

func (*websiteHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "url":
		return fmt.Sprintf("The %s field is not a valid URL", err.Field())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (w *websiteHandler) loggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	w.logger.Log(logLevel, errDescription,
		zap.Error(err),
		zap.String("http_method", c.Request.Method),
		zap.String("http_path", c.Request.URL.Path))
}

func websiteInfoResponse(website model.Website) response.WebsiteInfoResponse {
	return response.WebsiteInfoResponse{
		ID:                website.ID,
		Name:              website.Name,
		URL:               website.URL,
		MonitoringEnabled: website.MonitoringEnabled,
		CheckInterval:     website.CheckInterval,
		LastChecked:       website.LastChecked,
		Status:            website.Status,
		ResponseTime:      website.ResponseTime,
		Uptime:            website.Uptime,
		PerformanceScore:  website.PerformanceScore,
		SEOScore:          website.SEOScore,
		SSLValid:          website.SSLValid,
		CreatedAt:         website.CreatedAt,
		UpdatedAt:         website.UpdatedAt,
	}
}

func (w *websiteHandler) CreateWebsite() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.WebsiteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: w.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		if !strings.HasPrefix(req.URL, "http://") && !strings.HasPrefix(req.URL, "https://") {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "URL must start with http:// or https://",
			})
			return
		}
		newWebsite := model.Website{
			UserID: middleware.UserID(c),
			Name:   req.Name,
			URL:    req.URL,
		}
		if req.CheckInterval != nil {
			newWebsite.CheckInterval = *req.CheckInterval
		}
		res, err := w.websiteService.CreateWebsite(c, newWebsite)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrWebsiteAlreadyExists):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Website already exists in your monitoring list",
				})
			default:
				err = fmt.Errorf("WebsiteHandler.CreateWebsite: %w", err)
				w.loggingError(c, err, "failed to create website", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusCreated, websiteInfoResponse(res))
	}
}

func (w *websiteHandler) GetWebsites() gin.HandlerFunc {
	return func(c *gin.Context) {
		websites, err := w.websiteService.GetWebsites(c, middleware.UserID(c))
		if err != nil {
			err = fmt.Errorf("WebsiteHandler.GetWebsites: %w", err)
			w.loggingError(c, err, "failed to get websites", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		websitesRes := make([]response.WebsiteInfoResponse, 0)
		for _, website := range websites {
			websitesRes = append(websitesRes, websiteInfoResponse(website))
		}
		c.JSON(http.StatusOK, websitesRes)
	}
}

func (w *websiteHandler) GetWebsite() gin.HandlerFunc {
	return func(c *gin.Context) {
		website, err := w.websiteService.GetWebsite(c, c.Param("id"), middleware.UserID(c))
		if err != nil {
			if errors.Is(err, apperrors.ErrWebsiteNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Website not found",
				})
				return
			}
			err = fmt.Errorf("WebsiteHandler.GetWebsite: %w", err)
			w.loggingError(c, err, "failed to get website", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, websiteInfoResponse(website))
	}
}

func (w *websiteHandler) UpdateWebsite() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdateWebsiteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: w.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		if req.URL != "" && !strings.HasPrefix(req.URL, "http://") && !strings.HasPrefix(req.URL, "https://") {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "URL must start with http:// or https://",
			})
			return
		}
		update := model.WebsiteUpdate{
			Name:              req.Name,
			URL:               req.URL,
			MonitoringEnabled: req.MonitoringEnabled,
			CheckInterval:     req.CheckInterval,
		}
		res, err := w.websiteService.UpdateWebsite(c, middleware.UserID(c), c.Param("id"), update)
		if err != nil {
			if errors.Is(err, apperrors.ErrWebsiteNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Website not found",
				})
				return
			}
			err = fmt.Errorf("WebsiteHandler.UpdateWebsite: %w", err)
			w.loggingError(c, err, "failed to update website", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, websiteInfoResponse(res))
	}
}

func (w *websiteHandler) DeleteWebsite() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := w.websiteService.DeleteWebsite(c, c.Param("id"), middleware.UserID(c))
		if err != nil {
			if errors.Is(err, apperrors.ErrWebsiteNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Website not found",
				})
				return
			}
			err = fmt.Errorf("WebsiteHandler.DeleteWebsite: %w", err)
			w.loggingError(c, err, "failed to delete website", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Website deleted",
		})
	}
}

func (w *websiteHandler) ImportWebsitesFromExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		ext := filepath.Ext(file.Filename)
		if ext != ".xlsx" && ext != ".xls" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "File must be excel file",
			})
			return
		}
		importSheet := c.Query("sheet_name")
		websites, err := w.extractWebsitesFromExcelFile(file, importSheet)
		if err != nil {
			switch {
			case errors.Is(err, errEmptyFile):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "File is empty",
				})
			case errors.Is(err, errSheetNotFound):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Sheet not found",
				})
			default:
				err = fmt.Errorf("WebsiteHandler.ImportWebsitesFromExcelFile: %w", err)
				w.loggingError(c, err, "failed to import websites", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		userId := middleware.UserID(c)
		for i := range websites {
			websites[i].UserID = userId
		}
		imported, skipped, err := w.websiteService.ImportWebsites(c, websites)
		if err != nil {
			err = fmt.Errorf("WebsiteHandler.ImportWebsitesFromExcelFile: %w", err)
			w.loggingError(c, err, "failed to import websites", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		res := response.ImportWebsiteResponse{
			ImportedCount: len(imported),
			SkippedCount:  len(skipped),
		}
		for _, website := range imported {
			res.ImportedWebsites = append(res.ImportedWebsites, website.URL)
		}
		for _, website := range skipped {
			res.SkippedWebsites = append(res.SkippedWebsites, website.URL)
		}
		c.JSON(http.StatusOK, res)
	}
}

// extractWebsitesFromExcelFile expects columns name, url, check_interval with
// a header row. Rows with an empty url are skipped.
func (w *websiteHandler) extractWebsitesFromExcelFile(fileHeader *multipart.FileHeader, sheetName string) ([]model.Website, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		var sheetErr excelize.ErrSheetNotExist
		if errors.As(err, &sheetErr) {
			return nil, errSheetNotFound
		}
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, errEmptyFile
	}
	var websites []model.Website
	for _, row := range rows[1:] {
		website := model.Website{}
		if len(row) > 0 {
			website.Name = strings.TrimSpace(row[0])
		}
		if len(row) > 1 {
			website.URL = strings.TrimSpace(row[1])
		}
		if website.URL == "" {
			continue
		}
		if len(row) > 2 {
			if interval, convErr := strconv.Atoi(strings.TrimSpace(row[2])); convErr == nil {
				website.CheckInterval = interval
			}
		}
		websites = append(websites, website)
	}
	if len(websites) == 0 {
		return nil, errEmptyFile
	}
	return websites, nil
}

func (w *websiteHandler) ExportWebsitesToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		websites, err := w.websiteService.GetWebsites(c, middleware.UserID(c))
		if err != nil {
			err = fmt.Errorf("WebsiteHandler.ExportWebsitesToExcelFile: %w", err)
			w.loggingError(c, err, "failed to export websites", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		file, err := w.generateExcelFile(websites)
		if err != nil {
			err = fmt.Errorf("WebsiteHandler.ExportWebsitesToExcelFile: %w", err)
			w.loggingError(c, err, "failed to export websites", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("websites-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("WebsiteHandler.ExportWebsitesToExcelFile: %w", err)
			w.loggingError(c, err, "failed to export websites", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusOK)
	}
}

func (w *websiteHandler) generateExcelFile(websites []model.Website) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Websites"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	headers := []interface{}{"id", "name", "url", "monitoring_enabled", "check_interval", "status", "uptime", "performance_score", "seo_score", "created_at"}
	if err = f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, err
	}
	for i, website := range websites {
		rowData := []interface{}{
			website.ID,
			website.Name,
			website.URL,
			website.MonitoringEnabled,
			website.CheckInterval,
			website.Status,
			website.Uptime,
			website.PerformanceScore,
			website.SEOScore,
			website.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		startCell := fmt.Sprintf("A%d", i+2)
		if err = f.SetSheetRow(sheetName, startCell, &rowData); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(index)
	return f, nil
}

func NewWebsiteHandler(logger *zap.Logger, websiteService service.WebsiteService) WebsiteHandler {
	return &websiteHandler{
		logger:         logger,
		websiteService: websiteService,
	}
}
