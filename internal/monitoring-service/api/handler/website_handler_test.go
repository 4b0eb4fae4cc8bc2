package handler

import (
	"Website_Monitoring_Service/internal/monitoring-service/api/dto/request"
	apperrors "Website_Monitoring_Service/internal/monitoring-service/errors"
	mockservice "Website_Monitoring_Service/internal/monitoring-service/mocks/service"
	"Website_Monitoring_Service/internal/monitoring-service/model"
	"Website_Monitoring_Service/pkg/middleware"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupTestContext(t *testing.T, method, url string, body io.Reader) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	c.Request = req
	c.Set(middleware.UserIDContextKey, "user-1")
	return w, c
}

func TestWebsiteHandler_CreateWebsite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	interval := 10

	websiteReq := request.WebsiteRequest{
		Name:          "Example",
		URL:           "https://example.com",
		CheckInterval: &interval,
	}
	websiteModel := model.Website{
		UserID:        "user-1",
		Name:          "Example",
		URL:           "https://example.com",
		CheckInterval: 10,
	}
	createdWebsite := model.Website{
		ID:                "uuid-123",
		UserID:            "user-1",
		Name:              "Example",
		URL:               "https://example.com",
		MonitoringEnabled: true,
		CheckInterval:     10,
		Status:            model.WebsiteStatusUnknown,
		Uptime:            100,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(mockService *mockservice.MockWebsiteService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Website Created",
			body: websiteReq,
			setupMocks: func(mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().CreateWebsite(gomock.Any(), websiteModel).Return(createdWebsite, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":"uuid-123"`,
		},
		{
			name:           "Error Invalid JSON body",
			body:           `{"name": "Example"`,
			setupMocks:     func(mockService *mockservice.MockWebsiteService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid request body"`,
		},
		{
			name:           "Error Validation Failed (required field)",
			body:           request.WebsiteRequest{URL: "https://example.com"},
			setupMocks:     func(mockService *mockservice.MockWebsiteService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Name field is required"`,
		},
		{
			name:           "Error URL Without Scheme",
			body:           request.WebsiteRequest{Name: "Example", URL: "ftp://example.com"},
			setupMocks:     func(mockService *mockservice.MockWebsiteService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"URL must start with http:// or https://"`,
		},
		{
			name: "Error Website Already Exists",
			body: websiteReq,
			setupMocks: func(mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().CreateWebsite(gomock.Any(), websiteModel).Return(model.Website{}, apperrors.ErrWebsiteAlreadyExists)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Website already exists in your monitoring list"`,
		},
		{
			name: "Error Internal Server Error",
			body: websiteReq,
			setupMocks: func(mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().CreateWebsite(gomock.Any(), websiteModel).Return(model.Website{}, errors.New("unexpected db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockWebsiteService(ctrl)
			tc.setupMocks(mockService)

			handler := NewWebsiteHandler(zap.NewNop(), mockService)

			var reqBody io.Reader
			if bodyStr, ok := tc.body.(string); ok {
				reqBody = strings.NewReader(bodyStr)
			} else {
				jsonBody, _ := json.Marshal(tc.body)
				reqBody = bytes.NewReader(jsonBody)
			}

			w, c := setupTestContext(t, http.MethodPost, "/websites", reqBody)
			c.Request.Header.Set("Content-Type", "application/json")

			handler.CreateWebsite()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestWebsiteHandler_GetWebsite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	website := model.Website{
		ID:     "uuid-123",
		UserID: "user-1",
		Name:   "Example",
		URL:    "https://example.com",
	}

	testCases := []struct {
		name           string
		setupMocks     func(mockService *mockservice.MockWebsiteService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Get Website",
			setupMocks: func(mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().GetWebsite(gomock.Any(), "uuid-123", "user-1").Return(website, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"uuid-123"`,
		},
		{
			name: "Error Website Not Found",
			setupMocks: func(mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().GetWebsite(gomock.Any(), "uuid-123", "user-1").Return(model.Website{}, apperrors.ErrWebsiteNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Website not found"`,
		},
		{
			name: "Error Internal Server Error",
			setupMocks: func(mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().GetWebsite(gomock.Any(), "uuid-123", "user-1").Return(model.Website{}, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockWebsiteService(ctrl)
			tc.setupMocks(mockService)

			handler := NewWebsiteHandler(zap.NewNop(), mockService)

			w, c := setupTestContext(t, http.MethodGet, "/websites/uuid-123", nil)
			c.Params = gin.Params{{Key: "id", Value: "uuid-123"}}

			handler.GetWebsite()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestWebsiteHandler_GetWebsites(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success Empty list is an empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mockservice.NewMockWebsiteService(ctrl)
		mockService.EXPECT().GetWebsites(gomock.Any(), "user-1").Return(nil, nil)

		handler := NewWebsiteHandler(zap.NewNop(), mockService)
		w, c := setupTestContext(t, http.MethodGet, "/websites", nil)

		handler.GetWebsites()(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("Success List websites", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mockservice.NewMockWebsiteService(ctrl)
		mockService.EXPECT().GetWebsites(gomock.Any(), "user-1").Return([]model.Website{
			{ID: "uuid-1", URL: "https://a.com"},
			{ID: "uuid-2", URL: "https://b.com"},
		}, nil)

		handler := NewWebsiteHandler(zap.NewNop(), mockService)
		w, c := setupTestContext(t, http.MethodGet, "/websites", nil)

		handler.GetWebsites()(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"uuid-1"`)
		assert.Contains(t, w.Body.String(), `"id":"uuid-2"`)
	})
}

func TestWebsiteHandler_UpdateWebsite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	enabled := false

	updateReq := request.UpdateWebsiteRequest{
		Name:              "Renamed",
		MonitoringEnabled: &enabled,
	}
	updatedWebsite := model.Website{
		ID:     "uuid-123",
		UserID: "user-1",
		Name:   "Renamed",
	}

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(mockService *mockservice.MockWebsiteService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Website Updated",
			body: updateReq,
			setupMocks: func(mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().
					UpdateWebsite(gomock.Any(), "user-1", "uuid-123", model.WebsiteUpdate{Name: "Renamed", MonitoringEnabled: &enabled}).
					Return(updatedWebsite, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Renamed"`,
		},
		{
			name:           "Error URL Without Scheme",
			body:           request.UpdateWebsiteRequest{URL: "ftp://example.com"},
			setupMocks:     func(mockService *mockservice.MockWebsiteService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"URL must start with http:// or https://"`,
		},
		{
			name: "Error Website Not Found",
			body: updateReq,
			setupMocks: func(mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().
					UpdateWebsite(gomock.Any(), "user-1", "uuid-123", gomock.Any()).
					Return(model.Website{}, apperrors.ErrWebsiteNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Website not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockWebsiteService(ctrl)
			tc.setupMocks(mockService)

			handler := NewWebsiteHandler(zap.NewNop(), mockService)

			jsonBody, _ := json.Marshal(tc.body)
			w, c := setupTestContext(t, http.MethodPatch, "/websites/uuid-123", bytes.NewReader(jsonBody))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Params = gin.Params{{Key: "id", Value: "uuid-123"}}

			handler.UpdateWebsite()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestWebsiteHandler_DeleteWebsite(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		setupMocks     func(mockService *mockservice.MockWebsiteService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Website Deleted",
			setupMocks: func(mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().DeleteWebsite(gomock.Any(), "uuid-123", "user-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Website deleted"`,
		},
		{
			name: "Error Website Not Found",
			setupMocks: func(mockService *mockservice.MockWebsiteService) {
				mockService.EXPECT().DeleteWebsite(gomock.Any(), "uuid-123", "user-1").Return(apperrors.ErrWebsiteNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Website not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockWebsiteService(ctrl)
			tc.setupMocks(mockService)

			handler := NewWebsiteHandler(zap.NewNop(), mockService)

			w, c := setupTestContext(t, http.MethodDelete, "/websites/uuid-123", nil)
			c.Params = gin.Params{{Key: "id", Value: "uuid-123"}}

			handler.DeleteWebsite()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func createExcelUpload(t *testing.T, fileName string, rows [][]interface{}) (*bytes.Buffer, string) {
	f := excelize.NewFile()
	sheetName := f.GetSheetName(0)
	for i, row := range rows {
		rowData := row
		err := f.SetSheetRow(sheetName, "A"+strconv.Itoa(i+1), &rowData)
		assert.NoError(t, err)
	}

	var fileBuf bytes.Buffer
	assert.NoError(t, f.Write(&fileBuf))

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", fileName)
	assert.NoError(t, err)
	_, err = io.Copy(part, &fileBuf)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestWebsiteHandler_ImportWebsitesFromExcelFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success Import with skipped duplicates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mockservice.NewMockWebsiteService(ctrl)
		mockService.EXPECT().
			ImportWebsites(gomock.Any(), []model.Website{
				{UserID: "user-1", Name: "A", URL: "https://a.com", CheckInterval: 5},
				{UserID: "user-1", Name: "B", URL: "https://b.com"},
			}).
			Return(
				[]model.Website{{URL: "https://a.com"}},
				[]model.Website{{URL: "https://b.com"}},
				nil,
			)

		handler := NewWebsiteHandler(zap.NewNop(), mockService)

		body, contentType := createExcelUpload(t, "websites.xlsx", [][]interface{}{
			{"name", "url", "check_interval"},
			{"A", "https://a.com", "5"},
			{"B", "https://b.com", ""},
		})
		w, c := setupTestContext(t, http.MethodPost, "/websites/import", body)
		c.Request.Header.Set("Content-Type", contentType)

		handler.ImportWebsitesFromExcelFile()(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"imported_count":1`)
		assert.Contains(t, w.Body.String(), `"skipped_count":1`)
	})

	t.Run("Error Not An Excel File", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mockservice.NewMockWebsiteService(ctrl)
		handler := NewWebsiteHandler(zap.NewNop(), mockService)

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile("file", "websites.csv")
		assert.NoError(t, err)
		_, err = part.Write([]byte("name,url"))
		assert.NoError(t, err)
		assert.NoError(t, writer.Close())

		w, c := setupTestContext(t, http.MethodPost, "/websites/import", body)
		c.Request.Header.Set("Content-Type", writer.FormDataContentType())

		handler.ImportWebsitesFromExcelFile()(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"message":"File must be excel file"`)
	})

	t.Run("Error Empty File", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mockservice.NewMockWebsiteService(ctrl)
		handler := NewWebsiteHandler(zap.NewNop(), mockService)

		body, contentType := createExcelUpload(t, "websites.xlsx", [][]interface{}{
			{"name", "url", "check_interval"},
		})
		w, c := setupTestContext(t, http.MethodPost, "/websites/import", body)
		c.Request.Header.Set("Content-Type", contentType)

		handler.ImportWebsitesFromExcelFile()(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"message":"File is empty"`)
	})

	t.Run("Error Missing File Field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mockservice.NewMockWebsiteService(ctrl)
		handler := NewWebsiteHandler(zap.NewNop(), mockService)

		w, c := setupTestContext(t, http.MethodPost, "/websites/import", strings.NewReader(""))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.ImportWebsitesFromExcelFile()(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"message":"Invalid request body"`)
	})
}

func TestWebsiteHandler_ExportWebsitesToExcelFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success Export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mockservice.NewMockWebsiteService(ctrl)
		mockService.EXPECT().GetWebsites(gomock.Any(), "user-1").Return([]model.Website{
			{ID: "uuid-1", Name: "A", URL: "https://a.com", Uptime: 99.5},
		}, nil)

		handler := NewWebsiteHandler(zap.NewNop(), mockService)
		w, c := setupTestContext(t, http.MethodGet, "/websites/export", nil)

		handler.ExportWebsitesToExcelFile()(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

		f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
		assert.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Websites")
		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, "https://a.com", rows[1][2])
	})

	t.Run("Error Internal Server Error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mockservice.NewMockWebsiteService(ctrl)
		mockService.EXPECT().GetWebsites(gomock.Any(), "user-1").Return(nil, errors.New("db error"))

		handler := NewWebsiteHandler(zap.NewNop(), mockService)
		w, c := setupTestContext(t, http.MethodGet, "/websites/export", nil)

		handler.ExportWebsitesToExcelFile()(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
