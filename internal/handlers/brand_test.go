// internal/handlers/brand_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/motorinci/motorinci-api/internal/config"
	"github.com/motorinci/motorinci-api/internal/models"
	"github.com/motorinci/motorinci-api/internal/services"
)

func brandTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Brand{}, &models.Category{}, &models.Motor{}))

	cfg := &config.Config{
		Storage: config.StorageConfig{LocalPath: t.TempDir(), BaseURL: "http://localhost/uploads"},
	}
	storage, err := services.NewStorageService(cfg)
	require.NoError(t, err)

	handler := NewBrandHandler(services.NewBrandService(db, storage))
	r := gin.New()
	r.GET("/brands", handler.List)
	r.POST("/brands", handler.Create)
	r.GET("/brands/:id", handler.Get)
	return r, db
}

func TestBrandCreateAndList(t *testing.T) {
	r, _ := brandTestRouter(t)

	body, _ := json.Marshal(map[string]string{"name": "Honda"})
	req := httptest.NewRequest("POST", "/brands", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/brands", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message    string `json:"message"`
		Data       []any  `json:"data"`
		Pagination struct {
			Total  int64 `json:"total"`
			Limit  int64 `json:"limit"`
			Offset int   `json:"offset"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, int64(1), resp.Pagination.Total)
	// No limit requested, so the meta echoes the total.
	assert.Equal(t, int64(1), resp.Pagination.Limit)
}

func TestBrandCreateValidationEnvelope(t *testing.T) {
	r, _ := brandTestRouter(t)

	req := httptest.NewRequest("POST", "/brands", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Message string              `json:"message"`
		Details map[string][]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "The given data was invalid.", resp.Message)
	assert.Contains(t, resp.Details, "name")
}

func TestBrandGetNotFound(t *testing.T) {
	r, _ := brandTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/brands/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
