package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"phdtrack_backend/internal/email"
	"phdtrack_backend/internal/middleware"
	"phdtrack_backend/internal/models"
	"phdtrack_backend/internal/services"
	"phdtrack_backend/internal/storage"
	"phdtrack_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	store, err := storage.NewStorage(storage.Config{Type: "local", BasePath: t.TempDir()})
	require.NoError(t, err)

	container := services.NewServiceContainer(store, email.NewTemplateManager())

	router := gin.New()
	router.Use(middleware.DBMiddleware(db))

	appHandlers := NewAppHandlers(container, validator.New())
	api := router.Group("/api/v1")
	appHandlers.School.RegisterRoutes(api)
	appHandlers.Professor.RegisterRoutes(api)
	appHandlers.Application.RegisterRoutes(api)
	appHandlers.Document.RegisterRoutes(api)
	appHandlers.Email.RegisterRoutes(api)
	appHandlers.Notification.RegisterRoutes(api)

	return router, db
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
