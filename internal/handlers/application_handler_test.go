package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"phdtrack_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSchoolAndApplication(t *testing.T, db *gorm.DB) (*models.School, *models.Application) {
	t.Helper()

	school := &models.School{Name: "MIT"}
	require.NoError(t, db.Create(school).Error)

	application := &models.Application{SchoolID: school.ID, Status: models.ApplicationStatusPreparing}
	require.NoError(t, db.Create(application).Error)

	return school, application
}

func TestCreateApplication(t *testing.T) {
	router, db := setupTestRouter(t)

	school := &models.School{Name: "MIT"}
	require.NoError(t, db.Create(school).Error)

	w := doRequest(t, router, http.MethodPost, "/api/v1/applications", map[string]interface{}{
		"school_id": school.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var application models.Application
	decodeJSON(t, w, &application)
	assert.Equal(t, models.ApplicationStatusPreparing, application.Status)
}

func TestCreateApplication_UnknownSchool(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/applications", map[string]interface{}{
		"school_id": 777,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateApplication_InvalidStatus(t *testing.T) {
	router, db := setupTestRouter(t)

	school := &models.School{Name: "MIT"}
	require.NoError(t, db.Create(school).Error)

	w := doRequest(t, router, http.MethodPost, "/api/v1/applications", map[string]interface{}{
		"school_id": school.ID,
		"status":    "ghosted",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateApplication_StatusChangeEmitsNotification(t *testing.T) {
	router, db := setupTestRouter(t)
	_, application := seedSchoolAndApplication(t, db)

	w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/v1/applications/%d", application.ID), map[string]interface{}{
		"status": "submitted",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var notifications []models.Notification
	require.NoError(t, db.Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeStatusChange, notifications[0].Type)
	assert.Contains(t, notifications[0].Content, "MIT")
}

func TestUpdateApplication_InvalidStatus(t *testing.T) {
	router, db := setupTestRouter(t)
	_, application := seedSchoolAndApplication(t, db)

	w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/v1/applications/%d", application.ID), map[string]interface{}{
		"status": "abducted",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteApplication(t *testing.T) {
	router, db := setupTestRouter(t)
	_, application := seedSchoolAndApplication(t, db)

	w := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/applications/%d", application.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/applications/%d", application.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
