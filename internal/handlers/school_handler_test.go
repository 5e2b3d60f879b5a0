package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"phdtrack_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSchool(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/schools", map[string]interface{}{
		"name":       "MIT",
		"department": "EECS",
		"website":    "https://mit.edu",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var school models.School
	decodeJSON(t, w, &school)
	assert.NotZero(t, school.ID)
	assert.Equal(t, "MIT", school.Name)
}

func TestCreateSchool_MissingName(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/schools", map[string]interface{}{
		"department": "EECS",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSchool_InvalidWebsite(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/schools", map[string]interface{}{
		"name":    "MIT",
		"website": "not a url",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSchool_NotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/schools/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateSchool_PartialUpdate(t *testing.T) {
	router, db := setupTestRouter(t)

	school := &models.School{Name: "MIT", Department: "EECS"}
	require.NoError(t, db.Create(school).Error)

	w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/v1/schools/%d", school.ID), map[string]interface{}{
		"department": "CSAIL",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.School
	decodeJSON(t, w, &updated)
	assert.Equal(t, "CSAIL", updated.Department)
	assert.Equal(t, "MIT", updated.Name)
}

func TestDeleteSchool(t *testing.T) {
	router, db := setupTestRouter(t)

	school := &models.School{Name: "MIT"}
	require.NoError(t, db.Create(school).Error)

	w := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/schools/%d", school.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/schools/%d", school.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListSchools(t *testing.T) {
	router, db := setupTestRouter(t)

	for _, name := range []string{"MIT", "Stanford", "CMU"} {
		require.NoError(t, db.Create(&models.School{Name: name}).Error)
	}

	w := doRequest(t, router, http.MethodGet, "/api/v1/schools?skip=1&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var schools []models.School
	decodeJSON(t, w, &schools)
	assert.Len(t, schools, 2)
}
