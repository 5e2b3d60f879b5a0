package handlers

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"phdtrack_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadDocument(t *testing.T, router http.Handler, applicationID uint, name, docType, fileName, content string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	require.NoError(t, writer.WriteField("application_id", strconv.FormatUint(uint64(applicationID), 10)))
	require.NoError(t, writer.WriteField("name", name))
	require.NoError(t, writer.WriteField("type", docType))

	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadDocument(t *testing.T) {
	router, db := setupTestRouter(t)
	_, application := seedSchoolAndApplication(t, db)

	w := uploadDocument(t, router, application.ID, "My CV", "cv", "cv.pdf", "%PDF-fake")
	require.Equal(t, http.StatusCreated, w.Code)

	var document models.Document
	decodeJSON(t, w, &document)
	assert.Equal(t, "My CV", document.Name)
	assert.Equal(t, models.DocumentTypeCV, document.Type)
	assert.Contains(t, document.Path, fmt.Sprintf("documents/%d/", application.ID))
	assert.Contains(t, document.Path, ".pdf")
}

func TestUploadDocument_UnknownApplication(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := uploadDocument(t, router, 777, "My CV", "cv", "cv.pdf", "data")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadDocument_InvalidType(t *testing.T) {
	router, db := setupTestRouter(t)
	_, application := seedSchoolAndApplication(t, db)

	w := uploadDocument(t, router, application.ID, "Mixtape", "mixtape", "mix.mp3", "data")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadDocument_MissingFile(t *testing.T) {
	router, db := setupTestRouter(t)
	_, application := seedSchoolAndApplication(t, db)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("application_id", strconv.FormatUint(uint64(application.ID), 10)))
	require.NoError(t, writer.WriteField("name", "My CV"))
	require.NoError(t, writer.WriteField("type", "cv"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadDocument_RoundTrip(t *testing.T) {
	router, db := setupTestRouter(t)
	_, application := seedSchoolAndApplication(t, db)

	w := uploadDocument(t, router, application.ID, "My CV", "cv", "cv.pdf", "file-content")
	require.Equal(t, http.StatusCreated, w.Code)

	var document models.Document
	decodeJSON(t, w, &document)

	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/documents/%d/download", document.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "file-content", w.Body.String())
}

func TestDeleteDocument(t *testing.T) {
	router, db := setupTestRouter(t)
	_, application := seedSchoolAndApplication(t, db)

	w := uploadDocument(t, router, application.ID, "My CV", "cv", "cv.pdf", "data")
	require.Equal(t, http.StatusCreated, w.Code)

	var document models.Document
	decodeJSON(t, w, &document)

	w = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/documents/%d", document.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/documents/%d", document.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
