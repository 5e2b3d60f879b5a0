package repositories

import (
	"testing"

	"phdtrack_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	appRepo := NewApplicationRepository()
	schoolRepo := NewSchoolRepository()

	school := &models.School{Name: "MIT"}
	require.NoError(t, schoolRepo.Create(db, school))

	application := &models.Application{
		SchoolID: school.ID,
		Status:   models.ApplicationStatusPreparing,
	}
	require.NoError(t, appRepo.Create(db, application))

	found, err := appRepo.FindByID(db, application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPreparing, found.Status)
	require.NotNil(t, found.School)
	assert.Equal(t, "MIT", found.School.Name)
}

func TestApplicationRepository_Delete_CascadesDocumentsAndEmails(t *testing.T) {
	db := setupTestDB(t)
	appRepo := NewApplicationRepository()

	school := &models.School{Name: "MIT"}
	require.NoError(t, db.Create(school).Error)

	application := &models.Application{SchoolID: school.ID}
	require.NoError(t, appRepo.Create(db, application))

	document := &models.Document{
		ApplicationID: application.ID,
		Name:          "cv.pdf",
		Type:          models.DocumentTypeCV,
		Path:          "documents/1/cv.pdf",
	}
	require.NoError(t, db.Create(document).Error)

	emailRecord := &models.Email{
		ApplicationID: application.ID,
		Subject:       "Inquiry",
	}
	require.NoError(t, db.Create(emailRecord).Error)

	require.NoError(t, appRepo.Delete(db, application.ID))

	var docCount, emailCount int64
	require.NoError(t, db.Model(&models.Document{}).Where("application_id = ?", application.ID).Count(&docCount).Error)
	require.NoError(t, db.Model(&models.Email{}).Where("application_id = ?", application.ID).Count(&emailCount).Error)
	assert.Zero(t, docCount)
	assert.Zero(t, emailCount)

	_, err := appRepo.FindByID(db, application.ID)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestApplicationRepository_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	appRepo := NewApplicationRepository()

	assert.ErrorIs(t, appRepo.Delete(db, 42), ErrApplicationNotFound)
}
