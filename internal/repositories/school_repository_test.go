package repositories

import (
	"testing"
	"time"

	"phdtrack_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchoolRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSchoolRepository()

	school := &models.School{Name: "MIT", Department: "EECS"}
	require.NoError(t, repo.Create(db, school))
	require.NotZero(t, school.ID)

	found, err := repo.FindByID(db, school.ID)
	require.NoError(t, err)
	assert.Equal(t, "MIT", found.Name)

	found.Department = "CSAIL"
	require.NoError(t, repo.Update(db, found))

	found, err = repo.FindByID(db, school.ID)
	require.NoError(t, err)
	assert.Equal(t, "CSAIL", found.Department)

	require.NoError(t, repo.Delete(db, school.ID))
	_, err = repo.FindByID(db, school.ID)
	assert.ErrorIs(t, err, ErrSchoolNotFound)

	assert.ErrorIs(t, repo.Delete(db, school.ID), ErrSchoolNotFound)
}

func TestSchoolRepository_FindWithUpcomingDeadlines(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSchoolRepository()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	until := now.AddDate(0, 0, 7)

	inWindow := now.AddDate(0, 0, 3)
	past := now.AddDate(0, 0, -1)
	far := now.AddDate(0, 0, 30)

	require.NoError(t, repo.Create(db, &models.School{Name: "InWindow", ApplicationDeadline: &inWindow}))
	require.NoError(t, repo.Create(db, &models.School{Name: "Past", ApplicationDeadline: &past}))
	require.NoError(t, repo.Create(db, &models.School{Name: "Far", ApplicationDeadline: &far}))
	require.NoError(t, repo.Create(db, &models.School{Name: "NoDeadline"}))

	schools, err := repo.FindWithUpcomingDeadlines(db, now, until)
	require.NoError(t, err)
	require.Len(t, schools, 1)
	assert.Equal(t, "InWindow", schools[0].Name)
}

func TestSchoolRepository_FindWithUpcomingDeadlines_WindowBoundaries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSchoolRepository()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	until := now.AddDate(0, 0, 7)

	// A deadline exactly at "now" is excluded; exactly at the window end is
	// included.
	atNow := now
	atEnd := until
	require.NoError(t, repo.Create(db, &models.School{Name: "AtNow", ApplicationDeadline: &atNow}))
	require.NoError(t, repo.Create(db, &models.School{Name: "AtEnd", ApplicationDeadline: &atEnd}))

	schools, err := repo.FindWithUpcomingDeadlines(db, now, until)
	require.NoError(t, err)
	require.Len(t, schools, 1)
	assert.Equal(t, "AtEnd", schools[0].Name)
}

func TestSchoolRepository_FindAll_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSchoolRepository()

	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Create(db, &models.School{Name: name}))
	}

	schools, err := repo.FindAll(db, 1, 2)
	require.NoError(t, err)
	assert.Len(t, schools, 2)
}
