package repositories

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"phdtrack_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository()

	notification := &models.Notification{
		Type:    models.NotificationTypeDeadline,
		Title:   "MIT application deadline reminder",
		Content: "The application deadline for MIT is in 3 days.",
	}
	require.NoError(t, repo.Create(db, notification))
	require.NotZero(t, notification.ID)

	found, err := repo.FindByID(db, notification.ID)
	require.NoError(t, err)
	assert.Equal(t, notification.Title, found.Title)
	assert.False(t, found.IsRead)
	assert.Nil(t, found.ReadAt)
}

func TestNotificationRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository()

	_, err := repo.FindByID(db, 9999)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestNotificationRepository_Create_RejectsUnknownType(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository()

	err := repo.Create(db, &models.Notification{
		Type:  "carrier-pigeon",
		Title: "whatever",
	})
	assert.Error(t, err)
}

func TestNotificationRepository_FindAll_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository()

	for i := 0; i < 3; i++ {
		n := &models.Notification{
			Type:  models.NotificationTypeDeadline,
			Title: fmt.Sprintf("reminder %d", i),
		}
		n.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Create(n).Error)
	}

	notifications, total, err := repo.FindAll(db, NotificationCriteria{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, notifications, 3)

	assert.Equal(t, "reminder 2", notifications[0].Title)
	assert.Equal(t, "reminder 0", notifications[2].Title)
}

func TestNotificationRepository_FindAll_FilterByReadState(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository()

	unread := &models.Notification{Type: models.NotificationTypeDeadline, Title: "unread"}
	require.NoError(t, repo.Create(db, unread))

	read := &models.Notification{Type: models.NotificationTypeDeadline, Title: "read"}
	require.NoError(t, repo.Create(db, read))
	require.NoError(t, repo.MarkAsRead(db, read.ID))

	isRead := false
	notifications, total, err := repo.FindAll(db, NotificationCriteria{IsRead: &isRead})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, notifications, 1)
	assert.Equal(t, "unread", notifications[0].Title)

	isRead = true
	notifications, total, err = repo.FindAll(db, NotificationCriteria{IsRead: &isRead})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, notifications, 1)
	assert.Equal(t, "read", notifications[0].Title)
}

func TestNotificationRepository_FindAll_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(db, &models.Notification{
			Type:  models.NotificationTypeDeadline,
			Title: fmt.Sprintf("n%d", i),
		}))
	}

	notifications, total, err := repo.FindAll(db, NotificationCriteria{Skip: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, notifications, 2)
}

func TestNotificationRepository_MarkAsRead(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository()

	n := &models.Notification{Type: models.NotificationTypeDeadline, Title: "t"}
	require.NoError(t, repo.Create(db, n))

	require.NoError(t, repo.MarkAsRead(db, n.ID))

	found, err := repo.FindByID(db, n.ID)
	require.NoError(t, err)
	assert.True(t, found.IsRead)
	require.NotNil(t, found.ReadAt)

	// Marking again succeeds and stays read.
	require.NoError(t, repo.MarkAsRead(db, n.ID))
	found, err = repo.FindByID(db, n.ID)
	require.NoError(t, err)
	assert.True(t, found.IsRead)
}

func TestNotificationRepository_MarkAsRead_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository()

	assert.ErrorIs(t, repo.MarkAsRead(db, 404), ErrNotificationNotFound)
}

func TestNotificationRepository_CountUnread(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(db, &models.Notification{
			Type:  models.NotificationTypeDeadline,
			Title: fmt.Sprintf("n%d", i),
		}))
	}

	count, err := repo.CountUnread(db)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	var first models.Notification
	require.NoError(t, db.First(&first).Error)
	require.NoError(t, repo.MarkAsRead(db, first.ID))

	count, err = repo.CountUnread(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestNotificationRepository_CreateDeadlineNotification(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.AddDate(0, 0, 3)

	n, err := repo.CreateDeadlineNotification(db, "MIT", deadline, now)
	require.NoError(t, err)

	assert.Equal(t, models.NotificationTypeDeadline, n.Type)
	assert.Equal(t, "MIT application deadline reminder", n.Title)
	assert.Contains(t, n.Content, "in 3 days")

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(n.Data, &data))
	assert.Equal(t, "MIT", data["school"])
	assert.Equal(t, float64(3), data["days_left"])
}

func TestNotificationRepository_CreateDeadlineNotification_Today(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Deadline later the same day: less than 24h left rounds down to zero.
	n, err := repo.CreateDeadlineNotification(db, "Stanford", now.Add(6*time.Hour), now)
	require.NoError(t, err)
	assert.Contains(t, n.Content, "is today")

	// A hair over one full day left is worded as one day.
	n, err = repo.CreateDeadlineNotification(db, "Stanford", now.Add(25*time.Hour), now)
	require.NoError(t, err)
	assert.Contains(t, n.Content, "in 1 days")
}

func TestNotificationRepository_CreateStatusChangeNotification(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository()

	n, err := repo.CreateStatusChangeNotification(db, "MIT", "preparing", "submitted")
	require.NoError(t, err)

	assert.Equal(t, models.NotificationTypeStatusChange, n.Type)
	assert.Equal(t, "MIT application status change", n.Title)
	assert.Contains(t, n.Content, "'preparing'")
	assert.Contains(t, n.Content, "'submitted'")

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(n.Data, &data))
	assert.Equal(t, "preparing", data["old_status"])
	assert.Equal(t, "submitted", data["new_status"])
}

func TestNotificationRepository_CreateEmailReplyNotification(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository()

	n, err := repo.CreateEmailReplyNotification(db, "Dr. Smith", "Re: PhD Inquiry")
	require.NoError(t, err)

	assert.Equal(t, models.NotificationTypeEmailReply, n.Type)
	assert.Contains(t, n.Title, "Dr. Smith")
	assert.Contains(t, n.Content, "Re: PhD Inquiry")
}

func TestNotificationRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository()

	n := &models.Notification{Type: models.NotificationTypeDeadline, Title: "t"}
	require.NoError(t, repo.Create(db, n))

	require.NoError(t, repo.Delete(db, n.ID))
	_, err := repo.FindByID(db, n.ID)
	assert.ErrorIs(t, err, ErrNotificationNotFound)

	assert.ErrorIs(t, repo.Delete(db, n.ID), ErrNotificationNotFound)
}
