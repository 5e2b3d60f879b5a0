package handlers

import (
	"net/http"

	"phdtrack_backend/internal/config"
	"phdtrack_backend/internal/repositories"
	"phdtrack_backend/internal/services"
	"phdtrack_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService *services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.POST("", h.CreateNotification)
		notifications.GET("", h.ListNotifications)
		notifications.GET("/unread", h.ListUnread)
		notifications.GET("/unread-count", h.GetUnreadCount)
		notifications.GET("/:notificationId", h.GetNotification)
		notifications.PUT("/:notificationId/read", h.MarkAsRead)
		notifications.DELETE("/:notificationId", h.DeleteNotification)
		notifications.POST("/check-deadlines", h.CheckDeadlines)
	}
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	notification, err := h.notificationService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, notification)
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	var criteria repositories.NotificationCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	response, err := h.notificationService.List(h.GetDB(c), criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *NotificationHandler) ListUnread(c *gin.Context) {
	notifications, err := h.notificationService.ListUnread(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	count, err := h.notificationService.UnreadCount(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

func (h *NotificationHandler) GetNotification(c *gin.Context) {
	id, err := ParseParamUint(c, "notificationId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	notification, err := h.notificationService.GetByID(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, err := ParseParamUint(c, "notificationId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	notification, err := h.notificationService.MarkAsRead(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, err := ParseParamUint(c, "notificationId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.notificationService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CheckDeadlines runs the deadline scan on demand. days_threshold defaults to
// the configured value.
func (h *NotificationHandler) CheckDeadlines(c *gin.Context) {
	defaultThreshold := 7
	if cfg := config.AppConfig; cfg != nil && cfg.Notifications.DeadlineThresholdDays > 0 {
		defaultThreshold = cfg.Notifications.DeadlineThresholdDays
	}

	daysThreshold := ParseQueryInt(c, "days_threshold", defaultThreshold)

	created, err := h.notificationService.CheckUpcomingDeadlines(h.GetDB(c), daysThreshold)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications_created": len(created),
		"notifications":         created,
	})
}
