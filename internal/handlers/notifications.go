package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary      List notifications
// @Description  Returns notifications routed to the caller's role within their property.
// @Tags         notifications
// @Produce      json
// @Param        unread  query  bool  false  "Only unread notifications"
// @Success      200  {object}  map[string]interface{}  "count, notifications"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/notifications [get]
// @Security     BearerAuth
func (h *Handler) listNotifications(c *gin.Context) {
	unreadOnly, _ := strconv.ParseBool(c.Query("unread"))
	role := c.GetString(ctxUserRole)

	notifications, err := h.services.Notifications.ListNotifications(c.Request.Context(), propertyID(c), role, unreadOnly)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load notifications", "notifications_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":         len(notifications),
		"notifications": notifications,
	})
}

// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Param        id  path  string  true  "Notification ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/notifications/{id}/read [post]
// @Security     BearerAuth
func (h *Handler) markNotificationRead(c *gin.Context) {
	if err := h.services.Notifications.MarkNotificationRead(c.Request.Context(), c.Param("id")); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to mark notification read", "notification_read_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}
