package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ironclub/gym-server/internal/adapters/controller/http/middleware"
	"github.com/ironclub/gym-server/internal/adapters/controller/http/response"
	"github.com/ironclub/gym-server/internal/domain/service"
	"github.com/ironclub/gym-server/internal/domain/utils/location"
)

type NotificationHandler struct {
	notifications *service.NotifyService
}

func NewNotificationHandler(notifications *service.NotifyService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) ListMine(c *gin.Context) {
	list, err := h.notifications.ListForUser(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.notifications.MarkRead(c.Request.Context(), c.Param("id"), location.Now()); err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success{Message: "notification read"})
}
