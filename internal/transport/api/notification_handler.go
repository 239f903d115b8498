package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	svs NotificationServicer
}

func NewNotificationHandler(svs NotificationServicer) *NotificationHandler {
	return &NotificationHandler{svs: svs}
}

// Index GET RouteGroup + NotificationsRoute.
func (h *NotificationHandler) Index(c *gin.Context) {
	q, ok := bindListQuery(c, "")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	notifications, err := h.svs.List(ctx, getActorFromContext(c), q.page())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		response[i] = newNotificationResponse(&notifications[i])
	}
	c.JSON(http.StatusOK, response)
}

// MarkRead POST RouteGroup + NotificationReadRoute.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	n, err := h.svs.MarkRead(ctx, getActorFromContext(c), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newNotificationResponse(n))
}
