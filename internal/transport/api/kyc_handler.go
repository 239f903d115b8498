package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/gin-gonic/gin"
)

type KYCHandler struct {
	svs KYCServicer
}

func NewKYCHandler(svs KYCServicer) *KYCHandler {
	return &KYCHandler{svs: svs}
}

type KYCSubmitParams struct {
	DocumentURL string `binding:"required,url,max_bytes=2048" json:"documentUrl"`
}

// Submit POST RouteGroup + KYCRoute.
func (h *KYCHandler) Submit(c *gin.Context) {
	var params KYCSubmitParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.svs.Submit(ctx, getActorFromContext(c), params.DocumentURL)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

type KYCReviewParams struct {
	Status domain.KYCStatusType `binding:"required,oneof=pending approved rejected" json:"status"`
}

// Review PUT RouteGroup + AdminGroup + AdminKYCItemRoute.
func (h *KYCHandler) Review(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params KYCReviewParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.svs.Review(ctx, getActorFromContext(c), userID, params.Status)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// Index GET RouteGroup + AdminGroup + AdminKYCRoute. По умолчанию отдает заявки на проверке.
func (h *KYCHandler) Index(c *gin.Context) {
	q, ok := bindListQuery(c, string(domain.KYCStatusPending))
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	users, err := h.svs.ListByStatus(ctx, getActorFromContext(c), domain.KYCStatusType(q.Status), q.page())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]UserResponse, len(users))
	for i := range users {
		response[i] = newUserResponse(&users[i])
	}
	c.JSON(http.StatusOK, response)
}
