package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TransferHandler struct {
	svs TransferServicer
}

func NewTransferHandler(svs TransferServicer) *TransferHandler {
	return &TransferHandler{svs: svs}
}

type InitiateTransferParams struct {
	HoldingID  int64           `binding:"required,min=1"          json:"holdingId"`
	BuyerEmail string          `binding:"required,email"          json:"buyerEmail"`
	SalePrice  decimal.Decimal `binding:"required,money_positive" json:"salePrice"`
}

// Create POST RouteGroup + TransfersRoute.
func (h *TransferHandler) Create(c *gin.Context) {
	var params InitiateTransferParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	t, err := h.svs.Initiate(ctx, getActorFromContext(c), service.InitiateTransferArgs{
		HoldingID:  params.HoldingID,
		BuyerEmail: params.BuyerEmail,
		SalePrice:  params.SalePrice,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newTransferResponse(t))
}

// Index GET RouteGroup + TransfersRoute. Заявки, где юзер продавец или покупатель.
func (h *TransferHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ts, err := h.svs.ListMine(ctx, getActorFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransfersResponse(ts))
}

// AdminIndex GET RouteGroup + AdminGroup + TransfersRoute. По умолчанию отдает заявки, ждущие решения администратора.
func (h *TransferHandler) AdminIndex(c *gin.Context) {
	q, ok := bindListQuery(c, string(domain.TransferStatusAdminPending))
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ts, err := h.svs.ListByStatus(ctx, getActorFromContext(c), domain.TransferStatusType(q.Status), q.page())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransfersResponse(ts))
}

type RespondTransferParams struct {
	Accept *bool `binding:"required" json:"accept"`
}

// Respond POST RouteGroup + TransferRespondRoute. Ответ покупателя.
func (h *TransferHandler) Respond(c *gin.Context) {
	var params RespondTransferParams
	id, ok := paramID(c, "id")
	if !ok || !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	t, err := h.svs.Respond(ctx, getActorFromContext(c), id, *params.Accept)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransferResponse(t))
}

// Submit POST RouteGroup + TransferSubmitRoute. Продавец отправляет принятую заявку администратору.
func (h *TransferHandler) Submit(c *gin.Context) {
	h.act(c, h.svs.Submit)
}

// Cancel POST RouteGroup + TransferCancelRoute.
func (h *TransferHandler) Cancel(c *gin.Context) {
	h.act(c, h.svs.Cancel)
}

// Approve POST RouteGroup + AdminGroup + TransferApproveRoute.
func (h *TransferHandler) Approve(c *gin.Context) {
	h.act(c, h.svs.Approve)
}

// Reject POST RouteGroup + AdminGroup + TransferRejectRoute.
func (h *TransferHandler) Reject(c *gin.Context) {
	var params RejectParams
	id, ok := paramID(c, "id")
	if !ok || !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	t, err := h.svs.Reject(ctx, getActorFromContext(c), id, params.Reason)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransferResponse(t))
}

func (h *TransferHandler) act(
	c *gin.Context,
	fn func(ctx context.Context, actor domain.Actor, id int64) (*domain.TransferRequest, error),
) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	t, err := fn(ctx, getActorFromContext(c), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransferResponse(t))
}

func newTransfersResponse(ts []domain.TransferRequest) []TransferResponse {
	response := make([]TransferResponse, len(ts))
	for i := range ts {
		response[i] = newTransferResponse(&ts[i])
	}
	return response
}
