package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-estate/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OfflineTransferHandler struct {
	svs OfflineTransferServicer
}

func NewOfflineTransferHandler(svs OfflineTransferServicer) *OfflineTransferHandler {
	return &OfflineTransferHandler{svs: svs}
}

type InviteBuyerParams struct {
	HoldingID  int64           `binding:"required,min=1"          json:"holdingId"`
	BuyerEmail string          `binding:"required,email"          json:"buyerEmail"`
	BuyerName  string          `binding:"required,min=1,max=100"  json:"buyerName"`
	BuyerPhone string          `binding:"omitempty,max=20"        json:"buyerPhone"`
	SalePrice  decimal.Decimal `binding:"required,money_positive" json:"salePrice"`
}

// Create POST RouteGroup + OfflineTransfersRoute. Если покупатель уже прошел KYC, передача завершается сразу.
func (h *OfflineTransferHandler) Create(c *gin.Context) {
	var params InviteBuyerParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	req, err := h.svs.Invite(ctx, getActorFromContext(c), service.InviteBuyerArgs{
		HoldingID:  params.HoldingID,
		BuyerEmail: params.BuyerEmail,
		BuyerName:  params.BuyerName,
		BuyerPhone: params.BuyerPhone,
		SalePrice:  params.SalePrice,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newOfflineTransferResponse(req))
}

// Index GET RouteGroup + OfflineTransfersRoute.
func (h *OfflineTransferHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	reqs, err := h.svs.ListMine(ctx, getActorFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]OfflineTransferResponse, len(reqs))
	for i := range reqs {
		response[i] = newOfflineTransferResponse(&reqs[i])
	}
	c.JSON(http.StatusOK, response)
}
