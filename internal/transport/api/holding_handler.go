package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-estate/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type HoldingHandler struct {
	svs HoldingServicer
}

func NewHoldingHandler(svs HoldingServicer) *HoldingHandler {
	return &HoldingHandler{svs: svs}
}

type PurchaseParams struct {
	PropertyID   int64           `binding:"required,min=1"            json:"propertyId"`
	Amount       decimal.Decimal `binding:"required,money_positive"   json:"amount"`
	LockInMonths int             `binding:"omitempty,min=1,max=600"   json:"lockInMonths"`
}

// Create POST RouteGroup + HoldingsRoute. Покупка доли за счет баланса кошелька.
func (h *HoldingHandler) Create(c *gin.Context) {
	var params PurchaseParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.svs.Purchase(ctx, getActorFromContext(c), service.PurchaseArgs{
		PropertyID:   params.PropertyID,
		Amount:       params.Amount,
		LockInMonths: params.LockInMonths,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newHoldingResponse(view))
}

// Index GET RouteGroup + HoldingsRoute.
func (h *HoldingHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	views, err := h.svs.List(ctx, getActorFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if len(views) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, newHoldingsResponse(views))
}

// Show GET RouteGroup + HoldingRoute.
func (h *HoldingHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.svs.Get(ctx, getActorFromContext(c), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newHoldingResponse(view))
}

// Portfolio GET RouteGroup + PortfolioRoute.
func (h *HoldingHandler) Portfolio(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	portfolio, err := h.svs.Portfolio(ctx, getActorFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPortfolioResponse(portfolio))
}
