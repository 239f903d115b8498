package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type WalletHandler struct {
	svs WalletServicer
}

func NewWalletHandler(svs WalletServicer) *WalletHandler {
	return &WalletHandler{svs: svs}
}

// Index GET RouteGroup + WalletRoute.
func (h *WalletHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	wallet, err := h.svs.Get(ctx, getActorFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newWalletResponse(wallet))
}

// Transactions GET RouteGroup + WalletTransactionsRoute.
func (h *WalletHandler) Transactions(c *gin.Context) {
	q, ok := bindListQuery(c, "")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.svs.Transactions(ctx, getActorFromContext(c), q.page())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if len(transactions) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		response[i] = TransactionResponse{
			ID:          t.ID,
			Reference:   t.Reference,
			Type:        t.Type,
			Amount:      t.Amount,
			Status:      t.Status,
			HoldingID:   t.HoldingID,
			PropertyID:  t.PropertyID,
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, response)
}

type CreditParams struct {
	Amount decimal.Decimal `binding:"required,money_positive" json:"amount"`
}

// Credit POST RouteGroup + AdminGroup + WalletCreditRoute. Пополнение кошелька юзера администратором.
func (h *WalletHandler) Credit(c *gin.Context) {
	var params CreditParams
	userID, ok := paramID(c, "id")
	if !ok || !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	wallet, err := h.svs.Credit(ctx, getActorFromContext(c), userID, params.Amount)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newWalletResponse(wallet))
}
