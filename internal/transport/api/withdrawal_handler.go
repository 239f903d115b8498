package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type WithdrawalHandler struct {
	svs WithdrawalServicer
}

func NewWithdrawalHandler(svs WithdrawalServicer) *WithdrawalHandler {
	return &WithdrawalHandler{svs: svs}
}

type BankDetailsParams struct {
	AccountHolder string `binding:"required,max=255"  json:"accountHolder"`
	AccountNumber string `binding:"required,max=34"   json:"accountNumber"`
	IFSC          string `binding:"required,len=11"   json:"ifsc"`
	BankName      string `binding:"omitempty,max=255" json:"bankName"`
}

type RequestWithdrawalParams struct {
	Amount      decimal.Decimal       `binding:"required,money_positive"            json:"amount"`
	Type        domain.WithdrawalType `binding:"required,oneof=investment earnings" json:"type"`
	BankDetails BankDetailsParams     `json:"bankDetails"`
}

// Create POST RouteGroup + WithdrawalsRoute.
func (h *WithdrawalHandler) Create(c *gin.Context) {
	var params RequestWithdrawalParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	w, err := h.svs.Request(ctx, getActorFromContext(c), service.RequestWithdrawalArgs{
		Amount: params.Amount,
		Type:   params.Type,
		BankDetails: domain.BankDetails{
			AccountHolder: params.BankDetails.AccountHolder,
			AccountNumber: params.BankDetails.AccountNumber,
			IFSC:          params.BankDetails.IFSC,
			BankName:      params.BankDetails.BankName,
		},
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newWithdrawalResponse(w))
}

// Index GET RouteGroup + WithdrawalsRoute.
func (h *WithdrawalHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ws, err := h.svs.ListMine(ctx, getActorFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newWithdrawalsResponse(ws))
}

// AdminIndex GET RouteGroup + AdminGroup + WithdrawalsRoute. По умолчанию отдает ожидающие заявки.
func (h *WithdrawalHandler) AdminIndex(c *gin.Context) {
	q, ok := bindListQuery(c, string(domain.WithdrawalStatusPending))
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ws, err := h.svs.ListByStatus(ctx, getActorFromContext(c), domain.WithdrawalStatusType(q.Status), q.page())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newWithdrawalsResponse(ws))
}

// Approve POST RouteGroup + AdminGroup + WithdrawalApproveRoute.
func (h *WithdrawalHandler) Approve(c *gin.Context) {
	h.review(c, func(ctx context.Context, actor domain.Actor, id int64) (*domain.Withdrawal, error) {
		return h.svs.Approve(ctx, actor, id) //nolint:wrapcheck
	})
}

// MarkProcessed POST RouteGroup + AdminGroup + WithdrawalProcessedRoute.
func (h *WithdrawalHandler) MarkProcessed(c *gin.Context) {
	h.review(c, func(ctx context.Context, actor domain.Actor, id int64) (*domain.Withdrawal, error) {
		return h.svs.MarkProcessed(ctx, actor, id) //nolint:wrapcheck
	})
}

// Reject POST RouteGroup + AdminGroup + WithdrawalRejectRoute.
func (h *WithdrawalHandler) Reject(c *gin.Context) {
	var params RejectParams
	id, ok := paramID(c, "id")
	if !ok || !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	w, err := h.svs.Reject(ctx, getActorFromContext(c), id, params.Reason)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newWithdrawalResponse(w))
}

func (h *WithdrawalHandler) review(
	c *gin.Context,
	fn func(ctx context.Context, actor domain.Actor, id int64) (*domain.Withdrawal, error),
) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	w, err := fn(ctx, getActorFromContext(c), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newWithdrawalResponse(w))
}

func newWithdrawalsResponse(ws []domain.Withdrawal) []WithdrawalResponse {
	response := make([]WithdrawalResponse, len(ws))
	for i := range ws {
		response[i] = newWithdrawalResponse(&ws[i])
	}
	return response
}
