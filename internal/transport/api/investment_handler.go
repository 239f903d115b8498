package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InvestmentHandler struct {
	svs InvestmentServicer
}

func NewInvestmentHandler(svs InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{svs: svs}
}

type SubmitInvestmentParams struct {
	PropertyID int64           `binding:"required,min=1"                 json:"propertyId"`
	Amount     decimal.Decimal `binding:"required,money_positive"        json:"amountInvested"`
	TimePeriod int             `binding:"required,min=1,max=600"         json:"timePeriod"`
	ProofURL   string          `binding:"required,url,max_bytes=2048"    json:"proofUrl"`
}

// Create POST RouteGroup + InvestmentsRoute. Заявка на вложение, оплаченное вне платформы.
func (h *InvestmentHandler) Create(c *gin.Context) {
	var params SubmitInvestmentParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	req, err := h.svs.Submit(ctx, getActorFromContext(c), service.SubmitInvestmentArgs{
		PropertyID: params.PropertyID,
		Amount:     params.Amount,
		TimePeriod: params.TimePeriod,
		ProofURL:   params.ProofURL,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newInvestmentRequestResponse(req))
}

// Index GET RouteGroup + InvestmentsRoute.
func (h *InvestmentHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	reqs, err := h.svs.ListMine(ctx, getActorFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newInvestmentRequestsResponse(reqs))
}

// AdminIndex GET RouteGroup + AdminGroup + InvestmentsRoute. По умолчанию отдает ожидающие заявки.
func (h *InvestmentHandler) AdminIndex(c *gin.Context) {
	q, ok := bindListQuery(c, string(domain.InvestmentRequestPending))
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	reqs, err := h.svs.ListByStatus(
		ctx,
		getActorFromContext(c),
		domain.InvestmentRequestStatusType(q.Status),
		q.page(),
	)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newInvestmentRequestsResponse(reqs))
}

// Approve POST RouteGroup + AdminGroup + InvestmentApproveRoute.
func (h *InvestmentHandler) Approve(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	req, holding, err := h.svs.Approve(ctx, getActorFromContext(c), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := gin.H{"request": newInvestmentRequestResponse(req)}
	if holding != nil {
		response["holdingId"] = holding.ID
	}
	c.JSON(http.StatusOK, response)
}

type RejectParams struct {
	Reason string `binding:"required,min=1,max=1000" json:"reason"`
}

// Reject POST RouteGroup + AdminGroup + InvestmentRejectRoute.
func (h *InvestmentHandler) Reject(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params RejectParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	req, err := h.svs.Reject(ctx, getActorFromContext(c), id, params.Reason)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newInvestmentRequestResponse(req))
}

func newInvestmentRequestsResponse(reqs []domain.InvestmentRequest) []InvestmentRequestResponse {
	response := make([]InvestmentRequestResponse, len(reqs))
	for i := range reqs {
		response[i] = newInvestmentRequestResponse(&reqs[i])
	}
	return response
}
