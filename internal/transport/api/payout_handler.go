package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/gin-gonic/gin"
)

// payoutBatchTimeout генерация и обработка выплат затрагивает много вложений, поэтому таймаут больше
// стандартного.
const payoutBatchTimeout = 60 * time.Second

type PayoutHandler struct {
	svs PayoutServicer
}

func NewPayoutHandler(svs PayoutServicer) *PayoutHandler {
	return &PayoutHandler{svs: svs}
}

// Index GET RouteGroup + PayoutsRoute.
func (h *PayoutHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payouts, err := h.svs.ListMine(ctx, getActorFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPayoutsResponse(payouts))
}

// AdminIndex GET RouteGroup + AdminGroup + PayoutsRoute. По умолчанию отдает ожидающие выплаты.
func (h *PayoutHandler) AdminIndex(c *gin.Context) {
	q, ok := bindListQuery(c, string(domain.PayoutStatusPending))
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payouts, err := h.svs.ListByStatus(ctx, getActorFromContext(c), domain.PayoutStatusType(q.Status), q.page())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPayoutsResponse(payouts))
}

type GenerateResponse struct {
	Generated []PayoutResponse `json:"generated"`
	Skipped   int              `json:"skipped"`
	Failed    int              `json:"failed"`
}

// Generate POST RouteGroup + AdminGroup + PayoutsGenerateRoute.
func (h *PayoutHandler) Generate(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, payoutBatchTimeout)
	defer cancel()

	report, err := h.svs.Generate(ctx, getActorFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, GenerateResponse{
		Generated: newPayoutsResponse(report.Generated),
		Skipped:   report.Skipped,
		Failed:    report.Failed,
	})
}

type ProcessParams struct {
	PayoutIDs []int64 `binding:"required,min=1,max=500,dive,min=1" json:"payoutIds"`
}

type ProcessResultResponse struct {
	PayoutID int64          `json:"payoutId"`
	Outcome  domain.Outcome `json:"outcome"`
	Error    string         `json:"error,omitempty"`
}

type ProcessResponse struct {
	Results   []ProcessResultResponse `json:"results"`
	Processed int                     `json:"processed"`
	Skipped   int                     `json:"skipped"`
	Failed    int                     `json:"failed"`
}

// Process POST RouteGroup + AdminGroup + PayoutsProcessRoute. Результат отдается по каждой выплате отдельно.
func (h *PayoutHandler) Process(c *gin.Context) {
	var params ProcessParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, payoutBatchTimeout)
	defer cancel()

	report, err := h.svs.Process(ctx, getActorFromContext(c), params.PayoutIDs)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := ProcessResponse{
		Results:   make([]ProcessResultResponse, len(report.Results)),
		Processed: report.Processed,
		Skipped:   report.Skipped,
		Failed:    report.Failed,
	}
	for i, r := range report.Results {
		response.Results[i] = ProcessResultResponse{PayoutID: r.PayoutID, Outcome: r.Outcome, Error: r.Error}
	}
	c.JSON(http.StatusOK, response)
}

// Complete POST RouteGroup + AdminGroup + PayoutCompleteRoute.
func (h *PayoutHandler) Complete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payout, err := h.svs.Complete(ctx, getActorFromContext(c), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPayoutResponse(payout))
}
