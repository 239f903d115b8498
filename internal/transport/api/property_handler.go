package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-estate/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PropertyHandler struct {
	svs PropertyServicer
}

func NewPropertyHandler(svs PropertyServicer) *PropertyHandler {
	return &PropertyHandler{svs: svs}
}

// Index GET RouteGroup + PropertiesRoute.
func (h *PropertyHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	properties, err := h.svs.GetAll(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]PropertyResponse, len(properties))
	for i := range properties {
		response[i] = newPropertyResponse(&properties[i])
	}
	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + PropertyRoute.
func (h *PropertyHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	property, err := h.svs.GetByID(ctx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPropertyResponse(property))
}

type CreatePropertyParams struct {
	Name              string          `binding:"required,min=1,max=255" json:"name"`
	MinInvestment     decimal.Decimal `binding:"required,money_positive" json:"minInvestment"`
	AvailableToInvest decimal.Decimal `binding:"required,money_positive" json:"availableToInvest"`
	MonthlyReturnRate decimal.Decimal `binding:"required"                json:"monthlyReturnRate"`
	LockInMonths      int             `binding:"required,min=1,max=600"  json:"lockInMonths"`
}

// Create POST RouteGroup + AdminGroup + PropertiesRoute.
func (h *PropertyHandler) Create(c *gin.Context) {
	var params CreatePropertyParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	property, err := h.svs.Create(ctx, getActorFromContext(c), service.CreatePropertyArgs{
		Name:              params.Name,
		MinInvestment:     params.MinInvestment,
		AvailableToInvest: params.AvailableToInvest,
		MonthlyReturnRate: params.MonthlyReturnRate,
		LockInMonths:      params.LockInMonths,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newPropertyResponse(property))
}
