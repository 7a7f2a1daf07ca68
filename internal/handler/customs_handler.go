package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nimbatransit/transit-tracker/internal/dto"
	"github.com/nimbatransit/transit-tracker/internal/model"
	"github.com/nimbatransit/transit-tracker/internal/service"
)

type CustomsHandler struct {
	customsSvc *service.CustomsService
	ratesSvc   *service.RatesService
}

func NewCustomsHandler(customsSvc *service.CustomsService, ratesSvc *service.RatesService) *CustomsHandler {
	return &CustomsHandler{customsSvc: customsSvc, ratesSvc: ratesSvc}
}

func (h *CustomsHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	quote, err := h.customsSvc.Quote(c.Request.Context(), req.FOBValue, req.FreightCost, req.InsuranceCost)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, newQuoteResponse(quote))
}

func (h *CustomsHandler) GetRates(c *gin.Context) {
	rates, stale, err := h.ratesSvc.Current(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, newRatesResponse(rates, stale))
}

func (h *CustomsHandler) UpdateRates(c *gin.Context) {
	var req dto.UpdateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	rates := &model.CustomsRates{
		DD:     *req.DD,
		RTL:    *req.RTL,
		RDL:    *req.RDL,
		TVS:    *req.TVS,
		Source: req.Source,
	}

	if err := h.ratesSvc.Update(c.Request.Context(), rates); err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
				Error:  "validation failed",
				Errors: []dto.ValidationError{ve},
			})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, newRatesResponse(rates, false))
}

func newQuoteResponse(q *service.Quote) dto.QuoteResponse {
	return dto.QuoteResponse{
		ValueCAF:         q.Breakdown.ValueCAF.String(),
		DD:               q.Breakdown.DD.String(),
		RTL:              q.Breakdown.RTL.String(),
		RDL:              q.Breakdown.RDL.String(),
		TVS:              q.Breakdown.TVS.String(),
		TaxableBaseTVS:   q.Breakdown.TaxableBaseTVS.String(),
		TotalDuties:      q.Breakdown.TotalDuties.String(),
		DutiesPercentage: q.DutiesPercentage,
		Rates:            newRatesResponse(q.Rates, q.RatesStale),
	}
}

func newRatesResponse(r *model.CustomsRates, stale bool) dto.RatesResponse {
	return dto.RatesResponse{
		DD:         r.DD,
		RTL:        r.RTL,
		RDL:        r.RDL,
		TVS:        r.TVS,
		Source:     r.Source,
		LastUpdate: r.LastUpdate,
		Stale:      stale,
	}
}
