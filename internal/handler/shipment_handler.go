package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nimbatransit/transit-tracker/internal/dto"
	"github.com/nimbatransit/transit-tracker/internal/service"
)

type ShipmentHandler struct {
	svc *service.ShipmentService
}

func NewShipmentHandler(svc *service.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{svc: svc}
}

func (h *ShipmentHandler) Create(c *gin.Context) {
	var req dto.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	shipment, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
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

	c.JSON(http.StatusCreated, dto.NewShipmentResponse(shipment))
}

func (h *ShipmentHandler) Get(c *gin.Context) {
	shipment, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewShipmentResponse(shipment))
}

func (h *ShipmentHandler) Track(c *gin.Context) {
	shipment, err := h.svc.Track(c.Request.Context(), c.Param("number"))
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
				Error:  "invalid tracking number",
				Errors: []dto.ValidationError{ve},
			})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewShipmentResponse(shipment))
}

func (h *ShipmentHandler) List(c *gin.Context) {
	p := dto.ParsePagination(c)

	shipments, total, err := h.svc.List(c.Request.Context(), p.PageSize, p.Offset)
	if err != nil {
		c.Error(err)
		return
	}

	data := make([]dto.ShipmentResponse, len(shipments))
	for i := range shipments {
		data[i] = dto.NewShipmentResponse(&shipments[i])
	}

	c.JSON(http.StatusOK, dto.ShipmentListResponse{
		Data:       data,
		Pagination: dto.NewPagination(p.Page, p.PageSize, total),
	})
}
