package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nimbatransit/transit-tracker/internal/dto"
	"github.com/nimbatransit/transit-tracker/internal/identifier"
)

// ValidationHandler exposes the identifier validators as stateless
// endpoints. An invalid value is a normal 200 with valid=false; only a
// malformed request is a 400.
type ValidationHandler struct{}

func NewValidationHandler() *ValidationHandler {
	return &ValidationHandler{}
}

func (h *ValidationHandler) Tracking(c *gin.Context) {
	var req dto.ValidateTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, identifier.ValidateTrackingNumber(req.Value))
}

func (h *ValidationHandler) BL(c *gin.Context) {
	var req dto.ValidateBLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, identifier.ValidateBLNumber(req.Value, req.Carrier))
}

func (h *ValidationHandler) Container(c *gin.Context) {
	var req dto.ValidateContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, identifier.ValidateContainerNumber(req.Value))
}
