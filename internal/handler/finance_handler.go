package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nimbatransit/transit-tracker/internal/service"
)

type FinanceHandler struct {
	svc *service.FinanceService
}

func NewFinanceHandler(svc *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

func (h *FinanceHandler) Balance(c *gin.Context) {
	resp, err := h.svc.Balance(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Report serves the financial report as plain text, the way it is
// printed or pasted into an email to the client.
func (h *FinanceHandler) Report(c *gin.Context) {
	report, err := h.svc.Report(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.String(http.StatusOK, report)
}

func (h *FinanceHandler) Audit(c *gin.Context) {
	resp, err := h.svc.Audit(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
