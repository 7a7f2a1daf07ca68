package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nimbatransit/transit-tracker/internal/dto"
	"github.com/nimbatransit/transit-tracker/internal/service"
)

type ExpenseHandler struct {
	svc *service.ExpenseService
}

func NewExpenseHandler(svc *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{svc: svc}
}

func (h *ExpenseHandler) Add(c *gin.Context) {
	var req dto.AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	expense, err := h.svc.Add(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewExpenseResponse(*expense))
}

func (h *ExpenseHandler) Pay(c *gin.Context) {
	expense, err := h.svc.MarkPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAlreadyPaid) {
			c.JSON(http.StatusConflict, dto.ErrorListResponse{Error: "expense already paid"})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewExpenseResponse(*expense))
}

// PayLiquidation runs the authorization check and, when the balance
// covers the pending customs liquidation, settles it. A refusal is not
// an error: the decision comes back with authorized=false and the
// shortfall.
func (h *ExpenseHandler) PayLiquidation(c *gin.Context) {
	decision, paid, err := h.svc.PayLiquidation(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	resp := dto.PayLiquidationResponse{
		Authorized:     decision.Authorized,
		Message:        decision.Message,
		RequiredAmount: decision.RequiredAmount,
	}
	if paid != nil {
		expResp := dto.NewExpenseResponse(*paid)
		resp.Expense = &expResp
	}

	// A refused payment is still a 200: the check ran and answered.
	c.JSON(http.StatusOK, resp)
}
