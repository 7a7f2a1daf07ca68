package dto

import (
	"time"

	"github.com/nimbatransit/transit-tracker/internal/ledger"
	"github.com/nimbatransit/transit-tracker/internal/model"
)

type ExpenseResponse struct {
	ID          string    `json:"id"`
	ShipmentID  string    `json:"shipment_id"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	Paid        bool      `json:"paid"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	ExpenseDate time.Time `json:"expense_date"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewExpenseResponse(e model.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		ShipmentID:  e.ShipmentID,
		Description: e.Description,
		Amount:      e.Amount,
		Paid:        e.Paid,
		Category:    e.Category,
		Type:        string(e.Type),
		ExpenseDate: e.ExpenseDate,
		CreatedAt:   e.CreatedAt,
	}
}

type ShipmentResponse struct {
	ID              string            `json:"id"`
	TrackingNumber  string            `json:"tracking_number"`
	BLNumber        string            `json:"bl_number"`
	ContainerNumber string            `json:"container_number,omitempty"`
	ClientName      string            `json:"client_name"`
	ShippingLine    string            `json:"shipping_line,omitempty"`
	Regime          string            `json:"regime"`
	FOBValue        int64             `json:"fob_value"`
	FreightCost     int64             `json:"freight_cost"`
	InsuranceCost   int64             `json:"insurance_cost"`
	EstimatedDuties *int64            `json:"estimated_duties,omitempty"`
	Status          string            `json:"status"`
	Expenses        []ExpenseResponse `json:"expenses,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

func NewShipmentResponse(s *model.Shipment) ShipmentResponse {
	resp := ShipmentResponse{
		ID:              s.ID,
		TrackingNumber:  s.TrackingNumber,
		BLNumber:        s.BLNumber,
		ContainerNumber: s.ContainerNumber,
		ClientName:      s.ClientName,
		ShippingLine:    s.ShippingLine,
		Regime:          s.Regime,
		FOBValue:        s.FOBValue,
		FreightCost:     s.FreightCost,
		InsuranceCost:   s.InsuranceCost,
		EstimatedDuties: s.EstimatedDuties,
		Status:          s.Status,
		CreatedAt:       s.CreatedAt,
	}
	for _, e := range s.Expenses {
		resp.Expenses = append(resp.Expenses, NewExpenseResponse(e))
	}
	return resp
}

type ShipmentListResponse struct {
	Data       []ShipmentResponse `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

// BalanceResponse combines the computed balance with the provisioning
// advice derived from it.
type BalanceResponse struct {
	Balance              ledger.Balance   `json:"balance"`
	ProvisionRequired    bool             `json:"provision_required"`
	RecommendedProvision int64            `json:"recommended_provision"`
	PendingLiquidation   *ExpenseResponse `json:"pending_liquidation,omitempty"`
}

type PayLiquidationResponse struct {
	Authorized     bool             `json:"authorized"`
	Message        string           `json:"message"`
	RequiredAmount int64            `json:"required_amount,omitempty"`
	Expense        *ExpenseResponse `json:"expense,omitempty"`
}

// QuoteResponse carries the duty breakdown with amounts as exact
// decimal strings.
type QuoteResponse struct {
	ValueCAF         string        `json:"value_caf"`
	DD               string        `json:"dd"`
	RTL              string        `json:"rtl"`
	RDL              string        `json:"rdl"`
	TVS              string        `json:"tvs"`
	TaxableBaseTVS   string        `json:"taxable_base_tvs"`
	TotalDuties      string        `json:"total_duties"`
	DutiesPercentage string        `json:"duties_percentage"`
	Rates            RatesResponse `json:"rates"`
}

type RatesResponse struct {
	DD         float64   `json:"dd"`
	RTL        float64   `json:"rtl"`
	RDL        float64   `json:"rdl"`
	TVS        float64   `json:"tvs"`
	Source     string    `json:"source"`
	LastUpdate time.Time `json:"last_update"`
	Stale      bool      `json:"stale"`
}

type AuditResponse struct {
	Healthy   bool     `json:"healthy"`
	Anomalies []string `json:"anomalies"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorListResponse struct {
	Error  string            `json:"error"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}
