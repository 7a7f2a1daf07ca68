package dto

import "time"

type CreateShipmentRequest struct {
	ClientName      string `json:"client_name" binding:"required"`
	BLNumber        string `json:"bl_number" binding:"required"`
	ContainerNumber string `json:"container_number"`
	ShippingLine    string `json:"shipping_line"`
	Regime          string `json:"regime" binding:"required,oneof=IM4 IT AT EXPORT"`
	FOBValue        int64  `json:"fob_value" binding:"min=0"`
	FreightCost     int64  `json:"freight_cost" binding:"min=0"`
	InsuranceCost   int64  `json:"insurance_cost" binding:"min=0"`
}

type AddExpenseRequest struct {
	Description string    `json:"description" binding:"required"`
	Amount      int64     `json:"amount" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Type        string    `json:"type" binding:"required,oneof=PROVISION DISBURSEMENT FEE"`
	Paid        bool      `json:"paid"`
	ExpenseDate time.Time `json:"expense_date"`
}

type QuoteRequest struct {
	FOBValue      int64 `json:"fob_value" binding:"min=0"`
	FreightCost   int64 `json:"freight_cost" binding:"min=0"`
	InsuranceCost int64 `json:"insurance_cost" binding:"min=0"`
}

type UpdateRatesRequest struct {
	DD     *float64 `json:"dd" binding:"required"`
	RTL    *float64 `json:"rtl" binding:"required"`
	RDL    *float64 `json:"rdl" binding:"required"`
	TVS    *float64 `json:"tvs" binding:"required"`
	Source string   `json:"source" binding:"required"`
}

type ValidateTrackingRequest struct {
	Value string `json:"value" binding:"required"`
}

type ValidateBLRequest struct {
	Value   string `json:"value" binding:"required"`
	Carrier string `json:"carrier"`
}

type ValidateContainerRequest struct {
	Value string `json:"value" binding:"required"`
}
