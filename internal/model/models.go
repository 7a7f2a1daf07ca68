package model

import (
	"time"
)

// ExpenseType is the closed set of ledger entry kinds.
type ExpenseType string

const (
	ExpenseProvision    ExpenseType = "PROVISION"
	ExpenseDisbursement ExpenseType = "DISBURSEMENT"
	ExpenseFee          ExpenseType = "FEE"
)

// CategoryCustoms is the expense category of a customs liquidation.
const CategoryCustoms = "Douane"

// Expense is an append-only ledger entry owned by a shipment. Amounts
// are whole Guinean francs; negative amounts are representable so the
// integrity audit can flag them. Paid only transitions false to true.
type Expense struct {
	ID          string      `json:"id"`
	ShipmentID  string      `json:"shipment_id"`
	Description string      `json:"description"`
	Amount      int64       `json:"amount"`
	Paid        bool        `json:"paid"`
	Category    string      `json:"category"`
	Type        ExpenseType `json:"type"`
	ExpenseDate time.Time   `json:"expense_date"`
	CreatedAt   time.Time   `json:"created_at"`
}

type Shipment struct {
	ID              string    `json:"id"`
	TrackingNumber  string    `json:"tracking_number"`
	BLNumber        string    `json:"bl_number"`
	ContainerNumber string    `json:"container_number,omitempty"`
	ClientName      string    `json:"client_name"`
	ShippingLine    string    `json:"shipping_line,omitempty"`
	Regime          string    `json:"regime"`
	FOBValue        int64     `json:"fob_value"`
	FreightCost     int64     `json:"freight_cost"`
	InsuranceCost   int64     `json:"insurance_cost"`
	EstimatedDuties *int64    `json:"estimated_duties,omitempty"`
	Status          string    `json:"status"`
	Expenses        []Expense `json:"expenses,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// CustomsRates is a government-published rate schedule. Each field is a
// fraction in [0,1]; LastUpdate drives the 30-day staleness rule.
type CustomsRates struct {
	ID         string    `json:"id"`
	DD         float64   `json:"dd"`
	RTL        float64   `json:"rtl"`
	RDL        float64   `json:"rdl"`
	TVS        float64   `json:"tvs"`
	Source     string    `json:"source"`
	LastUpdate time.Time `json:"last_update"`
}
