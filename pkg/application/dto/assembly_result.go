package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"packstock/pkg/domain/entities"
)

// Shortage records an order line that could not be fulfilled
type Shortage struct {
	Code string
}

// AssemblyResult contains the complete output of one order assembly
type AssemblyResult struct {
	OrderID   uuid.UUID
	Request   string
	Items     []entities.Item
	Shortages []Shortage
	Requested int
}

// Codes renders the package contents as "[A3, C3]" in their current order
func (r *AssemblyResult) Codes() string {
	codes := make([]string, len(r.Items))
	for i, item := range r.Items {
		codes[i] = item.String()
	}
	return "[" + strings.Join(codes, ", ") + "]"
}

// FillRate returns the fraction of requested lines that were fulfilled
func (r *AssemblyResult) FillRate() decimal.Decimal {
	if r.Requested == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(len(r.Items))).
		Div(decimal.NewFromInt(int64(r.Requested)))
}
