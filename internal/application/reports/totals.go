package reports

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stitchdesk/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Summary totales de una lista de trabajo.
type Summary struct {
	Entries       int             `json:"entries"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	AveragePrice  decimal.Decimal `json:"averagePrice"`
	Days          int             `json:"days"`
}

// EntryAmount total de una entrada; cantidad × precio si el backend no lo
// envió.
func EntryAmount(e entity.WorkEntry) decimal.Decimal {
	if !e.TotalAmount.IsZero() {
		return e.TotalAmount
	}
	return e.PricePerUnit.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Summarize suma cantidades y montos.
func Summarize(entries []entity.WorkEntry) Summary {
	var s Summary
	days := make(map[string]struct{})
	for _, e := range entries {
		s.Entries++
		s.TotalQuantity += e.Quantity
		s.TotalAmount = s.TotalAmount.Add(EntryAmount(e))
		if !e.Date.IsZero() {
			days[e.Date.String()] = struct{}{}
		}
	}
	s.Days = len(days)
	if s.TotalQuantity > 0 {
		s.AveragePrice = s.TotalAmount.Div(decimal.NewFromInt(int64(s.TotalQuantity))).Round(2)
	}
	return s
}

// Margin porcentaje de ganancia sobre ingresos, a dos decimales. Cero si no
// hubo ingresos.
func Margin(revenue, cost decimal.Decimal) decimal.Decimal {
	if revenue.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return revenue.Sub(cost).Div(revenue).Mul(hundred).Round(2)
}
