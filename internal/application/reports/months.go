// Package reports reacomoda datos ya calculados por el backend para
// mostrarlos: desglose mensual, totales de una lista y margen.
package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/stitchdesk/internal/domain/entity"
)

// MonthTotal totales de un mes calendario.
type MonthTotal struct {
	Month       string          `json:"month"` // YYYY-MM
	Label       string          `json:"label"`
	Entries     int             `json:"entries"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
	AmountLabel string          `json:"amountLabel"`
	Days        int             `json:"days"`
}

var printer = message.NewPrinter(language.English)

// GroupByMonth agrupa filas por el mes calendario de su fecha en hora local.
// Devuelve los meses en orden ascendente; sin filas, slice vacío.
func GroupByMonth(rows []entity.SalaryRow) []MonthTotal {
	byMonth := make(map[string]*MonthTotal)
	days := make(map[string]map[string]struct{})
	for _, r := range rows {
		if r.Date.IsZero() {
			continue
		}
		local := r.Date.In(time.Local)
		key := local.Format("2006-01")
		mt, ok := byMonth[key]
		if !ok {
			mt = &MonthTotal{Month: key, Label: local.Format("January 2006")}
			byMonth[key] = mt
			days[key] = make(map[string]struct{})
		}
		mt.Entries++
		mt.Quantity += r.Quantity
		mt.Amount = mt.Amount.Add(r.TotalAmount)
		days[key][local.Format(entity.DateLayout)] = struct{}{}
	}

	out := make([]MonthTotal, 0, len(byMonth))
	for key, mt := range byMonth {
		mt.Days = len(days[key])
		mt.AmountLabel = Money(mt.Amount)
		out = append(out, *mt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// Money formatea un monto con separador de miles y dos decimales.
func Money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%.2f", f)
}
