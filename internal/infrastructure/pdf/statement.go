// Package pdf genera la constancia de salario en PDF (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Trabajador + email   │  Período + fecha de emisión │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: salario / unidades / días / promedio diario       │
//	│  TABLA: Mes | Días | Entradas | Unidades | Monto            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stitchdesk/internal/application/reports"
)

var _ reports.StatementRenderer = (*StatementGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// StatementGenerator implementa reports.StatementRenderer con Maroto v2.
type StatementGenerator struct {
	company string
}

// NewStatementGenerator construye el generador. company va en el título
// y como autor del documento.
func NewStatementGenerator(company string) *StatementGenerator {
	return &StatementGenerator{company: company}
}

// RenderStatement genera el PDF y devuelve sus bytes.
func (g *StatementGenerator) RenderStatement(_ context.Context, s reports.Statement) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Salary statement", true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(g.company, s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(s))
	m.AddRows(line.NewRow(3))

	m.AddRows(tableHeaderRow())
	if len(s.Months) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("No work recorded in this period.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	m.AddRows(monthRows(s.Months)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(s))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: trabajador (izq) y período + emisión (der).
func headerRow(company string, s reports.Statement) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(s.Worker.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(s.Worker.Email, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
			text.New(company, props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SALARY STATEMENT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(s.Period(), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Issued: "+s.Issued.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// summaryRow: cuatro indicadores del reporte.
func summaryRow(s reports.Statement) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 2}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 7}),
		)
	}
	r := s.Report
	return row.New(16).Add(
		kpi("Total salary", reports.Money(r.TotalSalary)),
		kpi("Units", strconv.Itoa(r.TotalWork)),
		kpi("Days worked", strconv.Itoa(r.DaysWorked)),
		kpi("Daily average", reports.Money(r.DailyAverage)),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Month", 4, align.Left),
		h("Days", 2, align.Center),
		h("Entries", 2, align.Center),
		h("Units", 2, align.Center),
		h("Amount", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// monthRows una fila por mes calendario.
func monthRows(months []reports.MonthTotal) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	rows := make([]core.Row, 0, len(months))
	for _, mt := range months {
		rows = append(rows, row.New(7).Add(
			cell(mt.Label, 4, align.Left),
			cell(strconv.Itoa(mt.Days), 2, align.Center),
			cell(strconv.Itoa(mt.Entries), 2, align.Center),
			cell(strconv.Itoa(mt.Quantity), 2, align.Center),
			cell(mt.AmountLabel, 2, align.Right),
		))
	}
	return rows
}

func totalRow(s reports.Statement) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New(reports.Money(s.Report.TotalSalary), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}
