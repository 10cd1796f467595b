package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stitchdesk/internal/application/reports"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/internal/infrastructure/pdf"
)

func TestRenderStatement(t *testing.T) {
	rows := []entity.SalaryRow{
		{Date: entity.NewDate(2024, time.May, 2), Quantity: 10, TotalAmount: decimal.NewFromInt(500)},
		{Date: entity.NewDate(2024, time.June, 1), Quantity: 5, TotalAmount: decimal.NewFromInt(250)},
	}
	st := reports.Statement{
		Worker: entity.User{ID: 3, Name: "Rosa", Email: "rosa@example.com"},
		Start:  entity.NewDate(2024, time.May, 1),
		End:    entity.NewDate(2024, time.June, 30),
		Report: entity.SalaryReport{TotalSalary: decimal.NewFromInt(750), TotalWork: 15, DaysWorked: 2, Rows: rows},
		Months: reports.GroupByMonth(rows),
		Issued: time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC),
	}

	doc, err := pdf.NewStatementGenerator("Stitch Desk").RenderStatement(context.Background(), st)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "el documento es un PDF")
}

func TestRenderStatement_SinMeses(t *testing.T) {
	doc, err := pdf.NewStatementGenerator("Stitch Desk").RenderStatement(context.Background(), reports.Statement{
		Worker: entity.User{ID: 1, Name: "Ana"},
		Issued: time.Now(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
