package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stitchdesk/internal/application/analytics"
	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/application/reports"
	"github.com/jhoicas/stitchdesk/internal/infrastructure/backend"
)

// ReportsHandler analítica del administrador: reportes del rango, salario
// por trabajador y descarga de hojas de cálculo.
type ReportsHandler struct {
	*pages
	inspector  reports.WorkbookInspector
	statements reports.StatementRenderer
}

// newReportsHandler construye el handler.
func newReportsHandler(p *pages, inspector reports.WorkbookInspector, statements reports.StatementRenderer) *ReportsHandler {
	return &ReportsHandler{pages: p, inspector: inspector, statements: statements}
}

func (h *ReportsHandler) useCase(c *fiber.Ctx) *reports.UseCase {
	return reports.NewUseCase(backend.NewAnalyticsRepository(h.conn(c)), h.inspector)
}

func monthToDate() dto.ReportFilter {
	return dto.ReportFilter{Dates: appanalytics.MonthToDate(time.Now())}
}

func reportFilter(c *fiber.Ctx, current dto.DateFilter) (dto.ReportFilter, error) {
	dates, err := dateFilter(c, current)
	if err != nil {
		return dto.ReportFilter{}, err
	}
	userID, err := optionalID(c, "userId")
	return dto.ReportFilter{Dates: dates, UserID: userID}, err
}

// Overview ingresos, resumen financiero, productividad y margen.
// GET /admin/reports?startDate=&endDate=
func (h *ReportsHandler) Overview(c *fiber.Ctx) error {
	uc := h.useCase(c)
	v := viewFor[dto.ReportFilter, dto.ReportsPageDTO](h.pages, c, "reports", monthToDate)
	return show(c, v, func() (dto.ReportFilter, error) { return reportFilter(c, v.Filter().Dates) }, uc.Load)
}

// Salary reporte de salario con desglose mensual. Sin userId cubre a
// todos los trabajadores.
// GET /admin/reports/salary?startDate=&endDate=&userId=
func (h *ReportsHandler) Salary(c *fiber.Ctx) error {
	uc := h.useCase(c)
	v := viewFor[dto.ReportFilter, reports.SalaryPage](h.pages, c, "reports:salary", monthToDate)
	return show(c, v, func() (dto.ReportFilter, error) { return reportFilter(c, v.Filter().Dates) }, uc.Salary)
}

// Export reenvía la hoja de cálculo del backend. Si es un libro xlsx se
// valida antes y se informan hojas y filas en cabeceras.
// GET /admin/reports/export?type=&startDate=&endDate=
func (h *ReportsHandler) Export(c *fiber.Ctx) error {
	f, err := reportFilter(c, dto.DateFilter{})
	if err != nil {
		return writeError(c, err)
	}
	reportType := c.Query("type")
	dl, err := h.useCase(c).Export(c.Context(), reportType, f)
	if err != nil {
		return writeError(c, err)
	}
	name := dl.File.FileName
	if name == "" {
		name = reportType + "-report.xlsx"
	}
	c.Attachment(name)
	if dl.File.ContentType != "" {
		c.Set(fiber.HeaderContentType, dl.File.ContentType)
	}
	if dl.Summary != nil {
		c.Set("X-Workbook-Sheets", strconv.Itoa(len(dl.Summary.Sheets)))
		c.Set("X-Workbook-Rows", strconv.Itoa(dl.Summary.DataRows()))
	}
	return c.Send(dl.File.Data)
}

// SalaryPDF constancia de salario de un trabajador. Sin fechas cubre el mes
// en curso.
// GET /admin/reports/salary/pdf?userId=&startDate=&endDate=
func (h *ReportsHandler) SalaryPDF(c *fiber.Ctx) error {
	f, err := reportFilter(c, monthToDate().Dates)
	if err != nil {
		return writeError(c, err)
	}
	conn := h.conn(c)
	uc := reports.NewStatementUseCase(backend.NewAnalyticsRepository(conn), backend.NewUserRepository(conn), h.statements)
	doc, st, err := uc.ForWorker(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, st.FileName(), doc)
}

func sendPDF(c *fiber.Ctx, name string, doc []byte) error {
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(doc)
}
