package entity

import "github.com/shopspring/decimal"

// Snapshots de analítica calculados por el servidor. Solo lectura: el shell
// nunca los modifica, se vuelven a pedir en cada cambio de filtro.

// SalaryRow una fila diaria del reporte de salario.
type SalaryRow struct {
	Date        Date            `json:"date"`
	UserID      int64           `json:"userId"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// SalaryReport salario de uno o todos los trabajadores en un rango.
type SalaryReport struct {
	TotalSalary  decimal.Decimal `json:"totalSalary"`
	TotalWork    int             `json:"totalWork"`
	DaysWorked   int             `json:"daysWorked"`
	DailyAverage decimal.Decimal `json:"dailyAverage"`
	Rows         []SalaryRow     `json:"rows"`
}

// RevenueReport ingresos por exportaciones.
type RevenueReport struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	ReceivedAmount decimal.Decimal `json:"receivedAmount"`
	PendingAmount  decimal.Decimal `json:"pendingAmount"`
	TotalQuantity  int             `json:"totalQuantity"`
}

// FinancialOverview resumen: ingresos, pagos a trabajadores y gastos.
type FinancialOverview struct {
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalPayouts    decimal.Decimal `json:"totalPayouts"`
	CompanyExpenses decimal.Decimal `json:"companyExpenses"`
	HomeExpenses    decimal.Decimal `json:"homeExpenses"`
	NetProfit       decimal.Decimal `json:"netProfit"`
}

// WorkerProductivity productividad de un trabajador.
type WorkerProductivity struct {
	UserID        int64           `json:"userId"`
	Name          string          `json:"name"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	DaysWorked    int             `json:"daysWorked"`
}

// ProductivityReport productividad por trabajador.
type ProductivityReport struct {
	Workers []WorkerProductivity `json:"workers"`
}

// ProfitMarginReport margen de ganancia del período.
type ProfitMarginReport struct {
	Revenue   decimal.Decimal `json:"revenue"`
	Cost      decimal.Decimal `json:"cost"`
	Profit    decimal.Decimal `json:"profit"`
	MarginPct decimal.Decimal `json:"marginPct"`
}
