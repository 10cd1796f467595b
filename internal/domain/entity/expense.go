package entity

import "github.com/shopspring/decimal"

// ExpenseType separa gastos de la empresa y del hogar; misma forma.
type ExpenseType string

const (
	ExpenseCompany ExpenseType = "company"
	ExpenseHome    ExpenseType = "home"
)

// Valid indica si el tipo es company o home.
func (t ExpenseType) Valid() bool {
	return t == ExpenseCompany || t == ExpenseHome
}

// Expense gasto registrado.
type Expense struct {
	ID       int64           `json:"id"`
	Type     ExpenseType     `json:"type"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     Date            `json:"date"`
	Note     string          `json:"note,omitempty"`
}

// ExpenseStats totales por categoría y general.
type ExpenseStats struct {
	TotalAmount decimal.Decimal            `json:"totalAmount"`
	Count       int                        `json:"count"`
	ByCategory  map[string]decimal.Decimal `json:"byCategory,omitempty"`
}
