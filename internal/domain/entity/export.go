package entity

import "github.com/shopspring/decimal"

// ExportRecord envío de mercadería a una empresa cliente.
type ExportRecord struct {
	ID              int64           `json:"id"`
	Date            Date            `json:"date"`
	CompanyName     string          `json:"companyName"`
	Quantity        int             `json:"quantity"`
	PricePerUnit    decimal.Decimal `json:"pricePerUnit"`
	Description     string          `json:"description"`
	PaymentReceived bool            `json:"paymentReceived"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
}

// ExportDescription catálogo de descripciones de exportación.
type ExportDescription struct {
	ID    int64            `json:"id"`
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

// ExportStats totales de exportación y pendientes de cobro.
type ExportStats struct {
	TotalRecords   int             `json:"totalRecords"`
	TotalQuantity  int             `json:"totalQuantity"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PendingAmount  decimal.Decimal `json:"pendingAmount"`
	ReceivedAmount decimal.Decimal `json:"receivedAmount"`
}
