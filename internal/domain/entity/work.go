package entity

import "github.com/shopspring/decimal"

// WorkEntry trabajo a destajo de un día: cantidad × precio por unidad.
type WorkEntry struct {
	ID            int64           `json:"id"`
	Date          Date            `json:"date"`
	UserID        int64           `json:"userId"`
	User          *UserRef        `json:"user,omitempty"`
	Quantity      int             `json:"quantity"`
	PricePerUnit  decimal.Decimal `json:"pricePerUnit"`
	Description   string          `json:"description"`
	DescriptionID *int64          `json:"descriptionId,omitempty"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// WorkDescription entrada del catálogo reutilizable de descripciones.
// Price es el último precio recordado, si lo hay.
type WorkDescription struct {
	ID    int64            `json:"id"`
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

// WorkStats agregados del servidor para el filtro actual.
type WorkStats struct {
	TotalEntries  int             `json:"totalEntries"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	ActiveWorkers int             `json:"activeWorkers"`
}
