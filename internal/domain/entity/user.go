package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// User trabajador o dueño tal como lo devuelve el backend.
// Role se guarda crudo; usar ParseRole para decidir privilegios.
type User struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Role      string           `json:"role"`
	Salary    *decimal.Decimal `json:"salary,omitempty"` // salario mensual opcional
	CreatedAt *time.Time       `json:"createdAt,omitempty"`
}

// UserRef referencia embebida en otros recursos.
type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserStats conteos que muestra la página de trabajadores.
type UserStats struct {
	TotalUsers   int `json:"totalUsers"`
	TotalAdmins  int `json:"totalAdmins"`
	TotalWorkers int `json:"totalWorkers"`
}
