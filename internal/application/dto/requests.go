package dto

import (
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LoginRequest credenciales para POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest alta pública de cuenta.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse respuesta del backend. El token puede venir como
// access_token o token según la versión del backend.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	Token       string      `json:"token"`
	User        entity.User `json:"user"`
}

// BearerToken devuelve el token presente, priorizando access_token.
func (r LoginResponse) BearerToken() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.Token
}

// CreateUserRequest alta de trabajador (solo admin).
type CreateUserRequest struct {
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Password string           `json:"password"`
	Role     string           `json:"role"`
	Salary   *decimal.Decimal `json:"salary,omitempty"`
}

// UpdateUserRequest edición de trabajador.
type UpdateUserRequest struct {
	Name   string           `json:"name,omitempty"`
	Email  string           `json:"email,omitempty"`
	Role   string           `json:"role,omitempty"`
	Salary *decimal.Decimal `json:"salary,omitempty"`
}

// ChangePasswordRequest cambio de contraseña.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword"`
}

// WorkEntryRequest alta/edición de trabajo diario. DescriptionID solo se
// envía cuando la descripción sigue vinculada al catálogo.
type WorkEntryRequest struct {
	UserID        int64           `json:"userId"`
	Date          entity.Date     `json:"date"`
	Quantity      int             `json:"quantity"`
	PricePerUnit  decimal.Decimal `json:"pricePerUnit"`
	Description   string          `json:"description"`
	DescriptionID *int64          `json:"descriptionId,omitempty"`
}

// DescriptionRequest alta de una descripción del catálogo.
type DescriptionRequest struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

// AttendanceRequest alta de asistencia.
type AttendanceRequest struct {
	UserID      int64                   `json:"userId"`
	Date        entity.Date             `json:"date"`
	Status      entity.AttendanceStatus `json:"status"`
	WorkEntryID *int64                  `json:"workEntryId,omitempty"`
}

// AttendanceStatusRequest cambio de estado de asistencia.
type AttendanceStatusRequest struct {
	Status entity.AttendanceStatus `json:"status"`
}

// ExpenseRequest alta/edición de gasto.
type ExpenseRequest struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     entity.Date     `json:"date"`
	Note     string          `json:"note,omitempty"`
}

// ExportRequest alta/edición de exportación.
type ExportRequest struct {
	Date            entity.Date     `json:"date"`
	CompanyName     string          `json:"companyName"`
	Quantity        int             `json:"quantity"`
	PricePerUnit    decimal.Decimal `json:"pricePerUnit"`
	Description     string          `json:"description"`
	PaymentReceived bool            `json:"paymentReceived"`
}
