package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados compartidos por ventas y citas.
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// Sale proyección de una venta/factura del día. CustomerName nil representa
// venta de mostrador (cliente de contado); Items puede venir vacío.
type Sale struct {
	ID           int64           `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	Status       string          `json:"status"`
	CustomerName *string         `json:"customerName,omitempty"`
	Items        []SaleItem      `json:"items,omitempty"`
}

// SaleItem renglón de la factura.
type SaleItem struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
}

// Appointment cita agendada del día.
type Appointment struct {
	ID            int64     `json:"id"`
	Time          time.Time `json:"time"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	Status        string    `json:"status"`
}
