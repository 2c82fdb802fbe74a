package dto

import "github.com/shopspring/decimal"

// StaffDayDTO respuesta de GET /api/staff/today: la vista operativa del día
// para el personal (ventas, citas, avisos y totales).
type StaffDayDTO struct {
	DateLabel        string          `json:"dateLabel"`
	SalesTotal       decimal.Decimal `json:"salesTotal"`
	SalesTotalLabel  string          `json:"salesTotalLabel"`
	SalesCount       int             `json:"salesCount"`
	AppointmentCount int             `json:"appointmentCount"`

	Sales        []SaleRowDTO        `json:"sales"`
	Appointments []AppointmentRowDTO `json:"appointments"`
	Alerts       []AlertDTO          `json:"alerts"`
}

// SaleRowDTO venta del día lista para la tabla.
type SaleRowDTO struct {
	ID          int64  `json:"id"`
	Number      string `json:"number"` // "#<id>"
	Customer    string `json:"customer"`
	AmountLabel string `json:"amountLabel"`
	TimeLabel   string `json:"timeLabel"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
}

// AppointmentRowDTO cita del día lista para la tabla.
type AppointmentRowDTO struct {
	ID          int64  `json:"id"`
	Customer    string `json:"customer"`
	Phone       string `json:"phone"` // "-" si no hay teléfono
	TimeLabel   string `json:"timeLabel"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
}

// AlertDTO aviso operativo.
type AlertDTO struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
