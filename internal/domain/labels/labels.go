// Package labels concentra la taxonomía de etiquetas visibles del producto
// (árabe iraquí). Los exportes deben reflejar exactamente lo que se muestra en
// pantalla, por eso la traducción vive en el dominio y no en la capa HTTP.
package labels

import "github.com/jhoicas/comercio-dashboard/internal/domain/entity"

// Etiquetas de estado de ventas y citas.
const (
	StatusCompleted = "مكتمل"
	StatusPending   = "معلق"
	StatusCancelled = "ملغي"
)

// CashCustomer nombre por defecto cuando la venta no registra cliente.
const CashCustomer = "عميل نقدي"

// Etiquetas de clasificación de stock.
const (
	StockOut = "نفذ المخزون"
	StockLow = "المخزون منخفض"
)

// Secciones del reporte de inventario (venta por pieza / por peso).
const (
	SectionRetail    = "مفرد"
	SectionWholesale = "جملة"
)

// Status traduce un estado de venta/cita a su etiqueta visible.
// Cualquier estado desconocido se trata como cancelado, igual que en pantalla.
func Status(status string) string {
	switch status {
	case entity.StatusCompleted:
		return StatusCompleted
	case entity.StatusPending:
		return StatusPending
	default:
		return StatusCancelled
	}
}

// CustomerName devuelve el nombre del cliente o la etiqueta de venta de contado.
func CustomerName(name *string) string {
	if name == nil || *name == "" {
		return CashCustomer
	}
	return *name
}

// OrDash sustituye un campo opcional ausente por un guion seguro.
func OrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
