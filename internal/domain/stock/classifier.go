// Package stock clasifica productos según su nivel frente al mínimo configurado.
package stock

import "github.com/jhoicas/comercio-dashboard/internal/domain/entity"

// Status resultado de la clasificación de stock.
type Status int

const (
	StatusNone Status = iota // sin clasificación (stock sano o sin mínimo configurado)
	StatusLow                // 0 < cantidad <= mínimo
	StatusOut                // cantidad <= 0
)

// Classify aplica la regla de tres vías con prioridad Out > Low > None.
// Sin MinimumQuantity no hay clasificación. La cantidad exactamente igual al
// mínimo es Low, no Out.
func Classify(p entity.Product) Status {
	if p.MinimumQuantity == nil {
		return StatusNone
	}
	if !p.Quantity.IsPositive() {
		return StatusOut
	}
	if p.Quantity.LessThanOrEqual(*p.MinimumQuantity) {
		return StatusLow
	}
	return StatusNone
}

// IsLowOrOut indica si el producto entra en la vista de stock bajo
// (cualquier clasificación distinta de None).
func IsLowOrOut(p entity.Product) bool {
	return Classify(p) != StatusNone
}
