// Package report contiene las funciones puras de agregación sobre snapshots de
// colecciones: valorización de inventario, particiones, ventanas de campañas y
// derivación de indicadores. Ninguna función muta su entrada ni guarda estado;
// se recalculan en cada petición sobre el snapshot vigente.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-dashboard/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Valuation totales de inventario derivados de la colección de productos.
type Valuation struct {
	TotalCost      decimal.Decimal // Σ cantidad × costo
	TotalSalePrice decimal.Decimal // Σ cantidad × precio de venta
	ExpectedProfit decimal.Decimal // TotalSalePrice - TotalCost
	MarginPct      decimal.Decimal // ExpectedProfit / TotalCost × 100; 0 si TotalCost == 0
}

// Valuate calcula la valorización del inventario. Una colección vacía o nil
// produce totales en cero, nunca error: la ausencia de datos no es un fallo.
func Valuate(products []entity.Product) Valuation {
	var v Valuation
	for _, p := range products {
		v.TotalCost = v.TotalCost.Add(p.Quantity.Mul(p.CostPrice))
		v.TotalSalePrice = v.TotalSalePrice.Add(p.Quantity.Mul(p.SellingPrice))
	}
	v.ExpectedProfit = v.TotalSalePrice.Sub(v.TotalCost)
	if v.TotalCost.IsPositive() {
		v.MarginPct = v.ExpectedProfit.Div(v.TotalCost).Mul(hundred)
	}
	return v
}

// MarginLabel renderiza el margen con exactamente dos decimales ("0.00" cuando
// el costo total es cero; nunca NaN ni infinito).
func (v Valuation) MarginLabel() string {
	return v.MarginPct.StringFixed(2)
}

// Partition separa la colección en mostrador (piece) y mayorista (weight).
// Los subconjuntos son disjuntos y su unión recupera la colección original.
func Partition(products []entity.Product) (retail, wholesale []entity.Product) {
	for _, p := range products {
		if p.Type == entity.ProductWeight {
			wholesale = append(wholesale, p)
		} else {
			retail = append(retail, p)
		}
	}
	return retail, wholesale
}

// TopN devuelve las primeras n entradas en el orden de la fuente. Contrato
// fijo: esta capa no ordena; quien necesite "top por valor" debe pre-ordenar
// aguas arriba.
func TopN[T any](items []T, n int) []T {
	if n <= 0 || len(items) == 0 {
		return nil
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

// SumAmounts total de ventas de un snapshot (ventas del día).
func SumAmounts(sales []entity.Sale) decimal.Decimal {
	var total decimal.Decimal
	for _, s := range sales {
		total = total.Add(s.Amount)
	}
	return total
}
