package dto

import "github.com/shopspring/decimal"

// InventoryReportDTO respuesta de GET /api/reports/inventory.
// Totales globales, secciones por tipo de venta y las series de los gráficos.
type InventoryReportDTO struct {
	Totals    ValuationDTO        `json:"totals"`
	Retail    InventorySectionDTO `json:"retail"`    // venta por pieza
	Wholesale InventorySectionDTO `json:"wholesale"` // venta por peso
	// Participación de cada sección en el valor de venta total (gráfico de pastel)
	ValueShare []ChartSliceDTO `json:"valueShare"`
	// Primeros productos en el orden de la fuente (widget "top")
	TopProducts []ProductValueDTO `json:"topProducts"`
}

// ValuationDTO valorización renderizada: montos crudos para el cliente que
// grafica y etiquetas ya formateadas para el que solo muestra.
type ValuationDTO struct {
	TotalCost           decimal.Decimal `json:"totalCost"`
	TotalSalePrice      decimal.Decimal `json:"totalSalePrice"`
	ExpectedProfit      decimal.Decimal `json:"expectedProfit"`
	TotalCostLabel      string          `json:"totalCostLabel"`
	TotalSalePriceLabel string          `json:"totalSalePriceLabel"`
	ExpectedProfitLabel string          `json:"expectedProfitLabel"`
	MarginLabel         string          `json:"marginLabel"` // siempre dos decimales
}

// InventorySectionDTO subconjunto del inventario con su propia valorización.
type InventorySectionDTO struct {
	Count     int               `json:"count"`
	Valuation ValuationDTO      `json:"valuation"`
	Products  []ProductValueDTO `json:"products"`
}

// ProductValueDTO fila de las tablas del reporte de inventario.
type ProductValueDTO struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Quantity        decimal.Decimal `json:"quantity"`
	CostLabel       string          `json:"costLabel"`
	PriceLabel      string          `json:"priceLabel"`
	TotalValue      decimal.Decimal `json:"totalValue"` // cantidad × precio de venta
	TotalValueLabel string          `json:"totalValueLabel"`
}

// ChartSliceDTO porción de un gráfico de pastel.
type ChartSliceDTO struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}
