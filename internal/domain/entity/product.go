package entity

import "github.com/shopspring/decimal"

// ProductType distingue la venta por pieza (mostrador) de la venta por peso (mayorista).
type ProductType string

const (
	ProductPiece  ProductType = "piece"
	ProductWeight ProductType = "weight"
)

// Product proyección de solo lectura de un producto del servicio de registros.
// Quantity se expresa en unidades o kilogramos según Type. MinimumQuantity nil
// significa que el producto no participa en la clasificación de stock bajo.
type Product struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Barcode         *string          `json:"barcode,omitempty"`
	Type            ProductType      `json:"type"`
	Quantity        decimal.Decimal  `json:"quantity"`
	MinimumQuantity *decimal.Decimal `json:"minimumQuantity,omitempty"`
	CostPrice       decimal.Decimal  `json:"costPrice"`
	SellingPrice    decimal.Decimal  `json:"sellingPrice"`
	GroupID         *int64           `json:"groupId,omitempty"`
	IsWeighted      bool             `json:"isWeighted,omitempty"`
}

// ProductGroup agrupación débil referenciada por Product.GroupID.
type ProductGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductInput carga del formulario genérico de creación/edición de producto.
// Se reenvía tal cual al servicio de registros, que es quien valida y persiste.
type ProductInput struct {
	Name            string           `json:"name"`
	Barcode         *string          `json:"barcode,omitempty"`
	Type            ProductType      `json:"type"`
	Quantity        decimal.Decimal  `json:"quantity"`
	MinimumQuantity *decimal.Decimal `json:"minimumQuantity,omitempty"`
	CostPrice       decimal.Decimal  `json:"costPrice"`
	SellingPrice    decimal.Decimal  `json:"sellingPrice"`
	GroupID         *int64           `json:"groupId,omitempty"`
	IsWeighted      bool             `json:"isWeighted,omitempty"`
}
