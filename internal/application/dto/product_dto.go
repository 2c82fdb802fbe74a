package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-dashboard/internal/domain/entity"
)

// SaveProductRequest entrada para crear o actualizar un producto. El servicio
// de registros es quien valida y persiste; aquí solo se reenvía.
type SaveProductRequest struct {
	Name            string           `json:"name" validate:"required,min=1,max=200"`
	Barcode         *string          `json:"barcode"`
	Type            string           `json:"type" validate:"required,oneof=piece weight"`
	Quantity        decimal.Decimal  `json:"quantity"`
	MinimumQuantity *decimal.Decimal `json:"minimumQuantity"`
	CostPrice       decimal.Decimal  `json:"costPrice"`
	SellingPrice    decimal.Decimal  `json:"sellingPrice"`
	GroupID         *int64           `json:"groupId"`
	IsWeighted      bool             `json:"isWeighted"`
}

// ToInput convierte la petición en la carga del canal de mutación.
func (r SaveProductRequest) ToInput() entity.ProductInput {
	return entity.ProductInput{
		Name:            r.Name,
		Barcode:         r.Barcode,
		Type:            entity.ProductType(r.Type),
		Quantity:        r.Quantity,
		MinimumQuantity: r.MinimumQuantity,
		CostPrice:       r.CostPrice,
		SellingPrice:    r.SellingPrice,
		GroupID:         r.GroupID,
		IsWeighted:      r.IsWeighted,
	}
}

// ProductViewDTO producto proyectado para el catálogo: datos crudos más el
// estado de stock clasificado y las etiquetas de presentación.
type ProductViewDTO struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Barcode         string           `json:"barcode"` // "-" si no tiene
	Type            string           `json:"type"`
	GroupName       string           `json:"groupName"` // "-" si no pertenece a grupo
	Quantity        decimal.Decimal  `json:"quantity"`
	MinimumQuantity *decimal.Decimal `json:"minimumQuantity,omitempty"`
	CostPriceLabel  string           `json:"costPriceLabel"`
	SellingLabel    string           `json:"sellingPriceLabel"`
	StockStatus     string           `json:"stockStatus"` // "" | "low" | "out"
}

// ProductListDTO respuesta de los listados del catálogo.
type ProductListDTO struct {
	Items []ProductViewDTO `json:"items"`
	Total int              `json:"total"`
}
