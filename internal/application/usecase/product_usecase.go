package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/comercio-dashboard/internal/application/dto"
	"github.com/jhoicas/comercio-dashboard/internal/domain"
	"github.com/jhoicas/comercio-dashboard/internal/domain/entity"
	"github.com/jhoicas/comercio-dashboard/internal/domain/labels"
	"github.com/jhoicas/comercio-dashboard/internal/domain/money"
	"github.com/jhoicas/comercio-dashboard/internal/domain/repository"
	"github.com/jhoicas/comercio-dashboard/internal/domain/search"
	"github.com/jhoicas/comercio-dashboard/internal/domain/stock"
)

// ProductUseCase catálogo de productos: listado con búsqueda, vista de stock
// bajo y el canal de mutaciones hacia el servicio de registros.
type ProductUseCase struct {
	store   repository.CollectionStore
	mutator repository.ProductMutator
	fmt     *money.Formatter
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store repository.CollectionStore, mutator repository.ProductMutator, fmt *money.Formatter) *ProductUseCase {
	return &ProductUseCase{store: store, mutator: mutator, fmt: fmt}
}

// List devuelve el catálogo filtrado por query (subcadena, sin distinción de
// mayúsculas, sobre nombre, código de barras y nombre de grupo). Query vacío
// devuelve el catálogo completo en el orden de la fuente.
func (uc *ProductUseCase) List(ctx context.Context, query string) (*dto.ProductListDTO, error) {
	products, groups, err := uc.catalog(ctx)
	if err != nil {
		return nil, err
	}

	groupName := groupIndex(groups)
	filtered := search.Filter(products, query, func(p entity.Product) []string {
		fields := []string{p.Name}
		if p.Barcode != nil {
			fields = append(fields, *p.Barcode)
		}
		if p.GroupID != nil {
			fields = append(fields, groupName[*p.GroupID])
		}
		return fields
	})

	return uc.listDTO(filtered, groupName), nil
}

// LowStock devuelve solo los productos clasificados como bajos o agotados.
func (uc *ProductUseCase) LowStock(ctx context.Context) (*dto.ProductListDTO, error) {
	products, groups, err := uc.catalog(ctx)
	if err != nil {
		return nil, err
	}

	var low []entity.Product
	for _, p := range products {
		if stock.IsLowOrOut(p) {
			low = append(low, p)
		}
	}
	return uc.listDTO(low, groupIndex(groups)), nil
}

// Create reenvía el alta al servicio de registros.
func (uc *ProductUseCase) Create(ctx context.Context, req dto.SaveProductRequest) error {
	if err := validateProduct(req); err != nil {
		return err
	}
	return uc.mutator.CreateProduct(ctx, req.ToInput())
}

// Update reenvía la edición al servicio de registros.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, req dto.SaveProductRequest) error {
	if err := validateProduct(req); err != nil {
		return err
	}
	return uc.mutator.UpdateProduct(ctx, id, req.ToInput())
}

// Delete reenvía la baja al servicio de registros.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.mutator.DeleteProduct(ctx, id)
}

func (uc *ProductUseCase) catalog(ctx context.Context) ([]entity.Product, []entity.ProductGroup, error) {
	products, err := uc.store.Products(ctx)
	if err != nil {
		return nil, nil, err
	}
	groups, err := uc.store.ProductGroups(ctx)
	if err != nil {
		return nil, nil, err
	}
	return products, groups, nil
}

func (uc *ProductUseCase) listDTO(products []entity.Product, groupName map[int64]string) *dto.ProductListDTO {
	items := make([]dto.ProductViewDTO, 0, len(products))
	for _, p := range products {
		items = append(items, uc.view(p, groupName))
	}
	return &dto.ProductListDTO{Items: items, Total: len(items)}
}

func (uc *ProductUseCase) view(p entity.Product, groupName map[int64]string) dto.ProductViewDTO {
	group := "-"
	if p.GroupID != nil {
		if name, ok := groupName[*p.GroupID]; ok && name != "" {
			group = name
		}
	}
	return dto.ProductViewDTO{
		ID:              p.ID,
		Name:            p.Name,
		Barcode:         labels.OrDash(p.Barcode),
		Type:            string(p.Type),
		GroupName:       group,
		Quantity:        p.Quantity,
		MinimumQuantity: p.MinimumQuantity,
		CostPriceLabel:  uc.fmt.Amount(p.CostPrice, money.ContextReport),
		SellingLabel:    uc.fmt.Amount(p.SellingPrice, money.ContextReport),
		StockStatus:     stockStatusCode(stock.Classify(p)),
	}
}

func stockStatusCode(s stock.Status) string {
	switch s {
	case stock.StatusOut:
		return "out"
	case stock.StatusLow:
		return "low"
	default:
		return ""
	}
}

func groupIndex(groups []entity.ProductGroup) map[int64]string {
	idx := make(map[int64]string, len(groups))
	for _, g := range groups {
		idx[g.ID] = g.Name
	}
	return idx
}

func validateProduct(req dto.SaveProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	switch entity.ProductType(req.Type) {
	case entity.ProductPiece, entity.ProductWeight:
		return nil
	default:
		return fmt.Errorf("%w: tipo de producto desconocido %q", domain.ErrInvalidInput, req.Type)
	}
}
