package usecase

import (
	"context"

	"github.com/jhoicas/comercio-dashboard/internal/application/dto"
	"github.com/jhoicas/comercio-dashboard/internal/domain/entity"
	"github.com/jhoicas/comercio-dashboard/internal/domain/labels"
	"github.com/jhoicas/comercio-dashboard/internal/domain/money"
	"github.com/jhoicas/comercio-dashboard/internal/domain/report"
	"github.com/jhoicas/comercio-dashboard/internal/domain/repository"
)

// topProductsCount productos mostrados en el widget "top" (orden de la fuente).
const topProductsCount = 5

// InventoryReportUseCase deriva el reporte de valorización de inventario:
// totales globales, secciones mostrador/mayorista y las series de gráficos.
type InventoryReportUseCase struct {
	store repository.CollectionStore
	fmt   *money.Formatter
}

// NewInventoryReportUseCase construye el caso de uso.
func NewInventoryReportUseCase(store repository.CollectionStore, fmt *money.Formatter) *InventoryReportUseCase {
	return &InventoryReportUseCase{store: store, fmt: fmt}
}

// Report proyecta el snapshot de productos en el reporte completo.
// Un inventario vacío produce un reporte en ceros con margen "0.00".
func (uc *InventoryReportUseCase) Report(ctx context.Context) (*dto.InventoryReportDTO, error) {
	products, err := uc.store.Products(ctx)
	if err != nil {
		return nil, err
	}

	retail, wholesale := report.Partition(products)
	totals := report.Valuate(products)
	retailVal := report.Valuate(retail)
	wholesaleVal := report.Valuate(wholesale)

	rows := uc.productRows(products)

	return &dto.InventoryReportDTO{
		Totals: uc.valuationDTO(totals),
		Retail: dto.InventorySectionDTO{
			Count:     len(retail),
			Valuation: uc.valuationDTO(retailVal),
			Products:  uc.productRows(retail),
		},
		Wholesale: dto.InventorySectionDTO{
			Count:     len(wholesale),
			Valuation: uc.valuationDTO(wholesaleVal),
			Products:  uc.productRows(wholesale),
		},
		ValueShare: []dto.ChartSliceDTO{
			{Name: labels.SectionRetail, Value: retailVal.TotalSalePrice},
			{Name: labels.SectionWholesale, Value: wholesaleVal.TotalSalePrice},
		},
		TopProducts: report.TopN(rows, topProductsCount),
	}, nil
}

func (uc *InventoryReportUseCase) valuationDTO(v report.Valuation) dto.ValuationDTO {
	return dto.ValuationDTO{
		TotalCost:           v.TotalCost,
		TotalSalePrice:      v.TotalSalePrice,
		ExpectedProfit:      v.ExpectedProfit,
		TotalCostLabel:      uc.fmt.Amount(v.TotalCost, money.ContextReport),
		TotalSalePriceLabel: uc.fmt.Amount(v.TotalSalePrice, money.ContextReport),
		ExpectedProfitLabel: uc.fmt.Amount(v.ExpectedProfit, money.ContextReport),
		MarginLabel:         v.MarginLabel(),
	}
}

func (uc *InventoryReportUseCase) productRows(products []entity.Product) []dto.ProductValueDTO {
	rows := make([]dto.ProductValueDTO, 0, len(products))
	for _, p := range products {
		total := p.Quantity.Mul(p.SellingPrice)
		rows = append(rows, dto.ProductValueDTO{
			ID:              p.ID,
			Name:            p.Name,
			Quantity:        p.Quantity,
			CostLabel:       uc.fmt.Amount(p.CostPrice, money.ContextReport),
			PriceLabel:      uc.fmt.Amount(p.SellingPrice, money.ContextReport),
			TotalValue:      total,
			TotalValueLabel: uc.fmt.Amount(total, money.ContextReport),
		})
	}
	return rows
}
