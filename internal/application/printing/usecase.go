// Package printing arma el documento imprimible de una factura del día.
// El total mostrado proviene del monto almacenado en la venta, no de re-sumar
// los renglones: si difieren, manda el monto almacenado (decisión heredada del
// producto; los tests la fijan explícitamente).
package printing

import (
	"context"
	"fmt"

	"github.com/jhoicas/comercio-dashboard/internal/domain"
	"github.com/jhoicas/comercio-dashboard/internal/domain/entity"
	"github.com/jhoicas/comercio-dashboard/internal/domain/labels"
	"github.com/jhoicas/comercio-dashboard/internal/domain/money"
	"github.com/jhoicas/comercio-dashboard/internal/domain/repository"
)

// InvoiceLine renglón formateado de la factura.
type InvoiceLine struct {
	Name     string
	Quantity string
	Price    string
	Total    string
}

// InvoiceDocument documento listo para renderizar: todos los campos ya
// formateados para presentación.
type InvoiceDocument struct {
	Number   string
	Date     string
	Customer string
	Lines    []InvoiceLine
	Total    string
}

// DocumentRenderer materializa el documento en bytes imprimibles
// (implementación en infrastructure/pdf). Un error equivale a no poder abrir
// la superficie de impresión: se aborta sin documento parcial.
type DocumentRenderer interface {
	Render(doc InvoiceDocument) ([]byte, error)
}

// UseCase localiza la venta, arma el documento y lo renderiza.
type UseCase struct {
	store    repository.CollectionStore
	renderer DocumentRenderer
	fmt      *money.Formatter
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.CollectionStore, renderer DocumentRenderer, formatter *money.Formatter) *UseCase {
	return &UseCase{store: store, renderer: renderer, fmt: formatter}
}

// PrintInvoice busca la venta por id dentro de las ventas del día y devuelve
// el PDF. Venta inexistente → ErrNotFound; fallo del renderizador →
// ErrPrintUnavailable sin bytes parciales.
func (uc *UseCase) PrintInvoice(ctx context.Context, id int64) ([]byte, error) {
	sales, err := uc.store.SalesToday(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range sales {
		if s.ID == id {
			data, err := uc.renderer.Render(uc.BuildDocument(s))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrPrintUnavailable, err)
			}
			return data, nil
		}
	}
	return nil, fmt.Errorf("factura %d: %w", id, domain.ErrNotFound)
}

// BuildDocument proyecta la venta en el documento imprimible. Función pura;
// expuesta para poder fijar en tests la regla del total almacenado.
func (uc *UseCase) BuildDocument(sale entity.Sale) InvoiceDocument {
	doc := InvoiceDocument{
		Number:   fmt.Sprintf("#%d", sale.ID),
		Date:     uc.fmt.Date(sale.Date),
		Customer: labels.CustomerName(sale.CustomerName),
		// El total sigue al monto almacenado aunque los renglones sumen otra cosa.
		Total: uc.fmt.Amount(sale.Amount, money.ContextReport),
	}
	for _, item := range sale.Items {
		doc.Lines = append(doc.Lines, InvoiceLine{
			Name:     item.Name,
			Quantity: item.Quantity.String(),
			Price:    uc.fmt.Amount(item.Price, money.ContextReport),
			Total:    uc.fmt.Amount(item.Total, money.ContextReport),
		})
	}
	return doc
}
