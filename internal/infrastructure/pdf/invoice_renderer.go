// Package pdf implementa el documento imprimible de la factura del día con
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: "فاتورة" + número                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  METADATOS: fecha / cliente                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: producto | cantidad | precio | subtotal             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: monto almacenado de la venta                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/comercio-dashboard/internal/application/printing"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 41, Blue: 59}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// InvoiceRenderer implementa printing.DocumentRenderer usando Maroto v2.
type InvoiceRenderer struct{}

// NewInvoiceRenderer construye el renderizador.
func NewInvoiceRenderer() *InvoiceRenderer { return &InvoiceRenderer{} }

// Render genera el PDF y devuelve sus bytes. Cualquier error equivale a una
// superficie de impresión no disponible: no se devuelven bytes parciales.
func (r *InvoiceRenderer) Render(doc printing.InvoiceDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("فاتورة "+doc.Number, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metadataRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, rw := range tableLineRows(doc.Lines) {
		m.AddRows(rw)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(doc))

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return generated.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título centrado + número de factura.
func headerRow(doc printing.InvoiceDocument) core.Row {
	return row.New(18).Add(
		col.New(12).Add(
			text.New("فاتورة", props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center,
				Color: colorPrimary, Top: 1,
			}),
			text.New("رقم الفاتورة: "+doc.Number, props.Text{
				Size: 10, Align: align.Center, Top: 11, Color: colorGray,
			}),
		),
	)
}

// metadataRow: fecha y cliente.
func metadataRow(doc printing.InvoiceDocument) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("التاريخ: "+doc.Date, props.Text{Size: 9, Top: 1, Align: align.Right}),
			text.New("العميل: "+doc.Customer, props.Text{Size: 9, Top: 7, Align: align.Right}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de renglones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("المنتج", 5, align.Right),
		h("الكمية", 2, align.Center),
		h("السعر", 2, align.Right),
		h("المجموع", 3, align.Right),
	)
}

// tableLineRows: una fila por renglón, valores ya formateados aguas arriba.
func tableLineRows(lines []printing.InvoiceLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(l.Name, props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(l.Quantity, props.Text{Size: 9, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(l.Price, props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(l.Total, props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalRow: total tomado del monto almacenado de la venta.
func totalRow(doc printing.InvoiceDocument) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(6).Add(
			text.New("المجموع الكلي: "+doc.Total, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 1,
			}),
		),
	)
}
