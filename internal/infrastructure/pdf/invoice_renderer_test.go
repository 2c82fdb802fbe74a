package pdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-dashboard/internal/application/printing"
	"github.com/jhoicas/comercio-dashboard/internal/infrastructure/pdf"
)

func sampleDocument() printing.InvoiceDocument {
	return printing.InvoiceDocument{
		Number:   "#41",
		Date:     "٢٥/٨/٢٠٢٦",
		Customer: "عميل نقدي",
		Lines: []printing.InvoiceLine{
			{Name: "زيت محرك 5W-30", Quantity: "2", Price: "15,000 د.ع", Total: "30,000 د.ع"},
			{Name: "فلتر هواء", Quantity: "1", Price: "20,000 د.ع", Total: "20,000 د.ع"},
		},
		Total: "50,000 د.ع",
	}
}

func TestRender_GeneraPDFValido(t *testing.T) {
	renderer := pdf.NewInvoiceRenderer()

	data, err := renderer.Render(sampleDocument())

	require.NoError(t, err, "el documento de ejemplo debe renderizar sin error")
	require.NotEmpty(t, data, "el PDF no debe estar vacío")
	assert.Equal(t, "%PDF", string(data[:4]), "los bytes deben iniciar con la firma PDF")
}

func TestRender_DocumentoSinRenglones(t *testing.T) {
	renderer := pdf.NewInvoiceRenderer()
	doc := sampleDocument()
	doc.Lines = nil

	data, err := renderer.Render(doc)

	require.NoError(t, err, "una factura sin renglones sigue siendo imprimible")
	assert.NotEmpty(t, data)
}
