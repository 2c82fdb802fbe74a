// Package export arma el reporte diario (ventas + citas) como documento
// tabular multi-hoja. Los valores de celda salen ya formateados: el exporte es
// un espejo textual de lo que se muestra en pantalla, no valores crudos.
package export

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/comercio-dashboard/internal/domain"
	"github.com/jhoicas/comercio-dashboard/internal/domain/labels"
	"github.com/jhoicas/comercio-dashboard/internal/domain/money"
	"github.com/jhoicas/comercio-dashboard/internal/domain/repository"
)

// Sheet una hoja del documento: nombre, encabezados y filas ya formateadas.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Workbook documento tabular listo para serializar.
type Workbook struct {
	FileName string
	Sheets   []Sheet
}

// WorkbookWriter serializa el Workbook a bytes (implementación en
// infrastructure/excel).
type WorkbookWriter interface {
	Write(wb Workbook) ([]byte, error)
}

// Encabezados visibles de cada hoja.
var (
	salesHeader        = []string{"رقم الفاتورة", "اسم العميل", "المبلغ", "التاريخ", "الحالة"}
	appointmentsHeader = []string{"وقت الموعد", "اسم العميل", "رقم الهاتف", "الحالة"}
)

// Nombres de hoja.
const (
	sheetSales        = "المبيعات"
	sheetAppointments = "المواعيد"
)

// UseCase construye y serializa el reporte diario.
type UseCase struct {
	store  repository.CollectionStore
	writer WorkbookWriter
	fmt    *money.Formatter
	now    func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.CollectionStore, writer WorkbookWriter, formatter *money.Formatter) *UseCase {
	return &UseCase{store: store, writer: writer, fmt: formatter, now: time.Now}
}

// DailyReport exporta ventas y citas del día. Solo las colecciones no vacías
// producen hoja; si ambas están vacías devuelve ErrNothingToExport sin generar
// documento alguno.
func (uc *UseCase) DailyReport(ctx context.Context) (fileName string, data []byte, err error) {
	sales, err := uc.store.SalesToday(ctx)
	if err != nil {
		return "", nil, err
	}
	appointments, err := uc.store.AppointmentsToday(ctx)
	if err != nil {
		return "", nil, err
	}

	wb := Workbook{
		FileName: fmt.Sprintf("تقرير_يومي_%s.xlsx", uc.fmt.Date(uc.now())),
	}

	if len(sales) > 0 {
		sheet := Sheet{Name: sheetSales, Header: salesHeader}
		for _, s := range sales {
			sheet.Rows = append(sheet.Rows, []string{
				strconv.FormatInt(s.ID, 10),
				labels.CustomerName(s.CustomerName),
				uc.fmt.Amount(s.Amount, money.ContextReport),
				uc.fmt.DateTime(s.Date),
				labels.Status(s.Status),
			})
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	if len(appointments) > 0 {
		sheet := Sheet{Name: sheetAppointments, Header: appointmentsHeader}
		for _, a := range appointments {
			sheet.Rows = append(sheet.Rows, []string{
				uc.fmt.DateTime(a.Time),
				a.CustomerName,
				a.CustomerPhone,
				labels.Status(a.Status),
			})
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	if len(wb.Sheets) == 0 {
		return "", nil, domain.ErrNothingToExport
	}

	data, err = uc.writer.Write(wb)
	if err != nil {
		return "", nil, fmt.Errorf("export: serializar reporte: %w", err)
	}
	return wb.FileName, data, nil
}
