// Package money implementa la política única de presentación de montos y
// fechas (locale fijo ar-IQ, dinar iraquí). El número de dígitos fraccionarios
// se parametriza por contexto en lugar de vivir repartido en cada pantalla.
package money

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Context punto de uso del formato monetario.
type Context int

const (
	ContextSummary Context = iota // tarjetas de resumen del dashboard
	ContextReport                 // reportes de inventario y exportes
)

// currencySuffix símbolo del dinar iraquí tal como se muestra en pantalla.
const currencySuffix = " د.ع"

// Formatter formatea montos, fechas y horas con dígitos árabes orientales.
// Es inmutable y seguro para uso concurrente.
type Formatter struct {
	printer *message.Printer
	digits  map[Context]int
}

// NewFormatter construye el formateador con los dígitos fraccionarios por
// contexto (negativos se tratan como cero).
func NewFormatter(summaryDigits, reportDigits int) *Formatter {
	if summaryDigits < 0 {
		summaryDigits = 0
	}
	if reportDigits < 0 {
		reportDigits = 0
	}
	return &Formatter{
		printer: message.NewPrinter(language.MustParse("ar-IQ")),
		digits: map[Context]int{
			ContextSummary: summaryDigits,
			ContextReport:  reportDigits,
		},
	}
}

// Amount renderiza un monto con separadores y sufijo de moneda según contexto.
func (f *Formatter) Amount(amount decimal.Decimal, ctx Context) string {
	d := f.digits[ctx]
	n := number.Decimal(amount.InexactFloat64(),
		number.MaxFractionDigits(d),
		number.MinFractionDigits(d),
	)
	return f.printer.Sprintf("%v", n) + currencySuffix
}

// arabicDigits transcribe dígitos ASCII a árabes orientales. x/text no trae
// formato de calendario, así que las fechas se arman con el layout numérico y
// se transcriben aquí.
var arabicDigits = strings.NewReplacer(
	"0", "٠", "1", "١", "2", "٢", "3", "٣", "4", "٤",
	"5", "٥", "6", "٦", "7", "٧", "8", "٨", "9", "٩",
)

// Date fecha corta localizada (d/m/aaaa).
func (f *Formatter) Date(t time.Time) string {
	return arabicDigits.Replace(t.Format("2/1/2006"))
}

// Time hora localizada (hh:mm).
func (f *Formatter) Time(t time.Time) string {
	return arabicDigits.Replace(t.Format("15:04"))
}

// DateTime fecha y hora localizadas.
func (f *Formatter) DateTime(t time.Time) string {
	return arabicDigits.Replace(t.Format("2/1/2006 15:04"))
}
