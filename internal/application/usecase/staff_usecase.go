package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/comercio-dashboard/internal/application/dto"
	"github.com/jhoicas/comercio-dashboard/internal/domain/entity"
	"github.com/jhoicas/comercio-dashboard/internal/domain/labels"
	"github.com/jhoicas/comercio-dashboard/internal/domain/money"
	"github.com/jhoicas/comercio-dashboard/internal/domain/report"
	"github.com/jhoicas/comercio-dashboard/internal/domain/repository"
	"github.com/jhoicas/comercio-dashboard/internal/domain/search"
)

// StaffUseCase arma la vista operativa del día para el personal: ventas y
// citas de hoy, avisos y totales.
type StaffUseCase struct {
	store repository.CollectionStore
	fmt   *money.Formatter
	now   func() time.Time
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(store repository.CollectionStore, fmt *money.Formatter) *StaffUseCase {
	return &StaffUseCase{store: store, fmt: fmt, now: time.Now}
}

// Today consulta las colecciones del día en paralelo. El query filtra las
// ventas por cliente o número y las citas por cliente o teléfono; el total de
// ventas se calcula SIEMPRE sobre el snapshot completo, no sobre el filtrado.
func (uc *StaffUseCase) Today(ctx context.Context, query string) (*dto.StaffDayDTO, error) {
	var (
		sales        []entity.Sale
		appointments []entity.Appointment
		alerts       []entity.Alert
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { sales, err = uc.store.SalesToday(gctx); return err })
	g.Go(func() (err error) { appointments, err = uc.store.AppointmentsToday(gctx); return err })
	g.Go(func() (err error) { alerts, err = uc.store.Alerts(gctx); return err })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := report.SumAmounts(sales)

	filteredSales := search.Filter(sales, query, func(s entity.Sale) []string {
		return []string{labels.CustomerName(s.CustomerName), saleNumber(s.ID)}
	})
	filteredAppointments := search.Filter(appointments, query, func(a entity.Appointment) []string {
		return []string{a.CustomerName, a.CustomerPhone}
	})

	return &dto.StaffDayDTO{
		DateLabel:        uc.fmt.Date(uc.now()),
		SalesTotal:       total,
		SalesTotalLabel:  uc.fmt.Amount(total, money.ContextSummary),
		SalesCount:       len(sales),
		AppointmentCount: len(appointments),
		Sales:            uc.saleRows(filteredSales),
		Appointments:     uc.appointmentRows(filteredAppointments),
		Alerts:           alertDTOs(alerts),
	}, nil
}

func (uc *StaffUseCase) saleRows(sales []entity.Sale) []dto.SaleRowDTO {
	rows := make([]dto.SaleRowDTO, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, dto.SaleRowDTO{
			ID:          s.ID,
			Number:      saleNumber(s.ID),
			Customer:    labels.CustomerName(s.CustomerName),
			AmountLabel: uc.fmt.Amount(s.Amount, money.ContextSummary),
			TimeLabel:   uc.fmt.Time(s.Date),
			Status:      s.Status,
			StatusLabel: labels.Status(s.Status),
		})
	}
	return rows
}

func (uc *StaffUseCase) appointmentRows(appointments []entity.Appointment) []dto.AppointmentRowDTO {
	rows := make([]dto.AppointmentRowDTO, 0, len(appointments))
	for _, a := range appointments {
		phone := a.CustomerPhone
		if phone == "" {
			phone = "-"
		}
		rows = append(rows, dto.AppointmentRowDTO{
			ID:          a.ID,
			Customer:    a.CustomerName,
			Phone:       phone,
			TimeLabel:   uc.fmt.Time(a.Time),
			Status:      a.Status,
			StatusLabel: labels.Status(a.Status),
		})
	}
	return rows
}

func alertDTOs(alerts []entity.Alert) []dto.AlertDTO {
	out := make([]dto.AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.AlertDTO{ID: a.ID, Message: a.Message})
	}
	return out
}

func saleNumber(id int64) string { return fmt.Sprintf("#%d", id) }
