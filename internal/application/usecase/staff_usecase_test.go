package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-dashboard/internal/application/usecase"
	"github.com/jhoicas/comercio-dashboard/internal/domain/entity"
	"github.com/jhoicas/comercio-dashboard/internal/domain/labels"
)

func staffFixture() *fakeStore {
	return &fakeStore{
		salesToday: []entity.Sale{
			{ID: 10, Amount: decimal.NewFromInt(25_000), Date: time.Now(), Status: entity.StatusCompleted,
				CustomerName: ptr("أحمد")},
			{ID: 11, Amount: decimal.NewFromInt(10_000), Date: time.Now(), Status: entity.StatusPending},
		},
		appointmentsToday: []entity.Appointment{
			{ID: 1, Time: time.Now(), CustomerName: "سارة", CustomerPhone: "07701234567", Status: entity.StatusPending},
			{ID: 2, Time: time.Now(), CustomerName: "كريم", Status: entity.StatusCancelled},
		},
		alerts: []entity.Alert{{ID: 1, Message: "انخفاض مخزون الزيوت"}},
	}
}

func TestToday_TotalesYEtiquetas(t *testing.T) {
	uc := usecase.NewStaffUseCase(staffFixture(), testFormatter())

	day, err := uc.Today(context.Background(), "")

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(35_000).Equal(day.SalesTotal))
	assert.Equal(t, 2, day.SalesCount)
	assert.Equal(t, 2, day.AppointmentCount)

	require.Len(t, day.Sales, 2)
	assert.Equal(t, "#10", day.Sales[0].Number)
	assert.Equal(t, "أحمد", day.Sales[0].Customer)
	assert.Equal(t, labels.CashCustomer, day.Sales[1].Customer,
		"venta sin cliente usa la etiqueta de venta de contado")
	assert.Equal(t, labels.StatusCompleted, day.Sales[0].StatusLabel)

	require.Len(t, day.Appointments, 2)
	assert.Equal(t, "-", day.Appointments[1].Phone, "teléfono ausente muestra guion")
	assert.Equal(t, labels.StatusCancelled, day.Appointments[1].StatusLabel)

	require.Len(t, day.Alerts, 1)
	assert.Equal(t, "انخفاض مخزون الزيوت", day.Alerts[0].Message)
}

func TestToday_ElFiltroNoAlteraElTotal(t *testing.T) {
	uc := usecase.NewStaffUseCase(staffFixture(), testFormatter())

	day, err := uc.Today(context.Background(), "أحمد")

	require.NoError(t, err)
	require.Len(t, day.Sales, 1, "el filtro reduce las filas visibles")
	assert.Equal(t, int64(10), day.Sales[0].ID)
	assert.True(t, decimal.NewFromInt(35_000).Equal(day.SalesTotal),
		"el total del día se calcula sobre el snapshot completo")
	assert.Equal(t, 2, day.SalesCount)
}

func TestToday_FiltraCitasPorTelefono(t *testing.T) {
	uc := usecase.NewStaffUseCase(staffFixture(), testFormatter())

	day, err := uc.Today(context.Background(), "0770")

	require.NoError(t, err)
	require.Len(t, day.Appointments, 1)
	assert.Equal(t, "سارة", day.Appointments[0].Customer)
}

func TestToday_DiaVacio(t *testing.T) {
	uc := usecase.NewStaffUseCase(&fakeStore{}, testFormatter())

	day, err := uc.Today(context.Background(), "")

	require.NoError(t, err)
	assert.True(t, day.SalesTotal.IsZero())
	assert.Empty(t, day.Sales)
	assert.Empty(t, day.Appointments)
}
