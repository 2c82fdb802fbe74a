package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-dashboard/internal/application/dto"
	"github.com/jhoicas/comercio-dashboard/internal/application/usecase"
	"github.com/jhoicas/comercio-dashboard/internal/domain"
	"github.com/jhoicas/comercio-dashboard/internal/domain/entity"
)

func catalogFixture() *fakeStore {
	return &fakeStore{
		products: []entity.Product{
			{ID: 1, Name: "زيت محرك", Barcode: ptr("6291041500213"), Type: entity.ProductPiece,
				Quantity: decimal.NewFromInt(10), SellingPrice: decimal.NewFromInt(15000), GroupID: ptr(int64(1))},
			{ID: 2, Name: "فلتر هواء", Type: entity.ProductPiece,
				Quantity: decimal.NewFromInt(3), MinimumQuantity: ptr(decimal.NewFromInt(5)),
				SellingPrice: decimal.NewFromInt(20000)},
			{ID: 3, Name: "شحم", Type: entity.ProductWeight,
				Quantity: decimal.Zero, MinimumQuantity: ptr(decimal.NewFromInt(2)),
				SellingPrice: decimal.NewFromInt(8000), GroupID: ptr(int64(2))},
		},
		groups: []entity.ProductGroup{
			{ID: 1, Name: "زيوت"},
			{ID: 2, Name: "تشحيم"},
		},
	}
}

func TestList_SinQueryDevuelveTodo(t *testing.T) {
	uc := usecase.NewProductUseCase(catalogFixture(), newFakeMutator(), testFormatter())

	list, err := uc.List(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, "زيوت", list.Items[0].GroupName)
	assert.Equal(t, "-", list.Items[1].GroupName, "producto sin grupo muestra guion")
	assert.Equal(t, "-", list.Items[1].Barcode, "código de barras ausente muestra guion")
}

func TestList_BuscaPorNombreBarcodeYGrupo(t *testing.T) {
	uc := usecase.NewProductUseCase(catalogFixture(), newFakeMutator(), testFormatter())

	byName, err := uc.List(context.Background(), "فلتر")
	require.NoError(t, err)
	require.Equal(t, 1, byName.Total)
	assert.Equal(t, int64(2), byName.Items[0].ID)

	byBarcode, err := uc.List(context.Background(), "629104")
	require.NoError(t, err)
	require.Equal(t, 1, byBarcode.Total)
	assert.Equal(t, int64(1), byBarcode.Items[0].ID)

	byGroup, err := uc.List(context.Background(), "تشحيم")
	require.NoError(t, err)
	require.Equal(t, 1, byGroup.Total, "el nombre del grupo también es campo de búsqueda")
	assert.Equal(t, int64(3), byGroup.Items[0].ID)
}

func TestList_EstadoDeStock(t *testing.T) {
	uc := usecase.NewProductUseCase(catalogFixture(), newFakeMutator(), testFormatter())

	list, err := uc.List(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "", list.Items[0].StockStatus, "sin mínimo configurado no hay clasificación")
	assert.Equal(t, "low", list.Items[1].StockStatus)
	assert.Equal(t, "out", list.Items[2].StockStatus, "cantidad cero es agotado aunque haya mínimo")
}

func TestLowStock_SoloClasificados(t *testing.T) {
	uc := usecase.NewProductUseCase(catalogFixture(), newFakeMutator(), testFormatter())

	list, err := uc.LowStock(context.Background())

	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, int64(2), list.Items[0].ID)
	assert.Equal(t, int64(3), list.Items[1].ID)
}

func TestCreate_ValidaEntrada(t *testing.T) {
	mutator := newFakeMutator()
	uc := usecase.NewProductUseCase(catalogFixture(), mutator, testFormatter())

	err := uc.Create(context.Background(), dto.SaveProductRequest{Name: "  ", Type: "piece"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre en blanco se rechaza antes de llegar al upstream")

	err = uc.Create(context.Background(), dto.SaveProductRequest{Name: "زيت", Type: "bulk"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido se rechaza")

	assert.Empty(t, mutator.created, "ninguna mutación llegó al canal")
}

func TestCreate_ReenviaAlCanalDeMutacion(t *testing.T) {
	mutator := newFakeMutator()
	uc := usecase.NewProductUseCase(catalogFixture(), mutator, testFormatter())

	err := uc.Create(context.Background(), dto.SaveProductRequest{
		Name: "زيت جديد", Type: "piece", SellingPrice: decimal.NewFromInt(12000),
	})

	require.NoError(t, err)
	require.Len(t, mutator.created, 1)
	assert.Equal(t, "زيت جديد", mutator.created[0].Name)
}

func TestUpdateYDelete_Reenvian(t *testing.T) {
	mutator := newFakeMutator()
	uc := usecase.NewProductUseCase(catalogFixture(), mutator, testFormatter())

	require.NoError(t, uc.Update(context.Background(), 7, dto.SaveProductRequest{Name: "ن", Type: "weight"}))
	require.NoError(t, uc.Delete(context.Background(), 7))

	assert.Contains(t, mutator.updated, int64(7))
	assert.Equal(t, []int64{7}, mutator.deleted)
}
