// Package repository define los puertos hacia el servicio de registros remoto.
// Las implementaciones viven en infrastructure/remote.
package repository

import (
	"context"

	"github.com/jhoicas/comercio-dashboard/internal/domain/entity"
)

// CollectionStore acceso de lectura a los snapshots de colecciones remotas.
// Cada método devuelve el snapshot vigente según la política de TTL; un
// snapshot vacío no es error.
type CollectionStore interface {
	Products(ctx context.Context) ([]entity.Product, error)
	ProductGroups(ctx context.Context) ([]entity.ProductGroup, error)
	Customers(ctx context.Context) ([]entity.Customer, error)
	Appointments(ctx context.Context) ([]entity.Appointment, error)
	Staff(ctx context.Context) ([]entity.StaffMember, error)
	SalesToday(ctx context.Context) ([]entity.Sale, error)
	AppointmentsToday(ctx context.Context) ([]entity.Appointment, error)
	Alerts(ctx context.Context) ([]entity.Alert, error)
	Campaigns(ctx context.Context) ([]entity.MarketingCampaign, error)
	Theme(ctx context.Context) (*entity.Theme, error)
}

// ProductMutator canal de mutaciones de productos. Cada operación exitosa
// invalida la colección cacheada correspondiente.
type ProductMutator interface {
	CreateProduct(ctx context.Context, in entity.ProductInput) error
	UpdateProduct(ctx context.Context, id int64, in entity.ProductInput) error
	DeleteProduct(ctx context.Context, id int64) error
}

// ThemeSaver persiste el tema en el servicio de registros e invalida su clave.
type ThemeSaver interface {
	SaveTheme(ctx context.Context, theme entity.Theme) error
}
