package usecase_test

import (
	"context"

	"github.com/jhoicas/comercio-dashboard/internal/domain/entity"
	"github.com/jhoicas/comercio-dashboard/internal/domain/money"
)

// fakeStore implementa repository.CollectionStore sobre snapshots fijos.
type fakeStore struct {
	products          []entity.Product
	groups            []entity.ProductGroup
	customers         []entity.Customer
	appointments      []entity.Appointment
	staff             []entity.StaffMember
	salesToday        []entity.Sale
	appointmentsToday []entity.Appointment
	alerts            []entity.Alert
	campaigns         []entity.MarketingCampaign
	theme             *entity.Theme

	err error
}

func (f *fakeStore) Products(context.Context) ([]entity.Product, error) {
	return f.products, f.err
}
func (f *fakeStore) ProductGroups(context.Context) ([]entity.ProductGroup, error) {
	return f.groups, f.err
}
func (f *fakeStore) Customers(context.Context) ([]entity.Customer, error) {
	return f.customers, f.err
}
func (f *fakeStore) Appointments(context.Context) ([]entity.Appointment, error) {
	return f.appointments, f.err
}
func (f *fakeStore) Staff(context.Context) ([]entity.StaffMember, error) {
	return f.staff, f.err
}
func (f *fakeStore) SalesToday(context.Context) ([]entity.Sale, error) {
	return f.salesToday, f.err
}
func (f *fakeStore) AppointmentsToday(context.Context) ([]entity.Appointment, error) {
	return f.appointmentsToday, f.err
}
func (f *fakeStore) Alerts(context.Context) ([]entity.Alert, error) {
	return f.alerts, f.err
}
func (f *fakeStore) Campaigns(context.Context) ([]entity.MarketingCampaign, error) {
	return f.campaigns, f.err
}
func (f *fakeStore) Theme(context.Context) (*entity.Theme, error) {
	return f.theme, f.err
}

// fakeMutator registra las mutaciones reenviadas.
type fakeMutator struct {
	created []entity.ProductInput
	updated map[int64]entity.ProductInput
	deleted []int64
	err     error
}

func newFakeMutator() *fakeMutator {
	return &fakeMutator{updated: make(map[int64]entity.ProductInput)}
}

func (f *fakeMutator) CreateProduct(_ context.Context, in entity.ProductInput) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, in)
	return nil
}

func (f *fakeMutator) UpdateProduct(_ context.Context, id int64, in entity.ProductInput) error {
	if f.err != nil {
		return f.err
	}
	f.updated[id] = in
	return nil
}

func (f *fakeMutator) DeleteProduct(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func testFormatter() *money.Formatter { return money.NewFormatter(0, 0) }

func ptr[T any](v T) *T { return &v }
