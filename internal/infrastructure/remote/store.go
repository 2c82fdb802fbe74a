package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/comercio-dashboard/internal/domain/entity"
)

// Store fachada tipada sobre el caché: decodifica los snapshots crudos en
// entidades y canaliza las mutaciones hacia el cliente, invalidando la clave
// afectada. Implementa repository.CollectionStore, ProductMutator y ThemeSaver.
type Store struct {
	cache  *Cache
	client *Client
}

// NewStore construye la fachada.
func NewStore(cache *Cache, client *Client) *Store {
	return &Store{cache: cache, client: client}
}

// collection decodifica el snapshot de key como slice de T.
func collection[T any](ctx context.Context, s *Store, key Key) ([]T, error) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("remote: %s: decodificar snapshot: %w", key, err)
	}
	return out, nil
}

func (s *Store) Products(ctx context.Context) ([]entity.Product, error) {
	return collection[entity.Product](ctx, s, KeyProducts)
}

func (s *Store) ProductGroups(ctx context.Context) ([]entity.ProductGroup, error) {
	return collection[entity.ProductGroup](ctx, s, KeyProductGroups)
}

func (s *Store) Customers(ctx context.Context) ([]entity.Customer, error) {
	return collection[entity.Customer](ctx, s, KeyCustomers)
}

func (s *Store) Appointments(ctx context.Context) ([]entity.Appointment, error) {
	return collection[entity.Appointment](ctx, s, KeyAppointments)
}

func (s *Store) Staff(ctx context.Context) ([]entity.StaffMember, error) {
	return collection[entity.StaffMember](ctx, s, KeyStaff)
}

func (s *Store) SalesToday(ctx context.Context) ([]entity.Sale, error) {
	return collection[entity.Sale](ctx, s, KeySalesToday)
}

func (s *Store) AppointmentsToday(ctx context.Context) ([]entity.Appointment, error) {
	return collection[entity.Appointment](ctx, s, KeyAppointmentsToday)
}

func (s *Store) Alerts(ctx context.Context) ([]entity.Alert, error) {
	return collection[entity.Alert](ctx, s, KeyAlerts)
}

func (s *Store) Campaigns(ctx context.Context) ([]entity.MarketingCampaign, error) {
	return collection[entity.MarketingCampaign](ctx, s, KeyCampaigns)
}

// Theme el tema es un registro único, no una colección.
func (s *Store) Theme(ctx context.Context) (*entity.Theme, error) {
	raw, err := s.cache.Get(ctx, KeyTheme)
	if err != nil {
		return nil, err
	}
	var theme entity.Theme
	if err := json.Unmarshal(raw, &theme); err != nil {
		return nil, fmt.Errorf("remote: theme: decodificar snapshot: %w", err)
	}
	return &theme, nil
}

// ── Mutaciones ────────────────────────────────────────────────────────────────

func (s *Store) CreateProduct(ctx context.Context, in entity.ProductInput) error {
	if err := s.client.Mutate(ctx, http.MethodPost, KeyProducts, nil, in); err != nil {
		return err
	}
	s.cache.Invalidate(KeyProducts)
	return nil
}

func (s *Store) UpdateProduct(ctx context.Context, id int64, in entity.ProductInput) error {
	if err := s.client.Mutate(ctx, http.MethodPut, KeyProducts, &id, in); err != nil {
		return err
	}
	s.cache.Invalidate(KeyProducts)
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.client.Mutate(ctx, http.MethodDelete, KeyProducts, &id, nil); err != nil {
		return err
	}
	s.cache.Invalidate(KeyProducts)
	return nil
}

func (s *Store) SaveTheme(ctx context.Context, theme entity.Theme) error {
	if err := s.client.Mutate(ctx, http.MethodPut, KeyTheme, nil, theme); err != nil {
		return err
	}
	s.cache.Invalidate(KeyTheme)
	return nil
}
