// Package remote implementa el cliente del servicio de registros (dueño de
// todas las colecciones) y el caché de snapshots con TTL por recurso. Esta capa
// nunca posee estado persistente: guarda copias transitorias que se descartan
// al invalidar o al vencer su TTL.
package remote

import (
	"time"

	"github.com/jhoicas/comercio-dashboard/pkg/config"
)

// Key nombre lógico de una colección remota.
type Key string

const (
	KeyProducts          Key = "products"
	KeyProductGroups     Key = "product-groups"
	KeyCustomers         Key = "customers"
	KeyAppointments      Key = "appointments"
	KeyStaff             Key = "staff"
	KeySalesToday        Key = "sales-today"
	KeyAppointmentsToday Key = "appointments-today"
	KeyAlerts            Key = "alerts"
	KeyCampaigns         Key = "marketing-campaigns"
	KeyTheme             Key = "theme"
)

// paths ruta upstream de cada recurso.
var paths = map[Key]string{
	KeyProducts:          "/api/products",
	KeyProductGroups:     "/api/product-groups",
	KeyCustomers:         "/api/customers",
	KeyAppointments:      "/api/appointments",
	KeyStaff:             "/api/staff",
	KeySalesToday:        "/api/sales/today",
	KeyAppointmentsToday: "/api/appointments/today",
	KeyAlerts:            "/api/alerts",
	KeyCampaigns:         "/api/marketing-campaigns",
	KeyTheme:             "/api/theme",
}

// Policy TTL explícito por clave de recurso. Una clave sin entrada no se
// cachea (TTL cero: siempre refetch).
type Policy map[Key]time.Duration

// DefaultPolicy arma la política a partir de la configuración.
func DefaultPolicy(cfg config.UpstreamConfig) Policy {
	return Policy{
		KeyProducts:          cfg.CatalogTTL,
		KeyProductGroups:     cfg.CatalogTTL,
		KeyCustomers:         cfg.CatalogTTL,
		KeyAppointments:      cfg.CatalogTTL,
		KeyStaff:             cfg.CatalogTTL,
		KeySalesToday:        cfg.DailyTTL,
		KeyAppointmentsToday: cfg.DailyTTL,
		KeyAlerts:            cfg.AlertsTTL,
		KeyCampaigns:         cfg.CatalogTTL,
		KeyTheme:             cfg.ThemeTTL,
	}
}
