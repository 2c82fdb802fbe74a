package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	neturl "net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-dashboard/internal/application/auth"
	"github.com/jhoicas/comercio-dashboard/internal/application/export"
	"github.com/jhoicas/comercio-dashboard/internal/application/printing"
	"github.com/jhoicas/comercio-dashboard/internal/application/theme"
	"github.com/jhoicas/comercio-dashboard/internal/application/usecase"
	"github.com/jhoicas/comercio-dashboard/internal/domain/entity"
	"github.com/jhoicas/comercio-dashboard/internal/domain/money"
	"github.com/jhoicas/comercio-dashboard/internal/infrastructure/excel"
	"github.com/jhoicas/comercio-dashboard/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/comercio-dashboard/internal/interfaces/http"
	"github.com/jhoicas/comercio-dashboard/pkg/config"
)

// memoryStore implementa los tres puertos de repositorio sobre datos en memoria.
type memoryStore struct {
	products          []entity.Product
	groups            []entity.ProductGroup
	customers         []entity.Customer
	salesToday        []entity.Sale
	appointmentsToday []entity.Appointment
	campaigns         []entity.MarketingCampaign

	created []entity.ProductInput
	deleted []int64
	themes  []entity.Theme
}

func (m *memoryStore) Products(context.Context) ([]entity.Product, error) { return m.products, nil }
func (m *memoryStore) ProductGroups(context.Context) ([]entity.ProductGroup, error) {
	return m.groups, nil
}
func (m *memoryStore) Customers(context.Context) ([]entity.Customer, error) {
	return m.customers, nil
}
func (m *memoryStore) Appointments(context.Context) ([]entity.Appointment, error) { return nil, nil }
func (m *memoryStore) Staff(context.Context) ([]entity.StaffMember, error)        { return nil, nil }
func (m *memoryStore) SalesToday(context.Context) ([]entity.Sale, error) {
	return m.salesToday, nil
}
func (m *memoryStore) AppointmentsToday(context.Context) ([]entity.Appointment, error) {
	return m.appointmentsToday, nil
}
func (m *memoryStore) Alerts(context.Context) ([]entity.Alert, error)                { return nil, nil }
func (m *memoryStore) Campaigns(context.Context) ([]entity.MarketingCampaign, error) { return m.campaigns, nil }
func (m *memoryStore) Theme(context.Context) (*entity.Theme, error)                  { return nil, nil }

func (m *memoryStore) CreateProduct(_ context.Context, in entity.ProductInput) error {
	m.created = append(m.created, in)
	return nil
}
func (m *memoryStore) UpdateProduct(context.Context, int64, entity.ProductInput) error { return nil }
func (m *memoryStore) DeleteProduct(_ context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}
func (m *memoryStore) SaveTheme(_ context.Context, t entity.Theme) error {
	m.themes = append(m.themes, t)
	return nil
}

func buildAPI(store *memoryStore) *fiber.App {
	formatter := money.NewFormatter(0, 0)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		DashboardUC: usecase.NewDashboardUseCase(store, formatter, config.KPIConfig{DailySalesTarget: 1_000_000}),
		InventoryUC: usecase.NewInventoryReportUseCase(store, formatter),
		ProductUC:   usecase.NewProductUseCase(store, store, formatter),
		StaffUC:     usecase.NewStaffUseCase(store, formatter),
		ExportUC:    export.NewUseCase(store, excel.NewWorkbookWriter(), formatter),
		PrintUC:     printing.NewUseCase(store, pdf.NewInvoiceRenderer(), formatter),
		LoginUC:     auth.NewLoginUseCase(store, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60}),
		ThemeStore:  theme.NewStore(store),
		JWTSecret:   testJWTSecret,
	})
	return app
}

func apiRequest(t *testing.T, app *fiber.App, method, target, token, body string) *http.Response {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sampleAPIStore() *memoryStore {
	return &memoryStore{
		products: []entity.Product{
			{ID: 1, Name: "زيت محرك", Type: entity.ProductPiece,
				Quantity: decimal.NewFromInt(10), SellingPrice: decimal.NewFromInt(15000)},
			{ID: 2, Name: "شحم", Type: entity.ProductWeight,
				Quantity: decimal.NewFromInt(5), SellingPrice: decimal.NewFromInt(8000)},
		},
		salesToday: []entity.Sale{
			{ID: 10, Amount: decimal.NewFromInt(25_000), Date: time.Now(), Status: entity.StatusCompleted},
		},
	}
}

func TestRouter_HealthSinToken(t *testing.T) {
	app := buildAPI(sampleAPIStore())

	resp := apiRequest(t, app, http.MethodGet, "/health", "", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_DashboardRequiereToken(t *testing.T) {
	app := buildAPI(sampleAPIStore())

	resp := apiRequest(t, app, http.MethodGet, "/api/dashboard/summary", "", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_DashboardSummary(t *testing.T) {
	app := buildAPI(sampleAPIStore())

	resp := apiRequest(t, app, http.MethodGet, "/api/dashboard/summary", tokenForRole(t, "staff"), "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, 2, body["productCount"])
	assert.EqualValues(t, 1, body["todaySalesCount"])
}

func TestRouter_ProductosConBusqueda(t *testing.T) {
	app := buildAPI(sampleAPIStore())

	resp := apiRequest(t, app, http.MethodGet, "/api/products/?q="+neturl.QueryEscape("شحم"), tokenForRole(t, "staff"), "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Total)
}

func TestRouter_MutacionesSoloAdmin(t *testing.T) {
	store := sampleAPIStore()
	app := buildAPI(store)
	payload := `{"name":"فلتر","type":"piece"}`

	asStaff := apiRequest(t, app, http.MethodPost, "/api/products/", tokenForRole(t, "staff"), payload)
	defer asStaff.Body.Close()
	assert.Equal(t, http.StatusForbidden, asStaff.StatusCode)
	assert.Empty(t, store.created)

	asAdmin := apiRequest(t, app, http.MethodPost, "/api/products/", tokenForRole(t, "admin"), payload)
	defer asAdmin.Body.Close()
	assert.Equal(t, http.StatusCreated, asAdmin.StatusCode)
	require.Len(t, store.created, 1)
	assert.Equal(t, "فلتر", store.created[0].Name)
}

func TestRouter_ExportaDiario(t *testing.T) {
	app := buildAPI(sampleAPIStore())

	resp := apiRequest(t, app, http.MethodGet, "/api/reports/daily/export", tokenForRole(t, "staff"), "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "spreadsheetml")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")
}

func TestRouter_ExportaSinDatosRetorna409(t *testing.T) {
	app := buildAPI(&memoryStore{})

	resp := apiRequest(t, app, http.MethodGet, "/api/reports/daily/export", tokenForRole(t, "staff"), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode,
		"sin ventas ni citas no se genera documento")
}

func TestRouter_ImprimeFactura(t *testing.T) {
	app := buildAPI(sampleAPIStore())

	ok := apiRequest(t, app, http.MethodGet, "/api/sales/10/print", tokenForRole(t, "staff"), "")
	defer ok.Body.Close()
	require.Equal(t, http.StatusOK, ok.StatusCode)
	assert.Equal(t, "application/pdf", ok.Header.Get(fiber.HeaderContentType))

	missing := apiRequest(t, app, http.MethodGet, "/api/sales/999/print", tokenForRole(t, "staff"), "")
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestRouter_TemaNormalizaTipografia(t *testing.T) {
	store := sampleAPIStore()
	app := buildAPI(store)

	resp := apiRequest(t, app, http.MethodPut, "/api/theme", tokenForRole(t, "staff"),
		`{"fontFamily":"comic-sans","appearance":"dark"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		FontFamily string `json:"fontFamily"`
		Appearance string `json:"appearance"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "cairo", body.FontFamily, "tipografía fuera de la lista cae a la por defecto")
	assert.Equal(t, "dark", body.Appearance)
	require.Len(t, store.themes, 1, "el tema aplicado se persiste en el upstream")
}

func TestRouter_TemaParcialConservaCamposOmitidos(t *testing.T) {
	store := sampleAPIStore()
	app := buildAPI(store)

	first := apiRequest(t, app, http.MethodPut, "/api/theme", tokenForRole(t, "staff"),
		`{"primary":"hsl(10 80% 50%)","variant":"vibrant","fontSize":"large","radius":1.25}`)
	first.Body.Close()
	require.Equal(t, http.StatusOK, first.StatusCode)

	// Un PUT que solo trae la apariencia no debe pisar el resto del tema.
	resp := apiRequest(t, app, http.MethodPut, "/api/theme", tokenForRole(t, "staff"),
		`{"appearance":"dark"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Primary    string  `json:"primary"`
		Variant    string  `json:"variant"`
		Appearance string  `json:"appearance"`
		Radius     float64 `json:"radius"`
		FontSize   string  `json:"fontSize"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "dark", body.Appearance)
	assert.Equal(t, "hsl(10 80% 50%)", body.Primary, "el color primario vigente se conserva")
	assert.Equal(t, "vibrant", body.Variant, "la variante vigente se conserva")
	assert.Equal(t, "large", body.FontSize, "el tamaño de letra vigente se conserva")
	assert.InDelta(t, 1.25, body.Radius, 0.0001, "el radio vigente se conserva")
}
