package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	JWT      JWTConfig
	Upstream UpstreamConfig
	Format   FormatConfig
	KPI      KPIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// UpstreamConfig configuración del servicio de registros remoto (dueño de todas
// las colecciones). Los TTL por recurso controlan la política de revalidación
// del caché de colecciones; un TTL explícito reemplaza la dependencia implícita
// en ventanas de staleness.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration

	// TTL por clase de recurso
	CatalogTTL time.Duration // products, product-groups, customers, staff
	DailyTTL   time.Duration // sales-today, appointments-today
	AlertsTTL  time.Duration // alerts
	ThemeTTL   time.Duration // theme, marketing-campaigns
}

// FormatConfig política única de formato monetario parametrizada por contexto
// (antes había dos call sites con dígitos fraccionarios distintos).
type FormatConfig struct {
	SummaryFractionDigits int // tarjetas de resumen del dashboard
	ReportFractionDigits  int // reportes de inventario y exportes
}

// KPIConfig metas configurables para el cálculo de indicadores.
type KPIConfig struct {
	DailySalesTarget  int64 // meta de ventas del día (IQD)
	AnnualSalesTarget int64 // meta anual (IQD)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, UPSTREAM_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "comercio-dashboard"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "comercio-dashboard"),
		},
		Upstream: UpstreamConfig{
			BaseURL:    getString(v, "UPSTREAM_BASE_URL", "http://localhost:9090"),
			Timeout:    time.Duration(getInt(v, "UPSTREAM_TIMEOUT_SECONDS", 10)) * time.Second,
			CatalogTTL: time.Duration(getInt(v, "CACHE_CATALOG_TTL_SECONDS", 300)) * time.Second,
			DailyTTL:   time.Duration(getInt(v, "CACHE_DAILY_TTL_SECONDS", 120)) * time.Second,
			AlertsTTL:  time.Duration(getInt(v, "CACHE_ALERTS_TTL_SECONDS", 300)) * time.Second,
			ThemeTTL:   time.Duration(getInt(v, "CACHE_THEME_TTL_SECONDS", 600)) * time.Second,
		},
		Format: FormatConfig{
			SummaryFractionDigits: getInt(v, "FORMAT_SUMMARY_FRACTION_DIGITS", 0),
			ReportFractionDigits:  getInt(v, "FORMAT_REPORT_FRACTION_DIGITS", 0),
		},
		KPI: KPIConfig{
			DailySalesTarget:  int64(getInt(v, "KPI_DAILY_SALES_TARGET", 1_000_000)),
			AnnualSalesTarget: int64(getInt(v, "KPI_ANNUAL_SALES_TARGET", 300_000_000)),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
