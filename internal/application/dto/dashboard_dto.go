package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-dashboard/internal/domain/report"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Conteos por colección, total de ventas del día, avance de metas y las
// ventanas de campañas evaluadas al momento de la petición.
type DashboardSummaryDTO struct {
	ProductCount     int `json:"productCount"`
	CustomerCount    int `json:"customerCount"`
	AppointmentCount int `json:"appointmentCount"`
	StaffCount       int `json:"staffCount"`

	TodaySales      decimal.Decimal `json:"todaySales"`
	TodaySalesLabel string          `json:"todaySalesLabel"`
	TodaySalesCount int             `json:"todaySalesCount"`

	// Avance frente a metas configuradas (porcentaje, un decimal)
	DailyTargetPct  decimal.Decimal `json:"dailyTargetPct"`
	AnnualTargetPct decimal.Decimal `json:"annualTargetPct"`

	ActiveCampaigns []CampaignDTO           `json:"activeCampaigns"`
	EndingSoon      []CampaignDTO           `json:"endingSoonCampaigns"`
	CampaignSeries  []report.CampaignSeries `json:"campaignSeries"`

	DateLabel string `json:"dateLabel"` // fecha localizada de la consulta
}

// CampaignDTO campaña proyectada para las tarjetas del dashboard.
type CampaignDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	EndDate     time.Time `json:"endDate"`
	EndsLabel   string    `json:"endsLabel"`   // fecha de cierre localizada
	DaysLeft    int       `json:"daysLeft"`    // días enteros hasta EndDate
	MetricsZero bool      `json:"metricsZero"` // true si la plataforma no reportó métricas
}
