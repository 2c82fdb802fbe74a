package entity

import "time"

// CampaignStatusActive único estado con semántica propia en los filtros de ventana.
const CampaignStatusActive = "active"

// MarketingCampaign proyección de una campaña de marketing. Se asume
// EndDate > StartDate (no se valida en este lado de la frontera).
type MarketingCampaign struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	StartDate time.Time        `json:"startDate"`
	EndDate   time.Time        `json:"endDate"`
	Status    string           `json:"status"`
	Metrics   *CampaignMetrics `json:"campaignMetrics,omitempty"`
}

// CampaignMetrics métricas opcionales reportadas por la plataforma de campañas.
type CampaignMetrics struct {
	Impressions int64 `json:"impressions"`
	Engagement  int64 `json:"engagement"`
	Clicks      int64 `json:"clicks"`
}
