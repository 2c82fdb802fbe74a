package report

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-dashboard/internal/domain/entity"
)

// TargetProgress porcentaje de avance del total frente a una meta configurada.
// Meta cero o negativa → 0, nunca división por cero.
func TargetProgress(total decimal.Decimal, target int64) decimal.Decimal {
	if target <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(target)).Mul(hundred).Round(1)
}

// CampaignSeries punto de la serie de desempeño de campañas. Las métricas
// ausentes se reportan en cero (campo opcional malformado → valor seguro).
type CampaignSeries struct {
	Name        string `json:"name"`
	Impressions int64  `json:"impressions"`
	Engagement  int64  `json:"engagement"`
	Clicks      int64  `json:"clicks"`
}

// CampaignPerformance proyecta la colección de campañas en la serie del gráfico.
func CampaignPerformance(campaigns []entity.MarketingCampaign) []CampaignSeries {
	out := make([]CampaignSeries, 0, len(campaigns))
	for _, c := range campaigns {
		p := CampaignSeries{Name: c.Name}
		if c.Metrics != nil {
			p.Impressions = c.Metrics.Impressions
			p.Engagement = c.Metrics.Engagement
			p.Clicks = c.Metrics.Clicks
		}
		out = append(out, p)
	}
	return out
}
