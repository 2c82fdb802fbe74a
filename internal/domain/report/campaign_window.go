package report

import (
	"time"

	"github.com/jhoicas/comercio-dashboard/internal/domain/entity"
)

// endingSoonWindow ventana de aviso antes del cierre de una campaña.
const endingSoonWindow = 7 * 24 * time.Hour

// ActiveCampaigns campañas con status active cuyo EndDate es posterior a now.
// Se evalúa contra el reloj en cada llamada; el resultado no debe cachearse
// porque envejece con el tiempo aunque el snapshot no cambie.
func ActiveCampaigns(campaigns []entity.MarketingCampaign, now time.Time) []entity.MarketingCampaign {
	var out []entity.MarketingCampaign
	for _, c := range campaigns {
		if c.Status == entity.CampaignStatusActive && c.EndDate.After(now) {
			out = append(out, c)
		}
	}
	return out
}

// EndingSoon campañas todavía vigentes que cierran dentro de los próximos 7 días.
func EndingSoon(campaigns []entity.MarketingCampaign, now time.Time) []entity.MarketingCampaign {
	limit := now.Add(endingSoonWindow)
	var out []entity.MarketingCampaign
	for _, c := range campaigns {
		if c.EndDate.After(now) && !c.EndDate.After(limit) {
			out = append(out, c)
		}
	}
	return out
}
