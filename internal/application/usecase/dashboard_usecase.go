package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/comercio-dashboard/internal/application/dto"
	"github.com/jhoicas/comercio-dashboard/internal/domain/entity"
	"github.com/jhoicas/comercio-dashboard/internal/domain/money"
	"github.com/jhoicas/comercio-dashboard/internal/domain/report"
	"github.com/jhoicas/comercio-dashboard/internal/domain/repository"
	"github.com/jhoicas/comercio-dashboard/pkg/config"
)

// DashboardUseCase arma el resumen general: conteos por colección, total de
// ventas del día, avance frente a metas y las ventanas de campañas. Todo se
// deriva del snapshot vigente en cada petición; nada se precalcula.
type DashboardUseCase struct {
	store repository.CollectionStore
	fmt   *money.Formatter
	kpi   config.KPIConfig
	now   func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.CollectionStore, fmt *money.Formatter, kpi config.KPIConfig) *DashboardUseCase {
	return &DashboardUseCase{store: store, fmt: fmt, kpi: kpi, now: time.Now}
}

// Summary consulta las colecciones en paralelo y proyecta el resumen.
// Colecciones vacías producen ceros, nunca error.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	var (
		products     []entity.Product
		customers    []entity.Customer
		appointments []entity.Appointment
		staff        []entity.StaffMember
		sales        []entity.Sale
		campaigns    []entity.MarketingCampaign
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { products, err = uc.store.Products(gctx); return err })
	g.Go(func() (err error) { customers, err = uc.store.Customers(gctx); return err })
	g.Go(func() (err error) { appointments, err = uc.store.Appointments(gctx); return err })
	g.Go(func() (err error) { staff, err = uc.store.Staff(gctx); return err })
	g.Go(func() (err error) { sales, err = uc.store.SalesToday(gctx); return err })
	g.Go(func() (err error) { campaigns, err = uc.store.Campaigns(gctx); return err })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := uc.now()
	todaySales := report.SumAmounts(sales)

	return &dto.DashboardSummaryDTO{
		ProductCount:     len(products),
		CustomerCount:    len(customers),
		AppointmentCount: len(appointments),
		StaffCount:       len(staff),

		TodaySales:      todaySales,
		TodaySalesLabel: uc.fmt.Amount(todaySales, money.ContextSummary),
		TodaySalesCount: len(sales),

		DailyTargetPct:  report.TargetProgress(todaySales, uc.kpi.DailySalesTarget),
		AnnualTargetPct: report.TargetProgress(todaySales, uc.kpi.AnnualSalesTarget),

		ActiveCampaigns: uc.campaignDTOs(report.ActiveCampaigns(campaigns, now), now),
		EndingSoon:      uc.campaignDTOs(report.EndingSoon(campaigns, now), now),
		CampaignSeries:  report.CampaignPerformance(campaigns),

		DateLabel: uc.fmt.Date(now),
	}, nil
}

func (uc *DashboardUseCase) campaignDTOs(campaigns []entity.MarketingCampaign, now time.Time) []dto.CampaignDTO {
	out := make([]dto.CampaignDTO, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, dto.CampaignDTO{
			ID:          c.ID,
			Name:        c.Name,
			Status:      c.Status,
			EndDate:     c.EndDate,
			EndsLabel:   uc.fmt.Date(c.EndDate),
			DaysLeft:    int(c.EndDate.Sub(now).Hours() / 24),
			MetricsZero: c.Metrics == nil,
		})
	}
	return out
}
