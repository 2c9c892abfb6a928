package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/dto"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/repository"
)

// DashboardUseCase builds the landing-screen summary.
//
// Data source: AnalyticsRepository (read-only queries). It never touches the
// invoice tables directly.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary assembles the DashboardSummaryDTO. The two DB queries run in
// parallel; the money window is the current month (day 1 through today).
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	dayEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		Add(24*time.Hour - time.Nanosecond)

	type countsResult struct {
		counts *repository.DashboardCounts
		err    error
	}
	type revenueResult struct {
		revenue *repository.RevenueSummary
		err     error
	}

	countsCh := make(chan countsResult, 1)
	revenueCh := make(chan revenueResult, 1)

	go func() {
		c, err := uc.analyticsRepo.GetCounts(ctx)
		countsCh <- countsResult{c, err}
	}()
	go func() {
		r, err := uc.analyticsRepo.GetRevenue(ctx, monthStart, dayEnd)
		revenueCh <- revenueResult{r, err}
	}()

	counts := <-countsCh
	revenue := <-revenueCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: counts: %w", counts.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: revenue: %w", revenue.err)
	}

	return &dto.DashboardSummaryDTO{
		Clients:          counts.counts.Clients,
		DraftInvoices:    counts.counts.DraftInvoices,
		SentInvoices:     counts.counts.SentInvoices,
		PaidInvoices:     counts.counts.PaidInvoices,
		PendingEstimates: counts.counts.PendingEstimates,
		PaidThisMonth:    revenue.revenue.PaidThisPeriod.Round(2),
		Outstanding:      revenue.revenue.Outstanding.Round(2),
		EstimateValue:    revenue.revenue.EstimateValue.Round(2),
		DateLabel:        now.Format("January 2006"),
	}, nil
}
