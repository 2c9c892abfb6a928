package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/usecase"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/repository"
)

func TestDashboardSummary_AssemblesCountsAndMoney(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		counts: repository.DashboardCounts{
			Clients:          12,
			DraftInvoices:    3,
			SentInvoices:     4,
			PaidInvoices:     9,
			PendingEstimates: 5,
		},
		revenue: repository.RevenueSummary{
			PaidThisPeriod: decimal.RequireFromString("15400.505"),
			Outstanding:    decimal.RequireFromString("6200"),
			EstimateValue:  decimal.RequireFromString("9100.10"),
		},
	}
	uc := usecase.NewDashboardUseCase(repo)

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, got.Clients)
	assert.Equal(t, 3, got.DraftInvoices)
	assert.Equal(t, 4, got.SentInvoices)
	assert.Equal(t, 9, got.PaidInvoices)
	assert.Equal(t, 5, got.PendingEstimates)
	assert.Equal(t, "15400.51", got.PaidThisMonth.StringFixed(2), "money is rounded to cents")
	assert.Equal(t, "6200.00", got.Outstanding.StringFixed(2))
	assert.Equal(t, "9100.10", got.EstimateValue.StringFixed(2))
	assert.Equal(t, time.Now().Format("January 2006"), got.DateLabel)
}
