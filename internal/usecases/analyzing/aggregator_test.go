package analyzing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/wb-report-bot/internal/domain"
)

func TestAggregate_SalesAndReturns(t *testing.T) {
	rows := []domain.LedgerRow{
		{
			DocTypeName: domain.DocTypeSale,
			RetailPrice: 1000,
			PpvzForPay:  800,
			RrDt:        "2025-01-10T00:00:00Z",
		},
		{
			DocTypeName: domain.DocTypeSale,
			RetailPrice: 2000,
			PpvzForPay:  1600,
			RrDt:        "2025-01-11T00:00:00Z",
		},
		{
			DocTypeName: domain.DocTypeReturn,
			RetailPrice: 500,
			RrDt:        "2025-01-11T00:00:00Z",
		},
	}

	result := Aggregate(rows)
	totals := result.Totals

	assert.Equal(t, 2.0, totals[domain.MetricSalesCount])
	assert.Equal(t, 3000.0, totals[domain.MetricSalesSum])
	assert.Equal(t, 2400.0, totals[domain.MetricPpvzSum])
	assert.Equal(t, 1.0, totals[domain.MetricReturnsCount])
	assert.Equal(t, 500.0, totals[domain.MetricReturnsSum])

	// commission is remitted minus gross, negative here by construction
	assert.Equal(t, -600.0, totals[domain.MetricWBCommission])

	assert.Equal(t, 3000.0, result.Daily["2025-01-10"][domain.DailySales]+result.Daily["2025-01-11"][domain.DailySales])
	assert.Equal(t, 800.0, result.Daily["2025-01-10"][domain.DailyPpvz])
}

func TestAggregate_FeesAccumulateForEveryDocType(t *testing.T) {
	rows := []domain.LedgerRow{
		{DocTypeName: domain.DocTypeSale, RetailPrice: 1000, PpvzForPay: 900, DeliveryRub: 50, StorageFee: 5, RrDt: "2025-02-01T10:00:00"},
		{DocTypeName: domain.DocTypeReturn, RetailPrice: 300, DeliveryRub: 70, Penalty: 100, RrDt: "2025-02-02T10:00:00"},
		{DocTypeName: "Логистика", DeliveryRub: 30, Deduction: 10, Acceptance: 3, RrDt: "2025-02-02T10:00:00"},
	}

	totals := Aggregate(rows).Totals

	assert.Equal(t, 150.0, totals[domain.MetricDelivery])
	assert.Equal(t, 5.0, totals[domain.MetricStorage])
	assert.Equal(t, 100.0, totals[domain.MetricPenalty])
	assert.Equal(t, 10.0, totals[domain.MetricDeduction])
	assert.Equal(t, 3.0, totals[domain.MetricAcceptance])

	// the service row counts as neither sale nor return
	assert.Equal(t, 1.0, totals[domain.MetricSalesCount])
	assert.Equal(t, 1.0, totals[domain.MetricReturnsCount])
}

func TestAggregate_DerivedInvariants(t *testing.T) {
	rows := []domain.LedgerRow{
		{DocTypeName: domain.DocTypeSale, RetailPrice: 5000, PpvzForPay: 4100, DeliveryRub: 120, RrDt: "2025-03-01T00:00:00"},
		{DocTypeName: domain.DocTypeSale, RetailPrice: 2500, PpvzForPay: 2050, StorageFee: 33.5, RrDt: "2025-03-02T00:00:00"},
		{DocTypeName: domain.DocTypeReturn, RetailPrice: 900, Penalty: 250, Deduction: 80, Acceptance: 12, RrDt: "2025-03-03T00:00:00"},
	}

	totals := Aggregate(rows).Totals

	expectedTotalDeductions := totals[domain.MetricWBCommission] +
		totals[domain.MetricDelivery] +
		totals[domain.MetricStorage] +
		totals[domain.MetricAcceptance] +
		totals[domain.MetricDeduction] +
		totals[domain.MetricPenalty]
	assert.Equal(t, expectedTotalDeductions, totals[domain.MetricTotalDeductions])

	expectedNet := totals[domain.MetricPpvzSum] -
		totals[domain.MetricDelivery] -
		totals[domain.MetricStorage] -
		totals[domain.MetricAcceptance] -
		totals[domain.MetricDeduction] -
		totals[domain.MetricPenalty]
	assert.Equal(t, expectedNet, totals[domain.MetricNetPayout])

	assert.Equal(t, totals[domain.MetricWBCommission]/7500*100, totals[domain.MetricCommissionPct])
}

func TestAggregate_ZeroSalesGuardsPercentages(t *testing.T) {
	rows := []domain.LedgerRow{
		{DocTypeName: domain.DocTypeReturn, RetailPrice: 400, DeliveryRub: 55, RrDt: "2025-01-05T00:00:00"},
	}

	totals := Aggregate(rows).Totals

	assert.Zero(t, totals[domain.MetricCommissionPct])
	assert.Zero(t, totals[domain.MetricDeliveryPct])
	assert.Zero(t, totals[domain.MetricTotalDedPct])
}

func TestAggregate_EmptyInput(t *testing.T) {
	result := Aggregate(nil)

	require.NotNil(t, result.Totals)
	require.NotNil(t, result.Daily)
	assert.Empty(t, result.Totals)
	assert.Empty(t, result.Daily)
	assert.Zero(t, result.Total(domain.MetricNetPayout))
}

func TestAggregate_MissingDateBucketsUnderEmptyString(t *testing.T) {
	rows := []domain.LedgerRow{
		{DocTypeName: domain.DocTypeSale, RetailPrice: 100, PpvzForPay: 90},
	}

	result := Aggregate(rows)

	assert.Equal(t, 100.0, result.Daily[""][domain.DailySales])
}

func TestAggregate_OrderIndependentTotals(t *testing.T) {
	rows := []domain.LedgerRow{
		{DocTypeName: domain.DocTypeSale, RetailPrice: 1200, PpvzForPay: 1000, DeliveryRub: 40, RrDt: "2025-04-01T00:00:00"},
		{DocTypeName: domain.DocTypeReturn, RetailPrice: 200, Penalty: 15, RrDt: "2025-04-02T00:00:00"},
		{DocTypeName: domain.DocTypeSale, RetailPrice: 700, PpvzForPay: 610, StorageFee: 2.5, RrDt: "2025-04-03T00:00:00"},
		{DocTypeName: "", Deduction: 99, RrDt: "2025-04-03T00:00:00"},
	}

	expected := Aggregate(rows).Totals

	shuffled := make([]domain.LedgerRow, len(rows))
	copy(shuffled, rows)
	rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	assert.Equal(t, expected, Aggregate(shuffled).Totals)

	// aggregating twice yields identical maps
	assert.Equal(t, expected, Aggregate(rows).Totals)
	assert.Equal(t, Aggregate(rows).Daily, Aggregate(rows).Daily)
}
