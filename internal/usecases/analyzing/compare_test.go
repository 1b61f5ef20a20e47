package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/wb-report-bot/internal/domain"
)

func aggregationWith(totals map[string]float64) *domain.AggregationResult {
	result := domain.NewAggregationResult()
	for k, v := range totals {
		result.Totals[k] = v
	}
	return result
}

func TestCompare_SamePeriodIsATie(t *testing.T) {
	a := aggregationWith(map[string]float64{
		domain.MetricSalesSum:  1000,
		domain.MetricNetPayout: 700,
	})

	result := Compare(a, a)

	assert.Equal(t, VerdictTie, result.Verdict)
	assert.Zero(t, result.Diff)

	for _, m := range result.Metrics {
		if m.First != 0 {
			assert.Equal(t, "📉 0.0%", m.Delta, m.Label)
		}
	}
}

func TestCompare_SecondPeriodWins(t *testing.T) {
	a := aggregationWith(map[string]float64{
		domain.MetricSalesSum:  1000,
		domain.MetricNetPayout: 700,
	})
	b := aggregationWith(map[string]float64{
		domain.MetricSalesSum:  1500,
		domain.MetricNetPayout: 1200,
	})

	result := Compare(a, b)

	assert.Equal(t, VerdictSecondWins, result.Verdict)
	assert.Equal(t, 500.0, result.Diff)

	var sales ComparedMetric
	for _, m := range result.Metrics {
		if m.Key == domain.MetricSalesSum {
			sales = m
		}
	}
	assert.Equal(t, "📈 +50.0%", sales.Delta)
}

func TestCompare_ZeroBaselineMarkers(t *testing.T) {
	empty := domain.NewAggregationResult()
	b := aggregationWith(map[string]float64{
		domain.MetricSalesSum:  500,
		domain.MetricNetPayout: 300,
	})

	result := Compare(empty, b)

	// no verdict when one side has no data
	assert.Equal(t, VerdictNone, result.Verdict)

	require.NotEmpty(t, result.Metrics)
	for _, m := range result.Metrics {
		switch m.Key {
		case domain.MetricSalesSum, domain.MetricNetPayout:
			assert.Equal(t, "➕ новое", m.Delta, m.Label)
		default:
			assert.Equal(t, "—", m.Delta, m.Label)
		}
	}
}

func TestCompare_NegativeBaselineUsesAbsoluteValue(t *testing.T) {
	a := aggregationWith(map[string]float64{
		domain.MetricWBCommission: -200,
		domain.MetricNetPayout:    100,
	})
	b := aggregationWith(map[string]float64{
		domain.MetricWBCommission: -100,
		domain.MetricNetPayout:    100,
	})

	result := Compare(a, b)

	var commission ComparedMetric
	for _, m := range result.Metrics {
		if m.Key == domain.MetricWBCommission {
			commission = m
		}
	}
	assert.Equal(t, "📈 +50.0%", commission.Delta)
	assert.Equal(t, VerdictTie, result.Verdict)
}
