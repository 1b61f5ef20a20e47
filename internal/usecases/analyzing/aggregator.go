// Package analyzing turns raw statistics rows into report-ready aggregates:
// ledger totals with derived ratios, per-item position summaries, anomaly
// alerts and period-over-period comparisons.
package analyzing

import (
	"github.com/vfg2006/wb-report-bot/internal/domain"
)

// Aggregate folds a ledger into totals and a per-day rollup. It never fails:
// missing numeric fields are already zero after decoding, and rows without a
// date land in the empty-string daily bucket.
//
// Sale rows feed the sale counters and the remitted (ppvz) sum, return rows
// feed the return counters, and every row regardless of document type feeds
// the fee and deduction accumulators.
func Aggregate(rows []domain.LedgerRow) *domain.AggregationResult {
	result := domain.NewAggregationResult()
	t := result.Totals

	for _, r := range rows {
		date := r.Date()

		switch r.DocTypeName {
		case domain.DocTypeSale:
			t[domain.MetricSalesCount]++
			t[domain.MetricSalesSum] += r.RetailPrice
			t[domain.MetricPpvzSum] += r.PpvzForPay
			result.Day(date)[domain.DailySales] += r.RetailPrice
			result.Day(date)[domain.DailyPpvz] += r.PpvzForPay
		case domain.DocTypeReturn:
			t[domain.MetricReturnsCount]++
			t[domain.MetricReturnsSum] += r.RetailPrice
		}

		t[domain.MetricDelivery] += r.DeliveryRub
		t[domain.MetricStorage] += r.StorageFee
		t[domain.MetricPenalty] += r.Penalty
		t[domain.MetricDeduction] += r.Deduction
		t[domain.MetricAcceptance] += r.Acceptance
		result.Day(date)[domain.DailyDelivery] += r.DeliveryRub
	}

	if len(rows) > 0 {
		deriveMetrics(t)
	}

	return result
}

// deriveMetrics computes the commission, totals and percentage metrics from
// the accumulated sums. The WB commission is not a fetched field: it is the
// gap between what the marketplace remitted and the gross retail amount, and
// can legitimately go negative when compensations exceed sales.
func deriveMetrics(t map[string]float64) {
	t[domain.MetricWBCommission] = t[domain.MetricPpvzSum] - t[domain.MetricSalesSum]

	t[domain.MetricTotalDeductions] = t[domain.MetricWBCommission] +
		t[domain.MetricDelivery] +
		t[domain.MetricStorage] +
		t[domain.MetricAcceptance] +
		t[domain.MetricDeduction] +
		t[domain.MetricPenalty]

	t[domain.MetricNetPayout] = t[domain.MetricPpvzSum] -
		t[domain.MetricDelivery] -
		t[domain.MetricStorage] -
		t[domain.MetricAcceptance] -
		t[domain.MetricDeduction] -
		t[domain.MetricPenalty]

	sales := t[domain.MetricSalesSum]
	t[domain.MetricCommissionPct] = percentOf(t[domain.MetricWBCommission], sales)
	t[domain.MetricDeliveryPct] = percentOf(t[domain.MetricDelivery], sales)
	t[domain.MetricTotalDedPct] = percentOf(t[domain.MetricTotalDeductions], sales)
}

// percentOf guards the ratio metrics against an empty period: when there were
// no sales every percentage is defined as zero.
func percentOf(amount, base float64) float64 {
	if base == 0 {
		return 0
	}
	return amount / base * 100
}
