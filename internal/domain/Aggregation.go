package domain

// Metric keys of AggregationResult.Totals.
const (
	MetricSalesCount      = "sales_count"
	MetricSalesSum        = "sales_sum"
	MetricPpvzSum         = "ppvz_sum"
	MetricReturnsCount    = "returns_count"
	MetricReturnsSum      = "returns_sum"
	MetricDelivery        = "delivery"
	MetricStorage         = "storage"
	MetricPenalty         = "penalty"
	MetricDeduction       = "deduction"
	MetricAcceptance      = "acceptance"
	MetricWBCommission    = "wb_commission"
	MetricTotalDeductions = "total_deductions"
	MetricNetPayout       = "net_payout"
	MetricCommissionPct   = "commission_pct"
	MetricDeliveryPct     = "delivery_pct"
	MetricTotalDedPct     = "total_ded_pct"
)

// Keys of the per-day rollup in AggregationResult.Daily.
const (
	DailySales    = "sales"
	DailyPpvz     = "ppvz"
	DailyDelivery = "delivery"
)

// AggregationResult holds the totals and the per-day rollup produced from a
// ledger. Both maps are always non-nil, possibly empty.
type AggregationResult struct {
	Totals map[string]float64            `json:"totals"`
	Daily  map[string]map[string]float64 `json:"daily"`
}

// NewAggregationResult returns an empty result with both maps allocated.
func NewAggregationResult() *AggregationResult {
	return &AggregationResult{
		Totals: make(map[string]float64),
		Daily:  make(map[string]map[string]float64),
	}
}

// Total returns a metric value, zero when the metric was never accumulated.
func (a *AggregationResult) Total(metric string) float64 {
	return a.Totals[metric]
}

// Day returns the rollup bucket for a date, inserting an empty one on first
// access so callers can accumulate without nil checks.
func (a *AggregationResult) Day(date string) map[string]float64 {
	day, ok := a.Daily[date]
	if !ok {
		day = make(map[string]float64)
		a.Daily[date] = day
	}
	return day
}
