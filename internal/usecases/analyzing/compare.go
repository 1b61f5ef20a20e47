package analyzing

import (
	"fmt"
	"math"

	"github.com/vfg2006/wb-report-bot/internal/domain"
)

// ComparedMetric is one metric compared across two periods.
type ComparedMetric struct {
	Label string
	Key   string
	First float64
	Last  float64
	Delta string
}

// Verdict outcomes of a period comparison.
const (
	VerdictNone       = ""
	VerdictFirstWins  = "first"
	VerdictSecondWins = "second"
	VerdictTie        = "tie"
)

// ComparisonResult pairs the compared metrics with the net-payout verdict.
type ComparisonResult struct {
	Metrics []ComparedMetric
	Verdict string
	// Diff is the absolute net-payout gap when one period wins.
	Diff float64
}

// comparedMetrics is the fixed list of metrics shown in /compare, in report
// order.
var comparedMetrics = []struct {
	label string
	key   string
}{
	{"Выручка", domain.MetricSalesSum},
	{"Кол-во продаж", domain.MetricSalesCount},
	{"Возвраты", domain.MetricReturnsCount},
	{"Комиссия ВБ", domain.MetricWBCommission},
	{"Логистика", domain.MetricDelivery},
	{"Хранение", domain.MetricStorage},
	{"Штрафы", domain.MetricPenalty},
	{"Чистыми", domain.MetricNetPayout},
}

// Compare computes per-metric percentage deltas between two aggregations and
// the net-payout verdict. When the first period's value is zero the delta is
// reported as "new" (second value present) or "no change"; a zero net payout
// on either side suppresses the verdict since absent data is not a loss.
func Compare(first, second *domain.AggregationResult) ComparisonResult {
	result := ComparisonResult{
		Metrics: make([]ComparedMetric, 0, len(comparedMetrics)),
	}

	for _, m := range comparedMetrics {
		v1 := first.Total(m.key)
		v2 := second.Total(m.key)

		result.Metrics = append(result.Metrics, ComparedMetric{
			Label: m.label,
			Key:   m.key,
			First: v1,
			Last:  v2,
			Delta: deltaMarker(v2, v1),
		})
	}

	n1 := first.Total(domain.MetricNetPayout)
	n2 := second.Total(domain.MetricNetPayout)

	switch {
	case n1 == 0 || n2 == 0:
		result.Verdict = VerdictNone
	case n2 > n1:
		result.Verdict = VerdictSecondWins
		result.Diff = n2 - n1
	case n1 > n2:
		result.Verdict = VerdictFirstWins
		result.Diff = n1 - n2
	default:
		result.Verdict = VerdictTie
	}

	return result
}

// deltaMarker renders the percentage change with a direction arrow, or the
// "new"/"no change" markers when the old value is zero.
func deltaMarker(newValue, oldValue float64) string {
	if oldValue == 0 {
		if newValue > 0 {
			return "➕ новое"
		}
		return "—"
	}

	pct := (newValue - oldValue) / math.Abs(oldValue) * 100

	arrow := "📉"
	sign := ""
	if pct > 0 {
		arrow = "📈"
		sign = "+"
	}

	return fmt.Sprintf("%s %s%.1f%%", arrow, sign, pct)
}
