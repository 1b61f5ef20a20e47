// Package rendering formats aggregation results into the bot's outbound
// artifacts: Markdown messages and the styled XLSX workbook.
package rendering

import (
	"fmt"
	"strings"

	"github.com/vfg2006/wb-report-bot/internal/domain"
	"github.com/vfg2006/wb-report-bot/internal/usecases/analyzing"
	"github.com/vfg2006/wb-report-bot/pkg/utils"
)

const (
	// nameWidth limits item names in messages and workbook rows.
	nameWidth = 30

	topPositions    = 5
	maxProblemItems = 5
	maxInlineAlerts = 10
)

// PeriodMessage renders the full period report: sales, deductions, net
// payout, top positions, cancellations/returns and inline alerts. Empty
// positions or alerts simply omit their blocks.
func PeriodMessage(analysis *domain.AggregationResult, positions domain.PositionMap, period domain.Period, alerts []string) string {
	t := analysis.Totals

	lines := []string{
		"📊 *ЕЖЕНЕДЕЛЬНЫЙ ОТЧЁТ ВБ*",
		"📅 " + period.Label(),
		"",
		"💰 *ПРОДАЖИ*",
		fmt.Sprintf("  Заказов/продаж: *%d шт.*", int(t[domain.MetricSalesCount])),
		fmt.Sprintf("  Выручка (розн.): *%s*", utils.FormatMoney(t[domain.MetricSalesSum])),
		fmt.Sprintf("  Возвратов: %d шт.", int(t[domain.MetricReturnsCount])),
		"",
		"📉 *УДЕРЖАНИЯ ВБ*",
		fmt.Sprintf("  Вознаграждение ВБ: %s (%.1f%%)", utils.FormatMoney(t[domain.MetricWBCommission]), t[domain.MetricCommissionPct]),
		fmt.Sprintf("  Логистика:         %s (%.1f%%)", utils.FormatMoney(t[domain.MetricDelivery]), t[domain.MetricDeliveryPct]),
		fmt.Sprintf("  Хранение:          %s", utils.FormatMoney2(t[domain.MetricStorage])),
		fmt.Sprintf("  Приёмка:           %s", utils.FormatMoney(t[domain.MetricAcceptance])),
		fmt.Sprintf("  Прочие удержания:  %s", utils.FormatMoney(t[domain.MetricDeduction])),
		fmt.Sprintf("  Штрафы:            %s", utils.FormatMoney(t[domain.MetricPenalty])),
		"  ─────────────────────────",
		fmt.Sprintf("  Итого удержано:    *%s* (%.1f%%)", utils.FormatMoney(t[domain.MetricTotalDeductions]), t[domain.MetricTotalDedPct]),
		"",
		"✅ *ИТОГО К ПОЛУЧЕНИЮ*",
		fmt.Sprintf("  *%s*", utils.FormatMoney(t[domain.MetricNetPayout])),
		"",
	}

	if len(positions) > 0 {
		lines = append(lines, positionBlocks(positions)...)
	}

	if len(alerts) > 0 {
		lines = append(lines, "🚨 *АЛЕРТЫ*")
		for i, a := range alerts {
			if i == maxInlineAlerts {
				break
			}
			lines = append(lines, "  "+a)
		}
		lines = append(lines, "")
	}

	lines = append(lines, "📎 _Excel-отчёт прикреплён ниже_")

	return strings.Join(lines, "\n")
}

// positionBlocks renders the top-revenue list and, when present, the items
// with cancellations or returns.
func positionBlocks(positions domain.PositionMap) []string {
	ranked := analyzing.RankByRevenue(positions)

	lines := []string{"🏆 *ТОП-5 ПОЗИЦИЙ ПО ВЫРУЧКЕ*"}
	for i, rp := range ranked {
		if i == topPositions {
			break
		}
		name := utils.Truncate(rp.Summary.DisplayName(rp.ID), nameWidth)
		lines = append(lines,
			fmt.Sprintf("  %d. %s", i+1, name),
			fmt.Sprintf("     Продано: %d шт. | %s", rp.Summary.Sold, utils.FormatMoney(rp.Summary.Revenue)),
		)
	}
	lines = append(lines, "")

	var problems []string
	for _, rp := range ranked {
		if rp.Summary.Cancelled > 0 || rp.Summary.Returned > 0 {
			name := utils.Truncate(rp.Summary.DisplayName(rp.ID), nameWidth)
			problems = append(problems,
				fmt.Sprintf("  • %s: отмен %d, возвратов %d", name, rp.Summary.Cancelled, rp.Summary.Returned))
			if len(problems) == maxProblemItems {
				break
			}
		}
	}

	if len(problems) > 0 {
		lines = append(lines, "📦 *ОТМЕНЫ И ВОЗВРАТЫ*")
		lines = append(lines, problems...)
		lines = append(lines, "")
	}

	return lines
}

// MonthlyMessage renders the condensed monthly summary: no per-item
// breakdown, no inline alerts.
func MonthlyMessage(analysis *domain.AggregationResult, period domain.Period) string {
	t := analysis.Totals

	lines := []string{
		"📅 *ЕЖЕМЕСЯЧНЫЙ ИТОГ ВБ*",
		"🗓 " + period.Label(),
		"",
		"💰 *ИТОГИ МЕСЯЦА*",
		fmt.Sprintf("  Продаж: *%d шт.*", int(t[domain.MetricSalesCount])),
		fmt.Sprintf("  Выручка: *%s*", utils.FormatMoney(t[domain.MetricSalesSum])),
		fmt.Sprintf("  Возвратов: %d шт.", int(t[domain.MetricReturnsCount])),
		"",
		"📊 *СТРУКТУРА ЗАТРАТ*",
		fmt.Sprintf("  Комиссия ВБ:    %s (%.1f%%)", utils.FormatMoney(t[domain.MetricWBCommission]), t[domain.MetricCommissionPct]),
		fmt.Sprintf("  Логистика:      %s (%.1f%%)", utils.FormatMoney(t[domain.MetricDelivery]), t[domain.MetricDeliveryPct]),
		fmt.Sprintf("  Хранение:       %s", utils.FormatMoney2(t[domain.MetricStorage])),
		fmt.Sprintf("  Приёмка:        %s", utils.FormatMoney(t[domain.MetricAcceptance])),
		fmt.Sprintf("  Прочие:         %s", utils.FormatMoney(t[domain.MetricDeduction])),
		fmt.Sprintf("  Штрафы:         %s", utils.FormatMoney(t[domain.MetricPenalty])),
		"  ─────────────────",
		fmt.Sprintf("  Итого удержано: *%s* (%.1f%%)", utils.FormatMoney(t[domain.MetricTotalDeductions]), t[domain.MetricTotalDedPct]),
		"",
		"💵 *ЧИСТЫМИ НА СЧЁТ*",
		fmt.Sprintf("  *%s*", utils.FormatMoney(t[domain.MetricNetPayout])),
		"",
		"📎 _Подробный Excel-отчёт прикреплён_",
	}

	return strings.Join(lines, "\n")
}

// CompareMessage renders the two-period comparison with per-metric deltas and
// the net-payout verdict line.
func CompareMessage(comparison analyzing.ComparisonResult, label1, label2 string) string {
	lines := []string{
		"🔄 *СРАВНЕНИЕ ПЕРИОДОВ*",
		"  1️⃣  " + label1,
		"  2️⃣  " + label2,
		"",
	}

	sections := []struct {
		title string
		keys  map[string]bool
	}{
		{"💰 *ПРОДАЖИ*", map[string]bool{
			domain.MetricSalesSum:     true,
			domain.MetricSalesCount:   true,
			domain.MetricReturnsCount: true,
		}},
		{"📉 *УДЕРЖАНИЯ*", map[string]bool{
			domain.MetricWBCommission: true,
			domain.MetricDelivery:     true,
			domain.MetricStorage:      true,
			domain.MetricPenalty:      true,
		}},
		{"✅ *ИТОГО К ПОЛУЧЕНИЮ*", map[string]bool{
			domain.MetricNetPayout: true,
		}},
	}

	for _, section := range sections {
		lines = append(lines, section.title)
		for _, m := range comparison.Metrics {
			if !section.keys[m.Key] {
				continue
			}
			lines = append(lines,
				"  "+m.Label,
				fmt.Sprintf("    %s  →  %s  %s", compareValue(m), compareValueSecond(m), m.Delta),
			)
		}
		lines = append(lines, "")
	}

	switch comparison.Verdict {
	case analyzing.VerdictSecondWins:
		lines = append(lines, fmt.Sprintf("🏆 Период 2️⃣ лучше на *%s*", utils.FormatMoney(comparison.Diff)))
	case analyzing.VerdictFirstWins:
		lines = append(lines, fmt.Sprintf("🏆 Период 1️⃣ лучше на *%s*", utils.FormatMoney(comparison.Diff)))
	case analyzing.VerdictTie:
		lines = append(lines, "🤝 Периоды равны по чистой выручке")
	}

	return strings.Join(lines, "\n")
}

// counts render as "шт.", everything else as roubles.
func isCountMetric(key string) bool {
	return key == domain.MetricSalesCount || key == domain.MetricReturnsCount
}

func compareValue(m analyzing.ComparedMetric) string {
	if isCountMetric(m.Key) {
		return fmt.Sprintf("%s шт.", utils.GroupThousands(m.First))
	}
	return utils.FormatMoney(m.First)
}

func compareValueSecond(m analyzing.ComparedMetric) string {
	if isCountMetric(m.Key) {
		return fmt.Sprintf("%s шт.", utils.GroupThousands(m.Last))
	}
	return utils.FormatMoney(m.Last)
}
