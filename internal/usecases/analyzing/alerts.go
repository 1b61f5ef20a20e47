package analyzing

import (
	"fmt"
	"strconv"

	"github.com/vfg2006/wb-report-bot/internal/domain"
	"github.com/vfg2006/wb-report-bot/pkg/utils"
)

// DetectAlerts scans the ledger for penalties and large deductions. A row can
// produce both kinds of alert; nothing is merged or deduplicated, and output
// order follows input order. The deduction check is inclusive: a deduction
// exactly at the threshold alerts.
func DetectAlerts(rows []domain.LedgerRow, threshold float64) []string {
	var alerts []string

	for _, r := range rows {
		if r.Penalty > 0 {
			alerts = append(alerts, fmt.Sprintf(
				"⚠️ Штраф %s за %s — товар: %s",
				utils.FormatMoney(r.Penalty), r.Date(), rowItemLabel(r),
			))
		}

		if r.Deduction >= threshold {
			alerts = append(alerts, fmt.Sprintf(
				"🔴 Крупное удержание %s за %s",
				utils.FormatMoney(r.Deduction), r.Date(),
			))
		}
	}

	return alerts
}

// rowItemLabel prefers the article name, then the numeric item id.
func rowItemLabel(r domain.LedgerRow) string {
	if r.SaName != "" {
		return r.SaName
	}
	if r.NmID != 0 {
		return strconv.FormatInt(r.NmID, 10)
	}
	return ""
}
