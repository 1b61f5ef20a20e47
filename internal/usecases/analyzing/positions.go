package analyzing

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vfg2006/wb-report-bot/internal/domain"
)

// Sale-record id prefixes. Anything else is an unrecognized record kind and
// is deliberately ignored by the counters.
const (
	salePrefix   = "S"
	returnPrefix = "R"
)

// unknownItemID labels records that arrive without an item identifier.
const unknownItemID = "unknown"

// AggregatePositions folds orders, then sales, into a per-item summary.
// Orders are processed first so their category/subject naming wins; a later
// non-empty name never overrides one already set. Revenue accumulates from
// completed sales only, never from orders or returns.
func AggregatePositions(orders []domain.OrderRecord, sales []domain.SaleRecord) domain.PositionMap {
	positions := make(domain.PositionMap)

	for _, o := range orders {
		p := positions.Get(itemID(o.NmID))

		if p.Name == "" {
			p.Name = firstNonEmpty(o.Subject, o.Category, itemID(o.NmID))
		}

		p.Ordered++
		if o.IsCancel {
			p.Cancelled++
		}
	}

	for _, s := range sales {
		p := positions.Get(itemID(s.NmID))

		if p.Name == "" {
			p.Name = firstNonEmpty(s.Subject, itemID(s.NmID))
		}

		switch {
		case strings.HasPrefix(s.SaleID, salePrefix):
			p.Sold++
			p.Revenue += s.PriceWithDisc
		case strings.HasPrefix(s.SaleID, returnPrefix):
			p.Returned++
		}
		// unrecognized prefixes fall through: counted neither as sale nor return
	}

	return positions
}

// RankedPosition pairs an item id with its summary for sorted rendering.
type RankedPosition struct {
	ID      string
	Summary *domain.PositionSummary
}

// RankByRevenue returns the positions sorted by revenue, highest first, with
// the item id as a stable tie-break so rendering is deterministic.
func RankByRevenue(positions domain.PositionMap) []RankedPosition {
	ranked := make([]RankedPosition, 0, len(positions))
	for id, p := range positions {
		ranked = append(ranked, RankedPosition{ID: id, Summary: p})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Summary.Revenue != ranked[j].Summary.Revenue {
			return ranked[i].Summary.Revenue > ranked[j].Summary.Revenue
		}
		return ranked[i].ID < ranked[j].ID
	})

	return ranked
}

func itemID(nmID int64) string {
	if nmID == 0 {
		return unknownItemID
	}
	return strconv.FormatInt(nmID, 10)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
