package domain

// OrderRecord is one order from the WB statistics /orders endpoint.
type OrderRecord struct {
	NmID     int64  `json:"nmId"`
	Subject  string `json:"subject"`
	Category string `json:"category"`
	IsCancel bool   `json:"isCancel"`
	Date     string `json:"date"`
}

// SaleRecord is one sale or return from the WB statistics /sales endpoint.
// SaleID carries the record kind in its prefix: "S" for a completed sale,
// "R" for a return. Other prefixes exist and are ignored by the analysis.
type SaleRecord struct {
	NmID          int64   `json:"nmId"`
	Subject       string  `json:"subject"`
	SaleID        string  `json:"saleID"`
	PriceWithDisc float64 `json:"priceWithDisc"`
	Date          string  `json:"date"`
}
