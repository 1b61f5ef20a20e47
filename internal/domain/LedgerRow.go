package domain

// LedgerRow is one entry of the Wildberries detailed financial report
// (reportDetailByPeriod). The statistics API omits fields freely, so every
// numeric field decodes to its zero value when absent.
type LedgerRow struct {
	DocTypeName string  `json:"doc_type_name"`
	RetailPrice float64 `json:"retail_price_withdisc_rub"`
	PpvzForPay  float64 `json:"ppvz_for_pay"`
	DeliveryRub float64 `json:"delivery_rub"`
	StorageFee  float64 `json:"storage_fee"`
	Penalty     float64 `json:"penalty"`
	Deduction   float64 `json:"deduction"`
	Acceptance  float64 `json:"acceptance"`
	RrDt        string  `json:"rr_dt"`
	SaName      string  `json:"sa_name"`
	NmID        int64   `json:"nm_id"`
}

// Document types used by the WB financial report.
const (
	DocTypeSale   = "Продажа"
	DocTypeReturn = "Возврат"
)

// Date returns the event date truncated to day precision (the API sends
// rr_dt as an RFC3339 timestamp). Empty when the row carries no date.
func (r *LedgerRow) Date() string {
	if len(r.RrDt) < 10 {
		return r.RrDt
	}
	return r.RrDt[:10]
}
