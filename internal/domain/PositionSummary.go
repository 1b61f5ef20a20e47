package domain

// PositionSummary aggregates one sellable item across orders and sales.
type PositionSummary struct {
	Name      string  `json:"name"`
	Ordered   int     `json:"ordered"`
	Sold      int     `json:"sold"`
	Cancelled int     `json:"cancelled"`
	Returned  int     `json:"returned"`
	Revenue   float64 `json:"revenue"`
}

// PositionMap keys PositionSummary records by item identifier (nmId).
type PositionMap map[string]*PositionSummary

// Get returns the summary for an item id, inserting a zero-valued record on
// first access.
func (m PositionMap) Get(id string) *PositionSummary {
	p, ok := m[id]
	if !ok {
		p = &PositionSummary{}
		m[id] = p
	}
	return p
}

// DisplayName resolves the label shown in reports, falling back to the item
// id when no name was ever seen.
func (p *PositionSummary) DisplayName(id string) string {
	if p.Name != "" {
		return p.Name
	}
	return id
}
