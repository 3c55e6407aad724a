package schemas

// PortfolioSummary aggregates the loaded dataset: position count, the field
// names of the header, and per-column totals for the numeric columns.
type PortfolioSummary struct {
	Positions int                `json:"positions"`
	Fields    []string           `json:"fields"`
	Totals    map[string]float64 `json:"totals"`
}
