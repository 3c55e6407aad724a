package controllers

import (
	"context"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"portfolio-api/src/schemas"
)

// GetPortfolioCSV loads the dataset and renders it as CSV. When filterField
// is set, only records whose value equals filterValue are kept; the header
// survives even when nothing matches.
func (c *Controller) GetPortfolioCSV(ctx context.Context, filterField, filterValue string) ([]byte, error) {
	dataset, err := c.Store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if filterField != "" {
		dataset = dataset.Filter(filterField, filterValue)
	}
	return dataset.CSV()
}

// GetPortfolioSummary aggregates the dataset with a dataframe: position
// count, header fields and totals for every numeric column.
func (c *Controller) GetPortfolioSummary(ctx context.Context) (*schemas.PortfolioSummary, error) {
	dataset, err := c.Store.Load(ctx)
	if err != nil {
		return nil, err
	}

	summary := &schemas.PortfolioSummary{
		Positions: len(dataset.Records),
		Fields:    dataset.Fields,
		Totals:    map[string]float64{},
	}
	if len(dataset.Records) == 0 {
		return summary, nil
	}

	records := make([][]string, 0, len(dataset.Records)+1)
	records = append(records, dataset.Fields)
	records = append(records, dataset.Rows()...)

	df := dataframe.LoadRecords(records)
	if df.Err != nil {
		return nil, df.Err
	}

	types := df.Types()
	for i, name := range df.Names() {
		if types[i] == series.Int || types[i] == series.Float {
			summary.Totals[name] = df.Col(name).Sum()
		}
	}
	return summary, nil
}
