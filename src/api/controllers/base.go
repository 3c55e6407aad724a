package controllers

import (
	"context"

	"portfolio-api/src/portfolio"
	"portfolio-api/src/schemas"
)

type IController interface {
	GetPortfolioCSV(ctx context.Context, filterField, filterValue string) ([]byte, error)
	GetPortfolioSummary(ctx context.Context) (*schemas.PortfolioSummary, error)
}

type Controller struct {
	Store *portfolio.Store
}

func NewController(store *portfolio.Store) *Controller {
	return &Controller{Store: store}
}
