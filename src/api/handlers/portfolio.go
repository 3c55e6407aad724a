package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"portfolio-api/src/portfolio"
	"portfolio-api/src/utils"
)

// GetPortfolioCSV serves the holdings as a CSV download. The optional field
// and value query parameters keep only the matching records.
func (h *Handler) GetPortfolioCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	if err := h.Policy.Validate(r); err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}

	filterField := r.URL.Query().Get("field")
	filterValue := r.URL.Query().Get("value")

	body, err := h.Controller.GetPortfolioCSV(ctx, filterField, filterValue)
	if err != nil {
		h.Logger.Error(err)
		if errors.Is(err, portfolio.ErrDataUnavailable) {
			h.HandleErrors(w, utils.InternalServerError(portfolio.ErrDataUnavailable.Error()))
		} else {
			h.HandleErrors(w, err)
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="portfolio-data.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// GetPortfolioSummary serves aggregate figures over the loaded dataset.
func (h *Handler) GetPortfolioSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	if err := h.Policy.Validate(r); err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}

	summary, err := h.Controller.GetPortfolioSummary(ctx)
	if err != nil {
		h.Logger.Error(err)
		if errors.Is(err, portfolio.ErrDataUnavailable) {
			h.HandleErrors(w, utils.InternalServerError(portfolio.ErrDataUnavailable.Error()))
		} else {
			h.HandleErrors(w, err)
		}
		return
	}

	h.respond(w, r, summary, http.StatusOK)
}
