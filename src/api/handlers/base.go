package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"portfolio-api/src/api/controllers"
	"portfolio-api/src/auth"
	"portfolio-api/src/config"
	"portfolio-api/src/portfolio"
	"portfolio-api/src/utils"
)

type Handler struct {
	Controller controllers.IController
	Policy     auth.TokenPolicy
	Logger     *logrus.Logger
}

func NewHandler(cfg *config.Config, logger *logrus.Logger) (*Handler, error) {
	if cfg.Portfolio.DataFile == "" {
		return nil, errors.New("portfolio data file is not configured")
	}
	store := portfolio.NewStore(
		cfg.Portfolio.DataFile,
		time.Duration(cfg.Portfolio.CacheTTLSeconds)*time.Second,
	)
	controller := controllers.NewController(store)
	return &Handler{
		Controller: controller,
		Policy:     auth.BearerPresencePolicy{},
		Logger:     logger,
	}, nil
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	if errors.Is(err, context.DeadlineExceeded) {
		h.respond(w, nil, map[string]string{"error": "Request timed out"}, http.StatusGatewayTimeout)
	} else if errors.As(err, &httpErr) {
		h.respond(w, nil, map[string]string{"error": httpErr.Message}, httpErr.Code)
	} else if err != nil {
		h.respond(w, nil, map[string]string{"error": err.Error()}, http.StatusInternalServerError)
	} else {
		h.respond(w, nil, map[string]string{"error": "Unhandled error"}, http.StatusInternalServerError)
	}
}
