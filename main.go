package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"portfolio-api/src/api"
	"portfolio-api/src/config"
	"portfolio-api/src/utils"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./settings", os.Getenv("ENV"))
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}

	// The listening port is the only externally meaningful setting.
	if port := os.Getenv("PORT"); port != "" {
		cfg.Service.Port = port
	}

	errC, err := run(cfg)
	if err != nil {
		log.Println(err, "Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		log.Println(err, "Error while running")
	}
}

func run(cfg *config.Config) (<-chan error, error) {
	logger, err := utils.NewLogger(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	server, err := api.NewServer(cfg, logger)
	if err != nil {
		return nil, err
	}
	httpServer := api.NewHTTPServer(server, cfg.Service.Port)

	errC := make(chan error, 1)
	go func() {
		logger.Infoln("Starting server on port", cfg.Service.Port)

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()
	return errC, nil
}
