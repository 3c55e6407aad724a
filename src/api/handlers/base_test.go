package handlers_test

import (
	"log"
	"net/http/httptest"
	"os"
	"testing"

	"portfolio-api/src/api"
	"portfolio-api/src/config"
	"portfolio-api/src/utils"
)

var ts *httptest.Server

func newTestServer(dataFile string) (*httptest.Server, error) {
	cfg := &config.Config{
		Service:   config.ServiceConfig{Port: "0"},
		Portfolio: config.PortfolioConfig{DataFile: dataFile},
	}
	logger, err := utils.NewLogger("error")
	if err != nil {
		return nil, err
	}
	server, err := api.NewServer(cfg, logger)
	if err != nil {
		return nil, err
	}
	return httptest.NewServer(server), nil
}

func TestMain(m *testing.M) {
	var err error
	ts, err = newTestServer("testdata/portfolio.json")
	if err != nil {
		log.Println(err, "Error while starting test server")
		os.Exit(1)
	}
	defer ts.Close()

	os.Exit(m.Run())
}
