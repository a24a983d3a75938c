package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scrapeRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oura_scrape_records_total",
		Help: "Number of records upserted per endpoint.",
	}, []string{"endpoint"})

	scrapeErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oura_scrape_errors_total",
		Help: "Number of failed endpoint scrapes.",
	}, []string{"endpoint"})

	scrapeLastRun = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "oura_scrape_last_run_timestamp_seconds",
		Help: "Unix timestamp of the last completed scrape pass.",
	})
)
