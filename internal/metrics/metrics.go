package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ReportsRegisteredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "emergency_reports_registered_total",
		Help: "Total number of registered reports",
	})
	ReportsDeletedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "emergency_reports_deleted_total",
		Help: "Total number of deleted reports by reason",
	}, []string{"reason"})
	DeleteVotesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "emergency_delete_votes_total",
		Help: "Delete requests by outcome",
	}, []string{"outcome"})
	UnexpectedErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "emergency_unexpected_errors_total",
		Help: "Errors hidden from the client behind the generic message",
	}, []string{"op"})
	DirectoryCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "emergency_directory_cache_hits_total",
		Help: "Total facility cache hits in redis",
	})
	DirectoryCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "emergency_directory_cache_misses_total",
		Help: "Total facility cache misses in redis",
	})
	DirectoryFacilities = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "emergency_directory_facilities",
		Help: "Facilities held by the in-memory index",
	})
	QueryDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "emergency_query_duration_ms",
		Help:    "Spatial query duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"query"})
	WebhookDeliveriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "emergency_webhook_deliveries_total",
		Help: "Report event webhook deliveries by status",
	}, []string{"status"})
)

func init() {
	prometheus.MustRegister(ReportsRegisteredTotal)
	prometheus.MustRegister(ReportsDeletedTotal)
	prometheus.MustRegister(DeleteVotesTotal)
	prometheus.MustRegister(UnexpectedErrorsTotal)
	prometheus.MustRegister(DirectoryCacheHitsTotal)
	prometheus.MustRegister(DirectoryCacheMissesTotal)
	prometheus.MustRegister(DirectoryFacilities)
	prometheus.MustRegister(QueryDurationMs)
	prometheus.MustRegister(WebhookDeliveriesTotal)
}

// Handler exposes the default registry for scraping.
func Handler() http.Handler { return promhttp.Handler() }
