package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymhabit_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymhabit_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymhabit_catalog_gyms",
			Help: "Number of gyms currently in the catalog",
		},
	)

	CatalogMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymhabit_catalog_mutations_total",
			Help: "Total number of catalog mutations",
		},
		[]string{"op"},
	)

	NearbySearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymhabit_nearby_searches_total",
			Help: "Total number of proximity searches",
		},
	)

	InquiriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymhabit_inquiries_total",
			Help: "Total number of subscription inquiries received",
		},
		[]string{"plan"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymhabit_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymhabit_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordCatalogMutation(op string, size int) {
	CatalogMutationsTotal.WithLabelValues(op).Inc()
	CatalogSize.Set(float64(size))
}

func RecordNearbySearch() {
	NearbySearchesTotal.Inc()
}

func RecordInquiry(plan string) {
	InquiriesTotal.WithLabelValues(plan).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
