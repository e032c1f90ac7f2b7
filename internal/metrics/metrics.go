package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scan metrics
var (
	ScanRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pdf_catalog_scan_runs_total",
			Help: "Total number of scan runs started",
		},
	)

	ScanLastRunTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pdf_catalog_scan_last_run_timestamp_seconds",
			Help: "Unix timestamp of the last completed scan",
		},
	)

	ScanLastRunDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pdf_catalog_scan_last_run_duration_seconds",
			Help: "Duration of the last completed scan in seconds",
		},
	)

	ScanIsRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pdf_catalog_scan_running",
			Help: "Whether a scan is currently in progress (1 or 0)",
		},
	)

	DocumentsDiscovered = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pdf_catalog_documents_discovered",
			Help: "Number of documents found by the last discovery walk",
		},
	)

	DocumentsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pdf_catalog_documents_processed_total",
			Help: "Total number of documents successfully cataloged",
		},
	)

	DocumentsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pdf_catalog_documents_failed_total",
			Help: "Total number of documents excluded because they could not be opened",
		},
	)

	StageFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdf_catalog_stage_failures_total",
			Help: "Total number of non-fatal extraction stage failures",
		},
		[]string{"stage"}, // "outline", "keywords", "thumbnail"
	)
)

// Persistence metrics
var (
	CatalogRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pdf_catalog_rows",
			Help: "Number of rows in the most recently saved or loaded catalog",
		},
	)

	CatalogSaveFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdf_catalog_save_failures_total",
			Help: "Total number of catalog save failures by format",
		},
		[]string{"format"},
	)

	CatalogLoadDuration = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pdf_catalog_load_duration_seconds",
			Help: "Duration of the last catalog load by format used",
		},
		[]string{"format"},
	)
)
