package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// Registry holds every checkgen collector. Batch runs have no scrape endpoint,
// so the registry is dumped to a node_exporter textfile at the end of a run.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	paymentsScheduledTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "checkgen_payments_scheduled_total",
		Help: "Total number of payments added to schedules",
	}, []string{
		"mode", // fixed, distributed
	})

	checksPrintedTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "checkgen_checks_printed_total",
		Help: "Total number of check faces drawn",
	}, []string{
		"kind", // filled, blank
	})

	pagesPrintedTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "checkgen_pages_printed_total",
		Help: "Total number of physical pages produced",
	})

	amountPrintedCents = factory.NewCounter(prometheus.CounterOpts{
		Name: "checkgen_amount_printed_cents_total",
		Help: "Total amount written on filled checks, in cents",
	})

	bookDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkgen_book_duration_seconds",
		Help:    "Time to lay out one book of checks",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	})

	lastRunTimestamp = factory.NewGauge(prometheus.GaugeOpts{
		Name: "checkgen_last_run_timestamp_seconds",
		Help: "Unix time of the last successfully printed book",
	})
)

// RecordScheduled counts payments produced by a schedule request
func RecordScheduled(mode string, count int) {
	paymentsScheduledTotal.WithLabelValues(mode).Add(float64(count))
}

// RecordBook records the outcome of one printed book
func RecordBook(filled, blank, pages int, amount decimal.Decimal, duration time.Duration) {
	checksPrintedTotal.WithLabelValues("filled").Add(float64(filled))
	checksPrintedTotal.WithLabelValues("blank").Add(float64(blank))
	pagesPrintedTotal.Add(float64(pages))
	amountPrintedCents.Add(amount.Shift(2).Round(0).InexactFloat64())
	bookDuration.Observe(duration.Seconds())
	lastRunTimestamp.SetToCurrentTime()
}

// WriteTextfile writes the current metric values in the Prometheus text format.
// The file is written atomically so a collector never reads a partial file.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
