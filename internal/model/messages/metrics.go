package messages

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"max.ks1230/expense-bot/internal/model/intent"
)

var (
	histogramResponseTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "expense_bot",
			Subsystem: "telegram",
			Name:      "histogram_response_time_seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"intent", "error"},
	)

	counterRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expense_bot",
			Subsystem: "expenses",
			Name:      "recorded_total",
		},
		[]string{"category"},
	)
)

func observeResponse(kind intent.Kind, elapsed time.Duration, err bool) {
	histogramResponseTime.
		WithLabelValues(kind.String(), strconv.FormatBool(err)).
		Observe(elapsed.Seconds())
}

func observeRecorded(category string) {
	counterRecorded.WithLabelValues(category).Inc()
}
