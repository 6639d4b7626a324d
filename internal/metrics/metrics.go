package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Settlement Metrics
var (
	RoundsSettled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRoundsSettled,
			Help: HelpTextRoundsSettled,
		},
	)

	SettlementErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSettlementErrors,
			Help: HelpTextSettlementErrors,
		},
	)

	PredictionsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsScored,
			Help: HelpTextPredictionsScored,
		},
		[]string{LabelSession},
	)

	BetsSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBetsSettled,
			Help: HelpTextBetsSettled,
		},
		[]string{LabelBetType, LabelOutcome},
	)

	CoinsCredited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsCredited,
			Help: HelpTextCoinsCredited,
		},
	)
)

// Provider Metrics
var (
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProviderRequests,
			Help: HelpTextProviderRequests,
		},
		[]string{LabelProvider},
	)

	ProviderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProviderErrors,
			Help: HelpTextProviderErrors,
		},
		[]string{LabelProvider},
	)
)
