package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Settlement metric names
const (
	MetricNameRoundsSettled     = "rounds_settled_total"
	MetricNameSettlementErrors  = "settlement_errors_total"
	MetricNamePredictionsScored = "predictions_scored_total"
	MetricNameBetsSettled       = "bets_settled_total"
	MetricNameCoinsCredited     = "coins_credited_total"
)

// Provider metric names
const (
	MetricNameProviderRequests = "result_provider_requests_total"
	MetricNameProviderErrors   = "result_provider_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Settlement metric help text
const (
	HelpTextRoundsSettled     = "Total number of rounds settled"
	HelpTextSettlementErrors  = "Total number of settlement runs that failed"
	HelpTextPredictionsScored = "Total number of predictions scored"
	HelpTextBetsSettled       = "Total number of side bets settled"
	HelpTextCoinsCredited     = "Total coins credited to users"
)

// Provider metric help text
const (
	HelpTextProviderRequests = "Total number of requests to result providers"
	HelpTextProviderErrors   = "Total number of failed result provider requests"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelSession  = "session"
	LabelBetType  = "bet_type"
	LabelOutcome  = "outcome"
	LabelProvider = "provider"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
