package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

const namespace = "fundexio"

// Investment outcomes used as the result label.
const (
	ResultCommitted = "committed"
	ResultRejected  = "rejected"
	ResultConflict  = "conflict"
	ResultError     = "error"
)

var (
	InvestmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "investments_total",
			Help:      "Investment attempts by outcome.",
		},
		[]string{"result"},
	)

	InvestmentAmountTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "investment_amount_total",
			Help:      "Sum of committed investment amounts.",
		},
	)

	FundingRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "funding_retries_total",
			Help:      "Funding transactions retried after a serialization conflict.",
		},
	)

	ProposalsFundedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proposals_funded_total",
			Help:      "Proposals that reached their funding goal.",
		},
	)

	LoanApplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loan_applications_total",
			Help:      "Loan applications filed and decided, by status.",
		},
		[]string{"status"},
	)

	SessionsBookedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advisory_sessions_booked_total",
			Help:      "Advisory sessions requested.",
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "route", "status"},
	)
)

// RecordInvestment counts one investment attempt. The amount only counts
// towards the total when the attempt committed.
func RecordInvestment(result string, amount decimal.Decimal) {
	InvestmentsTotal.WithLabelValues(result).Inc()

	if result == ResultCommitted {
		InvestmentAmountTotal.Add(amount.InexactFloat64())
	}
}

func RecordFundingRetry() {
	FundingRetriesTotal.Inc()
}

func RecordProposalFunded() {
	ProposalsFundedTotal.Inc()
}

// RecordLoanApplication counts an application entering status, either on
// filing (PENDING) or on a banker's decision.
func RecordLoanApplication(status string) {
	LoanApplicationsTotal.WithLabelValues(status).Inc()
}

func RecordSessionBooked() {
	SessionsBookedTotal.Inc()
}

func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}
