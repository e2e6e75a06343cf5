package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fundexio/fundexio/internal/metrics"
)

func TestRecordInvestment(t *testing.T) {
	committedBefore := testutil.ToFloat64(metrics.InvestmentsTotal.WithLabelValues(metrics.ResultCommitted))
	rejectedBefore := testutil.ToFloat64(metrics.InvestmentsTotal.WithLabelValues(metrics.ResultRejected))
	amountBefore := testutil.ToFloat64(metrics.InvestmentAmountTotal)

	metrics.RecordInvestment(metrics.ResultCommitted, decimal.NewFromInt(250))
	metrics.RecordInvestment(metrics.ResultRejected, decimal.NewFromInt(900))

	assert.InDelta(t, committedBefore+1, testutil.ToFloat64(metrics.InvestmentsTotal.WithLabelValues(metrics.ResultCommitted)), 0.001)
	assert.InDelta(t, rejectedBefore+1, testutil.ToFloat64(metrics.InvestmentsTotal.WithLabelValues(metrics.ResultRejected)), 0.001)
	assert.InDelta(t, amountBefore+250, testutil.ToFloat64(metrics.InvestmentAmountTotal), 0.001)
}

func TestRecordLoanApplication(t *testing.T) {
	pendingBefore := testutil.ToFloat64(metrics.LoanApplicationsTotal.WithLabelValues("PENDING"))
	approvedBefore := testutil.ToFloat64(metrics.LoanApplicationsTotal.WithLabelValues("APPROVED"))

	metrics.RecordLoanApplication("PENDING")
	metrics.RecordLoanApplication("PENDING")
	metrics.RecordLoanApplication("APPROVED")

	assert.InDelta(t, pendingBefore+2, testutil.ToFloat64(metrics.LoanApplicationsTotal.WithLabelValues("PENDING")), 0.001)
	assert.InDelta(t, approvedBefore+1, testutil.ToFloat64(metrics.LoanApplicationsTotal.WithLabelValues("APPROVED")), 0.001)
}

func TestRecordSessionBooked(t *testing.T) {
	before := testutil.ToFloat64(metrics.SessionsBookedTotal)

	metrics.RecordSessionBooked()

	assert.InDelta(t, before+1, testutil.ToFloat64(metrics.SessionsBookedTotal), 0.001)
}
