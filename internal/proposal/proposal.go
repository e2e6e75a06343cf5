package proposal

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the funding lifecycle of a proposal.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusFunded   Status = "FUNDED"
	StatusClosed   Status = "CLOSED"
	StatusRejected Status = "REJECTED"
)

var (
	ErrNotFound  = errors.New("proposal not found")
	ErrForbidden = errors.New("only business accounts can create proposals")
	ErrInvalid   = errors.New("invalid proposal")
)

// Proposal is a funding request posted by a business user.
type Proposal struct {
	ID               uuid.UUID
	CreatedBy        uuid.UUID
	Title            string
	Description      string
	ShortDescription string
	AmountAsked      decimal.Decimal
	EquityOffered    decimal.Decimal
	Industry         string
	FundingStage     string
	Status           Status
	TotalFunded      decimal.Decimal
	InvestorCount    int
	Images           []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// moneyLimit is the first value that no longer fits NUMERIC(18,2).
var moneyLimit = decimal.New(1, 16)

// StorableAmount reports whether d is stored as NUMERIC(18,2) without
// rounding or overflow.
func StorableAmount(d decimal.Decimal) bool {
	return d.Equal(d.Round(2)) && d.Abs().LessThan(moneyLimit)
}

// AcceptsInvestments reports whether new investments may be recorded against p.
func (p *Proposal) AcceptsInvestments() bool {
	return p.Status == StatusActive
}

// GoalReached reports whether the running total has met the funding goal.
func (p *Proposal) GoalReached() bool {
	return p.TotalFunded.GreaterThanOrEqual(p.AmountAsked)
}

// Fund applies one committed investment of amount to the running totals and
// flips the status to FUNDED once the goal is met. FUNDED is never reverted.
func (p *Proposal) Fund(amount decimal.Decimal) {
	p.TotalFunded = p.TotalFunded.Add(amount)
	p.InvestorCount++

	if p.GoalReached() {
		p.Status = StatusFunded
	}
}
