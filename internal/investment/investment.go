package investment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundexio/fundexio/internal/proposal"
)

// Status represents the settlement state of an investment.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

var (
	// ErrProposalNotFound is returned when the referenced proposal does not exist.
	ErrProposalNotFound = errors.New("proposal not found")
	// ErrProposalNotActive is returned when the proposal no longer takes money.
	// Retrying cannot succeed.
	ErrProposalNotActive = errors.New("proposal is no longer accepting investments")
	ErrInvalidAmount     = errors.New("investment amount must be a positive whole number of cents")
	ErrForbidden         = errors.New("only investor accounts can invest")
	// ErrConflict marks a funding transaction aborted by a concurrent writer.
	// It is the only error the service retries.
	ErrConflict = errors.New("funding transaction conflict")
)

// Investment is a single committed funding event against a proposal.
// Completed investments are never updated or deleted.
type Investment struct {
	ID            uuid.UUID
	InvestorID    uuid.UUID
	ProposalID    uuid.UUID
	Amount        decimal.Decimal
	Status        Status
	TransactionID string // Payment gateway reference, passed through untouched
	Remarks       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProposalSnapshot is the slice of a proposal shown next to a portfolio entry.
type ProposalSnapshot struct {
	Title    string
	Industry string
	Status   proposal.Status
}

type PortfolioEntry struct {
	Investment
	Proposal ProposalSnapshot
}

// Summary aggregates an investor's portfolio.
type Summary struct {
	TotalInvested decimal.Decimal
	Deals         int
	Recent        []*PortfolioEntry
}
