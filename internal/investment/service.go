package investment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundexio/fundexio/internal/metrics"
	"github.com/fundexio/fundexio/internal/notification"
	"github.com/fundexio/fundexio/internal/principal"
	"github.com/fundexio/fundexio/internal/proposal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=investment
type Repository interface {
	BeginFunding(ctx context.Context) (FundingTx, error)
	ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]*PortfolioEntry, error)
}

// FundingTx is one all-or-nothing unit of work against the ledger.
// LockProposal must hold the proposal row until Commit or Rollback so that
// concurrent funding of the same proposal serializes.
type FundingTx interface {
	LockProposal(ctx context.Context, id uuid.UUID) (*proposal.Proposal, error)
	CreateInvestment(ctx context.Context, inv *Investment) error
	UpdateFunding(ctx context.Context, p *proposal.Proposal) error
	CreateNotification(ctx context.Context, intent notification.Intent) error
	Commit() error
	Rollback() error
}

const DefaultMaxAttempts = 3

type Service struct {
	repo        Repository
	maxAttempts int
}

type Option func(*Service)

// WithMaxAttempts bounds how many times a conflicting funding transaction is
// run before ErrConflict is surfaced. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(s *Service) {
		if n >= 1 {
			s.maxAttempts = n
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo, maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type CreateParams struct {
	ProposalID    uuid.UUID
	Amount        decimal.Decimal
	Remarks       string
	TransactionID string
}

// Create records an investment by actor and applies it to the proposal's
// funding totals. The investment row, the proposal update and the owner's
// notification commit together or not at all.
func (s *Service) Create(ctx context.Context, actor principal.Principal, params CreateParams) (*Investment, error) {
	if !actor.Is(principal.RoleInvestor) {
		metrics.RecordInvestment(metrics.ResultRejected, params.Amount)
		return nil, ErrForbidden
	}

	// The goal check must see the value NUMERIC(18,2) will store.
	if !params.Amount.IsPositive() || !proposal.StorableAmount(params.Amount) {
		metrics.RecordInvestment(metrics.ResultRejected, params.Amount)
		return nil, ErrInvalidAmount
	}

	var (
		inv    *Investment
		funded bool
		err    error
	)

	for attempt := 1; ; attempt++ {
		inv, funded, err = s.fund(ctx, actor.ID, params)
		if !errors.Is(err, ErrConflict) || attempt >= s.maxAttempts {
			break
		}

		metrics.RecordFundingRetry()
		slog.Warn("retrying funding transaction",
			"proposal_id", params.ProposalID, "attempt", attempt, "error", err)
	}

	if err != nil {
		metrics.RecordInvestment(resultOf(err), params.Amount)
		return nil, err
	}

	metrics.RecordInvestment(metrics.ResultCommitted, params.Amount)

	if funded {
		metrics.RecordProposalFunded()
		slog.Info("proposal fully funded", "proposal_id", params.ProposalID)
	}

	return inv, nil
}

func (s *Service) fund(ctx context.Context, investorID uuid.UUID, params CreateParams) (*Investment, bool, error) {
	ftx, err := s.repo.BeginFunding(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin funding: %w", err)
	}
	defer ftx.Rollback()

	p, err := ftx.LockProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, false, fmt.Errorf("lock proposal: %w", err)
	}

	if !p.AcceptsInvestments() {
		return nil, false, ErrProposalNotActive
	}

	inv := &Investment{
		InvestorID:    investorID,
		ProposalID:    p.ID,
		Amount:        params.Amount,
		Status:        StatusCompleted,
		TransactionID: params.TransactionID,
		Remarks:       params.Remarks,
	}
	if err := ftx.CreateInvestment(ctx, inv); err != nil {
		return nil, false, fmt.Errorf("record investment: %w", err)
	}

	p.Fund(params.Amount)

	if err := ftx.UpdateFunding(ctx, p); err != nil {
		return nil, false, fmt.Errorf("update proposal funding: %w", err)
	}

	intent := notification.InvestmentReceived(p.CreatedBy, params.Amount, p.Title)
	if err := ftx.CreateNotification(ctx, intent); err != nil {
		return nil, false, fmt.Errorf("notify proposal owner: %w", err)
	}

	if err := ftx.Commit(); err != nil {
		return nil, false, fmt.Errorf("commit funding: %w", err)
	}

	return inv, p.Status == proposal.StatusFunded, nil
}

func resultOf(err error) string {
	switch {
	case errors.Is(err, ErrConflict):
		return metrics.ResultConflict
	case errors.Is(err, ErrProposalNotFound), errors.Is(err, ErrProposalNotActive):
		return metrics.ResultRejected
	default:
		return metrics.ResultError
	}
}

// Portfolio lists every investment made by actor, newest first, each with a
// snapshot of the proposal it funds.
func (s *Service) Portfolio(ctx context.Context, actor principal.Principal) ([]*PortfolioEntry, error) {
	return s.repo.ListByInvestor(ctx, actor.ID)
}

// Summarize totals actor's portfolio and keeps the most recent entries.
func (s *Service) Summarize(ctx context.Context, actor principal.Principal, recent int) (*Summary, error) {
	entries, err := s.repo.ListByInvestor(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	sum := &Summary{TotalInvested: decimal.Zero, Deals: len(entries)}
	for _, e := range entries {
		sum.TotalInvested = sum.TotalInvested.Add(e.Amount)
	}

	sum.Recent = entries[:max(0, min(recent, len(entries)))]

	return sum, nil
}
