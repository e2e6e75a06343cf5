package investment_test

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundexio/fundexio/internal/investment"
	"github.com/fundexio/fundexio/internal/notification"
	"github.com/fundexio/fundexio/internal/proposal"
)

// memLedger is an in-memory Repository whose FundingTx holds a per-proposal
// lock from LockProposal until Commit or Rollback, like SELECT ... FOR UPDATE.
type memLedger struct {
	mu            sync.Mutex
	locks         map[uuid.UUID]*sync.Mutex
	proposals     map[uuid.UUID]proposal.Proposal
	investments   []investment.Investment
	notifications []notification.Intent

	failNotification error
}

func newMemLedger(proposals ...proposal.Proposal) *memLedger {
	l := &memLedger{
		locks:     make(map[uuid.UUID]*sync.Mutex),
		proposals: make(map[uuid.UUID]proposal.Proposal),
	}

	for _, p := range proposals {
		l.locks[p.ID] = &sync.Mutex{}
		l.proposals[p.ID] = p
	}

	return l
}

func (l *memLedger) BeginFunding(context.Context) (investment.FundingTx, error) {
	return &memTx{ledger: l}, nil
}

func (l *memLedger) ListByInvestor(_ context.Context, investorID uuid.UUID) ([]*investment.PortfolioEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var entries []*investment.PortfolioEntry

	for _, inv := range slices.Backward(l.investments) {
		if inv.InvestorID != investorID {
			continue
		}

		p := l.proposals[inv.ProposalID]
		entries = append(entries, &investment.PortfolioEntry{
			Investment: inv,
			Proposal:   investment.ProposalSnapshot{Title: p.Title, Industry: p.Industry, Status: p.Status},
		})
	}

	return entries, nil
}

func (l *memLedger) proposal(id uuid.UUID) proposal.Proposal {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.proposals[id]
}

func (l *memLedger) committed() ([]investment.Investment, []notification.Intent) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.Clone(l.investments), slices.Clone(l.notifications)
}

type memTx struct {
	ledger *memLedger
	held   *sync.Mutex
	done   bool

	proposal      *proposal.Proposal
	investments   []investment.Investment
	notifications []notification.Intent
}

func (t *memTx) LockProposal(_ context.Context, id uuid.UUID) (*proposal.Proposal, error) {
	t.ledger.mu.Lock()
	lock, ok := t.ledger.locks[id]
	t.ledger.mu.Unlock()

	if !ok {
		return nil, investment.ErrProposalNotFound
	}

	lock.Lock()
	t.held = lock

	p := t.ledger.proposal(id)

	return &p, nil
}

func (t *memTx) CreateInvestment(_ context.Context, inv *investment.Investment) error {
	inv.ID = uuid.New()
	inv.CreatedAt = time.Now()
	inv.UpdatedAt = inv.CreatedAt
	t.investments = append(t.investments, *inv)

	return nil
}

func (t *memTx) UpdateFunding(_ context.Context, p *proposal.Proposal) error {
	staged := *p
	t.proposal = &staged

	return nil
}

func (t *memTx) CreateNotification(_ context.Context, intent notification.Intent) error {
	if t.ledger.failNotification != nil {
		return t.ledger.failNotification
	}

	t.notifications = append(t.notifications, intent)

	return nil
}

func (t *memTx) Commit() error {
	if t.done {
		return sql.ErrTxDone
	}

	t.ledger.mu.Lock()
	if t.proposal != nil {
		t.ledger.proposals[t.proposal.ID] = *t.proposal
	}

	t.ledger.investments = append(t.ledger.investments, t.investments...)
	t.ledger.notifications = append(t.ledger.notifications, t.notifications...)
	t.ledger.mu.Unlock()

	t.finish()

	return nil
}

func (t *memTx) Rollback() error {
	if t.done {
		return sql.ErrTxDone
	}

	t.finish()

	return nil
}

func (t *memTx) finish() {
	t.done = true

	if t.held != nil {
		t.held.Unlock()
		t.held = nil
	}
}

// fundedSum totals committed amounts per proposal.
func fundedSum(invs []investment.Investment, proposalID uuid.UUID) (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0

	for _, inv := range invs {
		if inv.ProposalID != proposalID || inv.Status != investment.StatusCompleted {
			continue
		}

		total = total.Add(inv.Amount)
		count++
	}

	return total, count
}

var errNotificationsDown = errors.New("notifications unavailable")
