package investment_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundexio/fundexio/internal/investment"
	"github.com/fundexio/fundexio/internal/principal"
	"github.com/fundexio/fundexio/internal/proposal"
)

func newProposal(asked, funded int64, status proposal.Status) proposal.Proposal {
	return proposal.Proposal{
		ID:          uuid.New(),
		CreatedBy:   uuid.New(),
		Title:       "Vertical Farming Co",
		Industry:    "Agriculture",
		AmountAsked: decimal.NewFromInt(asked),
		TotalFunded: decimal.NewFromInt(funded),
		Status:      status,
	}
}

func invest(t *testing.T, svc *investment.Service, actor principal.Principal, proposalID uuid.UUID, amount int64) (*investment.Investment, error) {
	t.Helper()

	return svc.Create(context.Background(), actor, investment.CreateParams{
		ProposalID: proposalID,
		Amount:     decimal.NewFromInt(amount),
	})
}

func TestLedger_GoalReachedInOneInvestment(t *testing.T) {
	p := newProposal(1000, 0, proposal.StatusActive)
	ledger := newMemLedger(p)
	svc := investment.NewService(ledger)
	investor := principal.New(uuid.New(), principal.RoleInvestor)

	inv, err := invest(t, svc, investor, p.ID, 1000)
	require.NoError(t, err)
	assert.Equal(t, investment.StatusCompleted, inv.Status)

	got := ledger.proposal(p.ID)
	assert.True(t, got.TotalFunded.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, 1, got.InvestorCount)
	assert.Equal(t, proposal.StatusFunded, got.Status)

	_, notes := ledger.committed()
	require.Len(t, notes, 1)
	assert.Equal(t, p.CreatedBy, notes[0].RecipientID)
}

func TestLedger_FundedProposalRejectsInvestment(t *testing.T) {
	p := newProposal(1000, 1000, proposal.StatusFunded)
	p.InvestorCount = 4
	ledger := newMemLedger(p)
	svc := investment.NewService(ledger)

	_, err := invest(t, svc, principal.New(uuid.New(), principal.RoleInvestor), p.ID, 100)
	assert.ErrorIs(t, err, investment.ErrProposalNotActive)

	assert.Equal(t, p, ledger.proposal(p.ID))

	invs, notes := ledger.committed()
	assert.Empty(t, invs)
	assert.Empty(t, notes)
}

func TestLedger_UnknownProposal(t *testing.T) {
	ledger := newMemLedger()
	svc := investment.NewService(ledger)

	_, err := invest(t, svc, principal.New(uuid.New(), principal.RoleInvestor), uuid.New(), 500)
	assert.ErrorIs(t, err, investment.ErrProposalNotFound)

	invs, notes := ledger.committed()
	assert.Empty(t, invs)
	assert.Empty(t, notes)
}

func TestLedger_BelowGoalStaysActive(t *testing.T) {
	p := newProposal(1000, 900, proposal.StatusActive)
	ledger := newMemLedger(p)
	svc := investment.NewService(ledger)

	_, err := invest(t, svc, principal.New(uuid.New(), principal.RoleInvestor), p.ID, 50)
	require.NoError(t, err)

	got := ledger.proposal(p.ID)
	assert.True(t, got.TotalFunded.Equal(decimal.NewFromInt(950)))
	assert.Equal(t, proposal.StatusActive, got.Status)
}

func TestLedger_NotificationFailureRollsBackEverything(t *testing.T) {
	p := newProposal(1000, 0, proposal.StatusActive)
	ledger := newMemLedger(p)
	ledger.failNotification = errNotificationsDown
	svc := investment.NewService(ledger)

	_, err := invest(t, svc, principal.New(uuid.New(), principal.RoleInvestor), p.ID, 1000)
	assert.ErrorIs(t, err, errNotificationsDown)

	got := ledger.proposal(p.ID)
	assert.True(t, got.TotalFunded.IsZero())
	assert.Zero(t, got.InvestorCount)
	assert.Equal(t, proposal.StatusActive, got.Status)

	invs, notes := ledger.committed()
	assert.Empty(t, invs)
	assert.Empty(t, notes)
}

func TestLedger_SubCentInvestmentCannotStrandGoal(t *testing.T) {
	p := newProposal(1000, 0, proposal.StatusActive)
	p.TotalFunded = decimal.RequireFromString("899.99")
	ledger := newMemLedger(p)
	svc := investment.NewService(ledger)
	investor := principal.New(uuid.New(), principal.RoleInvestor)

	_, err := svc.Create(context.Background(), investor, investment.CreateParams{
		ProposalID: p.ID,
		Amount:     decimal.RequireFromString("100.005"),
	})
	assert.ErrorIs(t, err, investment.ErrInvalidAmount)
	assert.Equal(t, p, ledger.proposal(p.ID))

	_, err = svc.Create(context.Background(), investor, investment.CreateParams{
		ProposalID: p.ID,
		Amount:     decimal.RequireFromString("100.01"),
	})
	require.NoError(t, err)

	got := ledger.proposal(p.ID)
	assert.True(t, got.TotalFunded.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, proposal.StatusFunded, got.Status)
}

func TestLedger_RepeatedInvestmentIsNotDeduplicated(t *testing.T) {
	p := newProposal(10000, 0, proposal.StatusActive)
	ledger := newMemLedger(p)
	svc := investment.NewService(ledger)
	investor := principal.New(uuid.New(), principal.RoleInvestor)

	first, err := invest(t, svc, investor, p.ID, 300)
	require.NoError(t, err)

	second, err := invest(t, svc, investor, p.ID, 300)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	got := ledger.proposal(p.ID)
	assert.True(t, got.TotalFunded.Equal(decimal.NewFromInt(600)))
	// One investor, two investments: the count is per investment.
	assert.Equal(t, 2, got.InvestorCount)

	portfolio, err := svc.Portfolio(context.Background(), investor)
	require.NoError(t, err)
	require.Len(t, portfolio, 2)
	assert.Equal(t, second.ID, portfolio[0].ID)
	assert.Equal(t, p.Title, portfolio[0].Proposal.Title)
}

func TestLedger_ConcurrentInvestmentsSerialize(t *testing.T) {
	const (
		n      = 50
		amount = 100
	)

	p := newProposal(n*amount, 0, proposal.StatusActive)
	ledger := newMemLedger(p)
	svc := investment.NewService(ledger)

	var wg sync.WaitGroup

	errs := make(chan error, n)

	for range n {
		wg.Go(func() {
			_, err := invest(t, svc, principal.New(uuid.New(), principal.RoleInvestor), p.ID, amount)
			errs <- err
		})
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	got := ledger.proposal(p.ID)
	assert.True(t, got.TotalFunded.Equal(decimal.NewFromInt(n*amount)), "total funded %s", got.TotalFunded)
	assert.Equal(t, n, got.InvestorCount)
	assert.Equal(t, proposal.StatusFunded, got.Status)

	invs, notes := ledger.committed()
	total, count := fundedSum(invs, p.ID)
	assert.True(t, total.Equal(got.TotalFunded))
	assert.Equal(t, got.InvestorCount, count)
	assert.Len(t, notes, n)
}

func TestLedger_ConcurrentOversubscriptionStopsAtFunded(t *testing.T) {
	const (
		n      = 20
		amount = 100
		asked  = 1000
	)

	p := newProposal(asked, 0, proposal.StatusActive)
	ledger := newMemLedger(p)
	svc := investment.NewService(ledger)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok       int
		rejected int
	)

	for range n {
		wg.Go(func() {
			_, err := invest(t, svc, principal.New(uuid.New(), principal.RoleInvestor), p.ID, amount)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				ok++
			case assert.ErrorIs(t, err, investment.ErrProposalNotActive):
				rejected++
			}
		})
	}

	wg.Wait()

	assert.Equal(t, asked/amount, ok)
	assert.Equal(t, n-asked/amount, rejected)

	got := ledger.proposal(p.ID)
	assert.True(t, got.TotalFunded.Equal(decimal.NewFromInt(asked)))
	assert.Equal(t, asked/amount, got.InvestorCount)
	assert.Equal(t, proposal.StatusFunded, got.Status)

	invs, _ := ledger.committed()
	total, count := fundedSum(invs, p.ID)
	assert.True(t, total.Equal(got.TotalFunded))
	assert.Equal(t, got.InvestorCount, count)
}
