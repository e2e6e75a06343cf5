package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundexio/fundexio/internal/advisory"
	"github.com/fundexio/fundexio/internal/investment"
	"github.com/fundexio/fundexio/internal/loan"
	"github.com/fundexio/fundexio/internal/principal"
	"github.com/fundexio/fundexio/internal/proposal"
)

const (
	recentProposals   = 3
	recentInvestments = 5
)

//go:generate mockgen -source=service.go -destination=sources_mock.go -package=dashboard
type Proposals interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*proposal.Proposal, error)
}

type Portfolios interface {
	Summarize(ctx context.Context, actor principal.Principal, recent int) (*investment.Summary, error)
}

type Notifications interface {
	UnreadCount(ctx context.Context, actor principal.Principal) (int, error)
}

type Loans interface {
	ActiveLoans(ctx context.Context, actor principal.Principal) (int, error)
	BankerSummary(ctx context.Context, actor principal.Principal) (*loan.BankerSummary, error)
}

type Advisory interface {
	AdvisorSummary(ctx context.Context, actor principal.Principal) (*advisory.AdvisorSummary, error)
}

// Stats is the dashboard for one user. At most one role section is set;
// admins only get the common section.
type Stats struct {
	Role                principal.Role
	UnreadNotifications int
	Business            *BusinessStats
	Investor            *InvestorStats
	Banker              *BankerStats
	Advisor             *AdvisorStats
}

type BusinessStats struct {
	TotalProposals       int
	TotalFundingReceived decimal.Decimal
	ActiveLoans          int
	RecentProposals      []*proposal.Proposal
}

type InvestorStats struct {
	TotalInvested   decimal.Decimal
	NumberOfDeals   int
	RecentPortfolio []*investment.PortfolioEntry
}

type BankerStats struct {
	ActiveLoanProducts  int
	PendingApplications int
	TotalApplications   int
}

type AdvisorStats struct {
	ActiveServices   int
	TotalBookings    int
	PendingSessions  []*advisory.Booking
	UpcomingSessions []*advisory.Booking
	NextSession      *advisory.Booking
}

type Service struct {
	proposals     Proposals
	portfolios    Portfolios
	notifications Notifications
	loans         Loans
	advisors      Advisory
}

func NewService(proposals Proposals, portfolios Portfolios, notifications Notifications, loans Loans, advisors Advisory) *Service {
	return &Service{
		proposals:     proposals,
		portfolios:    portfolios,
		notifications: notifications,
		loans:         loans,
		advisors:      advisors,
	}
}

func (s *Service) Stats(ctx context.Context, actor principal.Principal) (*Stats, error) {
	unread, err := s.notifications.UnreadCount(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("counting unread notifications: %w", err)
	}

	stats := &Stats{Role: actor.Role, UnreadNotifications: unread}

	switch actor.Role {
	case principal.RoleBusiness:
		proposals, err := s.proposals.ListByOwner(ctx, actor.ID)
		if err != nil {
			return nil, fmt.Errorf("listing owned proposals: %w", err)
		}

		received := decimal.Zero
		for _, p := range proposals {
			received = received.Add(p.TotalFunded)
		}

		activeLoans, err := s.loans.ActiveLoans(ctx, actor)
		if err != nil {
			return nil, fmt.Errorf("counting active loans: %w", err)
		}

		stats.Business = &BusinessStats{
			TotalProposals:       len(proposals),
			TotalFundingReceived: received,
			ActiveLoans:          activeLoans,
			RecentProposals:      proposals[:min(recentProposals, len(proposals))],
		}
	case principal.RoleInvestor:
		summary, err := s.portfolios.Summarize(ctx, actor, recentInvestments)
		if err != nil {
			return nil, fmt.Errorf("summarizing portfolio: %w", err)
		}

		stats.Investor = &InvestorStats{
			TotalInvested:   summary.TotalInvested,
			NumberOfDeals:   summary.Deals,
			RecentPortfolio: summary.Recent,
		}
	case principal.RoleBanker:
		summary, err := s.loans.BankerSummary(ctx, actor)
		if err != nil {
			return nil, fmt.Errorf("summarizing loan book: %w", err)
		}

		stats.Banker = &BankerStats{
			ActiveLoanProducts:  summary.ActiveProducts,
			PendingApplications: summary.PendingApplications,
			TotalApplications:   summary.TotalApplications,
		}
	case principal.RoleAdvisor:
		summary, err := s.advisors.AdvisorSummary(ctx, actor)
		if err != nil {
			return nil, fmt.Errorf("summarizing advisory schedule: %w", err)
		}

		stats.Advisor = &AdvisorStats{
			ActiveServices:   summary.ActiveServices,
			TotalBookings:    summary.TotalBookings,
			PendingSessions:  summary.Pending,
			UpcomingSessions: summary.Upcoming,
			NextSession:      summary.Next,
		}
	}

	return stats, nil
}
