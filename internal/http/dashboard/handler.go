package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/fundexio/fundexio/internal/dashboard"
	advisoryHandler "github.com/fundexio/fundexio/internal/http/advisory"
	"github.com/fundexio/fundexio/internal/http/auth"
	investmentHandler "github.com/fundexio/fundexio/internal/http/investment"
	proposalHandler "github.com/fundexio/fundexio/internal/http/proposal"
	"github.com/fundexio/fundexio/internal/principal"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes expects to be mounted behind auth.Authenticate.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/stats", h.stats)
}

type statsResponse struct {
	Role                principal.Role    `json:"role"`
	UnreadNotifications int               `json:"unread_notifications"`
	Business            *businessResponse `json:"business,omitempty"`
	Investor            *investorResponse `json:"investor,omitempty"`
	Banker              *bankerResponse   `json:"banker,omitempty"`
	Advisor             *advisorResponse  `json:"advisor,omitempty"`
}

type businessResponse struct {
	TotalProposals       int                        `json:"total_proposals"`
	TotalFundingReceived decimal.Decimal            `json:"total_funding_received"`
	ActiveLoans          int                        `json:"active_loans"`
	RecentProposals      []proposalHandler.Response `json:"recent_proposals"`
}

type investorResponse struct {
	TotalInvested   decimal.Decimal                            `json:"total_invested"`
	NumberOfDeals   int                                        `json:"number_of_deals"`
	RecentPortfolio []investmentHandler.PortfolioEntryResponse `json:"recent_portfolio"`
}

type bankerResponse struct {
	ActiveLoanProducts  int `json:"active_loan_products"`
	PendingApplications int `json:"pending_applications"`
	TotalApplications   int `json:"total_applications"`
}

type advisorResponse struct {
	ActiveServices   int                               `json:"active_services"`
	TotalBookings    int                               `json:"total_bookings"`
	PendingSessions  []advisoryHandler.BookingResponse `json:"pending_sessions"`
	UpcomingSessions []advisoryHandler.BookingResponse `json:"upcoming_sessions"`
	NextSession      *advisoryHandler.BookingResponse  `json:"next_session"`
}

func toStatsResponse(s *dashboard.Stats) statsResponse {
	resp := statsResponse{Role: s.Role, UnreadNotifications: s.UnreadNotifications}

	if b := s.Business; b != nil {
		resp.Business = &businessResponse{
			TotalProposals:       b.TotalProposals,
			TotalFundingReceived: b.TotalFundingReceived,
			ActiveLoans:          b.ActiveLoans,
			RecentProposals:      proposalHandler.ToResponseList(b.RecentProposals),
		}
	}

	if i := s.Investor; i != nil {
		resp.Investor = &investorResponse{
			TotalInvested:   i.TotalInvested,
			NumberOfDeals:   i.NumberOfDeals,
			RecentPortfolio: investmentHandler.ToPortfolioResponse(i.RecentPortfolio),
		}
	}

	if b := s.Banker; b != nil {
		resp.Banker = &bankerResponse{
			ActiveLoanProducts:  b.ActiveLoanProducts,
			PendingApplications: b.PendingApplications,
			TotalApplications:   b.TotalApplications,
		}
	}

	if a := s.Advisor; a != nil {
		resp.Advisor = &advisorResponse{
			ActiveServices:   a.ActiveServices,
			TotalBookings:    a.TotalBookings,
			PendingSessions:  advisoryHandler.ToBookingResponseList(a.PendingSessions),
			UpcomingSessions: advisoryHandler.ToBookingResponseList(a.UpcomingSessions),
		}

		if a.NextSession != nil {
			next := advisoryHandler.ToBookingResponse(a.NextSession)
			resp.Advisor.NextSession = &next
		}
	}

	return resp
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "user authentication required", http.StatusUnauthorized)
		return
	}

	stats, err := h.svc.Stats(r.Context(), actor)
	if err != nil {
		slog.Error("failed to build dashboard stats", "error", err, "role", actor.Role)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toStatsResponse(stats)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
