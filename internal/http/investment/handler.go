package investment

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundexio/fundexio/internal/http/auth"
	"github.com/fundexio/fundexio/internal/http/request"
	"github.com/fundexio/fundexio/internal/investment"
	"github.com/fundexio/fundexio/internal/principal"
	"github.com/fundexio/fundexio/internal/proposal"
)

type Handler struct {
	svc           *investment.Service
	minInvestment decimal.Decimal
}

// NewHandler builds the investment endpoints. Amounts below minInvestment are
// rejected before reaching the ledger.
func NewHandler(svc *investment.Service, minInvestment decimal.Decimal) *Handler {
	return &Handler{svc: svc, minInvestment: minInvestment}
}

// Routes expects to be mounted behind auth.Authenticate.
func (h *Handler) Routes(r chi.Router) {
	r.With(auth.RequireRole(principal.RoleInvestor)).Post("/", h.create)
	r.Get("/my-portfolio", h.portfolio)
}

type createInvestmentRequest struct {
	ProposalID    string          `json:"proposal_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"gt=0"`
	Remarks       string          `json:"remarks" validate:"max=500"`
	TransactionID string          `json:"transaction_id" validate:"max=100"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "user authentication required", http.StatusUnauthorized)
		return
	}

	var req createInvestmentRequest
	if err := request.Decode(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !proposal.StorableAmount(req.Amount) {
		http.Error(w, investment.ErrInvalidAmount.Error(), http.StatusBadRequest)
		return
	}

	if req.Amount.LessThan(h.minInvestment) {
		http.Error(w, fmt.Sprintf("minimum investment amount is $%s", h.minInvestment.StringFixed(2)), http.StatusBadRequest)
		return
	}

	// An unparsable ID cannot reference any proposal.
	proposalID, err := uuid.Parse(req.ProposalID)
	if err != nil {
		http.Error(w, investment.ErrProposalNotFound.Error(), http.StatusNotFound)
		return
	}

	inv, err := h.svc.Create(r.Context(), actor, investment.CreateParams{
		ProposalID:    proposalID,
		Amount:        req.Amount,
		Remarks:       req.Remarks,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		writeCreateError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(ToResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeCreateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, investment.ErrProposalNotFound):
		http.Error(w, investment.ErrProposalNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, investment.ErrProposalNotActive):
		http.Error(w, investment.ErrProposalNotActive.Error(), http.StatusConflict)
	case errors.Is(err, investment.ErrInvalidAmount):
		http.Error(w, investment.ErrInvalidAmount.Error(), http.StatusBadRequest)
	case errors.Is(err, investment.ErrForbidden):
		http.Error(w, investment.ErrForbidden.Error(), http.StatusForbidden)
	case errors.Is(err, investment.ErrConflict):
		slog.Warn("funding conflict persisted after retries", "error", err)
		w.Header().Set("Retry-After", "1")
		http.Error(w, "proposal is busy, please retry", http.StatusServiceUnavailable)
	default:
		slog.Error("failed to create investment", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) portfolio(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "user authentication required", http.StatusUnauthorized)
		return
	}

	entries, err := h.svc.Portfolio(r.Context(), actor)
	if err != nil {
		slog.Error("failed to load portfolio", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ToPortfolioResponse(entries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
