package proposal

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundexio/fundexio/internal/http/auth"
	"github.com/fundexio/fundexio/internal/http/request"
	"github.com/fundexio/fundexio/internal/principal"
	"github.com/fundexio/fundexio/internal/proposal"
)

type Handler struct {
	svc *proposal.Service
}

func NewHandler(svc *proposal.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the catalogue. Reads are public; authenticate guards creation.
func (h *Handler) Routes(r chi.Router, authenticate func(http.Handler) http.Handler) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)

	r.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Use(auth.RequireRole(principal.RoleBusiness))
		r.Post("/", h.create)
	})
}

type createProposalRequest struct {
	Title            string          `json:"title" validate:"required,min=5"`
	Description      string          `json:"description" validate:"required,min=20"`
	ShortDescription string          `json:"short_description" validate:"required,max=150"`
	AmountAsked      decimal.Decimal `json:"amount_asked" validate:"gte=1"`
	EquityOffered    decimal.Decimal `json:"equity_offered" validate:"gte=0,lte=100"`
	Industry         string          `json:"industry" validate:"required"`
	FundingStage     string          `json:"funding_stage" validate:"required"`
	Images           []string        `json:"images" validate:"omitempty,dive,url"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "user authentication required", http.StatusUnauthorized)
		return
	}

	var req createProposalRequest
	if err := request.Decode(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), actor, proposal.CreateParams{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		AmountAsked:      req.AmountAsked,
		EquityOffered:    req.EquityOffered,
		Industry:         req.Industry,
		FundingStage:     req.FundingStage,
		Images:           req.Images,
	})
	if err != nil {
		switch {
		case errors.Is(err, proposal.ErrForbidden):
			http.Error(w, err.Error(), http.StatusForbidden)
		case errors.Is(err, proposal.ErrInvalid):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			slog.Error("failed to create proposal", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(ToResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	proposals, err := h.svc.List(r.Context(), proposal.ListFilter{
		Industry:     q.Get("industry"),
		FundingStage: q.Get("funding_stage"),
		Search:       q.Get("search"),
	})
	if err != nil {
		slog.Error("failed to list proposals", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ToResponseList(proposals)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, proposal.ErrNotFound) {
			http.Error(w, "proposal not found", http.StatusNotFound)
			return
		}

		slog.Error("failed to get proposal", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ToResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
