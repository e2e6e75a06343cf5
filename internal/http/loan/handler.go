package loan

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
	"github.com/fundexio/fundexio/internal/loan"
	"github.com/fundexio/fundexio/internal/principal"
)

type Handler struct {
	svc *loan.Service
}

func NewHandler(svc *loan.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the loan marketplace. Browsing products is public.
func (h *Handler) Routes(r chi.Router, authenticate func(http.Handler) http.Handler) {
	r.Get("/", h.listProducts)

	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.With(auth.RequireRole(principal.RoleBusiness)).Post("/apply", h.apply)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(principal.RoleBanker))
			r.Post("/", h.createProduct)
			r.Get("/applications", h.applications)
			r.Patch("/applications/{id}/status", h.decide)
		})
	})
}

type createProductRequest struct {
	Title          string           `json:"title" validate:"required,min=3"`
	BankName       string           `json:"bank_name" validate:"required"`
	MinAmount      decimal.Decimal  `json:"min_amount" validate:"gte=1000"`
	MaxAmount      decimal.Decimal  `json:"max_amount" validate:"gte=1000"`
	InterestRate   string           `json:"interest_rate" validate:"required"`
	Tenure         string           `json:"tenure" validate:"required"`
	ProcessingTime string           `json:"processing_time" validate:"required"`
	Description    string           `json:"description"`
	Type           loan.ProductType `json:"type" validate:"omitempty,oneof=TERM_LOAN LINE_OF_CREDIT EQUIPMENT_FINANCING"`
}

type applyRequest struct {
	ProductID uuid.UUID       `json:"loan_product_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount_requested" validate:"gte=1000"`
	Notes     string          `json:"notes" validate:"max=2000"`
}

type decideRequest struct {
	Status loan.ApplicationStatus `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "user authentication required", http.StatusUnauthorized)
		return
	}

	var req createProductRequest
	if err := request.Decode(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.CreateProduct(r.Context(), actor, loan.ProductParams{
		Title:          req.Title,
		BankName:       req.BankName,
		MinAmount:      req.MinAmount,
		MaxAmount:      req.MaxAmount,
		InterestRate:   req.InterestRate,
		Tenure:         req.Tenure,
		ProcessingTime: req.ProcessingTime,
		Description:    req.Description,
		Type:           req.Type,
	})
	if err != nil {
		writeError(w, "failed to create loan product", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(ToProductResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		slog.Error("failed to list loan products", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := make([]ProductResponse, len(products))
	for i, p := range products {
		resp[i] = ToProductResponse(p)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) apply(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "user authentication required", http.StatusUnauthorized)
		return
	}

	var req applyRequest
	if err := request.Decode(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	app, err := h.svc.Apply(r.Context(), actor, loan.ApplyParams{
		ProductID: req.ProductID,
		Amount:    req.Amount,
		Notes:     req.Notes,
	})
	if err != nil {
		writeError(w, "failed to apply for loan", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(ToApplicationResponse(app)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) applications(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "user authentication required", http.StatusUnauthorized)
		return
	}

	apps, err := h.svc.Applications(r.Context(), actor)
	if err != nil {
		writeError(w, "failed to list loan applications", err)
		return
	}

	resp := make([]ApplicationResponse, len(apps))
	for i, a := range apps {
		resp[i] = ToApplicationResponse(a)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "user authentication required", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req decideRequest
	if err := request.Decode(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	app, err := h.svc.Decide(r.Context(), actor, id, req.Status)
	if err != nil {
		writeError(w, "failed to decide loan application", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ToApplicationResponse(app)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, loan.ErrProductNotFound), errors.Is(err, loan.ErrApplicationNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, loan.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, loan.ErrInvalid):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error(msg, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
