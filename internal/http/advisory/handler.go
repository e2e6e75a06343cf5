package advisory

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundexio/fundexio/internal/advisory"
	"github.com/fundexio/fundexio/internal/http/auth"
	"github.com/fundexio/fundexio/internal/http/request"
	"github.com/fundexio/fundexio/internal/principal"
)

type Handler struct {
	svc *advisory.Service
}

func NewHandler(svc *advisory.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the advisory marketplace. Browsing services is public.
func (h *Handler) Routes(r chi.Router, authenticate func(http.Handler) http.Handler) {
	r.Get("/", h.listOfferings)

	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/bookings", h.bookings)
		r.With(auth.RequireRole(principal.RoleAdvisor)).Post("/services", h.createOffering)
		r.With(auth.RequireRole(principal.RoleBusiness, principal.RoleInvestor)).Post("/book", h.book)
	})
}

type createOfferingRequest struct {
	Title       string          `json:"title" validate:"required,min=5"`
	Description string          `json:"description" validate:"required,min=10"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	Duration    int             `json:"duration" validate:"omitempty,gte=15"`
	Tags        []string        `json:"tags" validate:"max=10,dive,required,max=30"`
}

type bookRequest struct {
	ServiceID   uuid.UUID `json:"service_id" validate:"required"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Notes       string    `json:"notes" validate:"max=2000"`
}

func (h *Handler) createOffering(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "user authentication required", http.StatusUnauthorized)
		return
	}

	var req createOfferingRequest
	if err := request.Decode(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	o, err := h.svc.CreateOffering(r.Context(), actor, advisory.OfferingParams{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Tags:        req.Tags,
	})
	if err != nil {
		writeError(w, "failed to create advisory service", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(ToOfferingResponse(o)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listOfferings(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.svc.ListOfferings(r.Context(), r.URL.Query().Get("tag"))
	if err != nil {
		slog.Error("failed to list advisory services", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := make([]OfferingResponse, len(offerings))
	for i, o := range offerings {
		resp[i] = ToOfferingResponse(o)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) book(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "user authentication required", http.StatusUnauthorized)
		return
	}

	var req bookRequest
	if err := request.Decode(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.Book(r.Context(), actor, advisory.BookParams{
		OfferingID:  req.ServiceID,
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
	})
	if err != nil {
		writeError(w, "failed to book session", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(ToBookingResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) bookings(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "user authentication required", http.StatusUnauthorized)
		return
	}

	bookings, err := h.svc.Bookings(r.Context(), actor)
	if err != nil {
		writeError(w, "failed to list bookings", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ToBookingResponseList(bookings)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, advisory.ErrOfferingNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, advisory.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, advisory.ErrInvalid):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error(msg, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
