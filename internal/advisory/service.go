package advisory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundexio/fundexio/internal/metrics"
	"github.com/fundexio/fundexio/internal/notification"
	"github.com/fundexio/fundexio/internal/principal"
	"github.com/fundexio/fundexio/internal/proposal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=advisory
type Repository interface {
	CreateOffering(ctx context.Context, o *Offering) error
	ListActiveOfferings(ctx context.Context, tag string) ([]*Offering, error)
	CountActiveOfferings(ctx context.Context, advisorID uuid.UUID) (int, error)
	ListByAdvisor(ctx context.Context, advisorID uuid.UUID) ([]*Booking, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*Booking, error)
	Begin(ctx context.Context) (Tx, error)
}

// Tx records a booking and the advisor's notification in one transaction.
type Tx interface {
	GetOffering(ctx context.Context, id uuid.UUID) (*Offering, error)
	CreateBooking(ctx context.Context, b *Booking) error
	CreateNotification(ctx context.Context, intent notification.Intent) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now when deciding whether a session lies in the future.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type OfferingParams struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Duration    int
	Tags        []string
}

type BookParams struct {
	OfferingID  uuid.UUID
	ScheduledAt time.Time
	Notes       string
}

// CreateOffering publishes an active service owned by the acting advisor.
// A zero Duration means DefaultDuration.
func (s *Service) CreateOffering(ctx context.Context, actor principal.Principal, params OfferingParams) (*Offering, error) {
	if !actor.Is(principal.RoleAdvisor) {
		return nil, ErrForbidden
	}

	if params.Duration == 0 {
		params.Duration = DefaultDuration
	}

	switch {
	case params.Price.IsNegative() || !proposal.StorableAmount(params.Price):
		return nil, fmt.Errorf("%w: price must be a non-negative whole number of cents", ErrInvalid)
	case params.Duration < MinDuration:
		return nil, fmt.Errorf("%w: duration must be at least %d minutes", ErrInvalid, MinDuration)
	}

	o := &Offering{
		AdvisorID:   actor.ID,
		Title:       params.Title,
		Description: params.Description,
		Price:       params.Price,
		Duration:    params.Duration,
		Tags:        params.Tags,
		IsActive:    true,
	}
	if err := s.repo.CreateOffering(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

// ListOfferings returns active services, newest first, optionally only
// those carrying tag.
func (s *Service) ListOfferings(ctx context.Context, tag string) ([]*Offering, error) {
	return s.repo.ListActiveOfferings(ctx, tag)
}

// Book requests a session with the advisor behind an offering. The booking
// starts PENDING and the advisor is notified in the same transaction.
func (s *Service) Book(ctx context.Context, actor principal.Principal, params BookParams) (*Booking, error) {
	if !actor.Is(principal.RoleBusiness, principal.RoleInvestor) {
		return nil, ErrForbidden
	}

	if !params.ScheduledAt.After(s.now()) {
		return nil, fmt.Errorf("%w: session must be scheduled in the future", ErrInvalid)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin booking: %w", err)
	}
	defer tx.Rollback()

	o, err := tx.GetOffering(ctx, params.OfferingID)
	if err != nil {
		return nil, fmt.Errorf("load offering: %w", err)
	}

	if !o.IsActive {
		return nil, ErrOfferingNotFound
	}

	b := &Booking{
		OfferingID:       o.ID,
		ClientID:         actor.ID,
		AdvisorID:        o.AdvisorID,
		ScheduledAt:      params.ScheduledAt,
		Status:           StatusPending,
		Notes:            params.Notes,
		OfferingTitle:    o.Title,
		OfferingDuration: o.Duration,
	}
	if err := tx.CreateBooking(ctx, b); err != nil {
		return nil, fmt.Errorf("record booking: %w", err)
	}

	intent := notification.SessionRequested(o.AdvisorID, o.Title, params.ScheduledAt)
	if err := tx.CreateNotification(ctx, intent); err != nil {
		return nil, fmt.Errorf("notify advisor: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	metrics.RecordSessionBooked()

	return b, nil
}

// Bookings lists the actor's sessions, soonest first. Advisors see the
// sessions booked with them; everyone else sees the sessions they booked.
func (s *Service) Bookings(ctx context.Context, actor principal.Principal) ([]*Booking, error) {
	if actor.Is(principal.RoleAdvisor) {
		return s.repo.ListByAdvisor(ctx, actor.ID)
	}

	return s.repo.ListByClient(ctx, actor.ID)
}

func (s *Service) AdvisorSummary(ctx context.Context, actor principal.Principal) (*AdvisorSummary, error) {
	active, err := s.repo.CountActiveOfferings(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.ListByAdvisor(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	sum := &AdvisorSummary{ActiveServices: active, TotalBookings: len(bookings)}
	now := s.now()

	for _, b := range bookings {
		switch {
		case b.Status == StatusPending:
			sum.Pending = append(sum.Pending, b)
		case b.Status == StatusConfirmed && b.ScheduledAt.After(now):
			sum.Upcoming = append(sum.Upcoming, b)
		}
	}

	if len(sum.Upcoming) > 0 {
		sum.Next = sum.Upcoming[0]
	}

	return sum, nil
}
