package advisory

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
)

const (
	DefaultDuration = 60
	MinDuration     = 15
)

var (
	ErrOfferingNotFound = errors.New("service not found")
	ErrForbidden        = errors.New("not authorized for this advisory action")
	ErrInvalid          = errors.New("invalid advisory request")
)

// Offering is a bookable service published by an advisor. Price is per
// session; Duration is in minutes.
type Offering struct {
	ID          uuid.UUID
	AdvisorID   uuid.UUID
	Title       string
	Description string
	Price       decimal.Decimal
	Duration    int
	Tags        []string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Booking struct {
	ID               uuid.UUID
	OfferingID       uuid.UUID
	ClientID         uuid.UUID
	AdvisorID        uuid.UUID
	ScheduledAt      time.Time
	Status           BookingStatus
	Notes            string
	MeetingLink      string
	OfferingTitle    string
	OfferingDuration int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AdvisorSummary is an advisor's schedule at a point in time. Upcoming holds
// confirmed sessions still in the future, soonest first.
type AdvisorSummary struct {
	ActiveServices int
	TotalBookings  int
	Pending        []*Booking
	Upcoming       []*Booking
	Next           *Booking
}
