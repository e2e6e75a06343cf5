package advisory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundexio/fundexio/internal/advisory"
)

type OfferingResponse struct {
	ID          uuid.UUID       `json:"id"`
	AdvisorID   uuid.UUID       `json:"advisor_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"`
	Tags        []string        `json:"tags"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

type BookingResponse struct {
	ID              uuid.UUID              `json:"id"`
	ServiceID       uuid.UUID              `json:"service_id"`
	ServiceTitle    string                 `json:"service_title"`
	ServiceDuration int                    `json:"service_duration"`
	ClientID        uuid.UUID              `json:"client_id"`
	AdvisorID       uuid.UUID              `json:"advisor_id"`
	ScheduledAt     time.Time              `json:"scheduled_at"`
	Status          advisory.BookingStatus `json:"status"`
	Notes           string                 `json:"notes,omitempty"`
	MeetingLink     string                 `json:"meeting_link,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

func ToOfferingResponse(o *advisory.Offering) OfferingResponse {
	tags := o.Tags
	if tags == nil {
		tags = []string{}
	}

	return OfferingResponse{
		ID:          o.ID,
		AdvisorID:   o.AdvisorID,
		Title:       o.Title,
		Description: o.Description,
		Price:       o.Price,
		Duration:    o.Duration,
		Tags:        tags,
		IsActive:    o.IsActive,
		CreatedAt:   o.CreatedAt,
	}
}

func ToBookingResponse(b *advisory.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		ServiceID:       b.OfferingID,
		ServiceTitle:    b.OfferingTitle,
		ServiceDuration: b.OfferingDuration,
		ClientID:        b.ClientID,
		AdvisorID:       b.AdvisorID,
		ScheduledAt:     b.ScheduledAt,
		Status:          b.Status,
		Notes:           b.Notes,
		MeetingLink:     b.MeetingLink,
		CreatedAt:       b.CreatedAt,
	}
}

func ToBookingResponseList(bs []*advisory.Booking) []BookingResponse {
	resp := make([]BookingResponse, len(bs))
	for i, b := range bs {
		resp[i] = ToBookingResponse(b)
	}

	return resp
}
