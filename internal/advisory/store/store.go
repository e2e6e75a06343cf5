package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fundexio/fundexio/internal/advisory"
	"github.com/fundexio/fundexio/internal/notification"
	notificationStore "github.com/fundexio/fundexio/internal/notification/store"
)

const offeringColumns = `s.id, s.advisor_id, s.title, s.description, s.price, s.duration, s.tags,
	s.is_active, s.created_at, s.updated_at`

const bookingColumns = `b.id, b.service_id, b.client_id, b.advisor_id, b.scheduled_at, b.status,
	b.notes, b.meeting_link, b.created_at, b.updated_at, s.title, s.duration`

type scanner interface {
	Scan(dest ...any) error
}

func scanOffering(sc scanner) (*advisory.Offering, error) {
	var (
		o           advisory.Offering
		description sql.NullString
		tags        []byte
	)

	if err := sc.Scan(
		&o.ID, &o.AdvisorID, &o.Title, &description, &o.Price, &o.Duration, &tags,
		&o.IsActive, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(tags, &o.Tags); err != nil {
		return nil, fmt.Errorf("decoding tags: %w", err)
	}

	o.Description = description.String

	return &o, nil
}

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateOffering(ctx context.Context, o *advisory.Offering) error {
	tags := o.Tags
	if tags == nil {
		tags = []string{}
	}

	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("encoding tags: %w", err)
	}

	query := `
		INSERT INTO advisory_services (advisor_id, title, description, price, duration, tags, is_active,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		o.AdvisorID,
		o.Title,
		sql.NullString{String: o.Description, Valid: o.Description != ""},
		o.Price,
		o.Duration,
		string(tagsJSON),
		o.IsActive,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating advisory service: %w", err)
	}

	return nil
}

func (s *Store) ListActiveOfferings(ctx context.Context, tag string) ([]*advisory.Offering, error) {
	query := `SELECT ` + offeringColumns + ` FROM advisory_services s WHERE s.is_active`

	var args []any

	if tag != "" {
		tagJSON, err := json.Marshal([]string{tag})
		if err != nil {
			return nil, fmt.Errorf("encoding tag filter: %w", err)
		}

		args = append(args, string(tagJSON))
		query += ` AND s.tags @> $1::jsonb`
	}

	query += ` ORDER BY s.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing advisory services: %w", err)
	}
	defer rows.Close()

	var offerings []*advisory.Offering

	for rows.Next() {
		o, err := scanOffering(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning advisory service: %w", err)
		}

		offerings = append(offerings, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating advisory service rows: %w", err)
	}

	return offerings, nil
}

func (s *Store) CountActiveOfferings(ctx context.Context, advisorID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM advisory_services WHERE advisor_id = $1 AND is_active`

	var n int
	if err := s.db.QueryRowContext(ctx, query, advisorID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting advisory services: %w", err)
	}

	return n, nil
}

func (s *Store) ListByAdvisor(ctx context.Context, advisorID uuid.UUID) ([]*advisory.Booking, error) {
	return s.listBookings(ctx, `b.advisor_id = $1`, advisorID)
}

func (s *Store) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*advisory.Booking, error) {
	return s.listBookings(ctx, `b.client_id = $1`, clientID)
}

func (s *Store) listBookings(ctx context.Context, where string, id uuid.UUID) ([]*advisory.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM advisory_bookings b
		JOIN advisory_services s ON s.id = b.service_id
		WHERE ` + where + `
		ORDER BY b.scheduled_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*advisory.Booking

	for rows.Next() {
		var (
			b                  advisory.Booking
			statusStr          string
			notes, meetingLink sql.NullString
		)

		if err := rows.Scan(
			&b.ID, &b.OfferingID, &b.ClientID, &b.AdvisorID, &b.ScheduledAt, &statusStr,
			&notes, &meetingLink, &b.CreatedAt, &b.UpdatedAt, &b.OfferingTitle, &b.OfferingDuration,
		); err != nil {
			return nil, fmt.Errorf("scanning booking: %w", err)
		}

		b.Status = advisory.BookingStatus(statusStr)
		b.Notes = notes.String
		b.MeetingLink = meetingLink.String

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating booking rows: %w", err)
	}

	return bookings, nil
}

type bookingTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (advisory.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning booking tx: %w", err)
	}

	return &bookingTx{tx: dbTx}, nil
}

func (b *bookingTx) Commit() error   { return b.tx.Commit() }
func (b *bookingTx) Rollback() error { return b.tx.Rollback() }

// GetOffering takes a share lock so the service cannot be deactivated while
// the booking is written.
func (b *bookingTx) GetOffering(ctx context.Context, id uuid.UUID) (*advisory.Offering, error) {
	query := `SELECT ` + offeringColumns + ` FROM advisory_services s WHERE s.id = $1 FOR SHARE`

	o, err := scanOffering(b.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, advisory.ErrOfferingNotFound
		}

		return nil, fmt.Errorf("getting advisory service: %w", err)
	}

	return o, nil
}

func (b *bookingTx) CreateBooking(ctx context.Context, booking *advisory.Booking) error {
	query := `
		INSERT INTO advisory_bookings (service_id, client_id, advisor_id, scheduled_at, status, notes,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := b.tx.QueryRowContext(ctx, query,
		booking.OfferingID,
		booking.ClientID,
		booking.AdvisorID,
		booking.ScheduledAt,
		booking.Status,
		sql.NullString{String: booking.Notes, Valid: booking.Notes != ""},
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating booking: %w", err)
	}

	return nil
}

func (b *bookingTx) CreateNotification(ctx context.Context, intent notification.Intent) error {
	_, err := notificationStore.Insert(ctx, b.tx, intent)
	return err
}
