package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/fundexio/fundexio/internal/notification"
)

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Insert writes intent through q and returns the stored notification.
// Passing a *sql.Tx makes the write part of the caller's transaction.
func Insert(ctx context.Context, q Querier, intent notification.Intent) (*notification.Notification, error) {
	query := `
		INSERT INTO notifications (recipient_id, title, message, type, link, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, NOW())
		RETURNING id, created_at
	`

	n := &notification.Notification{
		RecipientID: intent.RecipientID,
		Title:       intent.Title,
		Message:     intent.Message,
		Type:        intent.Type,
		Link:        intent.Link,
	}

	link := sql.NullString{String: intent.Link, Valid: intent.Link != ""}

	err := q.QueryRowContext(ctx, query,
		n.RecipientID,
		n.Title,
		n.Message,
		n.Type,
		link,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("creating notification: %w", err)
	}

	return n, nil
}

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*notification.Notification, error) {
	query := `
		SELECT id, recipient_id, title, message, type, link, is_read, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*notification.Notification

	for rows.Next() {
		var n notification.Notification

		var typeStr string

		var link sql.NullString

		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Title, &n.Message, &typeStr, &link, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}

		n.Type = notification.Type(typeStr)
		n.Link = link.String

		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notification rows: %w", err)
	}

	return notifications, nil
}

func (s *Store) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE recipient_id = $1 AND is_read = FALSE
	`

	res, err := s.db.ExecContext(ctx, query, recipientID)
	if err != nil {
		return 0, fmt.Errorf("marking notifications read: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting updated notifications: %w", err)
	}

	return n, nil
}

func (s *Store) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE`

	var count int
	if err := s.db.QueryRowContext(ctx, query, recipientID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting unread notifications: %w", err)
	}

	return count, nil
}
