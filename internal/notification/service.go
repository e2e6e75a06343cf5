package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/fundexio/fundexio/internal/principal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=notification
type Repository interface {
	ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*Notification, error)
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the principal's notifications, newest first.
func (s *Service) List(ctx context.Context, actor principal.Principal) ([]*Notification, error) {
	return s.repo.ListByRecipient(ctx, actor.ID)
}

// MarkAllRead flags every unread notification of the principal as read and
// reports how many changed.
func (s *Service) MarkAllRead(ctx context.Context, actor principal.Principal) (int64, error) {
	return s.repo.MarkAllRead(ctx, actor.ID)
}

func (s *Service) UnreadCount(ctx context.Context, actor principal.Principal) (int, error) {
	return s.repo.CountUnread(ctx, actor.ID)
}
