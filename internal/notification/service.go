package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Common errors
var ErrNotificationNotFound = errors.New("notification not found")

// Service handles notification business logic
type Service struct {
	repo *Repository
}

// NewService creates a new notification service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// NotifyExpenseAdded records a notification for a member added to an
// expense's splits
func (s *Service) NotifyExpenseAdded(ctx context.Context, recipientID, description string, amount float64, expenseID string) error {
	entityType := EntityExpense
	_, err := s.repo.Create(ctx, &Notification{
		ID:         uuid.NewString(),
		UserID:     recipientID,
		Message:    fmt.Sprintf("You owe %.2f for %q", amount, description),
		EntityType: &entityType,
		EntityID:   &expenseID,
	})
	return err
}

// NotifySettlementRecorded records a notification for the recipient of a
// settlement
func (s *Service) NotifySettlementRecorded(ctx context.Context, recipientID, payerID string, amount float64, settlementID string) error {
	entityType := EntitySettlement
	_, err := s.repo.Create(ctx, &Notification{
		ID:         uuid.NewString(),
		UserID:     recipientID,
		Message:    fmt.Sprintf("A payment of %.2f was recorded to you", amount),
		EntityType: &entityType,
		EntityID:   &settlementID,
	})
	return err
}

// ListForUser retrieves a user's notifications
func (s *Service) ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]*Notification, error) {
	return s.repo.ListByUser(ctx, userID, unreadOnly)
}

// MarkRead flags one notification as read
func (s *Service) MarkRead(ctx context.Context, id, userID string) error {
	return s.repo.MarkRead(ctx, id, userID)
}

// MarkAllRead flags all of a user's notifications as read
func (s *Service) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllRead(ctx, userID)
}
