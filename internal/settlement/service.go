package settlement

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrSameMember         = errors.New("payer and recipient must be different members")
)

// Notifier records an in-app notification for the settlement recipient.
type Notifier interface {
	NotifySettlementRecorded(ctx context.Context, recipientID, payerID string, amount float64, settlementID string) error
}

// Service handles settlement business logic
type Service struct {
	repo     *Repository
	notifier Notifier
}

// NewService creates a new settlement service
func NewService(repo *Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Create records a repayment between two distinct members
func (s *Service) Create(ctx context.Context, req *CreateSettlementRequest) (*Settlement, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.FromUserID == req.ToUserID {
		return nil, ErrSameMember
	}

	created, err := s.repo.Create(ctx, &Settlement{
		ID:         uuid.NewString(),
		GroupID:    req.GroupID,
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Amount:     req.Amount,
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifySettlementRecorded(ctx, created.ToUserID, created.FromUserID, created.Amount, created.ID); err != nil {
			slog.Warn("failed to notify settlement recipient", "settlement_id", created.ID, "error", err)
		}
	}

	return created, nil
}

// GetByID retrieves a settlement by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Settlement, error) {
	settlement, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if settlement == nil {
		return nil, ErrSettlementNotFound
	}
	return settlement, nil
}

// ListByGroup retrieves a group's active settlements
func (s *Service) ListByGroup(ctx context.Context, groupID string) ([]*Settlement, error) {
	return s.repo.ListByGroup(ctx, groupID)
}

// Delete soft-deletes a settlement so balances revert without losing history
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}
