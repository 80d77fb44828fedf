package expense

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/splitta/splitta/internal/ledger"
	"github.com/splitta/splitta/internal/ledger/split"
	"github.com/splitta/splitta/pkg/money"
)

// Common errors
var (
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrSplitSumMismatch = errors.New("split amounts must add up to the expense amount")
	ErrPercentSum       = errors.New("percentages must add up to 100")
)

// Notifier records in-app notifications for split participants. The
// notification service satisfies this; tests can plug in a no-op.
type Notifier interface {
	NotifyExpenseAdded(ctx context.Context, recipientID, description string, amount float64, expenseID string) error
}

// Service handles expense business logic
type Service struct {
	repo     *Repository
	registry *split.Registry
	notifier Notifier
}

// NewService creates a new expense service
func NewService(repo *Repository, registry *split.Registry, notifier Notifier) *Service {
	return &Service{repo: repo, registry: registry, notifier: notifier}
}

// Create validates the request, generates splits through the configured
// strategy and persists everything atomically.
func (s *Service) Create(ctx context.Context, req *CreateExpenseRequest) (*ExpenseWithSplits, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	strategy, err := s.registry.GetFromString(req.SplitType)
	if err != nil {
		return nil, err
	}
	if err := validateSplitParams(strategy.Type(), req.Amount, req.CustomSplits); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	splits, err := strategy.Build(id, req.Amount, req.PaidBy, req.MemberIDs, strategyParams(strategy.Type(), req.Amount, req.CustomSplits, req.FullBeneficiaryID))
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateWithSplits(ctx, &Expense{
		ID:          id,
		GroupID:     req.GroupID,
		PaidBy:      req.PaidBy,
		Description: req.Description,
		Amount:      req.Amount,
		SplitType:   req.SplitType,
	}, splits)
	if err != nil {
		return nil, err
	}

	s.notifyParticipants(ctx, created, splits)

	return &ExpenseWithSplits{Expense: created, Splits: splits}, nil
}

// GetByID retrieves an expense together with its splits
func (s *Service) GetByID(ctx context.Context, id string) (*ExpenseWithSplits, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrExpenseNotFound
	}

	splits, err := s.repo.GetSplits(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ExpenseWithSplits{Expense: e, Splits: splits}, nil
}

// ListByGroup retrieves a group's expenses with pagination
func (s *Service) ListByGroup(ctx context.Context, groupID string, page, perPage int) ([]*Expense, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByGroup(ctx, groupID, perPage, offset)
}

// Update replaces the expense fields and regenerates its splits from scratch
func (s *Service) Update(ctx context.Context, id string, req *UpdateExpenseRequest) (*ExpenseWithSplits, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrExpenseNotFound
	}

	strategy, err := s.registry.GetFromString(req.SplitType)
	if err != nil {
		return nil, err
	}
	if err := validateSplitParams(strategy.Type(), req.Amount, req.CustomSplits); err != nil {
		return nil, err
	}

	splits, err := strategy.Build(id, req.Amount, req.PaidBy, req.MemberIDs, strategyParams(strategy.Type(), req.Amount, req.CustomSplits, req.FullBeneficiaryID))
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateWithSplits(ctx, &Expense{
		ID:          id,
		PaidBy:      req.PaidBy,
		Description: req.Description,
		Amount:      req.Amount,
		SplitType:   req.SplitType,
	}, splits)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrExpenseNotFound
	}

	return &ExpenseWithSplits{Expense: updated, Splits: splits}, nil
}

// Delete removes an expense and its splits
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// validateSplitParams enforces the sum contracts the strategies themselves
// leave to the caller: custom entries must match the amount and percentages
// must cover the whole expense.
func validateSplitParams(t split.Type, amount float64, params map[string]float64) error {
	switch t {
	case split.TypeCustom:
		if len(params) == 0 {
			return nil
		}
		var sum float64
		for _, v := range params {
			sum += v
		}
		if !money.SumsMatch(sum, amount) {
			return ErrSplitSumMismatch
		}
	case split.TypePercent:
		if params == nil {
			return nil
		}
		var sum float64
		for _, v := range params {
			sum += v
		}
		if !money.SumsMatch(sum, 100) {
			return ErrPercentSum
		}
	}
	return nil
}

// strategyParams shapes request fields into the params map each strategy
// expects. For a full split only the beneficiary key matters.
func strategyParams(t split.Type, amount float64, custom map[string]float64, beneficiary *string) map[string]float64 {
	switch t {
	case split.TypeCustom, split.TypePercent:
		return custom
	case split.TypeFull:
		if beneficiary != nil {
			return map[string]float64{*beneficiary: amount}
		}
	}
	return nil
}

func (s *Service) notifyParticipants(ctx context.Context, e *Expense, splits []ledger.ExpenseSplit) {
	if s.notifier == nil {
		return
	}
	for _, sp := range splits {
		if sp.UserID == e.PaidBy {
			continue
		}
		if err := s.notifier.NotifyExpenseAdded(ctx, sp.UserID, e.Description, sp.Amount, e.ID); err != nil {
			slog.Warn("failed to notify expense participant", "user_id", sp.UserID, "expense_id", e.ID, "error", err)
		}
	}
}
