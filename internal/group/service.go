package group

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/splitta/splitta/internal/ledger"
)

// Common errors
var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrMemberNotFound = errors.New("member not found in group")
)

// LedgerSource loads a group's raw expense data in the engine's shape.
// The expense repository satisfies this.
type LedgerSource interface {
	ListByGroupForLedger(ctx context.Context, groupID string) ([]ledger.Expense, error)
	ListSplitsByGroup(ctx context.Context, groupID string) ([]ledger.ExpenseSplit, error)
}

// SettlementSource loads a group's active settlements in the engine's shape.
// The settlement repository satisfies this.
type SettlementSource interface {
	ListActiveForLedger(ctx context.Context, groupID string) ([]ledger.Settlement, error)
}

// Service handles group business logic and derives balances and debts on
// demand; nothing about money is stored precomputed.
type Service struct {
	repo        *Repository
	expenses    LedgerSource
	settlements SettlementSource
}

// NewService creates a new group service
func NewService(repo *Repository, expenses LedgerSource, settlements SettlementSource) *Service {
	return &Service{repo: repo, expenses: expenses, settlements: settlements}
}

// Create creates a group; the creator is always added as a member
func (s *Service) Create(ctx context.Context, createdBy string, req *CreateGroupRequest) (*Group, []ledger.Member, error) {
	memberIDs := []string{createdBy}
	for _, id := range req.MemberIDs {
		if id != createdBy {
			memberIDs = append(memberIDs, id)
		}
	}

	g, err := s.repo.Create(ctx, &Group{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   createdBy,
	}, memberIDs)
	if err != nil {
		return nil, nil, err
	}

	members, err := s.repo.ListMembers(ctx, g.ID)
	if err != nil {
		return nil, nil, err
	}

	return g, members, nil
}

// GetByID retrieves a group with its members
func (s *Service) GetByID(ctx context.Context, id string) (*Group, []ledger.Member, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if g == nil {
		return nil, nil, ErrGroupNotFound
	}

	members, err := s.repo.ListMembers(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return g, members, nil
}

// ListByUser retrieves the groups a user belongs to
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Group, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Update renames a group
func (s *Service) Update(ctx context.Context, id string, req *UpdateGroupRequest) (*Group, error) {
	g, err := s.repo.Update(ctx, id, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}
	return g, nil
}

// Delete removes a group and all of its data
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// AddMember adds a user to a group
func (s *Service) AddMember(ctx context.Context, groupID, userID string) error {
	g, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if g == nil {
		return ErrGroupNotFound
	}
	return s.repo.AddMember(ctx, groupID, userID)
}

// RemoveMember removes a user from a group
func (s *Service) RemoveMember(ctx context.Context, groupID, userID string) error {
	return s.repo.RemoveMember(ctx, groupID, userID)
}

// Balances recomputes every member's net position from the full group history
func (s *Service) Balances(ctx context.Context, groupID string) ([]ledger.Balance, error) {
	members, expenses, splits, settlements, err := s.snapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return ledger.CalculateBalances(members, expenses, splits, settlements), nil
}

// UserBalance recomputes a single member's net position in a group
func (s *Service) UserBalance(ctx context.Context, groupID, userID string) (float64, error) {
	_, expenses, splits, settlements, err := s.snapshot(ctx, groupID)
	if err != nil {
		return 0, err
	}
	return ledger.CalculateUserBalance(userID, expenses, splits, settlements), nil
}

// Debts recomputes the netted pairwise debt list for a group
func (s *Service) Debts(ctx context.Context, groupID string) ([]ledger.DebtDetail, error) {
	members, expenses, splits, settlements, err := s.snapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return ledger.CalculateDebtDetails(expenses, splits, settlements, members), nil
}

// DebtsForUser splits the group's netted debts into what the user owes and
// what is owed to them
func (s *Service) DebtsForUser(ctx context.Context, groupID, userID string) (iOwe, oweMe []ledger.DebtDetail, err error) {
	details, err := s.Debts(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	iOwe, oweMe = ledger.FilterByUser(details, userID)
	return iOwe, oweMe, nil
}

// snapshot loads everything the ledger engine needs for one group
func (s *Service) snapshot(ctx context.Context, groupID string) ([]ledger.Member, []ledger.Expense, []ledger.ExpenseSplit, []ledger.Settlement, error) {
	g, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if g == nil {
		return nil, nil, nil, nil, ErrGroupNotFound
	}

	members, err := s.repo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	expenses, err := s.expenses.ListByGroupForLedger(ctx, groupID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	splits, err := s.expenses.ListSplitsByGroup(ctx, groupID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	settlements, err := s.settlements.ListActiveForLedger(ctx, groupID)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return members, expenses, splits, settlements, nil
}
