package summary

import (
	"context"

	"github.com/splitta/splitta/internal/ledger"
)

// Service computes a user's cross-group summary
type Service struct {
	repo *Repository
}

// NewService creates a new summary service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// ForUser recomputes the user's global position across all their groups
func (s *Service) ForUser(ctx context.Context, userID string) (ledger.GlobalSummary, error) {
	owedRows, err := s.repo.OwedRows(ctx, userID)
	if err != nil {
		return ledger.GlobalSummary{}, err
	}

	toMeRows, err := s.repo.OwedToMeRows(ctx, userID)
	if err != nil {
		return ledger.GlobalSummary{}, err
	}

	return ledger.ComputeSummary(userID, owedRows, toMeRows), nil
}
