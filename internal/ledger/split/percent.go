package split

import (
	"github.com/splitta/splitta/internal/ledger"
	"github.com/splitta/splitta/pkg/money"
)

// PercentStrategy divides the amount by per-member percentages. There is no
// sane default for a missing percentage map, so that is an error rather than
// a fallback. Members without a percentage, the payer, and shares rounding to
// zero are all skipped.
type PercentStrategy struct{}

func (s *PercentStrategy) Type() Type { return TypePercent }

func (s *PercentStrategy) Build(expenseID string, amount float64, paidBy string, memberIDs []string, params map[string]float64) ([]ledger.ExpenseSplit, error) {
	if params == nil {
		return nil, ErrMissingPercentages
	}

	splits := make([]ledger.ExpenseSplit, 0, len(memberIDs))
	for _, id := range memberIDs {
		if id == paidBy {
			continue
		}
		share := money.Round2(amount * params[id] / 100)
		if share <= 0 {
			continue
		}
		splits = append(splits, ledger.ExpenseSplit{
			ExpenseID: expenseID,
			UserID:    id,
			Amount:    share,
		})
	}
	return splits, nil
}
