package split

import (
	"github.com/splitta/splitta/internal/ledger"
	"github.com/splitta/splitta/pkg/money"
)

// CustomStrategy emits the caller-provided per-member amounts verbatim,
// rounded to two decimals. Entries for the payer and non-positive entries are
// dropped silently; checking that the amounts add up to the expense total is
// the caller's job.
type CustomStrategy struct{}

func (s *CustomStrategy) Type() Type { return TypeCustom }

func (s *CustomStrategy) Build(expenseID string, _ float64, paidBy string, _ []string, params map[string]float64) ([]ledger.ExpenseSplit, error) {
	splits := make([]ledger.ExpenseSplit, 0, len(params))
	for _, id := range sortedKeys(params) {
		amt := params[id]
		if id == paidBy || amt <= 0 {
			continue
		}
		splits = append(splits, ledger.ExpenseSplit{
			ExpenseID: expenseID,
			UserID:    id,
			Amount:    money.Round2(amt),
		})
	}
	return splits, nil
}
