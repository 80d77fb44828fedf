package split

import (
	"github.com/splitta/splitta/internal/ledger"
	"github.com/splitta/splitta/pkg/money"
)

// FullStrategy assigns the whole amount to a single beneficiary. The
// beneficiary is the key of the params map when one is supplied, otherwise
// the first member other than the payer in list order. With nobody eligible
// the result is empty: callers must treat that as nothing to persist, not as
// success of intent.
type FullStrategy struct{}

func (s *FullStrategy) Type() Type { return TypeFull }

func (s *FullStrategy) Build(expenseID string, amount float64, paidBy string, memberIDs []string, params map[string]float64) ([]ledger.ExpenseSplit, error) {
	var beneficiary string
	if len(params) > 0 {
		beneficiary = sortedKeys(params)[0]
	}
	if beneficiary == "" {
		for _, id := range memberIDs {
			if id != paidBy {
				beneficiary = id
				break
			}
		}
	}
	if beneficiary == "" {
		return nil, nil
	}

	return []ledger.ExpenseSplit{{
		ExpenseID: expenseID,
		UserID:    beneficiary,
		Amount:    money.Round2(amount),
	}}, nil
}
