package split

import "github.com/splitta/splitta/internal/ledger"

// EqualStrategy divides the amount evenly across every member, emitting one
// owed row per non-payer member.
//
// The per-person value is rounded to two decimals and the rounding remainder
// is deliberately not redistributed, so the split total can drift from the
// expense amount by up to a cent per debtor when the member count does not
// divide evenly.
type EqualStrategy struct{}

func (s *EqualStrategy) Type() Type { return TypeEqual }

func (s *EqualStrategy) Build(expenseID string, amount float64, paidBy string, memberIDs []string, _ map[string]float64) ([]ledger.ExpenseSplit, error) {
	if len(memberIDs) == 0 {
		return nil, nil
	}

	perPerson := perPersonShare(amount, len(memberIDs))
	debtors := excludePayer(paidBy, memberIDs)

	splits := make([]ledger.ExpenseSplit, 0, len(debtors))
	for _, id := range debtors {
		splits = append(splits, ledger.ExpenseSplit{
			ExpenseID: expenseID,
			UserID:    id,
			Amount:    perPerson,
		})
	}
	return splits, nil
}
