package ledger

// CalculateBalances derives one net balance per member from the full group
// snapshot, preserving the member input order.
//
// The payer of an expense is credited with the sum of that expense's own
// splits rather than the raw expense amount, so an expense whose splits do
// not cover the full amount never inflates the payer's balance. Each split
// debits its owner, and each settlement credits the sender and debits the
// receiver. In a closed group the amounts sum to zero.
func CalculateBalances(members []Member, expenses []Expense, splits []ExpenseSplit, settlements []Settlement) []Balance {
	balances := make(map[string]float64, len(members))
	for _, m := range members {
		balances[m.UserID] = 0
	}

	splitsByExpense := groupSplitsByExpense(splits)

	for _, e := range expenses {
		var owedToPayer float64
		for _, s := range splitsByExpense[e.ID] {
			owedToPayer += s.Amount
			balances[s.UserID] -= s.Amount
		}
		balances[e.PaidBy] += owedToPayer
	}

	for _, s := range settlements {
		balances[s.FromUserID] += s.Amount
		balances[s.ToUserID] -= s.Amount
	}

	out := make([]Balance, len(members))
	for i, m := range members {
		out[i] = Balance{UserID: m.UserID, Name: m.Name, Amount: balances[m.UserID]}
	}
	return out
}

// CalculateUserBalance computes a single member's net position without
// materializing the full balance map. The result is numerically identical to
// that member's entry in CalculateBalances.
func CalculateUserBalance(userID string, expenses []Expense, splits []ExpenseSplit, settlements []Settlement) float64 {
	splitsByExpense := groupSplitsByExpense(splits)

	var balance float64
	for _, e := range expenses {
		if e.PaidBy != userID {
			continue
		}
		var owedToPayer float64
		for _, s := range splitsByExpense[e.ID] {
			owedToPayer += s.Amount
		}
		balance += owedToPayer
	}

	for _, s := range splits {
		if s.UserID == userID {
			balance -= s.Amount
		}
	}

	for _, s := range settlements {
		if s.FromUserID == userID {
			balance += s.Amount
		}
		if s.ToUserID == userID {
			balance -= s.Amount
		}
	}

	return balance
}

// FilterRelevantSettlements drops settlements recorded strictly before the
// oldest expense in the set, for recomputations over a partial window of
// history. With no expenses there is nothing to settle against and the result
// is empty.
func FilterRelevantSettlements(expenses []Expense, settlements []Settlement) []Settlement {
	if len(expenses) == 0 {
		return nil
	}

	oldest := expenses[0].CreatedAt
	for _, e := range expenses[1:] {
		if e.CreatedAt.Before(oldest) {
			oldest = e.CreatedAt
		}
	}

	var relevant []Settlement
	for _, s := range settlements {
		if !s.CreatedAt.Before(oldest) {
			relevant = append(relevant, s)
		}
	}
	return relevant
}

func groupSplitsByExpense(splits []ExpenseSplit) map[string][]ExpenseSplit {
	byExpense := make(map[string][]ExpenseSplit)
	for _, s := range splits {
		byExpense[s.ExpenseID] = append(byExpense[s.ExpenseID], s)
	}
	return byExpense
}
