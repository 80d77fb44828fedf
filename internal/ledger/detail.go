package ledger

import (
	"sort"

	"github.com/splitta/splitta/pkg/money"
)

// pair is a directed debtor→creditor edge key.
type pair struct {
	debtor   string
	creditor string
}

// CalculateDebtDetails reduces a group's expenses, splits and settlements to
// a netted pairwise debt list, largest debts first.
//
// Every split whose owner is not the expense payer accumulates a directed
// debt from owner to payer, and every settlement discharges the directed debt
// from its sender to its receiver. Opposite directions between the same two
// members are then collapsed into a single edge; a pair netting below one
// cent is treated as settled and dropped. The result never carries more than
// one edge per member pair.
func CalculateDebtDetails(expenses []Expense, splits []ExpenseSplit, settlements []Settlement, members []Member) []DebtDetail {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.UserID] = m.Name
	}

	expenseByID := make(map[string]Expense, len(expenses))
	for _, e := range expenses {
		expenseByID[e.ID] = e
	}

	matrix := make(map[pair]float64)
	for _, s := range splits {
		e, ok := expenseByID[s.ExpenseID]
		if !ok || s.UserID == e.PaidBy {
			continue
		}
		matrix[pair{debtor: s.UserID, creditor: e.PaidBy}] += s.Amount
	}
	for _, s := range settlements {
		matrix[pair{debtor: s.FromUserID, creditor: s.ToUserID}] -= s.Amount
	}

	// Net both directions of each member pair into one signed figure, with
	// the lexicographically smaller id taken as the positive (owing) side.
	nets := make(map[pair]float64)
	for k, amount := range matrix {
		if k.creditor < k.debtor {
			k = pair{debtor: k.creditor, creditor: k.debtor}
			amount = -amount
		}
		nets[k] += amount
	}

	details := make([]DebtDetail, 0, len(nets))
	for k, net := range nets {
		amount := money.Round2(net)
		if money.Negligible(amount) {
			continue
		}
		debtor, creditor := k.debtor, k.creditor
		if amount < 0 {
			debtor, creditor = creditor, debtor
			amount = -amount
		}
		details = append(details, DebtDetail{
			FromUserID:   debtor,
			ToUserID:     creditor,
			Amount:       amount,
			DebtorName:   displayName(names, debtor),
			CreditorName: displayName(names, creditor),
		})
	}

	sort.Slice(details, func(i, j int) bool {
		if details[i].Amount != details[j].Amount {
			return details[i].Amount > details[j].Amount
		}
		return details[i].FromUserID < details[j].FromUserID
	})

	return details
}

// FilterByUser partitions a netted debt list into the debts the user owes and
// the debts owed to them, both restricted to positive amounts.
func FilterByUser(details []DebtDetail, userID string) (iOwe, oweMe []DebtDetail) {
	for _, d := range details {
		if d.Amount <= 0 {
			continue
		}
		switch userID {
		case d.FromUserID:
			iOwe = append(iOwe, d)
		case d.ToUserID:
			oweMe = append(oweMe, d)
		}
	}
	return iOwe, oweMe
}

// displayName falls back to a shortened id for members missing a name, e.g.
// when a split references someone who already left the group.
func displayName(names map[string]string, userID string) string {
	if name, ok := names[userID]; ok && name != "" {
		return name
	}
	if len(userID) > 8 {
		return userID[:8]
	}
	return userID
}
