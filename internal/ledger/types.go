// Package ledger is the pure computation core of the application: it turns a
// group's recorded expenses, their per-member splits, and peer-to-peer
// settlements into net balances, a netted pairwise debt list, and cross-group
// summaries. It performs no I/O and keeps no state; every result is
// re-derivable from the row sets the persistence layer hands it.
package ledger

import "time"

// Member is a group member as seen by the engine.
type Member struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// Expense is a recorded group expense.
type Expense struct {
	ID          string    `json:"id"`
	GroupID     string    `json:"group_id"`
	PaidBy      string    `json:"paid_by"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExpenseSplit is one member's owed share of one expense. The payer normally
// has no row of their own.
type ExpenseSplit struct {
	ExpenseID string  `json:"expense_id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
}

// Settlement is a recorded direct repayment between two members, outside of
// any expense. Tombstoned settlements are filtered out before the engine ever
// sees them.
type Settlement struct {
	ID         string    `json:"id"`
	GroupID    string    `json:"group_id"`
	FromUserID string    `json:"from_user_id"`
	ToUserID   string    `json:"to_user_id"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// Balance is one member's net position across a group.
// Positive = the group owes the member, negative = the member owes the group.
type Balance struct {
	UserID string  `json:"user_id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// DebtDetail is a single netted directed debt between two members.
type DebtDetail struct {
	FromUserID   string  `json:"from_user_id"`
	ToUserID     string  `json:"to_user_id"`
	Amount       float64 `json:"amount"`
	DebtorName   string  `json:"debtor_name"`
	CreditorName string  `json:"creditor_name"`
}
