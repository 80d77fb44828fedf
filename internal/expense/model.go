package expense

import (
	"time"

	"github.com/splitta/splitta/internal/ledger"
)

// Expense represents an expense in the system. Amount, payer and split type
// only change through a full update that also regenerates the splits.
type Expense struct {
	ID          string    `json:"id"`
	GroupID     string    `json:"group_id"`
	PaidBy      string    `json:"paid_by"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	SplitType   string    `json:"split_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Populated via JOIN
	PayerName string `json:"payer_name,omitempty"`
}

// ExpenseWithSplits combines an expense with its owed-amount rows.
type ExpenseWithSplits struct {
	Expense *Expense
	Splits  []ledger.ExpenseSplit
}
