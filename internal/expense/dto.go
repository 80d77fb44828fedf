package expense

import "github.com/splitta/splitta/internal/ledger"

// CreateExpenseRequest represents the request to create an expense
type CreateExpenseRequest struct {
	GroupID           string             `json:"group_id" validate:"required"`
	Description       string             `json:"description" validate:"required,min=1,max=255"`
	Amount            float64            `json:"amount" validate:"required,gt=0"`
	PaidBy            string             `json:"paid_by" validate:"required"`
	SplitType         string             `json:"split_type" validate:"required,oneof=equal full custom percent each"`
	MemberIDs         []string           `json:"member_ids" validate:"required,min=1"`
	CustomSplits      map[string]float64 `json:"custom_splits,omitempty"`
	FullBeneficiaryID *string            `json:"full_beneficiary_id,omitempty"`
}

// UpdateExpenseRequest represents the request to update an expense. Splits
// are always regenerated in full from these fields, never patched.
type UpdateExpenseRequest struct {
	Description       string             `json:"description" validate:"required,min=1,max=255"`
	Amount            float64            `json:"amount" validate:"required,gt=0"`
	PaidBy            string             `json:"paid_by" validate:"required"`
	SplitType         string             `json:"split_type" validate:"required,oneof=equal full custom percent each"`
	MemberIDs         []string           `json:"member_ids" validate:"required,min=1"`
	CustomSplits      map[string]float64 `json:"custom_splits,omitempty"`
	FullBeneficiaryID *string            `json:"full_beneficiary_id,omitempty"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID          string                `json:"id"`
	GroupID     string                `json:"group_id"`
	PaidBy      string                `json:"paid_by"`
	PayerName   string                `json:"payer_name,omitempty"`
	Description string                `json:"description"`
	Amount      float64               `json:"amount"`
	SplitType   string                `json:"split_type"`
	CreatedAt   string                `json:"created_at"`
	Splits      []ledger.ExpenseSplit `json:"splits,omitempty"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		GroupID:     e.GroupID,
		PaidBy:      e.PaidBy,
		PayerName:   e.PayerName,
		Description: e.Description,
		Amount:      e.Amount,
		SplitType:   e.SplitType,
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
