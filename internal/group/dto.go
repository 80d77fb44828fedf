package group

import "github.com/splitta/splitta/internal/ledger"

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	MemberIDs   []string `json:"member_ids,omitempty"`
}

// UpdateGroupRequest represents the request to rename a group
type UpdateGroupRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// AddMemberRequest represents the request to add a member to a group
type AddMemberRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   string          `json:"created_at"`
	Members     []ledger.Member `json:"members,omitempty"`
}

// DebtsResponse represents the netted debt graph of a group. When filtered
// by user it carries the two directions separately instead of the full list.
type DebtsResponse struct {
	Debts []ledger.DebtDetail `json:"debts,omitempty"`
	IOwe  []ledger.DebtDetail `json:"i_owe,omitempty"`
	OweMe []ledger.DebtDetail `json:"owe_me,omitempty"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse(members []ledger.Member) *GroupResponse {
	return &GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		CreatedBy:   g.CreatedBy,
		CreatedAt:   g.CreatedAt.Format("2006-01-02T15:04:05Z"),
		Members:     members,
	}
}
