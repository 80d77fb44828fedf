package settlement

// CreateSettlementRequest represents the request to record a settlement
type CreateSettlementRequest struct {
	GroupID    string  `json:"group_id" validate:"required"`
	FromUserID string  `json:"from_user_id" validate:"required"`
	ToUserID   string  `json:"to_user_id" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
}

// SettlementResponse represents the response for a settlement
type SettlementResponse struct {
	ID         string  `json:"id"`
	GroupID    string  `json:"group_id"`
	FromUserID string  `json:"from_user_id"`
	ToUserID   string  `json:"to_user_id"`
	FromName   string  `json:"from_name,omitempty"`
	ToName     string  `json:"to_name,omitempty"`
	Amount     float64 `json:"amount"`
	CreatedAt  string  `json:"created_at"`
}

// ToResponse converts a Settlement model to a SettlementResponse DTO
func (s *Settlement) ToResponse() *SettlementResponse {
	return &SettlementResponse{
		ID:         s.ID,
		GroupID:    s.GroupID,
		FromUserID: s.FromUserID,
		ToUserID:   s.ToUserID,
		FromName:   s.FromName,
		ToName:     s.ToName,
		Amount:     s.Amount,
		CreatedAt:  s.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
