package settlement

import "time"

// Settlement represents a recorded repayment between two group members.
// Deleted settlements keep their row with deleted_at set so history survives.
type Settlement struct {
	ID         string     `json:"id"`
	GroupID    string     `json:"group_id"`
	FromUserID string     `json:"from_user_id"`
	ToUserID   string     `json:"to_user_id"`
	Amount     float64    `json:"amount"`
	CreatedAt  time.Time  `json:"created_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`

	// Populated via JOIN
	FromName string `json:"from_name,omitempty"`
	ToName   string `json:"to_name,omitempty"`
}
