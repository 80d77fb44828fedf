package notification

import "time"

// Entity types a notification can point back to
const (
	EntityExpense    = "expense"
	EntitySettlement = "settlement"
)

// Notification represents an in-app notification for a user
type Notification struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Message    string    `json:"message"`
	EntityType *string   `json:"entity_type,omitempty"`
	EntityID   *string   `json:"entity_id,omitempty"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}
