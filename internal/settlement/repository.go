package settlement

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/splitta/splitta/internal/ledger"
)

// Repository handles settlement data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new settlement repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new settlement
func (r *Repository) Create(ctx context.Context, s *Settlement) (*Settlement, error) {
	query := `
		INSERT INTO settlements (id, group_id, from_user_id, to_user_id, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, group_id, from_user_id, to_user_id, amount, created_at
	`

	created := &Settlement{}
	err := r.db.QueryRowContext(ctx, query, s.ID, s.GroupID, s.FromUserID, s.ToUserID, s.Amount).Scan(
		&created.ID,
		&created.GroupID,
		&created.FromUserID,
		&created.ToUserID,
		&created.Amount,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create settlement: %w", err)
	}

	return created, nil
}

// GetByID retrieves a settlement, including soft-deleted rows
func (r *Repository) GetByID(ctx context.Context, id string) (*Settlement, error) {
	query := `
		SELECT s.id, s.group_id, s.from_user_id, s.to_user_id, s.amount, s.created_at, s.deleted_at,
		       uf.name, ut.name
		FROM settlements s
		JOIN users uf ON uf.id = s.from_user_id
		JOIN users ut ON ut.id = s.to_user_id
		WHERE s.id = $1
	`

	s := &Settlement{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID,
		&s.GroupID,
		&s.FromUserID,
		&s.ToUserID,
		&s.Amount,
		&s.CreatedAt,
		&s.DeletedAt,
		&s.FromName,
		&s.ToName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}

	return s, nil
}

// ListByGroup retrieves a group's active settlements, newest first
func (r *Repository) ListByGroup(ctx context.Context, groupID string) ([]*Settlement, error) {
	query := `
		SELECT s.id, s.group_id, s.from_user_id, s.to_user_id, s.amount, s.created_at,
		       uf.name, ut.name
		FROM settlements s
		JOIN users uf ON uf.id = s.from_user_id
		JOIN users ut ON ut.id = s.to_user_id
		WHERE s.group_id = $1 AND s.deleted_at IS NULL
		ORDER BY s.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*Settlement
	for rows.Next() {
		s := &Settlement{}
		if err := rows.Scan(&s.ID, &s.GroupID, &s.FromUserID, &s.ToUserID, &s.Amount, &s.CreatedAt,
			&s.FromName, &s.ToName); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, s)
	}

	return settlements, nil
}

// ListActiveForLedger loads a group's active settlements in the engine's shape
func (r *Repository) ListActiveForLedger(ctx context.Context, groupID string) ([]ledger.Settlement, error) {
	query := `
		SELECT id, group_id, from_user_id, to_user_id, amount, created_at
		FROM settlements
		WHERE group_id = $1 AND deleted_at IS NULL
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements for ledger: %w", err)
	}
	defer rows.Close()

	var settlements []ledger.Settlement
	for rows.Next() {
		var s ledger.Settlement
		if err := rows.Scan(&s.ID, &s.GroupID, &s.FromUserID, &s.ToUserID, &s.Amount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan settlement for ledger: %w", err)
		}
		settlements = append(settlements, s)
	}

	return settlements, nil
}

// SoftDelete stamps deleted_at on an active settlement
func (r *Repository) SoftDelete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE settlements SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to delete settlement: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrSettlementNotFound
	}

	return nil
}
