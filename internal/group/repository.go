package group

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/splitta/splitta/internal/ledger"
)

// Repository handles group data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new group repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a group and its initial members in one transaction
func (r *Repository) Create(ctx context.Context, g *Group, memberIDs []string) (*Group, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO groups (id, name, description, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, created_by, created_at
	`

	created := &Group{}
	err = tx.QueryRowContext(ctx, query, g.ID, g.Name, g.Description, g.CreatedBy).Scan(
		&created.ID,
		&created.Name,
		&created.Description,
		&created.CreatedBy,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	memberQuery := `INSERT INTO group_members (group_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	for _, userID := range memberIDs {
		if _, err := tx.ExecContext(ctx, memberQuery, created.ID, userID); err != nil {
			return nil, fmt.Errorf("failed to add group member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit group: %w", err)
	}

	return created, nil
}

// GetByID retrieves a group by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Group, error) {
	query := `SELECT id, name, description, created_by, created_at FROM groups WHERE id = $1`

	g := &Group{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name, &g.Description, &g.CreatedBy, &g.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return g, nil
}

// ListByUser retrieves the groups a user belongs to, newest first
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]*Group, error) {
	query := `
		SELECT g.id, g.name, g.description, g.created_by, g.created_at
		FROM groups g
		JOIN group_members gm ON gm.group_id = g.id
		WHERE gm.user_id = $1
		ORDER BY g.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		g := &Group{}
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedBy, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}

	return groups, nil
}

// ListMembers retrieves a group's members in join order (oldest first)
func (r *Repository) ListMembers(ctx context.Context, groupID string) ([]ledger.Member, error) {
	query := `
		SELECT u.id, u.name
		FROM group_members gm
		JOIN users u ON u.id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY gm.joined_at, u.id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}
	defer rows.Close()

	var members []ledger.Member
	for rows.Next() {
		var m ledger.Member
		if err := rows.Scan(&m.UserID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		members = append(members, m)
	}

	return members, nil
}

// Update renames a group
func (r *Repository) Update(ctx context.Context, id, name string, description *string) (*Group, error) {
	query := `
		UPDATE groups SET name = $2, description = COALESCE($3, description)
		WHERE id = $1
		RETURNING id, name, description, created_by, created_at
	`

	g := &Group{}
	err := r.db.QueryRowContext(ctx, query, id, name, description).Scan(&g.ID, &g.Name, &g.Description, &g.CreatedBy, &g.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return g, nil
}

// AddMember adds a user to a group; adding an existing member is a no-op
func (r *Repository) AddMember(ctx context.Context, groupID, userID string) error {
	query := `INSERT INTO group_members (group_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, groupID, userID); err != nil {
		return fmt.Errorf("failed to add group member: %w", err)
	}
	return nil
}

// RemoveMember removes a user from a group. Their split and settlement
// history stays behind; the ledger falls back to a shortened id for names.
func (r *Repository) RemoveMember(ctx context.Context, groupID, userID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM group_members WHERE group_id = $1 AND user_id = $2`, groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove group member: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

// Delete removes a group and, via cascades, its memberships, expenses and
// settlements
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrGroupNotFound
	}

	return nil
}
