package summary

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/splitta/splitta/internal/ledger"
)

// Repository loads the pre-joined split rows the summary computation runs on
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new summary repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// OwedRows loads the splits a user owes on expenses somebody else paid,
// across every group
func (r *Repository) OwedRows(ctx context.Context, userID string) ([]ledger.SummaryRow, error) {
	query := `
		SELECT e.group_id, g.name, e.paid_by, s.amount
		FROM expense_splits s
		JOIN expenses e ON e.id = s.expense_id
		JOIN groups g ON g.id = e.group_id
		WHERE s.user_id = $1 AND e.paid_by <> $1
	`
	return r.queryRows(ctx, query, userID, "failed to load owed splits")
}

// OwedToMeRows loads the splits other members owe on expenses the user paid,
// across every group
func (r *Repository) OwedToMeRows(ctx context.Context, userID string) ([]ledger.SummaryRow, error) {
	query := `
		SELECT e.group_id, g.name, e.paid_by, s.amount
		FROM expense_splits s
		JOIN expenses e ON e.id = s.expense_id
		JOIN groups g ON g.id = e.group_id
		WHERE e.paid_by = $1 AND s.user_id <> $1
	`
	return r.queryRows(ctx, query, userID, "failed to load splits owed to user")
}

func (r *Repository) queryRows(ctx context.Context, query, userID, errMsg string) ([]ledger.SummaryRow, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	defer rows.Close()

	var out []ledger.SummaryRow
	for rows.Next() {
		var row ledger.SummaryRow
		if err := rows.Scan(&row.GroupID, &row.GroupName, &row.PaidBy, &row.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		out = append(out, row)
	}

	return out, nil
}
