package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/splitta/splitta/internal/ledger"
)

// Repository handles expense data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateWithSplits inserts an expense and its split rows in a single
// transaction so a failed split insert never leaves a splitless expense.
func (r *Repository) CreateWithSplits(ctx context.Context, e *Expense, splits []ledger.ExpenseSplit) (*Expense, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO expenses (id, group_id, paid_by, description, amount, split_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, group_id, paid_by, description, amount, split_type, created_at, updated_at
	`

	created := &Expense{}
	err = tx.QueryRowContext(ctx, query, e.ID, e.GroupID, e.PaidBy, e.Description, e.Amount, e.SplitType).Scan(
		&created.ID,
		&created.GroupID,
		&created.PaidBy,
		&created.Description,
		&created.Amount,
		&created.SplitType,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	if err := insertSplits(ctx, tx, splits); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expense: %w", err)
	}

	return created, nil
}

// UpdateWithSplits rewrites the expense row and regenerates its splits
// atomically. Old splits are deleted outright, never patched in place.
func (r *Repository) UpdateWithSplits(ctx context.Context, e *Expense, splits []ledger.ExpenseSplit) (*Expense, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE expenses
		SET paid_by = $2, description = $3, amount = $4, split_type = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, group_id, paid_by, description, amount, split_type, created_at, updated_at
	`

	updated := &Expense{}
	err = tx.QueryRowContext(ctx, query, e.ID, e.PaidBy, e.Description, e.Amount, e.SplitType).Scan(
		&updated.ID,
		&updated.GroupID,
		&updated.PaidBy,
		&updated.Description,
		&updated.Amount,
		&updated.SplitType,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM expense_splits WHERE expense_id = $1`, e.ID); err != nil {
		return nil, fmt.Errorf("failed to delete old splits: %w", err)
	}

	if err := insertSplits(ctx, tx, splits); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expense update: %w", err)
	}

	return updated, nil
}

func insertSplits(ctx context.Context, tx *sql.Tx, splits []ledger.ExpenseSplit) error {
	query := `INSERT INTO expense_splits (expense_id, user_id, amount) VALUES ($1, $2, $3)`
	for _, s := range splits {
		if _, err := tx.ExecContext(ctx, query, s.ExpenseID, s.UserID, s.Amount); err != nil {
			return fmt.Errorf("failed to create expense split: %w", err)
		}
	}
	return nil
}

// GetByID retrieves an expense with its payer name
func (r *Repository) GetByID(ctx context.Context, id string) (*Expense, error) {
	query := `
		SELECT e.id, e.group_id, e.paid_by, e.description, e.amount, e.split_type,
		       e.created_at, e.updated_at, u.name
		FROM expenses e
		JOIN users u ON u.id = e.paid_by
		WHERE e.id = $1
	`

	e := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID,
		&e.GroupID,
		&e.PaidBy,
		&e.Description,
		&e.Amount,
		&e.SplitType,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.PayerName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return e, nil
}

// GetSplits retrieves the split rows for an expense
func (r *Repository) GetSplits(ctx context.Context, expenseID string) ([]ledger.ExpenseSplit, error) {
	query := `SELECT expense_id, user_id, amount FROM expense_splits WHERE expense_id = $1 ORDER BY user_id`

	rows, err := r.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense splits: %w", err)
	}
	defer rows.Close()

	var splits []ledger.ExpenseSplit
	for rows.Next() {
		var s ledger.ExpenseSplit
		if err := rows.Scan(&s.ExpenseID, &s.UserID, &s.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan expense split: %w", err)
		}
		splits = append(splits, s)
	}

	return splits, nil
}

// ListByGroup retrieves a group's expenses, newest first, with pagination
func (r *Repository) ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*Expense, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses WHERE group_id = $1`, groupID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `
		SELECT e.id, e.group_id, e.paid_by, e.description, e.amount, e.split_type,
		       e.created_at, e.updated_at, u.name
		FROM expenses e
		JOIN users u ON u.id = e.paid_by
		WHERE e.group_id = $1
		ORDER BY e.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, groupID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		e := &Expense{}
		if err := rows.Scan(&e.ID, &e.GroupID, &e.PaidBy, &e.Description, &e.Amount, &e.SplitType,
			&e.CreatedAt, &e.UpdatedAt, &e.PayerName); err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, total, nil
}

// ListByGroupForLedger loads every expense of a group in the engine's shape
func (r *Repository) ListByGroupForLedger(ctx context.Context, groupID string) ([]ledger.Expense, error) {
	query := `
		SELECT id, group_id, paid_by, description, amount, created_at
		FROM expenses
		WHERE group_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for ledger: %w", err)
	}
	defer rows.Close()

	var expenses []ledger.Expense
	for rows.Next() {
		var e ledger.Expense
		if err := rows.Scan(&e.ID, &e.GroupID, &e.PaidBy, &e.Description, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense for ledger: %w", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, nil
}

// ListSplitsByGroup loads every split of a group in the engine's shape
func (r *Repository) ListSplitsByGroup(ctx context.Context, groupID string) ([]ledger.ExpenseSplit, error) {
	query := `
		SELECT s.expense_id, s.user_id, s.amount
		FROM expense_splits s
		JOIN expenses e ON e.id = s.expense_id
		WHERE e.group_id = $1
		ORDER BY s.expense_id, s.user_id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits for ledger: %w", err)
	}
	defer rows.Close()

	var splits []ledger.ExpenseSplit
	for rows.Next() {
		var s ledger.ExpenseSplit
		if err := rows.Scan(&s.ExpenseID, &s.UserID, &s.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan split for ledger: %w", err)
		}
		splits = append(splits, s)
	}

	return splits, nil
}

// Delete removes an expense; split rows go with it via ON DELETE CASCADE
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}
