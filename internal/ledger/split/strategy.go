// Package split turns an expense amount into per-member owed shares.
//
// Strategies form a closed variant set dispatched through a registry keyed by
// a string tag; resolving an unknown tag is a construction-time error, never
// a silent no-op. Strategies are pure and stateless. None of them validate
// that the emitted shares add up to the expense amount; that check belongs to
// the expense service that persists the result.
package split

import (
	"errors"
	"fmt"
	"sort"

	"github.com/splitta/splitta/internal/ledger"
	"github.com/splitta/splitta/pkg/money"
)

// Type identifies a split strategy.
type Type string

const (
	TypeEqual   Type = "equal"
	TypeFull    Type = "full"
	TypeCustom  Type = "custom"
	TypePercent Type = "percent"
	TypeEach    Type = "each"
)

var (
	ErrUnknownType        = errors.New("unknown split type")
	ErrMissingPercentages = errors.New("percent split requires a percentage map")
)

// Strategy builds the owed-amount rows for one expense.
//
// The params map carries strategy-specific input: per-member amounts for
// custom, per-member percentages for percent, and the beneficiary id (as the
// only key) for full. Equal and each ignore it.
type Strategy interface {
	Build(expenseID string, amount float64, paidBy string, memberIDs []string, params map[string]float64) ([]ledger.ExpenseSplit, error)
	Type() Type
}

// Registry resolves split type tags to strategy implementations.
type Registry struct {
	strategies map[Type]Strategy
}

// NewRegistry creates a registry holding all built-in strategies.
func NewRegistry() *Registry {
	r := &Registry{strategies: make(map[Type]Strategy)}
	for _, s := range []Strategy{
		&EqualStrategy{},
		&FullStrategy{},
		&CustomStrategy{},
		&PercentStrategy{},
		&EachStrategy{},
	} {
		r.strategies[s.Type()] = s
	}
	return r
}

// Get returns the strategy registered under the given type.
func (r *Registry) Get(t Type) (Strategy, error) {
	s, ok := r.strategies[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	return s, nil
}

// GetFromString resolves a strategy from its string tag (useful for API requests).
func (r *Registry) GetFromString(t string) (Strategy, error) {
	return r.Get(Type(t))
}

// excludePayer drops the payer from the member list; they don't owe themselves.
func excludePayer(paidBy string, memberIDs []string) []string {
	debtors := make([]string, 0, len(memberIDs))
	for _, id := range memberIDs {
		if id != paidBy {
			debtors = append(debtors, id)
		}
	}
	return debtors
}

// sortedKeys returns the map's keys in lexicographic order so builds are
// deterministic regardless of map iteration.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// perPersonShare is the rounded equal share used by equal and each.
func perPersonShare(amount float64, memberCount int) float64 {
	return money.Round2(amount / float64(memberCount))
}
