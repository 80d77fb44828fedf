package split_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitta/splitta/internal/ledger"
	"github.com/splitta/splitta/internal/ledger/split"
)

func build(t *testing.T, typ split.Type, amount float64, paidBy string, memberIDs []string, params map[string]float64) []ledger.ExpenseSplit {
	t.Helper()
	strategy, err := split.NewRegistry().Get(typ)
	require.NoError(t, err)
	splits, err := strategy.Build("e1", amount, paidBy, memberIDs, params)
	require.NoError(t, err)
	return splits
}

func TestRegistry(t *testing.T) {
	r := split.NewRegistry()

	for _, typ := range []split.Type{split.TypeEqual, split.TypeFull, split.TypeCustom, split.TypePercent, split.TypeEach} {
		s, err := r.Get(typ)
		require.NoError(t, err)
		assert.Equal(t, typ, s.Type())
	}

	_, err := r.GetFromString("half")
	assert.ErrorIs(t, err, split.ErrUnknownType)
}

func TestEqualStrategy(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		paidBy    string
		memberIDs []string
		wantEach  float64
		wantCount int
	}{
		{
			name:      "divides evenly",
			amount:    90,
			paidBy:    "u1",
			memberIDs: []string{"u1", "u2", "u3", "u4"},
			wantEach:  22.50,
			wantCount: 3,
		},
		{
			name:      "rounds without redistributing the remainder",
			amount:    100,
			paidBy:    "u1",
			memberIDs: []string{"u1", "u2", "u3"},
			wantEach:  33.33,
			wantCount: 2,
		},
		{
			name:      "payer alone yields no splits",
			amount:    50,
			paidBy:    "u1",
			memberIDs: []string{"u1"},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			splits := build(t, split.TypeEqual, tt.amount, tt.paidBy, tt.memberIDs, nil)
			require.Len(t, splits, tt.wantCount)
			for _, s := range splits {
				assert.Equal(t, "e1", s.ExpenseID)
				assert.NotEqual(t, tt.paidBy, s.UserID)
				assert.InDelta(t, tt.wantEach, s.Amount, 0.001)
			}
		})
	}
}

func TestEachStrategyMatchesEqual(t *testing.T) {
	members := []string{"u1", "u2", "u3"}
	equal := build(t, split.TypeEqual, 100, "u2", members, nil)
	each := build(t, split.TypeEach, 100, "u2", members, nil)
	assert.Equal(t, equal, each)
}

func TestFullStrategy(t *testing.T) {
	members := []string{"u1", "u2", "u3"}

	t.Run("explicit beneficiary", func(t *testing.T) {
		splits := build(t, split.TypeFull, 55.5, "u1", members, map[string]float64{"u3": 0})
		require.Len(t, splits, 1)
		assert.Equal(t, "u3", splits[0].UserID)
		assert.InDelta(t, 55.5, splits[0].Amount, 0.001)
	})

	t.Run("defaults to first non-payer", func(t *testing.T) {
		splits := build(t, split.TypeFull, 40, "u2", members, nil)
		require.Len(t, splits, 1)
		assert.Equal(t, "u1", splits[0].UserID)
		assert.InDelta(t, 40, splits[0].Amount, 0.001)
	})

	t.Run("only the payer present yields no splits", func(t *testing.T) {
		splits := build(t, split.TypeFull, 40, "u1", []string{"u1"}, nil)
		assert.Empty(t, splits)
	})
}

func TestCustomStrategyDropsNonPositiveAndPayer(t *testing.T) {
	members := []string{"payer", "a", "b", "c"}
	params := map[string]float64{"a": 0, "b": -5, "c": 3, "payer": 10}

	splits := build(t, split.TypeCustom, 13, "payer", members, params)

	require.Len(t, splits, 1)
	assert.Equal(t, "c", splits[0].UserID)
	assert.InDelta(t, 3, splits[0].Amount, 0.001)
}

func TestPercentStrategy(t *testing.T) {
	members := []string{"u1", "u2", "u3"}

	t.Run("missing percentages is an error", func(t *testing.T) {
		strategy, err := split.NewRegistry().Get(split.TypePercent)
		require.NoError(t, err)
		_, err = strategy.Build("e1", 100, "u1", members, nil)
		assert.ErrorIs(t, err, split.ErrMissingPercentages)
	})

	t.Run("splits by percentage excluding the payer", func(t *testing.T) {
		splits := build(t, split.TypePercent, 200, "u1", members, map[string]float64{"u1": 20, "u2": 50, "u3": 30})
		require.Len(t, splits, 2)
		assert.Equal(t, "u2", splits[0].UserID)
		assert.InDelta(t, 100, splits[0].Amount, 0.001)
		assert.Equal(t, "u3", splits[1].UserID)
		assert.InDelta(t, 60, splits[1].Amount, 0.001)
	})

	t.Run("zero shares are dropped", func(t *testing.T) {
		splits := build(t, split.TypePercent, 100, "u1", members, map[string]float64{"u2": 100})
		require.Len(t, splits, 1)
		assert.Equal(t, "u2", splits[0].UserID)
	})
}
