package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitta/splitta/internal/ledger/split"
)

func TestValidateSplitParams(t *testing.T) {
	t.Run("custom sum must match amount", func(t *testing.T) {
		params := map[string]float64{"alice": 40, "bob": 50}
		assert.ErrorIs(t, validateSplitParams(split.TypeCustom, 100, params), ErrSplitSumMismatch)
	})

	t.Run("custom sum within a cent passes", func(t *testing.T) {
		params := map[string]float64{"alice": 33.33, "bob": 33.33, "carol": 33.33}
		assert.NoError(t, validateSplitParams(split.TypeCustom, 99.99, params))
		assert.NoError(t, validateSplitParams(split.TypeCustom, 100, params))
	})

	t.Run("empty custom params skip the sum check", func(t *testing.T) {
		assert.NoError(t, validateSplitParams(split.TypeCustom, 100, nil))
	})

	t.Run("percentages must cover the whole expense", func(t *testing.T) {
		params := map[string]float64{"alice": 60, "bob": 30}
		assert.ErrorIs(t, validateSplitParams(split.TypePercent, 100, params), ErrPercentSum)

		params["bob"] = 40
		assert.NoError(t, validateSplitParams(split.TypePercent, 100, params))
	})

	t.Run("nil percent params deferred to the strategy", func(t *testing.T) {
		assert.NoError(t, validateSplitParams(split.TypePercent, 100, nil))
	})

	t.Run("equal and each have no params to check", func(t *testing.T) {
		assert.NoError(t, validateSplitParams(split.TypeEqual, 100, map[string]float64{"x": 1}))
		assert.NoError(t, validateSplitParams(split.TypeEach, 100, nil))
	})
}

func TestStrategyParams(t *testing.T) {
	custom := map[string]float64{"alice": 60, "bob": 40}

	t.Run("custom and percent pass the raw map through", func(t *testing.T) {
		assert.Equal(t, custom, strategyParams(split.TypeCustom, 100, custom, nil))
		assert.Equal(t, custom, strategyParams(split.TypePercent, 100, custom, nil))
	})

	t.Run("full uses the beneficiary when given", func(t *testing.T) {
		beneficiary := "bob"
		params := strategyParams(split.TypeFull, 75, custom, &beneficiary)
		require.Len(t, params, 1)
		assert.Equal(t, 75.0, params["bob"])
	})

	t.Run("full without beneficiary leaves the choice to the strategy", func(t *testing.T) {
		assert.Nil(t, strategyParams(split.TypeFull, 75, custom, nil))
	})

	t.Run("equal ignores params entirely", func(t *testing.T) {
		assert.Nil(t, strategyParams(split.TypeEqual, 100, custom, nil))
	})
}
