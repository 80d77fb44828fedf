package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/splitta/splitta/pkg/money"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, money.Round2(100.0/3))
	assert.Equal(t, 22.50, money.Round2(90.0/4))
	assert.Equal(t, 0.01, money.Round2(0.005))
	assert.Equal(t, -0.01, money.Round2(-0.005))
	assert.Equal(t, 10.0, money.Round2(10))
}

func TestNegligible(t *testing.T) {
	assert.True(t, money.Negligible(0))
	assert.True(t, money.Negligible(0.009))
	assert.True(t, money.Negligible(-0.009))
	assert.False(t, money.Negligible(0.01))
	assert.False(t, money.Negligible(-0.01))
}

func TestSumsMatch(t *testing.T) {
	assert.True(t, money.SumsMatch(100, 100.01))
	assert.True(t, money.SumsMatch(100.01, 100))
	assert.False(t, money.SumsMatch(100, 100.02))
}
