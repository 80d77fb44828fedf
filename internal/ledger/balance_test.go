package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitta/splitta/internal/ledger"
)

var testMembers = []ledger.Member{
	{UserID: "alice", Name: "Alice"},
	{UserID: "bob", Name: "Bob"},
	{UserID: "carol", Name: "Carol"},
}

func balanceFor(t *testing.T, balances []ledger.Balance, userID string) float64 {
	t.Helper()
	for _, b := range balances {
		if b.UserID == userID {
			return b.Amount
		}
	}
	t.Fatalf("no balance for %s", userID)
	return 0
}

func assertBalancesSumToZero(t *testing.T, balances []ledger.Balance) {
	t.Helper()
	var sum float64
	for _, b := range balances {
		sum += b.Amount
	}
	assert.InDelta(t, 0, sum, 0.01, "group balances must sum to zero")
}

func TestCalculateBalancesEmptyInputs(t *testing.T) {
	balances := ledger.CalculateBalances(testMembers, nil, nil, nil)

	require.Len(t, balances, 3)
	for i, b := range balances {
		assert.Equal(t, testMembers[i].UserID, b.UserID)
		assert.Equal(t, testMembers[i].Name, b.Name)
		assert.Zero(t, b.Amount)
	}
}

func TestCalculateBalancesCreditsPayerBySplitSum(t *testing.T) {
	// The expense is 100 but only 30 is split out, so the payer is owed 30,
	// not 100.
	expenses := []ledger.Expense{{ID: "e1", PaidBy: "alice", Amount: 100}}
	splits := []ledger.ExpenseSplit{{ExpenseID: "e1", UserID: "bob", Amount: 30}}

	balances := ledger.CalculateBalances(testMembers, expenses, splits, nil)

	assert.InDelta(t, 30, balanceFor(t, balances, "alice"), 0.001)
	assert.InDelta(t, -30, balanceFor(t, balances, "bob"), 0.001)
	assert.Zero(t, balanceFor(t, balances, "carol"))
	assertBalancesSumToZero(t, balances)
}

func TestCalculateBalancesSettlementReducesDebtSymmetrically(t *testing.T) {
	expenses := []ledger.Expense{{ID: "e1", PaidBy: "alice", Amount: 500}}
	splits := []ledger.ExpenseSplit{{ExpenseID: "e1", UserID: "bob", Amount: 500}}
	settlements := []ledger.Settlement{{ID: "s1", FromUserID: "bob", ToUserID: "alice", Amount: 200}}

	balances := ledger.CalculateBalances(testMembers, expenses, splits, settlements)

	assert.InDelta(t, 300, balanceFor(t, balances, "alice"), 0.001)
	assert.InDelta(t, -300, balanceFor(t, balances, "bob"), 0.001)
	assertBalancesSumToZero(t, balances)
}

func TestCalculateBalancesAccountingIdentity(t *testing.T) {
	expenses := []ledger.Expense{
		{ID: "e1", PaidBy: "alice", Amount: 100},
		{ID: "e2", PaidBy: "bob", Amount: 90},
		{ID: "e3", PaidBy: "carol", Amount: 33.33},
	}
	splits := []ledger.ExpenseSplit{
		{ExpenseID: "e1", UserID: "bob", Amount: 33.33},
		{ExpenseID: "e1", UserID: "carol", Amount: 33.33},
		{ExpenseID: "e2", UserID: "alice", Amount: 30},
		{ExpenseID: "e2", UserID: "carol", Amount: 30},
		{ExpenseID: "e3", UserID: "bob", Amount: 33.33},
	}
	settlements := []ledger.Settlement{
		{ID: "s1", FromUserID: "carol", ToUserID: "alice", Amount: 20},
		{ID: "s2", FromUserID: "bob", ToUserID: "carol", Amount: 12.5},
	}

	balances := ledger.CalculateBalances(testMembers, expenses, splits, settlements)

	require.Len(t, balances, 3)
	assertBalancesSumToZero(t, balances)
}

func TestCalculateUserBalanceMatchesFullComputation(t *testing.T) {
	expenses := []ledger.Expense{
		{ID: "e1", PaidBy: "alice", Amount: 100},
		{ID: "e2", PaidBy: "bob", Amount: 60},
	}
	splits := []ledger.ExpenseSplit{
		{ExpenseID: "e1", UserID: "bob", Amount: 33.33},
		{ExpenseID: "e1", UserID: "carol", Amount: 33.33},
		{ExpenseID: "e2", UserID: "alice", Amount: 20},
		{ExpenseID: "e2", UserID: "carol", Amount: 20},
	}
	settlements := []ledger.Settlement{
		{ID: "s1", FromUserID: "carol", ToUserID: "alice", Amount: 15},
	}

	full := ledger.CalculateBalances(testMembers, expenses, splits, settlements)
	for _, m := range testMembers {
		got := ledger.CalculateUserBalance(m.UserID, expenses, splits, settlements)
		assert.Equal(t, balanceFor(t, full, m.UserID), got, "user %s", m.UserID)
	}
}

func TestFilterRelevantSettlements(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	expenses := []ledger.Expense{
		{ID: "e1", CreatedAt: base.Add(48 * time.Hour)},
		{ID: "e2", CreatedAt: base},
	}
	settlements := []ledger.Settlement{
		{ID: "old", CreatedAt: base.Add(-time.Hour)},
		{ID: "exact", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(24 * time.Hour)},
	}

	relevant := ledger.FilterRelevantSettlements(expenses, settlements)

	require.Len(t, relevant, 2)
	assert.Equal(t, "exact", relevant[0].ID)
	assert.Equal(t, "new", relevant[1].ID)

	assert.Empty(t, ledger.FilterRelevantSettlements(nil, settlements))
}
