package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitta/splitta/internal/ledger"
)

func TestCalculateDebtDetailsNetsBilateralDebt(t *testing.T) {
	members := []ledger.Member{
		{UserID: "a", Name: "Ana"},
		{UserID: "b", Name: "Beto"},
	}
	expenses := []ledger.Expense{
		{ID: "e1", PaidBy: "a", Amount: 100},
		{ID: "e2", PaidBy: "b", Amount: 60},
	}
	splits := []ledger.ExpenseSplit{
		{ExpenseID: "e1", UserID: "b", Amount: 100},
		{ExpenseID: "e2", UserID: "a", Amount: 60},
	}

	details := ledger.CalculateDebtDetails(expenses, splits, nil, members)

	require.Len(t, details, 1)
	assert.Equal(t, "b", details[0].FromUserID)
	assert.Equal(t, "a", details[0].ToUserID)
	assert.InDelta(t, 40, details[0].Amount, 0.001)
	assert.Equal(t, "Beto", details[0].DebtorName)
	assert.Equal(t, "Ana", details[0].CreditorName)
}

func TestCalculateDebtDetailsSettlementDischargesDebt(t *testing.T) {
	members := []ledger.Member{{UserID: "a", Name: "Ana"}, {UserID: "b", Name: "Beto"}}
	expenses := []ledger.Expense{{ID: "e1", PaidBy: "a", Amount: 100}}
	splits := []ledger.ExpenseSplit{{ExpenseID: "e1", UserID: "b", Amount: 100}}

	t.Run("partial", func(t *testing.T) {
		settlements := []ledger.Settlement{{FromUserID: "b", ToUserID: "a", Amount: 75}}
		details := ledger.CalculateDebtDetails(expenses, splits, settlements, members)
		require.Len(t, details, 1)
		assert.InDelta(t, 25, details[0].Amount, 0.001)
	})

	t.Run("full settlement leaves no edge", func(t *testing.T) {
		settlements := []ledger.Settlement{{FromUserID: "b", ToUserID: "a", Amount: 100}}
		details := ledger.CalculateDebtDetails(expenses, splits, settlements, members)
		assert.Empty(t, details)
	})

	t.Run("sub-cent residue is treated as settled", func(t *testing.T) {
		settlements := []ledger.Settlement{{FromUserID: "b", ToUserID: "a", Amount: 99.996}}
		details := ledger.CalculateDebtDetails(expenses, splits, settlements, members)
		assert.Empty(t, details)
	})
}

func TestCalculateDebtDetailsIgnoresPayerOwnSplit(t *testing.T) {
	members := []ledger.Member{{UserID: "a", Name: "Ana"}, {UserID: "b", Name: "Beto"}}
	expenses := []ledger.Expense{{ID: "e1", PaidBy: "a", Amount: 100}}
	splits := []ledger.ExpenseSplit{
		{ExpenseID: "e1", UserID: "a", Amount: 50},
		{ExpenseID: "e1", UserID: "b", Amount: 50},
	}

	details := ledger.CalculateDebtDetails(expenses, splits, nil, members)

	require.Len(t, details, 1)
	assert.Equal(t, "b", details[0].FromUserID)
	assert.InDelta(t, 50, details[0].Amount, 0.001)
}

func TestCalculateDebtDetailsSortsDescending(t *testing.T) {
	members := []ledger.Member{
		{UserID: "a", Name: "Ana"},
		{UserID: "b", Name: "Beto"},
		{UserID: "c", Name: "Cleo"},
	}
	expenses := []ledger.Expense{
		{ID: "e1", PaidBy: "a", Amount: 10},
		{ID: "e2", PaidBy: "a", Amount: 70},
	}
	splits := []ledger.ExpenseSplit{
		{ExpenseID: "e1", UserID: "b", Amount: 10},
		{ExpenseID: "e2", UserID: "c", Amount: 70},
	}

	details := ledger.CalculateDebtDetails(expenses, splits, nil, members)

	require.Len(t, details, 2)
	assert.InDelta(t, 70, details[0].Amount, 0.001)
	assert.InDelta(t, 10, details[1].Amount, 0.001)
}

func TestCalculateDebtDetailsOneEdgePerPair(t *testing.T) {
	members := []ledger.Member{{UserID: "a", Name: "Ana"}, {UserID: "b", Name: "Beto"}}
	expenses := []ledger.Expense{
		{ID: "e1", PaidBy: "a", Amount: 20},
		{ID: "e2", PaidBy: "a", Amount: 30},
		{ID: "e3", PaidBy: "b", Amount: 10},
	}
	splits := []ledger.ExpenseSplit{
		{ExpenseID: "e1", UserID: "b", Amount: 20},
		{ExpenseID: "e2", UserID: "b", Amount: 30},
		{ExpenseID: "e3", UserID: "a", Amount: 10},
	}

	details := ledger.CalculateDebtDetails(expenses, splits, nil, members)

	require.Len(t, details, 1)
	assert.Equal(t, "b", details[0].FromUserID)
	assert.Equal(t, "a", details[0].ToUserID)
	assert.InDelta(t, 40, details[0].Amount, 0.001)
}

func TestCalculateDebtDetailsEmptyInputs(t *testing.T) {
	assert.Empty(t, ledger.CalculateDebtDetails(nil, nil, nil, nil))
}

func TestFilterByUser(t *testing.T) {
	details := []ledger.DebtDetail{
		{FromUserID: "a", ToUserID: "b", Amount: 40},
		{FromUserID: "c", ToUserID: "a", Amount: 25},
		{FromUserID: "b", ToUserID: "c", Amount: 10},
	}

	iOwe, oweMe := ledger.FilterByUser(details, "a")

	require.Len(t, iOwe, 1)
	assert.Equal(t, "b", iOwe[0].ToUserID)
	require.Len(t, oweMe, 1)
	assert.Equal(t, "c", oweMe[0].FromUserID)
}
