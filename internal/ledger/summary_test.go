package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitta/splitta/internal/ledger"
)

func TestComputeSummary(t *testing.T) {
	owedRows := []ledger.SummaryRow{
		{GroupID: "g1", GroupName: "Trip", Amount: 30},
		{GroupID: "g2", GroupName: "Flat", Amount: 20},
	}
	toMeRows := []ledger.SummaryRow{
		{GroupID: "g1", GroupName: "Trip", PaidBy: "me", Amount: 50},
		{GroupID: "g2", GroupName: "Flat", PaidBy: "me", Amount: 10},
		{GroupID: "g1", GroupName: "Trip", PaidBy: "other", Amount: 5},
	}

	summary := ledger.ComputeSummary("me", owedRows, toMeRows)

	assert.InDelta(t, 50, summary.OwedByMe, 0.001)
	assert.InDelta(t, 60, summary.OwedToMe, 0.001)
	assert.InDelta(t, 10, summary.Net, 0.001)

	require.Len(t, summary.ByGroup, 2)

	g1 := summary.ByGroup[0]
	assert.Equal(t, "g1", g1.GroupID)
	assert.Equal(t, "Trip", g1.GroupName)
	assert.InDelta(t, 30, g1.OwedByMe, 0.001)
	assert.InDelta(t, 50, g1.OwedToMe, 0.001)
	assert.InDelta(t, 20, g1.Net, 0.001)

	g2 := summary.ByGroup[1]
	assert.Equal(t, "g2", g2.GroupID)
	assert.InDelta(t, 20, g2.OwedByMe, 0.001)
	assert.InDelta(t, 10, g2.OwedToMe, 0.001)
	assert.InDelta(t, -10, g2.Net, 0.001)
}

func TestComputeSummaryOneSidedGroups(t *testing.T) {
	owedRows := []ledger.SummaryRow{{GroupID: "g1", GroupName: "Trip", Amount: 12.5}}
	toMeRows := []ledger.SummaryRow{{GroupID: "g2", GroupName: "Flat", PaidBy: "me", Amount: 7.25}}

	summary := ledger.ComputeSummary("me", owedRows, toMeRows)

	require.Len(t, summary.ByGroup, 2)
	assert.Equal(t, "Trip", summary.ByGroup[0].GroupName)
	assert.Zero(t, summary.ByGroup[0].OwedToMe)
	assert.Equal(t, "Flat", summary.ByGroup[1].GroupName)
	assert.Zero(t, summary.ByGroup[1].OwedByMe)
	assert.InDelta(t, -5.25, summary.Net, 0.001)
}

func TestComputeSummaryEmptyInputs(t *testing.T) {
	summary := ledger.ComputeSummary("me", nil, nil)

	assert.Zero(t, summary.OwedByMe)
	assert.Zero(t, summary.OwedToMe)
	assert.Zero(t, summary.Net)
	assert.Empty(t, summary.ByGroup)
}
