package ledger

import (
	"sort"

	"github.com/splitta/splitta/pkg/money"
)

// SummaryRow is one split row joined with its expense's group, as produced by
// the persistence layer for the summary computation.
type SummaryRow struct {
	GroupID   string
	GroupName string
	PaidBy    string
	Amount    float64
}

// GroupSummary is one group's slice of a user's global position.
type GroupSummary struct {
	GroupID   string  `json:"group_id"`
	GroupName string  `json:"group_name"`
	OwedByMe  float64 `json:"owed_by_me"`
	OwedToMe  float64 `json:"owed_to_me"`
	Net       float64 `json:"net"`
}

// GlobalSummary aggregates a user's position across every group they belong to.
type GlobalSummary struct {
	OwedByMe float64        `json:"owed_by_me"`
	OwedToMe float64        `json:"owed_to_me"`
	Net      float64        `json:"net"`
	ByGroup  []GroupSummary `json:"by_group"`
}

// ComputeSummary builds a user's global summary from two pre-joined row sets:
// owedRows are the splits the user owes, toMeRows the splits of expenses the
// user paid for. Rows in toMeRows whose expense payer is someone else are
// ignored. A group present in only one row set still appears in ByGroup with
// the other side at zero. Groups are ordered by id for stable output.
func ComputeSummary(userID string, owedRows, toMeRows []SummaryRow) GlobalSummary {
	type groupAcc struct {
		name string
		owed float64
		toMe float64
	}
	groups := make(map[string]*groupAcc)
	acc := func(groupID, groupName string) *groupAcc {
		g, ok := groups[groupID]
		if !ok {
			g = &groupAcc{}
			groups[groupID] = g
		}
		if g.name == "" {
			g.name = groupName
		}
		return g
	}

	var owedByMe, owedToMe float64
	for _, row := range owedRows {
		owedByMe += row.Amount
		acc(row.GroupID, row.GroupName).owed += row.Amount
	}
	for _, row := range toMeRows {
		if row.PaidBy != userID {
			continue
		}
		owedToMe += row.Amount
		acc(row.GroupID, row.GroupName).toMe += row.Amount
	}

	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	byGroup := make([]GroupSummary, 0, len(ids))
	for _, id := range ids {
		g := groups[id]
		byGroup = append(byGroup, GroupSummary{
			GroupID:   id,
			GroupName: g.name,
			OwedByMe:  money.Round2(g.owed),
			OwedToMe:  money.Round2(g.toMe),
			Net:       money.Round2(g.toMe - g.owed),
		})
	}

	return GlobalSummary{
		OwedByMe: money.Round2(owedByMe),
		OwedToMe: money.Round2(owedToMe),
		Net:      money.Round2(owedToMe - owedByMe),
		ByGroup:  byGroup,
	}
}
