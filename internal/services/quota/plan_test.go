package quota

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func TestPlanFairDivision(t *testing.T) {
	for _, tc := range []struct{ pairs, teams int }{
		{0, 1}, {0, 62}, {30, 62}, {62, 62}, {63, 62}, {130, 62}, {7, 3}, {1, 1},
	} {
		quotas := Plan(tc.pairs, tc.teams)

		assert.Len(t, quotas, tc.teams)
		assert.Equal(t, tc.pairs, sum(quotas), "pairs=%d teams=%d", tc.pairs, tc.teams)
		assert.LessOrEqual(t, slices.Max(quotas)-slices.Min(quotas), 1, "pairs=%d teams=%d", tc.pairs, tc.teams)
	}
}

func TestPlanDefaultScenario(t *testing.T) {
	quotas := Plan(30, 62)

	for i, q := range quotas {
		if i < 30 {
			assert.Equal(t, 1, q, "team %d", i)
		} else {
			assert.Equal(t, 0, q, "team %d", i)
		}
	}
}

func TestPlanExtraGoesToLowestIndexes(t *testing.T) {
	assert.Equal(t, []int{3, 2, 2}, Plan(7, 3))
}

func TestPlanNoTeams(t *testing.T) {
	assert.Nil(t, Plan(5, 0))
}
