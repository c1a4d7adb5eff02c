package academic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainFixture() []ChainRecord {
	return []ChainRecord{
		{ID: 1, StartYear: 2022, EndYear: 2023, Call: "Ordinaria"},
		{ID: 2, StartYear: 2022, EndYear: 2023, Call: "Extraordinaria"},
		{ID: 3, StartYear: 2023, EndYear: 2024, Call: "Ordinaria"},
		{ID: 4, StartYear: 2023, EndYear: 2024, Call: "Extraordinaria"},
		{ID: 5, StartYear: 2024, EndYear: 2025, Call: "Ordinaria"},
	}
}

func cascadeIDs(t *testing.T, chain []ChainRecord, target int64) []int64 {
	t.Helper()
	set, ok := CascadeSet(chain, target)
	require.True(t, ok)
	ids := make([]int64, len(set))
	for i, r := range set {
		ids[i] = r.ID
	}
	return ids
}

func TestCascadeSetOrdinariaTakesPairAndLater(t *testing.T) {
	// Deleting the 2023-2024 Ordinaria removes its paired Extraordinaria
	// and everything later; the 2022-2023 records are untouched.
	ids := cascadeIDs(t, chainFixture(), 3)
	assert.ElementsMatch(t, []int64{3, 4, 5}, ids)
}

func TestCascadeSetExtraordinariaLeavesPair(t *testing.T) {
	// Deleting an Extraordinaria does not drag its Ordinaria along.
	ids := cascadeIDs(t, chainFixture(), 4)
	assert.ElementsMatch(t, []int64{4, 5}, ids)
}

func TestCascadeSetEarliestTakesWholeChain(t *testing.T) {
	ids := cascadeIDs(t, chainFixture(), 1)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5}, ids)
}

func TestCascadeSetLatestTakesOnlyItself(t *testing.T) {
	ids := cascadeIDs(t, chainFixture(), 5)
	assert.ElementsMatch(t, []int64{5}, ids)
}

func TestCascadeSetUnknownTarget(t *testing.T) {
	set, ok := CascadeSet(chainFixture(), 99)
	assert.False(t, ok)
	assert.Nil(t, set)
}

func TestCascadeSetSameStartLaterEnd(t *testing.T) {
	chain := []ChainRecord{
		{ID: 1, StartYear: 2023, EndYear: 2024, Call: "Ordinaria"},
		{ID: 2, StartYear: 2023, EndYear: 2025, Call: "Ordinaria"},
	}
	ids := cascadeIDs(t, chain, 1)
	assert.ElementsMatch(t, []int64{1, 2}, ids)
}
