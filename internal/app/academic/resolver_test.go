package academic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBestPicksHighestRank(t *testing.T) {
	modules := []ModuleRef{{ID: 1, Code: "BBDD", Name: "Bases de Datos"}}
	attempts := map[int64][]Attempt{
		1: {
			{EnrollmentID: 1, StartYear: 2022, EndYear: 2023, Call: "Ordinaria", Grade: gr("4")},
			{EnrollmentID: 2, StartYear: 2022, EndYear: 2023, Call: "Extraordinaria", Grade: gr("8")},
			{EnrollmentID: 3, StartYear: 2023, EndYear: 2024, Call: "Ordinaria", Grade: gr("6")},
		},
	}

	best := ResolveBest(modules, attempts)
	require.Len(t, best, 1)
	assert.Equal(t, Grade("8"), best[0].Grade)
	assert.Equal(t, "8", best[0].Display)
	assert.Equal(t, 2022, best[0].StartYear)
	assert.Equal(t, 2023, best[0].EndYear)
	assert.Equal(t, 2, best[0].CallNumber)
}

func TestResolveBestTieKeepsEarliestAttempt(t *testing.T) {
	modules := []ModuleRef{{ID: 1, Code: "PROG", Name: "Programación"}}
	attempts := map[int64][]Attempt{
		1: {
			{EnrollmentID: 2, StartYear: 2023, EndYear: 2024, Call: "Ordinaria", Grade: gr("7")},
			{EnrollmentID: 1, StartYear: 2022, EndYear: 2023, Call: "Ordinaria", Grade: gr("7")},
		},
	}

	best := ResolveBest(modules, attempts)
	require.Len(t, best, 1)
	assert.Equal(t, 2022, best[0].StartYear)
	assert.Equal(t, 1, best[0].CallNumber)
}

func TestResolveBestSkipsUngradedModules(t *testing.T) {
	modules := []ModuleRef{
		{ID: 1, Code: "M1"},
		{ID: 2, Code: "M2"},
	}
	attempts := map[int64][]Attempt{
		1: {{EnrollmentID: 1, StartYear: 2023, EndYear: 2024, Call: "Ordinaria", Grade: gr("9")}},
		2: {{EnrollmentID: 2, StartYear: 2023, EndYear: 2024, Call: "Ordinaria", Grade: nil}},
	}

	best := ResolveBest(modules, attempts)
	require.Len(t, best, 1)
	assert.Equal(t, int64(1), best[0].ModuleID)
}

func TestResolveBestTransferDisplay(t *testing.T) {
	modules := []ModuleRef{{ID: 1, Code: "FOL"}}
	attempts := map[int64][]Attempt{
		1: {{EnrollmentID: 1, StartYear: 2023, EndYear: 2024, Call: "Ordinaria", Grade: gr("TRAS-7")}},
	}

	best := ResolveBest(modules, attempts)
	require.Len(t, best, 1)
	assert.Equal(t, "7*", best[0].Display)

	v, ok := best[0].Grade.AverageValue()
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)
}

func TestAverageExcludesNonNumericPasses(t *testing.T) {
	best := []BestGrade{
		{Grade: "8"},
		{Grade: GradeAPTO},
		{Grade: "6"},
		{Grade: GradeEX},
	}
	avg, ok := Average(best)
	require.True(t, ok)
	assert.InDelta(t, 7.0, avg, 1e-9)
	assert.Equal(t, "7.00", FormatAverage(best))
}

func TestAverageEmptySetPrintsDash(t *testing.T) {
	assert.Equal(t, "—", FormatAverage(nil))
	assert.Equal(t, "—", FormatAverage([]BestGrade{{Grade: GradeAPTO}, {Grade: GradeEX}}))

	_, ok := Average(nil)
	assert.False(t, ok)
}

// Scenario from the certificate flow: failing ordinaria, extraordinaria
// retake, supersession of the failing grade.
func TestResolveScenarioExtraordinariaSupersedes(t *testing.T) {
	modules := []ModuleRef{
		{ID: 1, Code: "M1"},
		{ID: 2, Code: "M2"},
	}
	attempts := map[int64][]Attempt{
		1: {{EnrollmentID: 1, StartYear: 2023, EndYear: 2024, Call: "Ordinaria", Grade: gr("8")}},
		2: {{EnrollmentID: 2, StartYear: 2023, EndYear: 2024, Call: "Ordinaria", Grade: gr("3")}},
	}

	best := ResolveBest(modules, attempts)
	require.Len(t, best, 2)
	assert.Equal(t, Grade("8"), best[0].Grade)
	assert.Equal(t, Grade("3"), best[1].Grade)
	assert.Equal(t, "5.50", FormatAverage(best))

	// The extraordinaria retake is provisioned as NE, then graded 6.
	attempts[2] = append(attempts[2],
		Attempt{EnrollmentID: 3, StartYear: 2023, EndYear: 2024, Call: "Extraordinaria", Grade: gr("6")})

	assert.Equal(t, 2, CountAttempts(attempts[2]))

	best = ResolveBest(modules, attempts)
	require.Len(t, best, 2)
	assert.Equal(t, Grade("6"), best[1].Grade)
	assert.Equal(t, 2, best[1].CallNumber)
	assert.Equal(t, "7.00", FormatAverage(best))
}

func TestDeriveRecordStatus(t *testing.T) {
	assert.Equal(t, StatusActive, DeriveRecordStatus(nil))
	assert.Equal(t, StatusActive, DeriveRecordStatus([]*Grade{gr("8"), nil}))
	assert.Equal(t, StatusActive, DeriveRecordStatus([]*Grade{gr("8"), gr("3")}))
	assert.Equal(t, StatusCompleted, DeriveRecordStatus([]*Grade{gr("8"), gr("APTO"), gr("CV-6")}))
}
