package academic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func gr(s string) *Grade {
	g := Grade(s)
	return &g
}

func TestCountAttemptsNoPass(t *testing.T) {
	rows := []Attempt{
		{EnrollmentID: 1, StartYear: 2022, EndYear: 2023, Call: "Ordinaria", Grade: gr("3")},
		{EnrollmentID: 2, StartYear: 2022, EndYear: 2023, Call: "Extraordinaria", Grade: gr("4")},
		{EnrollmentID: 3, StartYear: 2023, EndYear: 2024, Call: "Ordinaria", Grade: gr("NO APTO")},
	}
	assert.Equal(t, 3, CountAttempts(rows))
}

func TestCountAttemptsStopsAtFirstPass(t *testing.T) {
	rows := []Attempt{
		{EnrollmentID: 1, StartYear: 2022, EndYear: 2023, Call: "Ordinaria", Grade: gr("3")},
		{EnrollmentID: 2, StartYear: 2022, EndYear: 2023, Call: "Extraordinaria", Grade: gr("6")},
		// A later row should be irrelevant once the module is passed.
		{EnrollmentID: 3, StartYear: 2023, EndYear: 2024, Call: "Ordinaria", Grade: gr("2")},
	}
	assert.Equal(t, 2, CountAttempts(rows))
}

func TestCountAttemptsOrderIndependentInput(t *testing.T) {
	rows := []Attempt{
		{EnrollmentID: 3, StartYear: 2023, EndYear: 2024, Call: "Ordinaria", Grade: gr("7")},
		{EnrollmentID: 1, StartYear: 2022, EndYear: 2023, Call: "Ordinaria", Grade: gr("2")},
		{EnrollmentID: 2, StartYear: 2022, EndYear: 2023, Call: "Extraordinaria", Grade: gr("4")},
	}
	// Canonical order puts the pass third regardless of input order.
	assert.Equal(t, 3, CountAttempts(rows))
}

func TestCountAttemptsRCInvariance(t *testing.T) {
	base := []Attempt{
		{EnrollmentID: 2, StartYear: 2022, EndYear: 2023, Call: "Extraordinaria", Grade: gr("4")},
		{EnrollmentID: 4, StartYear: 2023, EndYear: 2024, Call: "Ordinaria", Grade: gr("5")},
	}
	withRC := append([]Attempt{
		{EnrollmentID: 1, StartYear: 2022, EndYear: 2023, Call: "Ordinaria", Grade: gr("RC")},
		{EnrollmentID: 3, StartYear: 2023, EndYear: 2024, Call: "Extraordinaria", Grade: gr("RC")},
	}, base...)

	assert.Equal(t, CountAttempts(base), CountAttempts(withRC))
}

func TestCountAttemptsEdgeCases(t *testing.T) {
	assert.Equal(t, 0, CountAttempts(nil))

	onlyRC := []Attempt{
		{EnrollmentID: 1, StartYear: 2022, EndYear: 2023, Call: "Ordinaria", Grade: gr("RC")},
		{EnrollmentID: 2, StartYear: 2022, EndYear: 2023, Call: "Extraordinaria", Grade: gr("RC")},
	}
	assert.Equal(t, 0, CountAttempts(onlyRC))

	ungraded := []Attempt{
		{EnrollmentID: 1, StartYear: 2023, EndYear: 2024, Call: "Ordinaria", Grade: nil},
	}
	assert.Equal(t, 0, CountAttempts(ungraded))

	// NE consumes a call even though nothing was sat.
	ne := []Attempt{
		{EnrollmentID: 1, StartYear: 2023, EndYear: 2024, Call: "Ordinaria", Grade: gr("NE")},
	}
	assert.Equal(t, 1, CountAttempts(ne))
}

func TestSortAttemptsCanonicalOrder(t *testing.T) {
	rows := []Attempt{
		{EnrollmentID: 9, StartYear: 2023, EndYear: 2024, Call: "Extraordinaria"},
		{EnrollmentID: 5, StartYear: 2023, EndYear: 2024, Call: "Ordinaria"},
		{EnrollmentID: 7, StartYear: 2022, EndYear: 2023, Call: "Extraordinaria"},
		{EnrollmentID: 2, StartYear: 2023, EndYear: 2024, Call: "Ordinaria"},
		{EnrollmentID: 1, StartYear: 2022, EndYear: 2023, Call: "Ordinaria"},
	}
	SortAttempts(rows)

	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.EnrollmentID
	}
	assert.Equal(t, []int64{1, 7, 2, 5, 9}, ids)
}
