package academic

import "sort"

// Attempt is one graded (or pending) enrollment row for a student+module,
// flattened with the ordering attributes of its record.
type Attempt struct {
	EnrollmentID int64
	StartYear    int
	EndYear      int
	Call         string // "Ordinaria" or "Extraordinaria"
	Grade        *Grade // nil while no grade has been recorded
}

// callRank orders sittings within a school year: Ordinaria first,
// Extraordinaria second, anything unexpected last.
func callRank(call string) int {
	switch call {
	case "Ordinaria":
		return 0
	case "Extraordinaria":
		return 1
	default:
		return 2
	}
}

// SortAttempts orders rows canonically: record start year ascending, end
// year ascending, call priority, then enrollment id as a stable tiebreak.
func SortAttempts(rows []Attempt) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.StartYear != b.StartYear {
			return a.StartYear < b.StartYear
		}
		if a.EndYear != b.EndYear {
			return a.EndYear < b.EndYear
		}
		if callRank(a.Call) != callRank(b.Call) {
			return callRank(a.Call) < callRank(b.Call)
		}
		return a.EnrollmentID < b.EnrollmentID
	})
}

// qualifying filters to the rows that consume a convocatoria: graded rows
// whose grade is not RC. The result preserves canonical order.
func qualifying(rows []Attempt) []Attempt {
	out := make([]Attempt, 0, len(rows))
	for _, r := range rows {
		if r.Grade == nil || !r.Grade.ConsumesAttempt() {
			continue
		}
		out = append(out, r)
	}
	return out
}

// CountAttempts returns how many convocatorias the student has consumed for
// one module. The scan stops at the first passing grade, counting it; with
// no pass every qualifying row counts. RC rows and ungraded rows never
// count. The result must always be recomputed from current rows: any new
// grade can change it.
func CountAttempts(rows []Attempt) int {
	sorted := make([]Attempt, len(rows))
	copy(sorted, rows)
	SortAttempts(sorted)

	q := qualifying(sorted)
	for i, r := range q {
		if r.Grade.Passing() {
			return i + 1
		}
	}
	return len(q)
}
