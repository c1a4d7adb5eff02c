package academic

import "fmt"

// ModuleRef identifies a module of the cycle being resolved.
type ModuleRef struct {
	ID   int64
	Code string
	Name string
}

// BestGrade is the resolved outcome for one module, ready for the
// certificate layer: it carries the display string and the originating
// year and call number, and performs no further grade logic downstream.
type BestGrade struct {
	ModuleID   int64  `json:"moduleId"`
	ModuleCode string `json:"moduleCode"`
	ModuleName string `json:"moduleName"`
	Grade      Grade  `json:"grade"`
	Display    string `json:"display"`
	StartYear  int    `json:"startYear"`
	EndYear    int    `json:"endYear"`
	CallNumber int    `json:"callNumber"`
}

// ResolveBest picks one best outcome per module across the student's whole
// enrollment history for a cycle. Modules with no graded attempt are left
// out of the result. When two attempts carry the identical code, the
// chronologically first one wins (ties are resolved toward the earliest
// canonical attempt; the rule is deterministic and documented here because
// either choice yields the same printed grade).
func ResolveBest(modules []ModuleRef, attemptsByModule map[int64][]Attempt) []BestGrade {
	out := make([]BestGrade, 0, len(modules))
	for _, m := range modules {
		rows := make([]Attempt, len(attemptsByModule[m.ID]))
		copy(rows, attemptsByModule[m.ID])
		SortAttempts(rows)

		best := -1
		bestCall := 0
		call := 0
		for i, r := range rows {
			if r.Grade == nil {
				continue
			}
			if r.Grade.ConsumesAttempt() {
				call++
			}
			if best == -1 || r.Grade.Rank() > rows[best].Grade.Rank() {
				best = i
				bestCall = call
			}
		}
		if best == -1 {
			continue
		}
		chosen := rows[best]
		out = append(out, BestGrade{
			ModuleID:   m.ID,
			ModuleCode: m.Code,
			ModuleName: m.Name,
			Grade:      *chosen.Grade,
			Display:    chosen.Grade.Display(),
			StartYear:  chosen.StartYear,
			EndYear:    chosen.EndYear,
			CallNumber: bestCall,
		})
	}
	return out
}

// Average computes the certificate average over the resolved grades.
// APTO, EX and NO APTO are excluded per the contribution table; ok is false
// when nothing contributes.
func Average(best []BestGrade) (avg float64, ok bool) {
	var sum float64
	var n int
	for _, b := range best {
		v, contributes := b.Grade.AverageValue()
		if !contributes {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// FormatAverage renders the certificate average. An empty contributing set
// prints as an em dash, never as zero.
func FormatAverage(best []BestGrade) string {
	avg, ok := Average(best)
	if !ok {
		return "—"
	}
	return fmt.Sprintf("%.2f", avg)
}
