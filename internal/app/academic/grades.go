// Package academic implements the grade taxonomy, attempt accounting,
// best-grade resolution and record-chain rules used to compile expedientes
// and certificates. Everything in this package is pure: callers load rows
// from the store and hand them in.
package academic

import (
	"fmt"
	"strconv"
	"strings"
)

// Grade is one code of the closed grade taxonomy.
type Grade string

// Grade codes. The set is closed; the database enforces it with the
// grade_code enum and ParseGrade enforces it at the API boundary.
const (
	GradeNE     Grade = "NE"      // not yet evaluated, consumes an attempt
	GradeRC     Grade = "RC"      // withdrawal, never consumes an attempt
	GradeAPTO   Grade = "APTO"
	GradeNoAPTO Grade = "NO APTO"
	GradeEX     Grade = "EX"      // exempted
	GradeCV     Grade = "CV"      // validated with no embedded value, worth 5
	Grade10MH   Grade = "10-MH"   // matrícula de honor
	GradeCV10MH Grade = "CV-10-MH"
	GradeTR10MH Grade = "TRAS-10-MH"
)

// gradeAlias maps accepted spellings onto canonical codes.
var gradeAlias = map[string]Grade{
	"10-Matr. Honor": Grade10MH,
}

// ParseGrade validates a grade code, resolving the accepted aliases.
func ParseGrade(s string) (Grade, error) {
	s = strings.TrimSpace(s)
	if g, ok := gradeAlias[s]; ok {
		return g, nil
	}
	g := Grade(s)
	if !g.Valid() {
		return "", fmt.Errorf("unknown grade code %q", s)
	}
	return g, nil
}

// Valid reports whether g is a member of the taxonomy.
func (g Grade) Valid() bool {
	switch g {
	case GradeNE, GradeRC, GradeAPTO, GradeNoAPTO, GradeEX, GradeCV,
		Grade10MH, GradeCV10MH, GradeTR10MH:
		return true
	}
	if n, ok := g.numeric(); ok {
		return n >= 1 && n <= 10
	}
	if n, ok := g.suffixOf("CV-"); ok {
		return n >= 5 && n <= 10
	}
	if n, ok := g.suffixOf("TRAS-"); ok {
		return n >= 5 && n <= 10
	}
	return false
}

// numeric interprets g as a plain numeric code.
func (g Grade) numeric() (int, bool) {
	n, err := strconv.Atoi(string(g))
	if err != nil {
		return 0, false
	}
	return n, true
}

// suffixOf extracts the numeric suffix of a prefixed code such as CV-7.
func (g Grade) suffixOf(prefix string) (int, bool) {
	s, ok := strings.CutPrefix(string(g), prefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Passing reports whether g stops the attempt-count scan: numeric 5-10,
// honors, APTO, EX and every validation or transfer code.
func (g Grade) Passing() bool {
	switch g {
	case GradeAPTO, GradeEX, GradeCV, Grade10MH, GradeCV10MH, GradeTR10MH:
		return true
	}
	if n, ok := g.numeric(); ok {
		return n >= 5 && n <= 10
	}
	if _, ok := g.suffixOf("CV-"); ok {
		return true
	}
	if _, ok := g.suffixOf("TRAS-"); ok {
		return true
	}
	return false
}

// Failing reports whether g is a terminal failure: numeric 1-4 or NO APTO.
func (g Grade) Failing() bool {
	if g == GradeNoAPTO {
		return true
	}
	if n, ok := g.numeric(); ok {
		return n >= 1 && n <= 4
	}
	return false
}

// ConsumesAttempt reports whether g uses up a convocatoria. Only RC is
// excluded: a withdrawal never counts as a consumed call.
func (g Grade) ConsumesAttempt() bool {
	return g != GradeRC
}

// Display renders g for certificates. Transferred grades carry an asterisk:
// TRAS-7 prints as "7*" with the footnote explaining the mark.
func (g Grade) Display() string {
	if g == GradeTR10MH {
		return "10-MH*"
	}
	if n, ok := g.suffixOf("TRAS-"); ok {
		return fmt.Sprintf("%d*", n)
	}
	return string(g)
}

// AverageValue returns g's contribution to the certificate average and
// whether it contributes at all. This table is intentionally distinct from
// attempt accounting: APTO, EX and NO APTO never enter the average, while a
// withdrawal averages as zero even though it consumes no call.
func (g Grade) AverageValue() (float64, bool) {
	switch g {
	case GradeAPTO, GradeEX, GradeNoAPTO:
		return 0, false
	case GradeNE, GradeRC:
		return 0, true
	case Grade10MH, GradeCV10MH, GradeTR10MH:
		return 10, true
	case GradeCV:
		return 5, true
	}
	if n, ok := g.numeric(); ok {
		return float64(n), true
	}
	if n, ok := g.suffixOf("CV-"); ok {
		return float64(n), true
	}
	if n, ok := g.suffixOf("TRAS-"); ok {
		return float64(n), true
	}
	return 0, false
}

// Rank places g on the total order used to pick the best grade per module.
// Higher is better. Honors outrank everything, then plain numerics, then the
// non-numeric passes, then validations, then transfers, then failures.
func (g Grade) Rank() int {
	switch g {
	case Grade10MH:
		return 1200
	case GradeCV10MH:
		return 1190
	case GradeTR10MH:
		return 1180
	case GradeAPTO:
		return 990
	case GradeEX:
		return 980
	case GradeCV:
		return 904 // just under CV-5
	case GradeNoAPTO:
		return 700
	case GradeNE:
		return 600
	case GradeRC:
		return 500
	}
	if n, ok := g.numeric(); ok {
		if n >= 5 {
			return 1000 + n
		}
		return 700 + n
	}
	if n, ok := g.suffixOf("CV-"); ok {
		return 900 + n
	}
	if n, ok := g.suffixOf("TRAS-"); ok {
		return 800 + n
	}
	return 0
}
