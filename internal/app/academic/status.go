package academic

// Status is the derived lifecycle state of a record. There is no stored
// state column: status is always recomputed from the record's enrollments
// so it can never drift.
type Status string

const (
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
)

// DeriveRecordStatus classifies a record from its enrollments' grades.
// A record is Completed once every enrollment holds a passing grade; an
// empty or partially graded record stays Active.
func DeriveRecordStatus(grades []*Grade) Status {
	if len(grades) == 0 {
		return StatusActive
	}
	for _, g := range grades {
		if g == nil || !g.Passing() {
			return StatusActive
		}
	}
	return StatusCompleted
}
