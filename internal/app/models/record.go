package models

import "time"

// Record defines an expediente: one student's enrollment period in one cycle
// for one school-year span and call type. Records for the same student+cycle
// form a temporal chain ordered by (start year, end year).
type Record struct {
	ID          int64      `json:"id" db:"id"`
	StudentID   int64      `json:"studentId" db:"student_id"`
	CycleID     int64      `json:"cycleId" db:"cycle_id"`
	StartYear   int        `json:"startYear" db:"start_year" example:"2023"`
	EndYear     int        `json:"endYear" db:"end_year" example:"2024"`
	Shift       string     `json:"shift" db:"shift" example:"Diurno"`
	CallType    CallType   `json:"callType" db:"call_type" example:"Ordinaria"`
	TitlePaidAt *time.Time `json:"titlePaidAt,omitempty" db:"title_paid_at"`
	ViaTransfer bool       `json:"viaTransfer" db:"via_transfer"`
	Withdrawn   bool       `json:"withdrawn" db:"withdrawn"`

	// Relations (populated when needed)
	Cycle       *Cycle        `json:"cycle,omitempty"`
	Enrollments []*Enrollment `json:"enrollments,omitempty"`
}
