package models

// Module represents a teaching module belonging to a cycle.
type Module struct {
	ID         int64  `json:"id" db:"id"`
	CycleID    int64  `json:"cycleId" db:"cycle_id"`
	Name       string `json:"name" db:"name" example:"Bases de Datos"`
	Code       string `json:"code" db:"code" example:"BBDD"`
	CourseYear string `json:"courseYear" db:"course_year" example:"1"`

	// Relations (populated when needed)
	Cycle *Cycle `json:"cycle,omitempty"`
}
