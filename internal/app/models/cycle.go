package models

// Cycle represents a qualification definition. Several rows may share a code,
// one per course year; code+name identifies the qualification across years.
type Cycle struct {
	ID         int64     `json:"id" db:"id"`
	CourseYear int       `json:"courseYear" db:"course_year" example:"1"`
	Name       string    `json:"name" db:"name" example:"Desarrollo de Aplicaciones Web"`
	Code       string    `json:"code" db:"code" example:"DAW"`
	NormRef1   string    `json:"normRef1" db:"norm_ref1"`
	NormRef2   string    `json:"normRef2" db:"norm_ref2"`
	LawID      string    `json:"lawId" db:"law_id"`
	Type       CycleType `json:"type" db:"cycle_type" example:"GS"`

	// Relations (populated when needed)
	Modules []*Module `json:"modules,omitempty"`
}
