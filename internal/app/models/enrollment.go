package models

import "github.com/mvidal/gestifp/internal/app/academic"

// Enrollment defines a matrícula: one student's registration in one module
// within a record. Grade stays nil while the module is in progress.
type Enrollment struct {
	ID         int64            `json:"id" db:"id"`
	RecordID   int64            `json:"recordId" db:"record_id"`
	ModuleID   int64            `json:"moduleId" db:"module_id"`
	Status     EnrollmentStatus `json:"status" db:"status" example:"Matricula"`
	Completion CompletionStatus `json:"completion" db:"completion" example:"En proceso"`
	Grade      *academic.Grade  `json:"grade,omitempty" db:"grade"`

	// Relations (populated when needed)
	Module *Module `json:"module,omitempty"`
}
