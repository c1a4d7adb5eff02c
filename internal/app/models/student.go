package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID                   int64      `json:"id" db:"id" example:"1"`
	FirstName            string     `json:"firstName" db:"first_name" example:"Lucía"`
	LastName1            string     `json:"lastName1" db:"last_name1" example:"García"`
	LastName2            string     `json:"lastName2" db:"last_name2" example:"Pérez"`
	Sex                  string     `json:"sex" db:"sex" example:"F"`
	LegalID              string     `json:"legalId" db:"legal_id" example:"12345678Z"`
	LegalIDType          string     `json:"legalIdType" db:"legal_id_type" example:"DNI"`
	BirthDate            *time.Time `json:"birthDate,omitempty" db:"birth_date"`
	Phone                string     `json:"phone" db:"phone" example:"600123456"`
	Observations         string     `json:"observations" db:"observations"`
	MeetsAdmissionReq    bool       `json:"meetsAdmissionRequirement" db:"meets_admission_requirement"`

	// Relations (populated when needed)
	Records []*Record `json:"records,omitempty"`
}
