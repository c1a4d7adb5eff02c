package dto

import (
	"time"

	"github.com/mvidal/gestifp/internal/app/models"
)

// CreateStudentRequest represents the payload for registering a student
type CreateStudentRequest struct {
	FirstName         string     `json:"firstName" binding:"required" example:"Lucía"`
	LastName1         string     `json:"lastName1" binding:"required" example:"García"`
	LastName2         string     `json:"lastName2" example:"Pérez"`
	Sex               string     `json:"sex" binding:"required,oneof=F M X" example:"F"`
	LegalID           string     `json:"legalId" binding:"required" example:"12345678Z"`
	LegalIDType       string     `json:"legalIdType" binding:"required,oneof=DNI NIE Pasaporte" example:"DNI"`
	BirthDate         *time.Time `json:"birthDate,omitempty"`
	Phone             string     `json:"phone" example:"600123456"`
	Observations      string     `json:"observations"`
	MeetsAdmissionReq bool       `json:"meetsAdmissionRequirement"`
}

// UpdateStudentRequest represents the payload for updating a student
type UpdateStudentRequest struct {
	FirstName         string     `json:"firstName" binding:"required"`
	LastName1         string     `json:"lastName1" binding:"required"`
	LastName2         string     `json:"lastName2"`
	Sex               string     `json:"sex" binding:"required,oneof=F M X"`
	LegalID           string     `json:"legalId" binding:"required"`
	LegalIDType       string     `json:"legalIdType" binding:"required,oneof=DNI NIE Pasaporte"`
	BirthDate         *time.Time `json:"birthDate,omitempty"`
	Phone             string     `json:"phone"`
	Observations      string     `json:"observations"`
	MeetsAdmissionReq bool       `json:"meetsAdmissionRequirement"`
}

// ToModel builds a Student model from the create payload.
func (r *CreateStudentRequest) ToModel() *models.Student {
	return &models.Student{
		FirstName:         r.FirstName,
		LastName1:         r.LastName1,
		LastName2:         r.LastName2,
		Sex:               r.Sex,
		LegalID:           r.LegalID,
		LegalIDType:       r.LegalIDType,
		BirthDate:         r.BirthDate,
		Phone:             r.Phone,
		Observations:      r.Observations,
		MeetsAdmissionReq: r.MeetsAdmissionReq,
	}
}

// StudentListResponse represents a paginated list of students
type StudentListResponse struct {
	Students   []*models.Student `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}

// ExpedienteResponse is the full nested record/enrollment tree of a student
type ExpedienteResponse struct {
	Student *models.Student  `json:"student"`
	Records []*RecordDetail  `json:"records"`
}

// RecordDetail is one record of the tree with its derived status
type RecordDetail struct {
	Record *models.Record `json:"record"`
	Status string         `json:"status" example:"Active"`
}

// AttemptCountResponse reports consumed convocatorias for one student+module
type AttemptCountResponse struct {
	StudentID int64 `json:"studentId"`
	ModuleID  int64 `json:"moduleId"`
	Attempts  int   `json:"attempts" example:"2"`
}
