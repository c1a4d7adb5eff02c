package dto

// CreateEnrollmentRequest represents the payload for enrolling a record in a module
type CreateEnrollmentRequest struct {
	RecordID int64  `json:"recordId" binding:"required,min=1"`
	ModuleID int64  `json:"moduleId" binding:"required,min=1"`
	Status   string `json:"status" binding:"omitempty,oneof=Matricula Convalidada Exenta Trasladada" example:"Matricula"`
}

// UpdateEnrollmentRequest mutates an enrollment as grades are entered.
// An empty grade clears the stored code (module back in progress).
type UpdateEnrollmentRequest struct {
	Status     string `json:"status" binding:"omitempty,oneof=Matricula Convalidada Exenta Trasladada"`
	Completion string `json:"completion" binding:"omitempty,oneof='En proceso' Completado Fallido Retirado"`
	Grade      string `json:"grade" example:"8"`
}
