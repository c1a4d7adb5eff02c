package dto

import "github.com/mvidal/gestifp/internal/app/models"

// CreateCycleRequest represents the payload for creating a cycle
type CreateCycleRequest struct {
	CourseYear int    `json:"courseYear" binding:"required,min=1" example:"1"`
	Name       string `json:"name" binding:"required" example:"Desarrollo de Aplicaciones Web"`
	Code       string `json:"code" binding:"required" example:"DAW"`
	NormRef1   string `json:"normRef1"`
	NormRef2   string `json:"normRef2"`
	LawID      string `json:"lawId"`
	Type       string `json:"type" binding:"required,oneof=GM GS" example:"GS"`
}

// ToModel builds a Cycle model from the create payload.
func (r *CreateCycleRequest) ToModel() *models.Cycle {
	return &models.Cycle{
		CourseYear: r.CourseYear,
		Name:       r.Name,
		Code:       r.Code,
		NormRef1:   r.NormRef1,
		NormRef2:   r.NormRef2,
		LawID:      r.LawID,
		Type:       models.CycleType(r.Type),
	}
}

// CreateModuleRequest represents the payload for adding a module to a cycle
type CreateModuleRequest struct {
	Name       string `json:"name" binding:"required" example:"Bases de Datos"`
	Code       string `json:"code" binding:"required" example:"BBDD"`
	CourseYear string `json:"courseYear" binding:"required" example:"1"`
}

// UpdateModuleRequest represents the payload for updating a module
type UpdateModuleRequest struct {
	Name       string `json:"name" binding:"required"`
	Code       string `json:"code" binding:"required"`
	CourseYear string `json:"courseYear" binding:"required"`
}
