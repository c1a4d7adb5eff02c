package dto

import (
	"time"

	"github.com/mvidal/gestifp/internal/app/models"
)

// CreateRecordRequest represents the payload for opening an expediente
type CreateRecordRequest struct {
	StudentID   int64      `json:"studentId" binding:"required,min=1"`
	CycleID     int64      `json:"cycleId" binding:"required,min=1"`
	StartYear   int        `json:"startYear" binding:"required,min=1900" example:"2023"`
	EndYear     int        `json:"endYear" binding:"required,min=1900" example:"2024"`
	Shift       string     `json:"shift" binding:"required,oneof=Diurno Vespertino Distancia" example:"Diurno"`
	CallType    string     `json:"callType" binding:"required,oneof=Ordinaria Extraordinaria" example:"Ordinaria"`
	TitlePaidAt *time.Time `json:"titlePaidAt,omitempty"`
	ViaTransfer bool       `json:"viaTransfer"`
}

// ToModel builds a Record model from the create payload.
func (r *CreateRecordRequest) ToModel() *models.Record {
	return &models.Record{
		StudentID:   r.StudentID,
		CycleID:     r.CycleID,
		StartYear:   r.StartYear,
		EndYear:     r.EndYear,
		Shift:       r.Shift,
		CallType:    models.CallType(r.CallType),
		TitlePaidAt: r.TitlePaidAt,
		ViaTransfer: r.ViaTransfer,
	}
}

// UpdateRecordRequest represents the mutable attributes of a record
type UpdateRecordRequest struct {
	Shift       string     `json:"shift" binding:"required,oneof=Diurno Vespertino Distancia"`
	TitlePaidAt *time.Time `json:"titlePaidAt,omitempty"`
	ViaTransfer bool       `json:"viaTransfer"`
	Withdrawn   bool       `json:"withdrawn"`
}

// CreateExtraordinariaRequest asks to derive an Extraordinaria record from
// an Ordinaria base. The caller supplies the failing module ids it computed
// from the resolved grades; the provisioner trusts the list.
type CreateExtraordinariaRequest struct {
	FailingModuleIDs []int64 `json:"failingModuleIds" binding:"required,min=1"`
}

// DeleteConfirmationResponse reports the confirmation stage reached and when
// it expires back to idle.
type DeleteConfirmationResponse struct {
	RecordID int64     `json:"recordId"`
	Stage    string    `json:"stage" example:"Confirming"`
	Expires  time.Time `json:"expires"`
}

// CascadeDeleteResponse reports the records removed by a cascade delete.
type CascadeDeleteResponse struct {
	Deleted      []*models.Record `json:"deleted"`
	DeletedCount int              `json:"deletedCount" example:"3"`
}
