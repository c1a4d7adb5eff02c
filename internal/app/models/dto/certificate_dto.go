package dto

import "github.com/mvidal/gestifp/internal/app/academic"

// CertificateModule is one resolved module line ready for the document
// layer: display string per the transfer-rendering rule, originating year
// span and call number. The document layer performs no grade logic.
type CertificateModule struct {
	ModuleID   int64  `json:"moduleId"`
	ModuleCode string `json:"moduleCode" example:"BBDD"`
	ModuleName string `json:"moduleName" example:"Bases de Datos"`
	Grade      string `json:"grade" example:"TRAS-7"`
	Display    string `json:"display" example:"7*"`
	SchoolYear string `json:"schoolYear" example:"2023/2024"`
	CallNumber int    `json:"callNumber" example:"1"`
}

// CertificateResponse is the cycle-scoped best-grade resolution used to
// populate an official certificate.
type CertificateResponse struct {
	StudentID   int64               `json:"studentId"`
	CycleID     int64               `json:"cycleId"`
	CycleName   string              `json:"cycleName"`
	CycleCode   string              `json:"cycleCode"`
	Modules     []CertificateModule `json:"modules"`
	Average     string              `json:"average" example:"7.00"`
	HasTransfer bool                `json:"hasTransfer"` // drives the asterisk footnote
}

// NewCertificateModule converts a resolved best grade into its certificate line.
func NewCertificateModule(b academic.BestGrade, schoolYear string) CertificateModule {
	return CertificateModule{
		ModuleID:   b.ModuleID,
		ModuleCode: b.ModuleCode,
		ModuleName: b.ModuleName,
		Grade:      string(b.Grade),
		Display:    b.Display,
		SchoolYear: schoolYear,
		CallNumber: b.CallNumber,
	}
}
