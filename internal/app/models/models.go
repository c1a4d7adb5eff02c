package models

// CallType identifies the sitting a record belongs to.
type CallType string

// Call type constants
const (
	CallOrdinaria      CallType = "Ordinaria"
	CallExtraordinaria CallType = "Extraordinaria"
)

// CycleType distinguishes basic (GM) from advanced (GS) qualifications.
type CycleType string

const (
	CycleGM CycleType = "GM"
	CycleGS CycleType = "GS"
)

// EnrollmentStatus describes how the student entered the module.
type EnrollmentStatus string

const (
	StatusMatricula   EnrollmentStatus = "Matricula"
	StatusConvalidada EnrollmentStatus = "Convalidada"
	StatusExenta      EnrollmentStatus = "Exenta"
	StatusTrasladada  EnrollmentStatus = "Trasladada"
)

// CompletionStatus describes the current outcome of an enrollment.
type CompletionStatus string

const (
	CompletionEnProceso  CompletionStatus = "En proceso"
	CompletionCompletado CompletionStatus = "Completado"
	CompletionFallido    CompletionStatus = "Fallido"
	CompletionRetirado   CompletionStatus = "Retirado"
)
