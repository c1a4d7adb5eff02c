package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Precondition errors - the request is well formed but the academic
	// state it depends on does not hold
	ErrPreconditionFailed = errors.New("precondition failed")
)

// Student errors
var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrDuplicateLegalID  = errors.New("student with this legal id already exists")
	ErrStudentValidation = errors.New("student validation failed")
)

// Cycle and module errors
var (
	ErrCycleNotFound  = errors.New("cycle not found")
	ErrModuleNotFound = errors.New("module not found")
	ErrDuplicateCycle = errors.New("cycle with this code and course year already exists")
)

// Record errors
var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrDuplicateRecordCall = errors.New("record for this student, cycle, year and call already exists")
	ErrMissingBaseRecord   = errors.New("no matching Ordinaria base record exists")
	ErrRecordValidation    = errors.New("record validation failed")
)

// Enrollment errors
var (
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrDuplicateEnrollment = errors.New("enrollment for this record and module already exists")
	ErrInvalidGrade        = errors.New("grade code not in taxonomy")
)

// Delete confirmation errors
var (
	ErrConfirmationRequired = errors.New("cascade delete requires a completed confirmation")
	ErrConfirmationExpired  = errors.New("delete confirmation expired")
)

// NewNotFoundError creates a custom error for a missing resource with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewValidationError creates a custom error for out-of-domain input with a
// field-level message
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}

// NewPreconditionError creates a custom error for a failed academic
// precondition with an explicit message
func NewPreconditionError(message string) error {
	return &CustomError{
		Err:     ErrPreconditionFailed,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
