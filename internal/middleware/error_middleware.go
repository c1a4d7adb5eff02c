package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mvidal/gestifp/internal/app/models/dto"
	"github.com/mvidal/gestifp/internal/pkg/apperrors"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	// Prefer the wrapped message when a CustomError carries one, the status
	// code still comes from the sentinel class.
	message := err.Error()
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	}

	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrCycleNotFound,
		apperrors.ErrModuleNotFound,
		apperrors.ErrRecordNotFound,
		apperrors.ErrEnrollmentNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message),
		})
		return
	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrDuplicateLegalID,
		apperrors.ErrDuplicateCycle,
		apperrors.ErrDuplicateRecordCall,
		apperrors.ErrDuplicateEnrollment):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message),
		})
		return
	case apperrors.Is(err, apperrors.ErrConfirmationRequired,
		apperrors.ErrConfirmationExpired):
		c.JSON(412, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeConfirmationRequired, message),
		})
		return
	case errors.Is(err, apperrors.ErrMissingBaseRecord):
		c.JSON(412, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeMissingBaseRecord, message),
		})
		return
	case errors.Is(err, apperrors.ErrPreconditionFailed):
		c.JSON(412, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodePreconditionFailed, message),
		})
		return
	case errors.Is(err, apperrors.ErrInvalidGrade):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidGrade, message).WithField("grade"),
		})
		return
	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrStudentValidation,
		apperrors.ErrRecordValidation):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message),
		})
		return
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeBadRequest, message),
		})
		return
	default:
		// Handle unknown errors
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
		return
	}
}
