package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidal/gestifp/internal/app/models/dto"
	"github.com/mvidal/gestifp/internal/pkg/apperrors"
)

func handle(t *testing.T, err error) (int, dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	HandleAPIError(c, err)

	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   dto.ErrorCode
	}{
		{apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrRecordNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrEnrollmentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrDuplicateLegalID, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{apperrors.ErrDuplicateRecordCall, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{apperrors.ErrMissingBaseRecord, http.StatusPreconditionFailed, dto.ErrorCodeMissingBaseRecord},
		{apperrors.ErrConfirmationRequired, http.StatusPreconditionFailed, dto.ErrorCodeConfirmationRequired},
		{apperrors.ErrConfirmationExpired, http.StatusPreconditionFailed, dto.ErrorCodeConfirmationRequired},
		{apperrors.ErrInvalidGrade, http.StatusBadRequest, dto.ErrorCodeInvalidGrade},
		{apperrors.ErrStudentValidation, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		status, body := handle(t, tc.err)
		assert.Equal(t, tc.status, status, "error %v", tc.err)
		require.NotNil(t, body.Error, "error %v", tc.err)
		assert.Equal(t, tc.code, body.Error.Code, "error %v", tc.err)
	}
}

func TestHandleAPIErrorWrappedMessage(t *testing.T) {
	err := apperrors.NewNotFoundError("record 42 does not exist")

	status, body := handle(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, body.Error)
	assert.Equal(t, "record 42 does not exist", body.Error.Message)
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	_, body := handle(t, errors.New("pq: connection refused"))
	require.NotNil(t, body.Error)
	assert.Equal(t, "Internal server error", body.Error.Message)
}
