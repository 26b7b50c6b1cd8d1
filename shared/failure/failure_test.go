package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"todomac/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	assert.Equal(t, "test error message", f.Error())
}

func TestPredefinedFailures(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, failure.InvalidIDParam.Code)
	assert.Equal(t, "invalid id parameter", failure.InvalidIDParam.Message)
	assert.Equal(t, http.StatusUnauthorized, failure.MissingToken.Code)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("bad input")),
			code:    http.StatusBadRequest,
			message: "bad input",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("title is required"),
			code:    http.StatusBadRequest,
			message: "title is required",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("invalid token: abc"),
			code:    http.StatusUnauthorized,
			message: "invalid token: abc",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("entity not found: todo - 93"),
			code:    http.StatusNotFound,
			message: "entity not found: todo - 93",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fail *failure.Failure

			assert.ErrorAs(t, tt.err, &fail)
			assert.Equal(t, tt.code, fail.Code)
			assert.Equal(t, tt.message, fail.Message)
		})
	}
}

func TestNilErrors(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "failure", err: failure.NotFound("x"), want: http.StatusNotFound},
		{name: "wrapped failure", err: fmt.Errorf("handler: %w", failure.Unauthorized("x")), want: http.StatusUnauthorized},
		{name: "plain error", err: errors.New("x"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}
