package platformerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTypeToHTTPStatus(t *testing.T) {
	tests := []struct {
		errType ErrorType
		want    int
	}{
		{ErrorTypeValidation, http.StatusBadRequest},
		{ErrorTypeUnauthorized, http.StatusUnauthorized},
		{ErrorTypeForbidden, http.StatusForbidden},
		{ErrorTypeNotFound, http.StatusNotFound},
		{ErrorTypeConflict, http.StatusConflict},
		{ErrorTypeUpstream, http.StatusBadGateway},
		{ErrorTypeDatabaseError, http.StatusInternalServerError},
		{ErrorTypePartialFailure, http.StatusInternalServerError},
		{ErrorTypeInternal, http.StatusInternalServerError},
		{ErrorType("bogus"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorTypeToHTTPStatus(tt.errType), string(tt.errType))
	}
}

func TestPlatformError_ErrorString(t *testing.T) {
	cause := errors.New("disk full")
	err := NewError(LayerInfrastructure, ErrorTypeUpstream, "place file", cause)

	msg := err.Error()
	assert.Contains(t, msg, "infrastructure")
	assert.Contains(t, msg, "UPSTREAM")
	assert.Contains(t, msg, "place file")
	assert.Contains(t, msg, "disk full")

	bare := NewError(LayerDomain, ErrorTypeValidation, "no file uploaded", nil)
	assert.NotContains(t, bare.Error(), "<nil>")
}

func TestPlatformError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewError(LayerRepository, ErrorTypeDatabaseError, "insert row", cause)

	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("ingest: %w", err)
	var pe *PlatformError
	require.ErrorAs(t, wrapped, &pe)
	assert.Equal(t, ErrorTypeDatabaseError, pe.Type)
}

func TestIsErrorType(t *testing.T) {
	err := NewError(LayerDomain, ErrorTypeConflict, "user already exists", nil)

	assert.True(t, IsErrorType(err, ErrorTypeConflict))
	assert.False(t, IsErrorType(err, ErrorTypeNotFound))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeConflict))
	assert.False(t, IsErrorType(nil, ErrorTypeConflict))
	assert.True(t, IsErrorType(fmt.Errorf("outer: %w", err), ErrorTypeConflict))
}

func TestAsError(t *testing.T) {
	assert.Nil(t, AsError(LayerHandler, nil, "noop"))

	typed := NewError(LayerRepository, ErrorTypeNotFound, "user not found", nil)
	out := AsError(LayerDomain, typed, "login")
	require.NotNil(t, out)
	assert.Equal(t, ErrorTypeNotFound, out.Type, "type survives re-wrapping")
	assert.Equal(t, LayerDomain, out.Layer)

	plain := AsError(LayerDomain, errors.New("boom"), "signup")
	require.NotNil(t, plain)
	assert.Equal(t, ErrorTypeInternal, plain.Type)
}
