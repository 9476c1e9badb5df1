package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{"bad request maps to 400", ErrCodeBadRequest, http.StatusBadRequest},
		{"invalid JSON maps to 400", ErrCodeInvalidJSON, http.StatusBadRequest},
		{"validation maps to 400", ErrCodeValidation, http.StatusBadRequest},
		{"not found maps to 404", ErrCodeNotFound, http.StatusNotFound},
		{"already exists maps to 409", ErrCodeAlreadyExists, http.StatusConflict},
		{"internal maps to 500", ErrCodeInternal, http.StatusInternalServerError},
		{"unknown code falls back to 500", "ERR_NO_SUCH_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
	assert.Equal(t, ErrCodeInvalidInput, NormalizeErrorCode("INVALID_INPUT"))
	assert.Equal(t, ErrCodeBadRequest, NormalizeErrorCode(ErrCodeBadRequest))
	assert.Equal(t, "CUSTOM_CODE", NormalizeErrorCode("CUSTOM_CODE"))
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "Resource not found", "req-123")

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Resource not found", resp.Error.Message)
	assert.Equal(t, "req-123", resp.Error.RequestID)
}

func TestErrorResponseJSONShape(t *testing.T) {
	resp := NewErrorResponse(ErrCodeBadRequest, "Bad Id parameter")

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded Response
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.False(t, decoded.Success)
	require.NotNil(t, decoded.Error)
	assert.Equal(t, ErrCodeBadRequest, decoded.Error.Code)
	assert.Equal(t, "Bad Id parameter", decoded.Error.Message)
	assert.Nil(t, decoded.Data)
}
