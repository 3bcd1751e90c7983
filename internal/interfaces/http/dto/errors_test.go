package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"VALIDATION_ERROR", http.StatusBadRequest},
		{"INVALID_QUANTITY", http.StatusBadRequest},
		{"EMPTY_CART", http.StatusBadRequest},
		{"NO_TABLE_SELECTED", http.StatusBadRequest},
		{"NOT_FOUND", http.StatusNotFound},
		{"ALREADY_EXISTS", http.StatusConflict},
		{"INVALID_STATE", http.StatusConflict},
		{"TABLE_OCCUPIED", http.StatusConflict},
		{ErrCodeInternal, http.StatusInternalServerError},
		{"SOMETHING_NOVEL", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestResponses(t *testing.T) {
	success := NewSuccessResponse(map[string]int{"count": 3})
	assert.True(t, success.Success)
	assert.Nil(t, success.Error)

	failure := NewErrorResponse("NOT_FOUND", "Resource not found")
	assert.False(t, failure.Success)
	assert.Equal(t, "NOT_FOUND", failure.Error.Code)
	assert.Equal(t, "Resource not found", failure.Error.Message)
}
