package dto

import "net/http"

// General error codes used by the interface layer itself
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is the code for binding validation failures
	ErrCodeValidation = "VALIDATION_ERROR"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Field-level validation codes all collapse to 400; occupancy and
// lifecycle conflicts surface as 409 so a client can retry differently.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	// Validation -> 400 Bad Request
	ErrCodeValidation:      http.StatusBadRequest,
	"INVALID_INPUT":        http.StatusBadRequest,
	"INVALID_NAME":         http.StatusBadRequest,
	"INVALID_PRICE":        http.StatusBadRequest,
	"INVALID_CATEGORY":     http.StatusBadRequest,
	"INVALID_QUANTITY":     http.StatusBadRequest,
	"INVALID_UNIT":         http.StatusBadRequest,
	"INVALID_MIN_LEVEL":    http.StatusBadRequest,
	"INVALID_TABLE":        http.StatusBadRequest,
	"INVALID_SEATS":        http.StatusBadRequest,
	"INVALID_ORDER":        http.StatusBadRequest,
	"INVALID_ORDER_NUMBER": http.StatusBadRequest,
	"INVALID_MENU_ITEM":    http.StatusBadRequest,
	"INVALID_STATUS":       http.StatusBadRequest,
	"EMPTY_CART":           http.StatusBadRequest,
	"NO_TABLE_SELECTED":    http.StatusBadRequest,

	// Resources
	"NOT_FOUND":      http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,

	// Lifecycle and occupancy conflicts -> 409 Conflict
	"INVALID_STATE":  http.StatusConflict,
	"TABLE_OCCUPIED": http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
