package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	ErrCodeInternal   = "ERR_INTERNAL"
	ErrCodeValidation = "ERR_VALIDATION"
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
)

// Auth error codes
const (
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
	ErrCodeTokenRevoked = "ERR_TOKEN_REVOKED"
)

// Resource error codes
const (
	ErrCodeNotFound      = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	ErrCodeConflict      = "ERR_CONFLICT"
)

// Rate limiting error codes
const (
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// errorCodeHTTPStatus maps error codes, both normalized and domain, to
// HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeValidation: http.StatusBadRequest,
	ErrCodeBadRequest: http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,
	ErrCodeTokenRevoked: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,

	ErrCodeRateLimited: http.StatusTooManyRequests,

	// Identity
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"EMAIL_TAKEN":         http.StatusConflict,
	"SELF_DEMOTION":       http.StatusUnprocessableEntity,

	// Catalog
	"DUPLICATE_NAME":       http.StatusConflict,
	"PARENT_NOT_FOUND":     http.StatusUnprocessableEntity,
	"CATEGORY_NOT_EMPTY":   http.StatusConflict,
	"STORAGE_DISABLED":     http.StatusServiceUnavailable,
	"INVALID_CONTENT_TYPE": http.StatusBadRequest,

	// Trade
	"EMPTY_CART":         http.StatusUnprocessableEntity,
	"EMPTY_ORDER":        http.StatusUnprocessableEntity,
	"PRODUCT_INACTIVE":   http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK": http.StatusUnprocessableEntity,
	"PAYMENTS_DISABLED":  http.StatusServiceUnavailable,
	"PAYMENT_FAILED":     http.StatusBadGateway,
	"PAYMENT_INCOMPLETE": http.StatusPaymentRequired,
	"ALREADY_PAID":       http.StatusConflict,

	// Shared domain codes
	"NOT_FOUND":            http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"UNAUTHORIZED":         http.StatusUnauthorized,
	"FORBIDDEN":            http.StatusForbidden,
	"INVALID_STATE":        http.StatusUnprocessableEntity,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"INTERNAL_ERROR":       http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code.
// Unmapped INVALID_* codes are treated as validation failures; anything
// else unknown is an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
