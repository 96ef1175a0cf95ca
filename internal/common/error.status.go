// Package common defines the coded error type and HTTP status constants shared
// by every layer of the API.
package common

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200
	StatusCreated   = 201
	StatusAccepted  = 202
	StatusNoContent = 204

	// Client Error Codes (4xx)
	StatusBadRequest       = 400
	StatusUnauthorized     = 401
	StatusForbidden        = 403
	StatusNotFound         = 404
	StatusMethodNotAllowed = 405
	StatusConflict         = 409
	StatusGone             = 410
	StatusTooManyRequests  = 429

	// Server Error Codes (5xx)
	StatusInternalServerError = 500
	StatusNotImplemented      = 501
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

// Response Messages
const (
	MsgSuccess = "Success"
	MsgCreated = "Created"

	MsgBadRequest      = "Invalid request"
	MsgUnauthorized    = "Authentication required"
	MsgForbidden       = "Access denied"
	MsgNotFound        = "Resource not found"
	MsgConflict        = "Data conflict"
	MsgInternalError   = "Internal server error"
	MsgTooManyRequests = "Too many requests, please try again later"

	MsgTokenMissing = "Missing authentication token"
	MsgTokenInvalid = "Invalid token"
	MsgTokenExpired = "Token has expired"

	MsgValidationError = "Invalid data"
	MsgDatabaseError   = "Database operation failed"
	MsgInvalidFormat   = "Invalid data format"
)

// ErrorCode identifies an error class with a stable machine-readable code.
type ErrorCode struct {
	Code        string // Stable code (e.g. AUTH_001)
	Category    string // Category (e.g. Authentication)
	SubCategory string // Sub-category (e.g. Token)
	Description string // Human description
}

// Error codes grouped by category.
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Internal system error",
	}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuth = ErrorCode{
		Code:        "AUTH",
		Category:    "Authentication",
		SubCategory: "General",
		Description: "Generic authentication error",
	}

	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Token related error",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Login credential error",
	}

	ErrCodeAuthRole = ErrorCode{
		Code:        "AUTH_003",
		Category:    "Authentication",
		SubCategory: "Role",
		Description: "Role / permission error",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Generic validation error",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Invalid input data",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Invalid data format",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Generic database error",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Database connection error",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Database query error",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "Generic business logic error",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Invalid business state",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Invalid business operation",
	}

	// External Service Errors (EXT_xxx)
	ErrCodeExternalService = ErrorCode{
		Code:        "EXT_001",
		Category:    "External",
		SubCategory: "Service",
		Description: "Upstream service error",
	}
)

// Error is the structured error carried through services and handlers.
type Error struct {
	Code       ErrorCode // Detailed error code
	Message    string    // Error message
	StatusCode int       // HTTP status code
	Details    any       // Additional error context
}

// Error returns the error message.
func (e *Error) Error() string {
	return e.Message
}

// Is supports errors.Is comparison against other *Error values.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError builds a structured error.
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Sentinel errors
var (
	// Authentication
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Invalid email or password", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, "Session has expired", StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, "Invalid token", StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, "Missing authentication token", StatusUnauthorized, nil)
	ErrForbidden          = NewError(ErrCodeAuthRole, "Access denied", StatusForbidden, nil)

	// Validation
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Invalid input data", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Invalid data format", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Missing required field", StatusBadRequest, nil)

	// Database
	ErrNotFound    = NewError(ErrCodeDatabaseQuery, "Resource not found", StatusNotFound, nil)
	ErrDuplicate   = NewError(ErrCodeDatabaseQuery, "Resource already exists", StatusConflict, nil)
	ErrConnection  = NewError(ErrCodeDatabaseConnection, "Database connection error", StatusServiceUnavailable, nil)
	ErrTransaction = NewError(ErrCodeDatabaseQuery, "Database transaction error", StatusInternalServerError, nil)

	// Business Logic
	ErrInvalidState     = NewError(ErrCodeBusinessState, "Invalid state", StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "Invalid operation", StatusBadRequest, nil)
)

// ConvertMongoError maps a mongo-driver error to a structured *Error.
// Known cases: not-found, duplicate key, timeouts/network. Anything else
// becomes a DB_002 query error with the original error as details.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}

	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return NewError(ErrCodeDatabaseConnection, MsgDatabaseError, StatusServiceUnavailable, err.Error())
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			if we.Code == 11000 {
				return ErrDuplicate
			}
		}
	}

	// Bulk writes wrap duplicate key errors where errors.As cannot reach them.
	if strings.Contains(err.Error(), "E11000") {
		return ErrDuplicate
	}

	return NewError(ErrCodeDatabaseQuery, MsgDatabaseError, StatusInternalServerError, err.Error())
}
