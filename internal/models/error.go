package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest     = "BAD_REQUEST"
	ErrUnauthorized   = "UNAUTHORIZED"
	ErrForbidden      = "FORBIDDEN"
	ErrNotFound       = "NOT_FOUND"
	ErrInternalServer = "INTERNAL_SERVER_ERROR"

	// Resource-specific errors
	ErrAdministratorNotFound = "ADMINISTRATOR_NOT_FOUND"
	ErrVehicleNotFound       = "VEHICLE_NOT_FOUND"
	ErrInvalidCredentials    = "INVALID_CREDENTIALS"
	ErrInvalidID             = "INVALID_ID"
	ErrInvalidPage           = "INVALID_PAGE"

	// Bearer token errors (RFC 6750)
	ErrInvalidRequest    = "invalid_request"
	ErrInvalidToken      = "invalid_token"
	ErrInsufficientScope = "insufficient_scope"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// BearerError represents a bearer token error response (RFC 6750)
type BearerError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// NewBearerError creates a new bearer token error response
func NewBearerError(code, description string) BearerError {
	return BearerError{
		Error:            code,
		ErrorDescription: description,
	}
}
