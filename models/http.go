package models

// Credentials is the request body of both /register and /login.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries an issued bearer token back to the client.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is the generic single-message response body used for
// deletions, conflicts and not-found replies.
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError names one failed validation constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse enumerates every failing field of a rejected
// request. Requests are rejected as a whole: no partial side effects occur.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// ErrorResponse is the body of an unexpected-failure (HTTP 500) reply.
// Detail is only populated in the development environment; production
// clients receive the generic message while the full error goes to the log.
type ErrorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
}
