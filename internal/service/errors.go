package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when an operation is attempted with
	// missing or empty required fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on login when the username is
	// unknown or the password does not match. The two cases are deliberately
	// indistinguishable to prevent username enumeration.
	ErrInvalidCredentials = errors.New("invalid username/password")

	// ErrInvalidPagination is returned when page or perPage is not a
	// positive value.
	ErrInvalidPagination = errors.New("page and perPage must be positive")

	// ErrTokenExpired is returned by ParseToken for a well-formed token
	// whose expiration has passed.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalid is returned by ParseToken for a token that cannot be
	// parsed or whose signature does not verify.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenCreationFailed wraps failures while signing a new token.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
