package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when registering a user fails because an
	// account with the same username already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a lookup by username produces no
	// matching account.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRestaurantNotFound is returned when a restaurant document with the
	// requested id does not exist. Repeated deletes of a gone id report this
	// error rather than failing.
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrInvalidDocumentID is returned when an id is not a valid 24-character
	// hex document id. Such an id cannot refer to any document, but it is a
	// malformed input, not a missing record.
	ErrInvalidDocumentID = errors.New("invalid document id")
)

// Low-level database operation errors, wrapped around driver failures so the
// HTTP layer can map any of them to a uniform 500 response.
var (
	// ErrExecutingQuery is returned when a read query against the database
	// fails at the driver level.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrExecutingStatement is returned when an insert, update or delete
	// fails at the driver level.
	ErrExecutingStatement = errors.New("error executing statement")

	// ErrDecodingDocument is returned when decoding a stored document into
	// its model fails.
	ErrDecodingDocument = errors.New("error decoding document")
)
