package config

import "errors"

var (
	// ErrMissingConnectionString is returned at startup when no database
	// connection string is configured.
	ErrMissingConnectionString = errors.New("database connection string is not set")

	// ErrMissingTokenSignKey is returned at startup when no JWT signing
	// secret is configured.
	ErrMissingTokenSignKey = errors.New("token sign key is not set")
)
