// Package config loads and validates the process-wide configuration from
// environment variables. Configuration is read once at startup; absence of a
// required value (database connection string, token sign key) fails startup
// with a named error instead of degrading at request time.
package config
