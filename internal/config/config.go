package config

import (
	"time"
)

// Config is the top-level configuration container for the service. It is
// populated once at startup from environment variables and validated before
// use; missing required values fail startup rather than degrade silently.
//
// Struct tags (caarlos0/env): envPrefix prepends to all nested env tag
// lookups, env names the variable for a scalar field directly.
type Config struct {
	// App holds application-level settings: token parameters and the
	// runtime environment name.
	App App `envPrefix:"APP_"`

	// Storage holds the document database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`
}

// App holds application-level configuration controlling token lifecycle and
// error verbosity.
type App struct {
	// TokenSignKey is the secret used to sign and verify JWT tokens.
	// Required; must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"5315-project"`

	// TokenDuration controls how long an issued JWT remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"1h"`

	// Environment selects error verbosity: "development" includes the raw
	// error detail in 500 responses, anything else returns a generic body.
	// Env: APP_ENV
	Environment string `env:"ENV" envDefault:"production"`
}

// Storage holds connection settings for the document database backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds MongoDB connection settings.
type DB struct {
	// ConnectionString is the MongoDB URI used to open the client
	// (e.g. "mongodb://localhost:27017"). Required.
	// Env: STORAGE_DB_CONNECTION_STRING
	ConnectionString string `env:"CONNECTION_STRING"`

	// Database is the name of the database holding the restaurants and
	// users collections.
	// Env: STORAGE_DB_DATABASE
	Database string `env:"DATABASE" envDefault:"restaurants_db"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:":3000"`

	// RequestTimeout bounds a single inbound request before the server
	// cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// IsDevelopment reports whether the service runs with development error
// verbosity.
func (a App) IsDevelopment() bool {
	return a.Environment == "development"
}

// GetConfig loads the configuration from environment variables and validates
// it. Returns a fully populated *Config or an error naming the first missing
// required value.
func GetConfig() (*Config, error) {
	cfg := new(Config)

	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that the merged configuration satisfies all startup
// invariants.
func (cfg *Config) validate() error {
	if cfg.Storage.DB.ConnectionString == "" {
		return ErrMissingConnectionString
	}

	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	return nil
}
