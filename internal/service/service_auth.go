package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/poiioq/5315-project/internal/config"
	"github.com/poiioq/5315-project/internal/logger"
	"github.com/poiioq/5315-project/internal/store"
	"github.com/poiioq/5315-project/internal/utils"
	"github.com/poiioq/5315-project/models"
)

// authService is the concrete implementation of AuthService. It handles
// user registration, credential verification, and the JWT lifecycle using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// accounts.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens with a different issuer are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new account.
//
// It validates that both username and password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
// The plaintext password is never stored or logged.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - store.ErrUsernameTaken (wrapped) if the username already exists; the
//     check-and-insert is atomic, so concurrent duplicate registrations
//     cannot both succeed.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(creds.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     creds.Username,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account.
//
// A missing account and a failed password comparison both collapse into
// ErrInvalidCredentials so callers cannot tell which one occurred.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("username", creds.Username).Msg("login attempt for unknown user")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := utils.CheckPassword(foundUser.PasswordHash, creds.Password); err != nil {
		log.Warn().Str("username", creds.Username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured sign key, carries the configured
// issuer as the "iss" claim and the user's hex id as "sub", and expires
// after the configured duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID.Hex(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expiry is reported as ErrTokenExpired; every other validation failure
// (bad signature, wrong issuer, malformed string) is normalised to
// ErrTokenInvalid so callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenExpired
		}
		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}
