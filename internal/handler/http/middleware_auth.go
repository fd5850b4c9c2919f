package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/poiioq/5315-project/internal/logger"
	"github.com/poiioq/5315-project/internal/service"
	"github.com/poiioq/5315-project/internal/utils"
	"github.com/poiioq/5315-project/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication on
// mutating routes.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token and validates it via [service.AuthService.ParseToken]. On success
// the authenticated user's id is stored in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// Rejections follow the credential taxonomy:
//   - 401 Unauthorized when the "Authorization" header is absent (no
//     credential was presented at all);
//   - 403 Forbidden when a credential is present but unusable: the header
//     cannot be parsed as a bearer token, the token signature does not
//     verify, or the token has expired.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSON(w, models.MessageResponse{Message: ErrEmptyAuthorizationHeader.Error()}, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSON(w, models.MessageResponse{Message: err.Error()}, http.StatusForbidden)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				log.Err(err).Msg("token expired")
				utils.WriteJSON(w, models.MessageResponse{Message: service.ErrTokenExpired.Error()}, http.StatusForbidden)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteJSON(w, models.MessageResponse{Message: service.ErrTokenInvalid.Error()}, http.StatusForbidden)
				return
			}
		}

		// Store the authenticated user's id in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the standard form:
//
//	Authorization: Bearer <token>
//
// It returns [ErrInvalidAuthorizationHeader] if the header has fewer than
// two space-separated parts or a scheme other than "Bearer" (compared
// case-insensitively), and [ErrEmptyToken] if the token part is an empty
// string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
