package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/poiioq/5315-project/internal/logger"
	"github.com/poiioq/5315-project/internal/service"
	"github.com/poiioq/5315-project/internal/store"
	"github.com/poiioq/5315-project/internal/utils"
	"github.com/poiioq/5315-project/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if violations := validateStruct(creds); violations != nil {
		utils.WriteJSON(w, models.ValidationErrorResponse{Errors: violations}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameTaken):
			log.Warn().Str("username", creds.Username).Msg("username already exists")
			utils.WriteJSON(w, models.MessageResponse{Message: store.ErrUsernameTaken.Error()}, http.StatusConflict)
		default:
			h.respondError(w, r, err)
		}
		return
	}

	log.Debug().Str("id", registeredUser.ID.Hex()).Str("username", registeredUser.Username).Msg("user registered")

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided) || errors.Is(err, service.ErrInvalidCredentials):
			// a missing account and a wrong password produce the same reply
			log.Warn().Msg("login rejected")
			utils.WriteJSON(w, models.MessageResponse{Message: service.ErrInvalidCredentials.Error()}, http.StatusUnauthorized)
		default:
			h.respondError(w, r, err)
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.respondError(w, r, err)
		return
	}

	log.Debug().Str("id", foundUser.ID.Hex()).Msg("user successfully logged in")

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
