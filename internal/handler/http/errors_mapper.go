package http

import (
	"errors"
	"net/http"

	"github.com/poiioq/5315-project/internal/logger"
	"github.com/poiioq/5315-project/internal/service"
	"github.com/poiioq/5315-project/internal/store"
	"github.com/poiioq/5315-project/internal/utils"
	"github.com/poiioq/5315-project/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidPagination:   http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrTokenExpired:        http.StatusForbidden,
	service.ErrTokenInvalid:        http.StatusForbidden,

	store.ErrUsernameTaken:       http.StatusConflict,
	store.ErrNoUserWasFound:      http.StatusNotFound,
	store.ErrRestaurantNotFound:  http.StatusNotFound,
	store.ErrInvalidDocumentID:   http.StatusBadRequest,
	store.ErrExecutingQuery:      http.StatusInternalServerError,
	store.ErrExecutingStatement:  http.StatusInternalServerError,
	store.ErrDecodingDocument:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError reduces a wrapped error chain to the sentinel text that is
// safe to expose to clients.
func messageFromError(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}

// respondError maps a service/store error to its HTTP status and writes the
// JSON error body.
//
// Unexpected faults become a 500 with a generic message; the raw error text
// is included only in the development environment, otherwise it goes to the
// structured log alone.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error while handling request")

		response := models.ErrorResponse{Message: "Internal server error"}
		if h.development {
			response.Detail = err.Error()
		}
		utils.WriteJSON(w, response, status)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: messageFromError(err)}, status)
}
