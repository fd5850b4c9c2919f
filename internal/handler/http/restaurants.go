package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/poiioq/5315-project/internal/logger"
	"github.com/poiioq/5315-project/internal/utils"
	"github.com/poiioq/5315-project/models"
)

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var restaurant models.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&restaurant); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if violations := validateStruct(restaurant); violations != nil {
		utils.WriteJSON(w, models.ValidationErrorResponse{Errors: violations}, http.StatusBadRequest)
		return
	}

	created, err := h.services.RestaurantService.Create(ctx, restaurant)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()

	var violations []models.FieldError
	page, fieldError := validatePositiveInt("page", query.Get("page"))
	if fieldError != nil {
		violations = append(violations, *fieldError)
	}
	perPage, fieldError := validatePositiveInt("perPage", query.Get("perPage"))
	if fieldError != nil {
		violations = append(violations, *fieldError)
	}
	if violations != nil {
		utils.WriteJSON(w, models.ValidationErrorResponse{Errors: violations}, http.StatusBadRequest)
		return
	}

	filter := models.ListFilter{Borough: query.Get("borough")}

	restaurants, err := h.services.RestaurantService.List(ctx, filter, page, perPage)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, restaurants, http.StatusOK)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if fieldError := validateObjectID(id); fieldError != nil {
		utils.WriteJSON(w, models.ValidationErrorResponse{Errors: []models.FieldError{*fieldError}}, http.StatusBadRequest)
		return
	}

	restaurant, err := h.services.RestaurantService.Get(ctx, id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, restaurant, http.StatusOK)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	if fieldError := validateObjectID(id); fieldError != nil {
		utils.WriteJSON(w, models.ValidationErrorResponse{Errors: []models.FieldError{*fieldError}}, http.StatusBadRequest)
		return
	}

	var patch models.RestaurantPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	updated, err := h.services.RestaurantService.Update(ctx, id, patch)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if fieldError := validateObjectID(id); fieldError != nil {
		utils.WriteJSON(w, models.ValidationErrorResponse{Errors: []models.FieldError{*fieldError}}, http.StatusBadRequest)
		return
	}

	if err := h.services.RestaurantService.Delete(ctx, id); err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Restaurant successfully deleted"}, http.StatusOK)
}
