package http

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/poiioq/5315-project/internal/logger"
	"github.com/poiioq/5315-project/models"
)

//go:embed templates/search.gohtml
var templatesFS embed.FS

var searchTemplate = template.Must(template.ParseFS(templatesFS, "templates/search.gohtml"))

// searchPageData is the view model of the rendered search page.
type searchPageData struct {
	Page        int64
	PerPage     int64
	Borough     string
	Search      string
	Submitted   bool
	Restaurants []models.Restaurant
}

// searchForm renders the empty search page.
func (h *Handler) searchForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	data := searchPageData{Page: 1, PerPage: 10}
	if err := searchTemplate.Execute(w, data); err != nil {
		log.Err(err).Msg("error rendering search page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// searchSubmit handles a submitted search form and renders the matching
// restaurants. Unlike the JSON listing, the form is forgiving: absent or
// malformed page numbers fall back to the first page of ten.
func (h *Handler) searchSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("error parsing search form")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := searchPageData{
		Page:      formInt(r.FormValue("page"), 1),
		PerPage:   formInt(r.FormValue("perPage"), 10),
		Borough:   r.FormValue("borough"),
		Search:    r.FormValue("search"),
		Submitted: true,
	}

	filter := models.ListFilter{Borough: data.Borough, Search: data.Search}
	restaurants, err := h.services.RestaurantService.List(ctx, filter, data.Page, data.PerPage)
	if err != nil {
		log.Err(err).Msg("error searching restaurants")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	data.Restaurants = restaurants
	if err := searchTemplate.Execute(w, data); err != nil {
		log.Err(err).Msg("error rendering search results")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func formInt(value string, fallback int64) int64 {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
