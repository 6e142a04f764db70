package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oapi-codegen/nullable"

	"github.com/kasuboski/shelfstats/pkg/book"
	"github.com/kasuboski/shelfstats/pkg/logger"
	"github.com/kasuboski/shelfstats/pkg/theme"
)

var ErrMissingLibrary = errors.New("libraryId must be set or null")

// FilterRequest selects a library. An explicit null clears the selection.
type FilterRequest struct {
	LibraryID nullable.Nullable[int64] `json:"libraryId"`
}

type FilterResponse struct {
	LibraryID *book.LibraryID `json:"libraryId"`
}

type ThemeRequest struct {
	Mode string `json:"mode"`
}

type ThemeResponse struct {
	Mode theme.Mode `json:"mode"`
	Dark bool       `json:"dark"`
}

func (s Server) GetFilter() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, http.StatusOK, GenericResponse{Response: FilterResponse{LibraryID: s.manager.Filter()}})
	}
}

// UpdateFilter changes the library selection every statistic follows
func (s Server) UpdateFilter() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var request FilterRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		if !request.LibraryID.IsSpecified() {
			writeErrorResponse(w, http.StatusBadRequest, ErrMissingLibrary)
			return
		}

		var libraryID *book.LibraryID
		if !request.LibraryID.IsNull() {
			id := book.LibraryID(request.LibraryID.MustGet())
			libraryID = &id
		}

		s.manager.SetFilter(libraryID)
		log.Debugw("filter updated", "library", libraryID)

		writeResponse(w, http.StatusOK, GenericResponse{Response: FilterResponse{LibraryID: libraryID}})
	}
}

func (s Server) GetTheme() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode := s.manager.Theme()
		writeResponse(w, http.StatusOK, GenericResponse{Response: ThemeResponse{Mode: mode, Dark: mode.IsDark()}})
	}
}

// UpdateTheme switches the display mode. View models are restyled, not recomputed.
func (s Server) UpdateTheme() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request ThemeRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		mode, err := theme.ParseMode(request.Mode)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		s.manager.SetTheme(mode)
		writeResponse(w, http.StatusOK, GenericResponse{Response: ThemeResponse{Mode: mode, Dark: mode.IsDark()}})
	}
}
