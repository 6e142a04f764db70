package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kasuboski/shelfstats/pkg/book"
	"github.com/kasuboski/shelfstats/pkg/logger"
	"github.com/kasuboski/shelfstats/pkg/manager"
	"github.com/kasuboski/shelfstats/pkg/pagination"
	"github.com/kasuboski/shelfstats/pkg/storage"
)

type ImportResponse struct {
	IDs []int64 `json:"ids"`
}

type BooksResponse struct {
	Books      []book.Book     `json:"books"`
	Pagination pagination.Meta `json:"pagination"`
}

type DeleteLibraryResponse struct {
	Deleted int64 `json:"deleted"`
}

type ReloadResponse struct {
	Books int `json:"books"`
}

// ImportBooks stores a JSON array of books and reloads the collection
func (s Server) ImportBooks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		books, err := book.Decode(r.Body)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		ids, err := s.manager.Import(r.Context(), books)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, manager.ErrNoBooks) || errors.Is(err, book.ErrInvalidBook) {
				status = http.StatusBadRequest
			}
			log.Errorw("failed to import books", "error", err)
			writeErrorResponse(w, status, err)
			return
		}

		writeResponse(w, http.StatusCreated, GenericResponse{Response: ImportResponse{IDs: ids}})
	}
}

// ListBooks returns stored books. The library query parameter limits the
// listing to one library.
func (s Server) ListBooks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		params, err := parsePagination(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		var library *book.LibraryID
		if v := r.URL.Query().Get("library"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("invalid library parameter: %w", err))
				return
			}
			library = book.Ptr(book.LibraryID(id))
		}

		books, meta, err := s.manager.Books(r.Context(), library, params)
		if err != nil {
			log.Errorw("failed to list books", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: BooksResponse{Books: books, Pagination: meta}})
	}
}

func (s Server) ReloadBooks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		n, err := s.manager.Reload(r.Context())
		if err != nil {
			log.Errorw("failed to reload books", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: ReloadResponse{Books: n}})
	}
}

func (s Server) ListLibraries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		libraries, err := s.manager.Libraries(r.Context())
		if err != nil {
			log.Errorw("failed to list libraries", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: libraries})
	}
}

func (s Server) ListStatusCounts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		counts, err := s.manager.StatusCounts(r.Context())
		if err != nil {
			log.Errorw("failed to count statuses", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: counts})
	}
}

func idParam(r *http.Request) (int64, error) {
	v := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", v, err)
	}
	return id, nil
}

func storageStatus(err error) int {
	if errors.Is(err, storage.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s Server) GetBook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := idParam(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		b, err := s.manager.Book(r.Context(), id)
		if err != nil {
			status := storageStatus(err)
			if status != http.StatusNotFound {
				log.Errorw("failed to get book", "id", id, "error", err)
			}
			writeErrorResponse(w, status, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: b})
	}
}

// DeleteBook removes a stored book and reloads the collection
func (s Server) DeleteBook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := idParam(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		if err := s.manager.DeleteBook(r.Context(), id); err != nil {
			status := storageStatus(err)
			if status != http.StatusNotFound {
				log.Errorw("failed to delete book", "id", id, "error", err)
			}
			writeErrorResponse(w, status, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteLibrary removes every book of a library and reloads the collection
func (s Server) DeleteLibrary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := idParam(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		n, err := s.manager.DeleteLibrary(r.Context(), book.LibraryID(id))
		if err != nil {
			log.Errorw("failed to delete library", "library", id, "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: DeleteLibraryResponse{Deleted: n}})
	}
}
