package server

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kasuboski/shelfstats/pkg/logger"
	"github.com/kasuboski/shelfstats/pkg/stats"
	"github.com/kasuboski/shelfstats/pkg/theme"
)

var ErrNotComputed = errors.New("statistic not computed yet")

// ListStats returns the published view model of every statistic in dashboard order
func (s Server) ListStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := s.manager.Dashboard()
		vms := d.ViewModels()

		result := make([]stats.ViewModel, 0, len(vms))
		for _, kind := range d.Kinds() {
			result = append(result, vms[kind])
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: result})
	}
}

func (s Server) GetStat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := s.kindParam(w, r)
		if !ok {
			return
		}

		vm, err := s.manager.Dashboard().ViewModel(kind)
		if err != nil {
			writeErrorResponse(w, http.StatusNotFound, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: vm})
	}
}

// GetRawStat returns the last aggregation result backing the tooltips of a statistic
func (s Server) GetRawStat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := s.kindParam(w, r)
		if !ok {
			return
		}

		if _, err := s.manager.Dashboard().Controller(kind); err != nil {
			writeErrorResponse(w, http.StatusNotFound, err)
			return
		}

		raw, ok := s.manager.Dashboard().Raw(kind)
		if !ok {
			writeErrorResponse(w, http.StatusNotFound, ErrNotComputed)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: raw})
	}
}

// ListRenderOptions returns the render options of every statistic for the
// current theme or the mode query parameter
func (s Server) ListRenderOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode, ok := s.modeParam(w, r)
		if !ok {
			return
		}

		all := theme.AllOptions(mode)
		result := make([]theme.RenderOptions, 0, len(all))
		for _, kind := range s.manager.Dashboard().Kinds() {
			result = append(result, all[kind])
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: result})
	}
}

func (s Server) GetRenderOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := s.kindParam(w, r)
		if !ok {
			return
		}

		mode, ok := s.modeParam(w, r)
		if !ok {
			return
		}

		opts, err := theme.Options(kind, mode)
		if err != nil {
			writeErrorResponse(w, http.StatusNotFound, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: opts})
	}
}

func (s Server) kindParam(w http.ResponseWriter, r *http.Request) (stats.Kind, bool) {
	kind, err := stats.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		logger.FromCtx(r.Context()).Debugw("unknown statistic", "error", err)
		writeErrorResponse(w, http.StatusNotFound, err)
		return "", false
	}
	return kind, true
}

func (s Server) modeParam(w http.ResponseWriter, r *http.Request) (theme.Mode, bool) {
	q := r.URL.Query().Get("mode")
	if q == "" {
		return s.manager.Theme(), true
	}

	mode, err := theme.ParseMode(q)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return "", false
	}
	return mode, true
}
