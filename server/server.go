package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kasuboski/shelfstats/pkg/manager"
)

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server exposes the dashboard of a collection manager over http
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    *manager.CollectionManager
}

// New creates a new stats server
func New(logger *zap.SugaredLogger, manager *manager.CollectionManager) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Router builds the http routes
func (s Server) Router() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)
	rtr.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/stats", s.ListStats()).Methods(http.MethodGet)
	v1.HandleFunc("/stats/{kind}", s.GetStat()).Methods(http.MethodGet)
	v1.HandleFunc("/stats/{kind}/raw", s.GetRawStat()).Methods(http.MethodGet)

	v1.HandleFunc("/render-options", s.ListRenderOptions()).Methods(http.MethodGet)
	v1.HandleFunc("/render-options/{kind}", s.GetRenderOptions()).Methods(http.MethodGet)

	v1.HandleFunc("/libraries", s.ListLibraries()).Methods(http.MethodGet)
	v1.HandleFunc("/libraries/{id:[0-9]+}", s.DeleteLibrary()).Methods(http.MethodDelete)
	v1.HandleFunc("/statuses", s.ListStatusCounts()).Methods(http.MethodGet)

	v1.HandleFunc("/filter", s.GetFilter()).Methods(http.MethodGet)
	v1.HandleFunc("/filter", s.UpdateFilter()).Methods(http.MethodPut)

	v1.HandleFunc("/theme", s.GetTheme()).Methods(http.MethodGet)
	v1.HandleFunc("/theme", s.UpdateTheme()).Methods(http.MethodPut)

	v1.HandleFunc("/books", s.ListBooks()).Methods(http.MethodGet)
	v1.HandleFunc("/books", s.ImportBooks()).Methods(http.MethodPost)
	v1.HandleFunc("/books/reload", s.ReloadBooks()).Methods(http.MethodPost)
	v1.HandleFunc("/books/{id:[0-9]+}", s.GetBook()).Methods(http.MethodGet)
	v1.HandleFunc("/books/{id:[0-9]+}", s.DeleteBook()).Methods(http.MethodDelete)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
	)(rtr)
}

// Serve starts the http server and blocks until ctx is done
func (s Server) Serve(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.baseLogger.Infow("serving...", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}
