package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/kasuboski/shelfstats/config"
	"github.com/kasuboski/shelfstats/pkg/book"
	"github.com/kasuboski/shelfstats/pkg/manager"
	"github.com/kasuboski/shelfstats/pkg/pagination"
	"github.com/kasuboski/shelfstats/pkg/stats"
	"github.com/kasuboski/shelfstats/pkg/storage"
	"github.com/kasuboski/shelfstats/pkg/storage/mocks"
	"github.com/kasuboski/shelfstats/pkg/theme"
)

func collection() []book.Book {
	return []book.Book{
		{
			ID:         1,
			LibraryID:  1,
			BookType:   book.TypeEPUB,
			FileSizeKB: book.Ptr(512.0),
			ReadStatus: book.ReadStatusRead,
			Metadata: &book.Metadata{
				Title:      "Leviathan Wakes",
				Categories: []string{"Science Fiction"},
				SeriesName: "The Expanse",
				Rating:     book.Ptr(4.2),
			},
		},
		{
			ID:         2,
			LibraryID:  2,
			BookType:   book.TypePDF,
			ReadStatus: book.ReadStatusReading,
			Metadata: &book.Metadata{
				Title:      "Gideon the Ninth",
				Categories: []string{"Fantasy"},
			},
		},
	}
}

type testServer struct {
	server  Server
	store   *mocks.MockStorage
	manager *manager.CollectionManager
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorage(ctrl)
	log := zap.NewNop().Sugar()

	m, err := manager.New(store, config.Config{}, log)
	require.NoError(t, err)
	require.NoError(t, m.Dashboard().Start())
	t.Cleanup(m.Dashboard().Close)

	return testServer{server: New(log, m), store: store, manager: m}
}

func (ts testServer) load(t *testing.T) {
	t.Helper()
	ts.store.EXPECT().ListBooks(gomock.Any()).Return(collection(), nil)
	_, err := ts.manager.Reload(t.Context())
	require.NoError(t, err)
}

func (ts testServer) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, GenericResponse) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	rr := httptest.NewRecorder()
	ts.server.Router().ServeHTTP(rr, req)

	var response GenericResponse
	if strings.HasPrefix(rr.Header().Get("content-type"), "application/json") {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	}
	return rr, response
}

func decode[T any](t *testing.T, v any) T {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)

	var out T
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func TestServer_Healthz(t *testing.T) {
	t.Run("healthz", func(t *testing.T) {
		s := Server{baseLogger: zap.NewNop().Sugar()}

		req, err := http.NewRequest("GET", "/healthz", nil)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()

		handler := s.Healthz()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		assert.Equal(t, "application/json", rr.Header().Get("content-type"))

		var response GenericResponse
		err = json.Unmarshal(rr.Body.Bytes(), &response)

		assert.NoError(t, err)
		assert.Equal(t, "ok", response.Response)
	})
}

func TestServer_Stats(t *testing.T) {
	ts := newTestServer(t)

	rr, resp := ts.do(t, http.MethodGet, "/api/v1/stats/top-categories", "")
	require.Equal(t, http.StatusOK, rr.Code)
	vm := decode[stats.ViewModel](t, resp.Response)
	assert.Empty(t, vm.Labels)

	ts.load(t)

	rr, resp = ts.do(t, http.MethodGet, "/api/v1/stats", "")
	require.Equal(t, http.StatusOK, rr.Code)
	all := decode[[]stats.ViewModel](t, resp.Response)
	require.Len(t, all, len(stats.Kinds))
	for i, kind := range stats.Kinds {
		assert.Equal(t, kind, all[i].Kind)
	}

	rr, resp = ts.do(t, http.MethodGet, "/api/v1/stats/top-categories", "")
	require.Equal(t, http.StatusOK, rr.Code)
	vm = decode[stats.ViewModel](t, resp.Response)
	assert.Equal(t, []string{"Science Fiction", "Fantasy"}, vm.Labels)

	rr, resp = ts.do(t, http.MethodGet, "/api/v1/stats/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, resp.Error, stats.ErrUnknownKind.Error())
}

func TestServer_RawStats(t *testing.T) {
	ts := newTestServer(t)

	rr, resp := ts.do(t, http.MethodGet, "/api/v1/stats/top-series/raw", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, ErrNotComputed.Error(), resp.Error)

	ts.load(t)

	rr, resp = ts.do(t, http.MethodGet, "/api/v1/stats/top-series/raw", "")
	require.Equal(t, http.StatusOK, rr.Code)
	raw := decode[stats.TopSeriesStats](t, resp.Response)
	require.Len(t, raw, 1)
	assert.Equal(t, "The Expanse", raw[0].SeriesName)
}

func TestServer_RenderOptions(t *testing.T) {
	ts := newTestServer(t)

	rr, resp := ts.do(t, http.MethodGet, "/api/v1/render-options", "")
	require.Equal(t, http.StatusOK, rr.Code)
	all := decode[[]theme.RenderOptions](t, resp.Response)
	require.Len(t, all, len(stats.Kinds))
	assert.Equal(t, theme.TokensFor(theme.Light).Text, all[0].LegendColor)

	rr, resp = ts.do(t, http.MethodGet, "/api/v1/render-options/rating?mode=dark", "")
	require.Equal(t, http.StatusOK, rr.Code)
	opts := decode[theme.RenderOptions](t, resp.Response)
	assert.Equal(t, stats.KindRating, opts.Kind)
	assert.Equal(t, theme.TokensFor(theme.Dark).Text, opts.LegendColor)

	rr, _ = ts.do(t, http.MethodGet, "/api/v1/render-options/rating?mode=sepia", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestServer_Filter(t *testing.T) {
	ts := newTestServer(t)
	ts.load(t)

	rr, resp := ts.do(t, http.MethodPut, "/api/v1/filter", `{"libraryId": 2}`)
	require.Equal(t, http.StatusOK, rr.Code)
	filter := decode[FilterResponse](t, resp.Response)
	require.NotNil(t, filter.LibraryID)
	assert.Equal(t, book.LibraryID(2), *filter.LibraryID)

	_, resp = ts.do(t, http.MethodGet, "/api/v1/stats/top-categories", "")
	vm := decode[stats.ViewModel](t, resp.Response)
	assert.Equal(t, []string{"Fantasy"}, vm.Labels)

	rr, _ = ts.do(t, http.MethodPut, "/api/v1/filter", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, book.LibraryID(2), *ts.manager.Filter())

	rr, _ = ts.do(t, http.MethodPut, "/api/v1/filter", `{"libraryId": null}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, ts.manager.Filter())

	_, resp = ts.do(t, http.MethodGet, "/api/v1/filter", "")
	filter = decode[FilterResponse](t, resp.Response)
	assert.Nil(t, filter.LibraryID)

	rr, _ = ts.do(t, http.MethodPut, "/api/v1/filter", `not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestServer_Theme(t *testing.T) {
	ts := newTestServer(t)
	ts.load(t)

	_, resp := ts.do(t, http.MethodGet, "/api/v1/stats/rating", "")
	light := decode[stats.ViewModel](t, resp.Response)

	rr, resp := ts.do(t, http.MethodPut, "/api/v1/theme", `{"mode": "dark"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ThemeResponse{Mode: theme.Dark, Dark: true}, decode[ThemeResponse](t, resp.Response))

	_, resp = ts.do(t, http.MethodGet, "/api/v1/stats/rating", "")
	dark := decode[stats.ViewModel](t, resp.Response)
	assert.Equal(t, light.Labels, dark.Labels)
	assert.Equal(t, light.Series[0].Values, dark.Series[0].Values)
	assert.NotEqual(t, light.Series[0].Style, dark.Series[0].Style)

	rr, _ = ts.do(t, http.MethodPut, "/api/v1/theme", `{"mode": "sepia"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	_, resp = ts.do(t, http.MethodGet, "/api/v1/theme", "")
	assert.Equal(t, ThemeResponse{Mode: theme.Dark, Dark: true}, decode[ThemeResponse](t, resp.Response))
}

func TestServer_Books(t *testing.T) {
	ts := newTestServer(t)

	body := `[{"libraryId": 3, "fileName": "a.epub", "metadata": {"title": "A", "categories": ["Horror"]}}]`
	ts.store.EXPECT().UpsertBooks(gomock.Any(), gomock.Any()).Return([]int64{9}, nil)
	ts.store.EXPECT().ListBooks(gomock.Any()).Return(collection(), nil)

	rr, resp := ts.do(t, http.MethodPost, "/api/v1/books", body)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, ImportResponse{IDs: []int64{9}}, decode[ImportResponse](t, resp.Response))

	rr, _ = ts.do(t, http.MethodPost, "/api/v1/books", `[]`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr, _ = ts.do(t, http.MethodPost, "/api/v1/books", `[{"personalRating": 42}]`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	ts.store.EXPECT().ListBooks(gomock.Any()).Return(collection(), nil)
	rr, resp = ts.do(t, http.MethodPost, "/api/v1/books/reload", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ReloadResponse{Books: 2}, decode[ReloadResponse](t, resp.Response))

	ts.store.EXPECT().ListBooks(gomock.Any()).Return(nil, errors.New("locked"))
	rr, resp = ts.do(t, http.MethodPost, "/api/v1/books/reload", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, resp.Error, "locked")
}

func TestServer_ListBooks(t *testing.T) {
	ts := newTestServer(t)

	ts.store.EXPECT().ListBooks(gomock.Any()).Return(collection(), nil)
	rr, resp := ts.do(t, http.MethodGet, "/api/v1/books?page=2&pageSize=1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	got := decode[BooksResponse](t, resp.Response)
	require.Len(t, got.Books, 1)
	assert.Equal(t, int64(2), got.Books[0].ID)
	assert.Equal(t, pagination.Meta{Page: 2, PageSize: 1, TotalItems: 2, TotalPages: 2}, got.Pagination)

	ts.store.EXPECT().ListBooks(gomock.Any(), gomock.Any()).Return(collection()[:1], nil)
	rr, resp = ts.do(t, http.MethodGet, "/api/v1/books?library=1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[BooksResponse](t, resp.Response).Books, 1)

	for _, path := range []string{"/api/v1/books?page=0", "/api/v1/books?pageSize=-1", "/api/v1/books?library=abc"} {
		rr, _ = ts.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, path)
	}
}

func TestServer_BookByID(t *testing.T) {
	ts := newTestServer(t)

	ts.store.EXPECT().GetBook(gomock.Any(), int64(1)).Return(collection()[0], nil)
	rr, resp := ts.do(t, http.MethodGet, "/api/v1/books/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Leviathan Wakes", decode[book.Book](t, resp.Response).DisplayTitle())

	ts.store.EXPECT().GetBook(gomock.Any(), int64(5)).Return(book.Book{}, storage.ErrNotFound)
	rr, _ = ts.do(t, http.MethodGet, "/api/v1/books/5", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	gomock.InOrder(
		ts.store.EXPECT().DeleteBook(gomock.Any(), int64(2)).Return(nil),
		ts.store.EXPECT().ListBooks(gomock.Any()).Return(collection()[:1], nil),
	)
	rr, _ = ts.do(t, http.MethodDelete, "/api/v1/books/2", "")
	require.Equal(t, http.StatusNoContent, rr.Code)
	state, ok := ts.manager.Collection()
	require.True(t, ok)
	assert.Len(t, state.Books, 1)

	ts.store.EXPECT().DeleteBook(gomock.Any(), int64(9)).Return(storage.ErrNotFound)
	rr, _ = ts.do(t, http.MethodDelete, "/api/v1/books/9", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr, _ = ts.do(t, http.MethodGet, "/api/v1/books/99999999999999999999", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestServer_DeleteLibrary(t *testing.T) {
	ts := newTestServer(t)

	gomock.InOrder(
		ts.store.EXPECT().DeleteLibrary(gomock.Any(), book.LibraryID(2)).Return(int64(1), nil),
		ts.store.EXPECT().ListBooks(gomock.Any()).Return(collection()[:1], nil),
	)
	rr, resp := ts.do(t, http.MethodDelete, "/api/v1/libraries/2", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, DeleteLibraryResponse{Deleted: 1}, decode[DeleteLibraryResponse](t, resp.Response))

	ts.store.EXPECT().DeleteLibrary(gomock.Any(), book.LibraryID(3)).Return(int64(0), errors.New("locked"))
	rr, _ = ts.do(t, http.MethodDelete, "/api/v1/libraries/3", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestServer_Libraries(t *testing.T) {
	ts := newTestServer(t)

	libraries := []storage.LibrarySummary{{LibraryID: 1, Books: 1}, {LibraryID: 2, Books: 1}}
	ts.store.EXPECT().ListLibraries(gomock.Any()).Return(libraries, nil)

	rr, resp := ts.do(t, http.MethodGet, "/api/v1/libraries", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, libraries, decode[[]storage.LibrarySummary](t, resp.Response))

	counts := []storage.StatusCount{{Status: book.ReadStatusRead, Count: 1}}
	ts.store.EXPECT().CountBooksByStatus(gomock.Any()).Return(counts, nil)

	rr, resp = ts.do(t, http.MethodGet, "/api/v1/statuses", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, counts, decode[[]storage.StatusCount](t, resp.Response))

	ts.store.EXPECT().ListLibraries(gomock.Any()).Return(nil, errors.New("gone"))
	rr, _ = ts.do(t, http.MethodGet, "/api/v1/libraries", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestServer_Metrics(t *testing.T) {
	ts := newTestServer(t)
	ts.load(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	ts.server.Router().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "shelfstats_recomputations_total")
}
