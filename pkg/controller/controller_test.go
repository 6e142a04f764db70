package controller

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kasuboski/shelfstats/pkg/book"
	"github.com/kasuboski/shelfstats/pkg/observe"
	"github.com/kasuboski/shelfstats/pkg/stats"
	"github.com/kasuboski/shelfstats/pkg/theme"
)

// tracked counts the subscriptions that have not been revoked yet
type tracked[T any] struct {
	*observe.Subject[T]
	active atomic.Int32
}

func track[T any](s *observe.Subject[T]) *tracked[T] {
	return &tracked[T]{Subject: s}
}

func (s *tracked[T]) Subscribe(next func(T), fail func(error)) func() {
	unsub := s.Subject.Subscribe(next, fail)
	s.active.Add(1)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.active.Add(-1)
			unsub()
		})
	}
}

func (s *tracked[T]) Len() int {
	return int(s.active.Load())
}

type fixture struct {
	collection *tracked[CollectionState]
	filter     *tracked[*book.LibraryID]
	theme      *tracked[theme.Mode]
	logs       *observer.ObservedLogs
	log        *zap.SugaredLogger
}

func newFixture() *fixture {
	core, logs := observer.New(zapcore.DebugLevel)
	return &fixture{
		collection: track(observe.New[CollectionState]()),
		filter:     track(observe.NewBehavior[*book.LibraryID](nil)),
		theme:      track(observe.NewBehavior(theme.Light)),
		logs:       logs,
		log:        zap.New(core).Sugar(),
	}
}

func (f *fixture) sources() Sources {
	return Sources{Collection: f.collection, Filter: f.filter, Theme: f.theme}
}

func (f *fixture) controller(t *testing.T, kind stats.Kind, trigger Trigger, calls *int) *Controller {
	t.Helper()

	rule, err := stats.Lookup(kind)
	require.NoError(t, err)

	counted := func(b []book.Book) stats.Result {
		*calls++
		return rule(b)
	}

	c := New(kind, counted, trigger, f.sources(), WithLogger(f.log))
	require.NoError(t, c.Start())
	t.Cleanup(c.Close)
	return c
}

func seriesBook(library book.LibraryID, series string) book.Book {
	return book.Book{
		LibraryID: library,
		Metadata:  &book.Metadata{SeriesName: series},
	}
}

func loaded(books ...book.Book) CollectionState {
	return CollectionState{Loaded: true, Books: books}
}

func TestFirstLoadThenFilter(t *testing.T) {
	f := newFixture()
	calls := 0
	c := f.controller(t, stats.KindTopSeries, FirstLoadThenFilter, &calls)

	assert.Equal(t, StateIdle, c.State())
	assert.Empty(t, c.ViewModel().Labels)

	f.collection.Next(CollectionState{Loaded: false})
	assert.Equal(t, 0, calls)
	assert.Equal(t, StateIdle, c.State())

	f.collection.Next(loaded(seriesBook(1, "Dune"), seriesBook(2, "Culture")))
	assert.Equal(t, 1, calls)
	assert.Equal(t, StatePublished, c.State())
	assert.Equal(t, []string{"Dune", "Culture"}, c.ViewModel().Labels)

	// reloads after the first load do not recompute
	f.collection.Next(loaded(seriesBook(1, "Dune"), seriesBook(1, "Foundation"), seriesBook(1, "Foundation")))
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"Dune", "Culture"}, c.ViewModel().Labels)

	// a filter change picks up the latest collection
	f.filter.Next(book.Ptr(book.LibraryID(1)))
	assert.Equal(t, 2, calls)
	assert.Equal(t, []string{"Foundation", "Dune"}, c.ViewModel().Labels)

	f.filter.Next(nil)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []string{"Foundation", "Dune"}, c.ViewModel().Labels)

	raw, ok := c.Raw()
	require.True(t, ok)
	assert.Equal(t, stats.TopSeriesStats{
		{SeriesName: "Foundation", BookCount: 2},
		{SeriesName: "Dune", BookCount: 1},
	}, raw)
}

func TestFirstLoadIgnoresFilterBeforeLoad(t *testing.T) {
	f := newFixture()
	calls := 0
	c := f.controller(t, stats.KindRating, FirstLoadThenFilter, &calls)

	f.filter.Next(book.Ptr(book.LibraryID(3)))
	assert.Equal(t, 0, calls)
	assert.Equal(t, StateIdle, c.State())
}

func TestFirstLoadReplayedCollection(t *testing.T) {
	f := newFixture()
	f.collection.Next(loaded(seriesBook(1, "Dune")))

	calls := 0
	c := f.controller(t, stats.KindTopSeries, FirstLoadThenFilter, &calls)

	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"Dune"}, c.ViewModel().Labels)
}

func TestCombineLatest(t *testing.T) {
	f := newFixture()
	calls := 0
	c := f.controller(t, stats.KindTopCategories, CombineLatest, &calls)

	// the filter replay alone does not compute without a collection
	assert.Equal(t, 0, calls)

	f.collection.Next(CollectionState{Loaded: false})
	assert.Equal(t, StatePublished, c.State())
	assert.Empty(t, c.ViewModel().Labels)
	assert.Equal(t, 0, calls)

	poetry := book.Book{LibraryID: 1, Metadata: &book.Metadata{Categories: []string{"Poetry"}}}
	drama := book.Book{LibraryID: 2, Metadata: &book.Metadata{Categories: []string{"Drama"}}}

	f.collection.Next(loaded(poetry))
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"Poetry"}, c.ViewModel().Labels)

	// every reload recomputes
	f.collection.Next(loaded(poetry, drama, drama))
	assert.Equal(t, 2, calls)
	assert.Equal(t, []string{"Drama", "Poetry"}, c.ViewModel().Labels)

	f.filter.Next(book.Ptr(book.LibraryID(1)))
	assert.Equal(t, 3, calls)
	assert.Equal(t, []string{"Poetry"}, c.ViewModel().Labels)
}

func TestEmptyCollectionPublishesEmpty(t *testing.T) {
	f := newFixture()
	calls := 0
	c := f.controller(t, stats.KindReadingProgress, FirstLoadThenFilter, &calls)

	f.collection.Next(loaded())
	assert.Equal(t, StatePublished, c.State())
	assert.Equal(t, 0, calls)
	assert.Empty(t, c.ViewModel().Labels)

	raw, ok := c.Raw()
	require.True(t, ok)
	assert.Equal(t, stats.NewEmpty(stats.KindReadingProgress), raw)
}

func TestRulePanicPublishesEmpty(t *testing.T) {
	f := newFixture()
	c := New(stats.KindRating, func([]book.Book) stats.Result {
		panic("unexpected shape")
	}, CombineLatest, f.sources(), WithLogger(f.log))
	require.NoError(t, c.Start())
	defer c.Close()

	var published []stats.ViewModel
	unsubscribe := c.Subscribe(func(vm stats.ViewModel) { published = append(published, vm) })
	defer unsubscribe()

	assert.NotPanics(t, func() {
		f.collection.Next(loaded(book.Book{}))
	})

	assert.Equal(t, StatePublished, c.State())
	require.Len(t, published, 2)
	assert.Empty(t, published[1].Labels)
	assert.Equal(t, stats.KindRating, published[1].Kind)

	failures := f.logs.FilterMessage("aggregation failed, publishing empty")
	require.Equal(t, 1, failures.Len())
	assert.Equal(t, "rating", failures.All()[0].ContextMap()["statistic"])

	// the controller keeps working after a failure
	f.filter.Next(book.Ptr(book.LibraryID(1)))
	assert.Equal(t, StatePublished, c.State())
	assert.Len(t, published, 3)
}

func TestSourceErrorStopsUpdates(t *testing.T) {
	f := newFixture()
	calls := 0
	c := f.controller(t, stats.KindTopSeries, CombineLatest, &calls)

	f.collection.Next(loaded(seriesBook(1, "Dune")))
	require.Equal(t, 1, calls)

	f.collection.Error(errors.New("store unavailable"))
	assert.Equal(t, 1, f.logs.FilterMessage("source failed, no further updates").Len())

	f.filter.Next(book.Ptr(book.LibraryID(2)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"Dune"}, c.ViewModel().Labels)
	assert.Equal(t, 0, f.filter.Len())

	// the last value still follows the theme
	f.theme.Next(theme.Dark)
	assert.Equal(t, []string{"#ffffff"}, c.ViewModel().Series[0].Style.HoverBorderColors)
}

func TestThemeRestylesWithoutRecomputing(t *testing.T) {
	f := newFixture()
	calls := 0
	c := f.controller(t, stats.KindTopSeries, FirstLoadThenFilter, &calls)

	f.collection.Next(loaded(seriesBook(1, "Dune"), seriesBook(1, "Dune"), seriesBook(1, "Culture")))
	require.Equal(t, 1, calls)

	light := c.ViewModel()
	assert.Equal(t, []string{"#000000", "#000000"}, light.Series[0].Style.HoverBorderColors)

	f.theme.Next(theme.Dark)
	assert.Equal(t, 1, calls)

	dark := c.ViewModel()
	assert.Equal(t, light.Labels, dark.Labels)
	assert.Equal(t, light.Series[0].Values, dark.Series[0].Values)
	assert.Equal(t, light.Entries, dark.Entries)
	assert.Equal(t, []string{"#ffffff", "#ffffff"}, dark.Series[0].Style.HoverBorderColors)

	// the previously published value was not mutated
	assert.Equal(t, []string{"#000000", "#000000"}, light.Series[0].Style.HoverBorderColors)

	// same mode is a no-op
	published := 0
	unsubscribe := c.Subscribe(func(stats.ViewModel) { published++ })
	defer unsubscribe()
	f.theme.Next(theme.Dark)
	assert.Equal(t, 1, published)

	// recomputation keeps the current mode
	f.filter.Next(book.Ptr(book.LibraryID(1)))
	assert.Equal(t, []string{"#ffffff", "#ffffff"}, c.ViewModel().Series[0].Style.HoverBorderColors)
}

func TestThemeBeforeFirstPublish(t *testing.T) {
	f := newFixture()
	calls := 0
	c := f.controller(t, stats.KindTopSeries, FirstLoadThenFilter, &calls)

	f.theme.Next(theme.Dark)
	assert.Equal(t, StateIdle, c.State())

	f.collection.Next(loaded(seriesBook(1, "Dune")))
	assert.Equal(t, []string{"#ffffff"}, c.ViewModel().Series[0].Style.HoverBorderColors)
}

func TestClose(t *testing.T) {
	f := newFixture()
	calls := 0
	c := f.controller(t, stats.KindTopCategories, CombineLatest, &calls)

	f.collection.Next(loaded(book.Book{Metadata: &book.Metadata{Categories: []string{"Poetry"}}}))
	require.Equal(t, 1, calls)
	before := c.ViewModel()

	c.Close()
	c.Close()
	assert.Equal(t, StateStopped, c.State())

	assert.Equal(t, 0, f.collection.Len())
	assert.Equal(t, 0, f.filter.Len())
	assert.Equal(t, 0, f.theme.Len())

	f.collection.Next(loaded())
	f.filter.Next(book.Ptr(book.LibraryID(4)))
	f.theme.Next(theme.Dark)

	assert.Equal(t, 1, calls)
	assert.Equal(t, before, c.ViewModel())

	assert.ErrorIs(t, c.Start(), ErrStopped)
}

// closingTheme closes the controller while its theme subscription is being set up
type closingTheme struct {
	*tracked[theme.Mode]
	close func()
}

func (s *closingTheme) Subscribe(next func(theme.Mode), fail func(error)) func() {
	unsub := s.tracked.Subscribe(next, fail)
	s.close()
	return unsub
}

func TestCloseDuringStart(t *testing.T) {
	f := newFixture()
	rule, err := stats.Lookup(stats.KindRating)
	require.NoError(t, err)

	themes := &closingTheme{tracked: f.theme}
	sources := Sources{Collection: f.collection, Filter: f.filter, Theme: themes}
	c := New(stats.KindRating, rule, FirstLoadThenFilter, sources, WithLogger(f.log))
	themes.close = c.Close

	assert.ErrorIs(t, c.Start(), ErrStopped)
	assert.Equal(t, StateStopped, c.State())
	assert.Equal(t, 0, f.theme.Len())
	assert.Equal(t, 0, f.filter.Len())
	assert.Equal(t, 0, f.collection.Len())
}

func TestStartTwice(t *testing.T) {
	f := newFixture()
	calls := 0
	c := f.controller(t, stats.KindRating, FirstLoadThenFilter, &calls)
	assert.ErrorIs(t, c.Start(), ErrAlreadyActive)
}

func TestStartWithFailedSource(t *testing.T) {
	f := newFixture()
	f.filter.Error(errors.New("gone"))

	calls := 0
	c := f.controller(t, stats.KindTopSeries, CombineLatest, &calls)

	f.collection.Next(loaded(seriesBook(1, "Dune")))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, f.collection.Len())
	assert.Equal(t, StateIdle, c.State())
}

func TestTriggerString(t *testing.T) {
	assert.Equal(t, "first-load-then-filter", FirstLoadThenFilter.String())
	assert.Equal(t, "combine-latest", CombineLatest.String())
	assert.Equal(t, "trigger(7)", Trigger(7).String())
}

func TestParseTrigger(t *testing.T) {
	for _, want := range []Trigger{FirstLoadThenFilter, CombineLatest} {
		got, err := ParseTrigger(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseTrigger("sometimes")
	assert.ErrorIs(t, err, ErrUnknownTrigger)
}
