package controller

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kasuboski/shelfstats/pkg/book"
	"github.com/kasuboski/shelfstats/pkg/cache"
	"github.com/kasuboski/shelfstats/pkg/logger"
	"github.com/kasuboski/shelfstats/pkg/machine"
	"github.com/kasuboski/shelfstats/pkg/metrics"
	"github.com/kasuboski/shelfstats/pkg/observe"
	"github.com/kasuboski/shelfstats/pkg/stats"
	"github.com/kasuboski/shelfstats/pkg/theme"
)

var (
	ErrStopped        = errors.New("controller stopped")
	ErrRulePanicked   = errors.New("rule panicked")
	ErrAlreadyActive  = errors.New("controller already started")
	ErrUnknownTrigger = errors.New("unknown trigger")
)

type State string

const (
	StateIdle      State = "Idle"
	StateComputing State = "Computing"
	StatePublished State = "Published"
	StateStopped   State = "Stopped"
)

// Trigger decides which upstream emissions cause a recomputation
type Trigger int

const (
	// FirstLoadThenFilter computes once the collection is first loaded and then
	// only on filter changes. Later collection reloads are ignored until the
	// filter changes again.
	FirstLoadThenFilter Trigger = iota
	// CombineLatest computes on every collection or filter emission
	CombineLatest
)

func (t Trigger) String() string {
	switch t {
	case FirstLoadThenFilter:
		return "first-load-then-filter"
	case CombineLatest:
		return "combine-latest"
	}
	return fmt.Sprintf("trigger(%d)", int(t))
}

// ParseTrigger is the inverse of Trigger.String
func ParseTrigger(s string) (Trigger, error) {
	for _, t := range []Trigger{FirstLoadThenFilter, CombineLatest} {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTrigger, s)
}

// CollectionState is what the collection store emits. Every emission is a
// full replacement of the books.
type CollectionState struct {
	Loaded bool
	Books  []book.Book
}

// Valid reports whether the state can be aggregated
func (s CollectionState) Valid() bool {
	return s.Loaded && len(s.Books) > 0
}

// Source is an observable current value
type Source[T any] interface {
	Subscribe(next func(T), fail func(error)) func()
	Value() (T, bool)
}

type Sources struct {
	Collection Source[CollectionState]
	Filter     Source[*book.LibraryID]
	Theme      Source[theme.Mode]
}

// Controller keeps the view model of a single statistic in sync with its sources
type Controller struct {
	kind    stats.Kind
	rule    stats.Rule
	trigger Trigger
	sources Sources

	log     *zap.SugaredLogger
	machine *machine.StateMachine[State]
	output  *observe.Subject[stats.ViewModel]
	raw     *cache.Cache[stats.Kind, stats.Result]

	mu         sync.Mutex
	started    bool
	loaded     bool
	sourceDown bool
	mode       theme.Mode
	last       stats.ViewModel
	unsubData  []func()
	unsubTheme func()
}

type Option func(*Controller)

func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// WithCache shares the raw result cache between controllers
func WithCache(raw *cache.Cache[stats.Kind, stats.Result]) Option {
	return func(c *Controller) {
		c.raw = raw
	}
}

func New(kind stats.Kind, rule stats.Rule, trigger Trigger, sources Sources, opts ...Option) *Controller {
	c := &Controller{
		kind:    kind,
		rule:    rule,
		trigger: trigger,
		sources: sources,
		machine: machine.New(StateIdle,
			machine.From(StateIdle).To(StateComputing, StateStopped),
			machine.From(StateComputing).To(StatePublished, StateStopped),
			machine.From(StatePublished).To(StateComputing, StateStopped),
		),
		output: observe.NewBehavior(stats.EmptyViewModel(kind)),
		mode:   theme.Light,
		last:   stats.EmptyViewModel(kind),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		c.log = logger.Get()
	}
	c.log = logger.Statistic(c.log, string(kind))

	if c.raw == nil {
		c.raw = cache.New[stats.Kind, stats.Result]()
	}

	return c
}

func (c *Controller) Kind() stats.Kind {
	return c.kind
}

func (c *Controller) Trigger() Trigger {
	return c.trigger
}

func (c *Controller) State() State {
	return c.machine.Current()
}

// ViewModel returns the last published view model
func (c *Controller) ViewModel() stats.ViewModel {
	vm, _ := c.output.Value()
	return vm
}

// Raw returns the last computed raw statistic
func (c *Controller) Raw() (stats.Result, bool) {
	return c.raw.Get(c.kind)
}

// Subscribe follows the published view models. The current one is replayed.
func (c *Controller) Subscribe(next func(stats.ViewModel)) func() {
	return c.output.Subscribe(next, nil)
}

// Start subscribes to the sources. The theme is subscribed first so the
// first publish is already styled.
func (c *Controller) Start() error {
	c.mu.Lock()
	if c.machine.Current() == StateStopped {
		c.mu.Unlock()
		return ErrStopped
	}
	if c.started {
		c.mu.Unlock()
		return ErrAlreadyActive
	}
	c.started = true
	c.mu.Unlock()

	if c.sources.Theme != nil {
		unsub := c.sources.Theme.Subscribe(c.onTheme, nil)
		c.mu.Lock()
		// Close may have run while subscribing
		if c.machine.Current() == StateStopped {
			c.mu.Unlock()
			unsub()
			return ErrStopped
		}
		c.unsubTheme = unsub
		c.mu.Unlock()
	}

	unsubFilter := c.sources.Filter.Subscribe(c.onFilter, c.onSourceError)
	c.track(unsubFilter)

	unsubCollection := c.sources.Collection.Subscribe(c.onCollection, c.onSourceError)
	c.track(unsubCollection)

	return nil
}

func (c *Controller) track(unsub func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// a source may fail while replaying during Subscribe
	if c.sourceDown || c.machine.Current() == StateStopped {
		unsub()
		return
	}
	c.unsubData = append(c.unsubData, unsub)
}

// Close revokes every subscription including the theme listener. Nothing is
// published afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.machine.Current() == StateStopped {
		return
	}

	c.dropData()
	if c.unsubTheme != nil {
		c.unsubTheme()
		c.unsubTheme = nil
	}

	if err := c.machine.Transition(StateStopped); err != nil {
		c.log.Errorw("failed to stop", "error", err)
	}
	c.log.Debug("stopped")
}

func (c *Controller) dropData() {
	for _, unsub := range c.unsubData {
		unsub()
	}
	c.unsubData = nil
}

func (c *Controller) onCollection(state CollectionState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active() {
		return
	}

	switch c.trigger {
	case FirstLoadThenFilter:
		if c.loaded || !state.Loaded {
			return
		}
		c.loaded = true
		c.compute(state, c.filterValue())

	case CombineLatest:
		c.compute(state, c.filterValue())
	}
}

func (c *Controller) onFilter(libraryID *book.LibraryID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active() {
		return
	}

	state, ok := c.sources.Collection.Value()
	switch c.trigger {
	case FirstLoadThenFilter:
		if !c.loaded {
			return
		}
	case CombineLatest:
		if !ok {
			return
		}
	}

	c.compute(state, libraryID)
}

func (c *Controller) onTheme(mode theme.Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.machine.Current() == StateStopped || mode == c.mode {
		return
	}
	c.mode = mode

	if c.machine.Current() != StatePublished {
		return
	}

	c.output.Next(theme.Restyle(c.last, mode))
	metrics.RecordRestyle(string(c.kind), string(mode))
	c.log.Debugw("restyled", "mode", mode)
}

// onSourceError stops updates from the data sources. The theme listener stays
// so the last value keeps following the theme until Close.
func (c *Controller) onSourceError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active() {
		return
	}

	c.sourceDown = true
	c.dropData()
	metrics.RecordSourceError(string(c.kind))
	c.log.Errorw("source failed, no further updates", "error", err)
}

func (c *Controller) active() bool {
	return !c.sourceDown && c.machine.Current() != StateStopped
}

func (c *Controller) filterValue() *book.LibraryID {
	id, _ := c.sources.Filter.Value()
	return id
}

// compute runs the rule and publishes a complete new view model. It must be
// called with mu held.
func (c *Controller) compute(state CollectionState, libraryID *book.LibraryID) {
	if err := c.machine.Transition(StateComputing); err != nil {
		c.log.Errorw("cannot recompute", "error", err)
		return
	}

	start := time.Now()
	outcome := metrics.OutcomeOK

	var result stats.Result
	if !state.Valid() {
		result = stats.NewEmpty(c.kind)
		outcome = metrics.OutcomeEmpty
	} else {
		var err error
		result, err = c.run(stats.Filter(state.Books, libraryID))
		if err != nil {
			c.log.Errorw("aggregation failed, publishing empty", "error", err)
			result = stats.NewEmpty(c.kind)
			outcome = metrics.OutcomePanic
		}
	}

	vm, err := c.viewModel(result)
	if err != nil {
		c.log.Errorw("view model failed, publishing empty", "error", err)
		result = stats.NewEmpty(c.kind)
		vm = result.ViewModel()
		outcome = metrics.OutcomePanic
	}

	c.raw.Set(c.kind, result)
	c.last = vm
	c.output.Next(theme.Restyle(vm, c.mode))

	if err := c.machine.Transition(StatePublished); err != nil {
		c.log.Errorw("failed to publish", "error", err)
	}

	metrics.RecordRecomputation(string(c.kind), outcome, time.Since(start))
	c.log.Debugw("recomputed", "books", len(state.Books), "library", libraryID, "outcome", outcome)
}

func (c *Controller) run(books []book.Book) (result stats.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRulePanicked, r)
		}
	}()

	result = c.rule(books)
	if result == nil {
		return nil, fmt.Errorf("%w: nil result", ErrRulePanicked)
	}
	return result, nil
}

func (c *Controller) viewModel(result stats.Result) (vm stats.ViewModel, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRulePanicked, r)
		}
	}()

	return result.ViewModel(), nil
}
