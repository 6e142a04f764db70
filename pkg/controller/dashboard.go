package controller

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kasuboski/shelfstats/pkg/cache"
	"github.com/kasuboski/shelfstats/pkg/logger"
	"github.com/kasuboski/shelfstats/pkg/stats"
)

// DefaultTriggers is the trigger policy of every statistic. Series and
// category rules follow every collection emission, the rest only follow the
// filter once the collection was first loaded.
var DefaultTriggers = map[stats.Kind]Trigger{
	stats.KindRating:            FirstLoadThenFilter,
	stats.KindPersonalRating:    FirstLoadThenFilter,
	stats.KindPageCount:         FirstLoadThenFilter,
	stats.KindFileSize:          FirstLoadThenFilter,
	stats.KindPublicationYear:   FirstLoadThenFilter,
	stats.KindReadingProgress:   FirstLoadThenFilter,
	stats.KindReadingCompletion: FirstLoadThenFilter,
	stats.KindTopSeries:         FirstLoadThenFilter,
	stats.KindSeriesCompletion:  CombineLatest,
	stats.KindSeriesStandalone:  CombineLatest,
	stats.KindTopCategories:     CombineLatest,
}

// Dashboard runs one controller per statistic over shared sources
type Dashboard struct {
	controllers map[stats.Kind]*Controller
	order       []stats.Kind
	raw         *cache.Cache[stats.Kind, stats.Result]
	log         *zap.SugaredLogger
}

type DashboardOption func(*dashboardConfig)

type dashboardConfig struct {
	kinds    []stats.Kind
	triggers map[stats.Kind]Trigger
	log      *zap.SugaredLogger
}

// WithKinds limits the dashboard to the given statistics
func WithKinds(kinds ...stats.Kind) DashboardOption {
	return func(c *dashboardConfig) {
		c.kinds = kinds
	}
}

// WithTrigger overrides the trigger of a single statistic
func WithTrigger(kind stats.Kind, trigger Trigger) DashboardOption {
	return func(c *dashboardConfig) {
		c.triggers[kind] = trigger
	}
}

func WithDashboardLogger(l *zap.SugaredLogger) DashboardOption {
	return func(c *dashboardConfig) {
		c.log = l
	}
}

func NewDashboard(sources Sources, opts ...DashboardOption) (*Dashboard, error) {
	cfg := dashboardConfig{
		kinds:    stats.Kinds,
		triggers: make(map[stats.Kind]Trigger, len(DefaultTriggers)),
	}
	for k, v := range DefaultTriggers {
		cfg.triggers[k] = v
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = logger.Get()
	}

	d := &Dashboard{
		controllers: make(map[stats.Kind]*Controller, len(cfg.kinds)),
		raw:         cache.New[stats.Kind, stats.Result](),
		log:         cfg.log,
	}

	for _, kind := range cfg.kinds {
		rule, err := stats.Lookup(kind)
		if err != nil {
			return nil, err
		}

		d.controllers[kind] = New(kind, rule, cfg.triggers[kind], sources, WithLogger(cfg.log), WithCache(d.raw))
		d.order = append(d.order, kind)
	}

	return d, nil
}

// Start starts every controller in dashboard order. When one fails the ones
// already started are closed again.
func (d *Dashboard) Start() error {
	for i, kind := range d.order {
		if err := d.controllers[kind].Start(); err != nil {
			for _, started := range d.order[:i] {
				d.controllers[started].Close()
			}
			return fmt.Errorf("failed to start %s: %w", kind, err)
		}
	}
	d.log.Infow("dashboard started", "statistics", len(d.order))
	return nil
}

func (d *Dashboard) Close() {
	for _, kind := range d.order {
		d.controllers[kind].Close()
	}
	d.log.Info("dashboard stopped")
}

func (d *Dashboard) Kinds() []stats.Kind {
	return d.order
}

func (d *Dashboard) Controller(kind stats.Kind) (*Controller, error) {
	c, ok := d.controllers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", stats.ErrUnknownKind, kind)
	}
	return c, nil
}

func (d *Dashboard) ViewModel(kind stats.Kind) (stats.ViewModel, error) {
	c, err := d.Controller(kind)
	if err != nil {
		return stats.ViewModel{}, err
	}
	return c.ViewModel(), nil
}

// ViewModels returns the published view model of every statistic
func (d *Dashboard) ViewModels() map[stats.Kind]stats.ViewModel {
	out := make(map[stats.Kind]stats.ViewModel, len(d.order))
	for _, kind := range d.order {
		out[kind] = d.controllers[kind].ViewModel()
	}
	return out
}

// Raw returns the last computed raw statistic of kind
func (d *Dashboard) Raw(kind stats.Kind) (stats.Result, bool) {
	return d.raw.Get(kind)
}
