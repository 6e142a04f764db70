package manager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"go.uber.org/zap"

	"github.com/kasuboski/shelfstats/config"
	"github.com/kasuboski/shelfstats/pkg/book"
	"github.com/kasuboski/shelfstats/pkg/controller"
	"github.com/kasuboski/shelfstats/pkg/logger"
	"github.com/kasuboski/shelfstats/pkg/metrics"
	"github.com/kasuboski/shelfstats/pkg/observe"
	"github.com/kasuboski/shelfstats/pkg/pagination"
	"github.com/kasuboski/shelfstats/pkg/stats"
	"github.com/kasuboski/shelfstats/pkg/storage"
	"github.com/kasuboski/shelfstats/pkg/storage/sqlite/schema/gen/table"
	"github.com/kasuboski/shelfstats/pkg/theme"
)

var ErrNoBooks = errors.New("no books to import")

// CollectionManager owns the collection, filter and theme sources and the
// dashboard following them. The collection is always replaced as a whole from
// storage.
type CollectionManager struct {
	storage   storage.Storage
	config    config.Stats
	dashboard *controller.Dashboard
	log       *zap.SugaredLogger

	collection *observe.Subject[controller.CollectionState]
	filter     *observe.Subject[*book.LibraryID]
	theme      *observe.Subject[theme.Mode]
}

// New builds the dashboard from the stats configuration. Nothing is loaded
// until Reload or Run.
func New(store storage.Storage, cfg config.Config, log *zap.SugaredLogger) (*CollectionManager, error) {
	if log == nil {
		log = logger.Get()
	}

	mode := theme.Light
	if cfg.Theme.Mode != "" {
		parsed, err := theme.ParseMode(cfg.Theme.Mode)
		if err != nil {
			return nil, err
		}
		mode = parsed
	}

	m := &CollectionManager{
		storage:    store,
		config:     cfg.Stats,
		log:        log,
		collection: observe.New[controller.CollectionState](),
		filter:     observe.NewBehavior[*book.LibraryID](nil),
		theme:      observe.NewBehavior(mode),
	}

	opts, err := dashboardOptions(cfg.Stats)
	if err != nil {
		return nil, err
	}
	opts = append(opts, controller.WithDashboardLogger(log))

	m.dashboard, err = controller.NewDashboard(m.Sources(), opts...)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func dashboardOptions(cfg config.Stats) ([]controller.DashboardOption, error) {
	var opts []controller.DashboardOption

	if len(cfg.Kinds) > 0 {
		kinds := make([]stats.Kind, 0, len(cfg.Kinds))
		for _, k := range cfg.Kinds {
			kind, err := stats.ParseKind(k)
			if err != nil {
				return nil, err
			}
			kinds = append(kinds, kind)
		}
		opts = append(opts, controller.WithKinds(kinds...))
	}

	for k, t := range cfg.Triggers {
		kind, err := stats.ParseKind(k)
		if err != nil {
			return nil, err
		}
		trigger, err := controller.ParseTrigger(t)
		if err != nil {
			return nil, fmt.Errorf("trigger of %s: %w", kind, err)
		}
		opts = append(opts, controller.WithTrigger(kind, trigger))
	}

	return opts, nil
}

func (m *CollectionManager) Sources() controller.Sources {
	return controller.Sources{
		Collection: m.collection,
		Filter:     m.filter,
		Theme:      m.theme,
	}
}

func (m *CollectionManager) Dashboard() *controller.Dashboard {
	return m.dashboard
}

// Run starts the dashboard, loads the collection and reloads it every refresh
// interval until ctx is done.
func (m *CollectionManager) Run(ctx context.Context) error {
	if err := m.dashboard.Start(); err != nil {
		return err
	}
	defer m.dashboard.Close()

	if _, err := m.Reload(ctx); err != nil {
		return err
	}

	if m.config.RefreshInterval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(m.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := m.Reload(ctx); err != nil {
				m.log.Errorw("failed to refresh collection", "error", err)
			}
		}
	}
}

// Reload replaces the collection with the stored books and returns how many were loaded
func (m *CollectionManager) Reload(ctx context.Context) (int, error) {
	books, err := m.storage.ListBooks(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load collection: %w", err)
	}

	m.collection.Next(controller.CollectionState{Loaded: true, Books: books})
	metrics.SetCollectionSize(len(books))
	logger.FromCtx(ctx).Infow("collection loaded", "books", len(books))

	return len(books), nil
}

// Import validates and stores the books, then reloads the collection
func (m *CollectionManager) Import(ctx context.Context, books []book.Book) ([]int64, error) {
	if len(books) == 0 {
		return nil, ErrNoBooks
	}

	for i, b := range books {
		if err := book.Validate(b); err != nil {
			return nil, fmt.Errorf("book at index %d: %w", i, err)
		}
	}

	ids, err := m.storage.UpsertBooks(ctx, books...)
	if err != nil {
		return nil, err
	}

	if _, err := m.Reload(ctx); err != nil {
		return ids, err
	}
	return ids, nil
}

// Book returns a single stored book
func (m *CollectionManager) Book(ctx context.Context, id int64) (book.Book, error) {
	return m.storage.GetBook(ctx, id)
}

// DeleteBook removes a stored book and reloads the collection
func (m *CollectionManager) DeleteBook(ctx context.Context, id int64) error {
	if err := m.storage.DeleteBook(ctx, id); err != nil {
		return err
	}

	_, err := m.Reload(ctx)
	return err
}

// DeleteLibrary removes every book of a library, reloads the collection and
// returns how many books were removed
func (m *CollectionManager) DeleteLibrary(ctx context.Context, libraryID book.LibraryID) (int64, error) {
	n, err := m.storage.DeleteLibrary(ctx, libraryID)
	if err != nil {
		return 0, err
	}

	if _, err := m.Reload(ctx); err != nil {
		return n, err
	}
	return n, nil
}

// Fail ends the collection source. Controllers stop recomputing but keep
// following the theme.
func (m *CollectionManager) Fail(err error) {
	m.collection.Error(err)
}

// Collection returns the last loaded books
func (m *CollectionManager) Collection() (controller.CollectionState, bool) {
	return m.collection.Value()
}

// SetFilter selects a library. A nil id clears the selection.
func (m *CollectionManager) SetFilter(libraryID *book.LibraryID) {
	m.filter.Next(libraryID)
}

func (m *CollectionManager) Filter() *book.LibraryID {
	id, _ := m.filter.Value()
	return id
}

func (m *CollectionManager) SetTheme(mode theme.Mode) {
	m.theme.Next(mode)
}

func (m *CollectionManager) Theme() theme.Mode {
	mode, _ := m.theme.Value()
	return mode
}

func (m *CollectionManager) Libraries(ctx context.Context) ([]storage.LibrarySummary, error) {
	return m.storage.ListLibraries(ctx)
}

func (m *CollectionManager) StatusCounts(ctx context.Context) ([]storage.StatusCount, error) {
	return m.storage.CountBooksByStatus(ctx)
}

// Books lists stored books, optionally of a single library, one page at a time
func (m *CollectionManager) Books(ctx context.Context, libraryID *book.LibraryID, params pagination.Params) ([]book.Book, pagination.Meta, error) {
	var where []sqlite.BoolExpression
	if libraryID != nil {
		where = append(where, table.Book.LibraryID.EQ(sqlite.Int64(int64(*libraryID))))
	}

	books, err := m.storage.ListBooks(ctx, where...)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	page, meta := pagination.Slice(books, params)
	return page, meta, nil
}
