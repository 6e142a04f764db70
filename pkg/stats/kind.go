package stats

import (
	"errors"
	"fmt"

	"github.com/kasuboski/shelfstats/pkg/book"
)

var ErrUnknownKind = errors.New("unknown statistic kind")

type Kind string

const (
	KindRating            Kind = "rating"
	KindPersonalRating    Kind = "personal-rating"
	KindPageCount         Kind = "page-count"
	KindFileSize          Kind = "file-size"
	KindPublicationYear   Kind = "publication-year"
	KindReadingProgress   Kind = "reading-progress"
	KindReadingCompletion Kind = "reading-completion"
	KindSeriesCompletion  Kind = "series-completion"
	KindSeriesStandalone  Kind = "series-standalone"
	KindTopSeries         Kind = "top-series"
	KindTopCategories     Kind = "top-categories"
)

// Kinds lists every statistic in dashboard order
var Kinds = []Kind{
	KindRating,
	KindPersonalRating,
	KindPageCount,
	KindFileSize,
	KindPublicationYear,
	KindReadingProgress,
	KindReadingCompletion,
	KindSeriesCompletion,
	KindSeriesStandalone,
	KindTopSeries,
	KindTopCategories,
}

// Result is the raw output of a rule. It doubles as the pull accessor payload for tooltips.
type Result interface {
	Kind() Kind
	ViewModel() ViewModel
}

// Rule turns an already filtered collection into a Result
type Rule func(books []book.Book) Result

var rules = map[Kind]Rule{
	KindRating:            func(b []book.Book) Result { return ExternalRatings(b) },
	KindPersonalRating:    func(b []book.Book) Result { return PersonalRatings(b) },
	KindPageCount:         func(b []book.Book) Result { return PageCounts(b) },
	KindFileSize:          func(b []book.Book) Result { return FileSizes(b) },
	KindPublicationYear:   func(b []book.Book) Result { return PublicationYears(b) },
	KindReadingProgress:   func(b []book.Book) Result { return ReadingProgress(b) },
	KindReadingCompletion: func(b []book.Book) Result { return ReadingCompletion(b) },
	KindSeriesCompletion:  func(b []book.Book) Result { return SeriesCompletion(b) },
	KindSeriesStandalone:  func(b []book.Book) Result { return SeriesStandalone(b) },
	KindTopSeries:         func(b []book.Book) Result { return TopSeries(b) },
	KindTopCategories:     func(b []book.Book) Result { return TopCategories(b) },
}

// Lookup returns the rule registered for a kind
func Lookup(kind Kind) (Rule, error) {
	rule, ok := rules[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return rule, nil
}

// ParseKind validates a kind coming from an outer surface
func ParseKind(s string) (Kind, error) {
	kind := Kind(s)
	if _, ok := rules[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return kind, nil
}

// Compute runs the filter stage and then the rule for kind
func Compute(kind Kind, books []book.Book, libraryID *book.LibraryID) (Result, error) {
	rule, err := Lookup(kind)
	if err != nil {
		return nil, err
	}

	return rule(Filter(books, libraryID)), nil
}

// Empty is the result published when the collection is not loaded or holds no books
type Empty struct {
	kind Kind
}

func NewEmpty(kind Kind) Empty {
	return Empty{kind: kind}
}

func (e Empty) Kind() Kind {
	return e.kind
}

func (e Empty) ViewModel() ViewModel {
	return EmptyViewModel(e.kind)
}

func (e Empty) MarshalJSON() ([]byte, error) {
	return []byte("[]"), nil
}
