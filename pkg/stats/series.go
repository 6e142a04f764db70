package stats

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/kasuboski/shelfstats/pkg/book"
)

const (
	topSeriesCompletionLimit = 15
	topSeriesLimit           = 20
)

type SeriesProgress struct {
	SeriesName           string  `json:"seriesName"`
	TotalBooks           int     `json:"totalBooks"`
	OwnedBooks           int     `json:"ownedBooks"`
	ReadBooks            int     `json:"readBooks"`
	CompletionPercentage int     `json:"completionPercentage"`
	CollectionPercentage int     `json:"collectionPercentage"`
	IsComplete           bool    `json:"isComplete"`
	AverageRating        float64 `json:"averageRating"`
}

type SeriesCompletionStats []SeriesProgress

func (SeriesCompletionStats) Kind() Kind {
	return KindSeriesCompletion
}

func (s SeriesCompletionStats) ViewModel() ViewModel {
	labels := make([]string, len(s))
	read := make([]float64, len(s))
	collected := make([]float64, len(s))
	entries := make([]Entry, len(s))
	for i, p := range s {
		labels[i] = truncate(p.SeriesName, 20, 17, "...")
		read[i] = float64(p.CompletionPercentage)
		collected[i] = float64(p.CollectionPercentage)

		state := "Incomplete"
		if p.IsComplete {
			state = "Complete!"
		}
		entries[i] = Entry{
			Name:        p.SeriesName,
			Detail:      fmt.Sprintf("%d%% read (%d/%d books) | Avg rating: %g/5", p.CompletionPercentage, p.ReadBooks, p.TotalBooks, p.AverageRating),
			Description: fmt.Sprintf("%d%% collected (%d/%d books) | %s", p.CollectionPercentage, p.OwnedBooks, p.TotalBooks, state),
		}
	}

	return ViewModel{
		Kind:   KindSeriesCompletion,
		Labels: labels,
		Series: []Series{
			{Name: "Reading Progress", Key: "reading", Values: read},
			{Name: "Collection Progress", Key: "collection", Values: collected},
		},
		Entries: entries,
	}
}

// groupSeries groups books by trimmed series name in encounter order.
// Books without a series are returned separately.
func groupSeries(books []book.Book) (names []string, groups map[string][]book.Book, standalone []book.Book) {
	groups = make(map[string][]book.Book)
	for _, b := range books {
		name := b.TrimmedSeries()
		if name == "" {
			standalone = append(standalone, b)
			continue
		}

		if _, ok := groups[name]; !ok {
			names = append(names, name)
		}
		groups[name] = append(groups[name], b)
	}
	return names, groups, standalone
}

// SeriesCompletion reports read and collection progress for series with at
// least two owned books. Ranked by completion then collection percentage, top 15.
func SeriesCompletion(books []book.Book) SeriesCompletionStats {
	names, groups, _ := groupSeries(books)

	out := make(SeriesCompletionStats, 0, len(names))
	for _, name := range names {
		members := groups[name]
		if len(members) < 2 {
			continue
		}
		out = append(out, seriesProgress(name, members))
	}

	slices.SortStableFunc(out, func(a, b SeriesProgress) int {
		if c := cmp.Compare(b.CompletionPercentage, a.CompletionPercentage); c != 0 {
			return c
		}
		return cmp.Compare(b.CollectionPercentage, a.CollectionPercentage)
	})

	if len(out) > topSeriesCompletionLimit {
		out = out[:topSeriesCompletionLimit]
	}

	return out
}

func seriesProgress(name string, members []book.Book) SeriesProgress {
	p := SeriesProgress{
		SeriesName: name,
		OwnedBooks: len(members),
	}

	for _, b := range members {
		if t := declaredTotal(b); t > p.TotalBooks {
			p.TotalBooks = t
		}
		if b.Status() == book.ReadStatusRead {
			p.ReadBooks++
		}
	}
	if p.TotalBooks == 0 {
		p.TotalBooks = p.OwnedBooks
	}

	p.CollectionPercentage = 100
	if p.TotalBooks > 0 {
		p.CompletionPercentage = percent(p.ReadBooks, p.TotalBooks)
		p.CollectionPercentage = percent(p.OwnedBooks, p.TotalBooks)
	}
	p.IsComplete = p.OwnedBooks >= p.TotalBooks

	var sum float64
	var rated int
	for _, b := range members {
		r := b.Personal()
		if r == 0 {
			r = b.ExternalRating()
		}
		if r > 0 {
			sum += r
			rated++
		}
	}
	if rated > 0 {
		p.AverageRating = round(sum/float64(rated), 1)
	}

	return p
}

func declaredTotal(b book.Book) int {
	if b.Metadata == nil || b.Metadata.SeriesTotal == nil {
		return 0
	}
	return *b.Metadata.SeriesTotal
}

func percent(n, total int) int {
	return int(math.Round(float64(n) / float64(total) * 100))
}

const (
	StandaloneBooks     = "Standalone Books"
	SeriesBooks         = "Series Books"
	CompleteSeries      = "Complete Series"
	IncompleteSeries    = "Incomplete Series"
	UnknownSeriesStatus = "Unknown Series Status"
)

// StandaloneCategories lists the classification categories in their fixed order
var StandaloneCategories = []string{StandaloneBooks, SeriesBooks, CompleteSeries, IncompleteSeries, UnknownSeriesStatus}

var standaloneDescriptions = map[string]string{
	StandaloneBooks:     "Books not part of any series",
	SeriesBooks:         "Books that are part of a series",
	CompleteSeries:      "Books in complete series",
	IncompleteSeries:    "Books in incomplete series",
	UnknownSeriesStatus: "Books with unclear series information",
}

type SeriesCategory struct {
	Category    string  `json:"category"`
	Count       int     `json:"count"`
	Percentage  float64 `json:"percentage"`
	Description string  `json:"description"`
}

type SeriesStandaloneStats []SeriesCategory

func (SeriesStandaloneStats) Kind() Kind {
	return KindSeriesStandalone
}

func (s SeriesStandaloneStats) ViewModel() ViewModel {
	labels := make([]string, len(s))
	values := make([]float64, len(s))
	entries := make([]Entry, len(s))
	for i, c := range s {
		labels[i] = c.Category
		values[i] = float64(c.Count)
		entries[i] = Entry{
			Name:        c.Category,
			Key:         c.Category,
			Detail:      fmt.Sprintf("%s: %d books (%g%%)", c.Category, c.Count, c.Percentage),
			Description: c.Description,
		}
	}
	return single(KindSeriesStandalone, "Books", labels, values, entries)
}

// SeriesStandalone classifies the collection into standalone and series books
// and splits series books by whether their series is complete.
func SeriesStandalone(books []book.Book) SeriesStandaloneStats {
	if len(books) == 0 {
		return SeriesStandaloneStats{}
	}

	names, groups, standalone := groupSeries(books)
	counts := map[string]int{StandaloneBooks: len(standalone)}

	for _, name := range names {
		members := groups[name]
		counts[SeriesBooks] += len(members)
		counts[seriesState(members)] += len(members)
	}

	out := make(SeriesStandaloneStats, 0, len(StandaloneCategories))
	for _, category := range StandaloneCategories {
		n := counts[category]
		if n == 0 {
			continue
		}
		out = append(out, SeriesCategory{
			Category:    category,
			Count:       n,
			Percentage:  round(float64(n)/float64(len(books))*100, 1),
			Description: standaloneDescriptions[category],
		})
	}

	slices.SortStableFunc(out, func(a, b SeriesCategory) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return out
}

// seriesState compares the declared series total with the distinct numbers owned.
// Without a total or with any member missing its number the state is unknown.
func seriesState(members []book.Book) string {
	total := 0
	for _, b := range members {
		total = max(total, declaredTotal(b))
	}

	numbers := make(map[float64]struct{}, len(members))
	for _, b := range members {
		if b.Metadata == nil || b.Metadata.SeriesNumber == nil || *b.Metadata.SeriesNumber == 0 {
			return UnknownSeriesStatus
		}
		numbers[*b.Metadata.SeriesNumber] = struct{}{}
	}

	if total <= 0 {
		return UnknownSeriesStatus
	}
	if len(numbers) == total {
		return CompleteSeries
	}
	return IncompleteSeries
}

type SeriesCount struct {
	SeriesName string `json:"seriesName"`
	BookCount  int    `json:"bookCount"`
}

type TopSeriesStats []SeriesCount

func (TopSeriesStats) Kind() Kind {
	return KindTopSeries
}

func (s TopSeriesStats) ViewModel() ViewModel {
	labels := make([]string, len(s))
	values := make([]float64, len(s))
	entries := make([]Entry, len(s))
	for i, c := range s {
		labels[i] = truncate(c.SeriesName, 30, 30, "...")
		values[i] = float64(c.BookCount)
		entries[i] = Entry{Name: c.SeriesName, Detail: plural(c.BookCount, "book")}
	}
	return single(KindTopSeries, "Books", labels, values, entries)
}

// TopSeries ranks series by the number of owned books, top 20
func TopSeries(books []book.Book) TopSeriesStats {
	c := newCounter()
	for _, b := range books {
		if name := b.TrimmedSeries(); name != "" {
			c.add(name)
		}
	}

	top := c.top(topSeriesLimit)
	out := make(TopSeriesStats, len(top))
	for i, r := range top {
		out[i] = SeriesCount{SeriesName: r.name, BookCount: r.count}
	}
	return out
}
