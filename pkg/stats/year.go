package stats

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/kasuboski/shelfstats/pkg/book"
)

const earliestPublicationYear = 1800

type YearEntry struct {
	Year   int    `json:"year"`
	Count  int    `json:"count"`
	Decade string `json:"decade"`
}

type PublicationYearStats []YearEntry

func (PublicationYearStats) Kind() Kind {
	return KindPublicationYear
}

func (s PublicationYearStats) ViewModel() ViewModel {
	labels := make([]string, len(s))
	values := make([]float64, len(s))
	entries := make([]Entry, len(s))
	for i, y := range s {
		labels[i] = strconv.Itoa(y.Year)
		values[i] = float64(y.Count)
		entries[i] = Entry{
			Name:        labels[i],
			Detail:      plural(y.Count, "book") + " published",
			Description: y.Decade,
		}
	}
	return single(KindPublicationYear, "Books Published", labels, values, entries)
}

// PublicationYears counts books per publication year up to the current year
func PublicationYears(books []book.Book) PublicationYearStats {
	return PublicationYearsAsOf(books, time.Now().Year())
}

// PublicationYearsAsOf counts books per year in [1800, currentYear] ascending.
// Years without books are never synthesized.
func PublicationYearsAsOf(books []book.Book, currentYear int) PublicationYearStats {
	counts := make(map[int]int)
	for _, b := range books {
		year, ok := b.Year()
		if !ok || year < earliestPublicationYear || year > currentYear {
			continue
		}
		counts[year]++
	}

	out := make(PublicationYearStats, 0, len(counts))
	for year, count := range counts {
		out = append(out, YearEntry{
			Year:   year,
			Count:  count,
			Decade: fmt.Sprintf("%ds", year/10*10),
		})
	}

	slices.SortFunc(out, func(a, b YearEntry) int {
		return cmp.Compare(a.Year, b.Year)
	})

	return out
}
