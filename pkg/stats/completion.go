package stats

import (
	"cmp"
	"slices"

	"github.com/kasuboski/shelfstats/pkg/book"
)

const (
	UncategorizedLabel     = "Uncategorized"
	topCompletionLimit     = 25
	completionLabelMaxLen  = 20
	completionLabelKeepLen = 15
)

type CategoryCompletion struct {
	Category string                  `json:"category"`
	Counts   map[book.ReadStatus]int `json:"readStatusCounts"`
	Total    int                     `json:"total"`
}

type ReadingCompletionStats []CategoryCompletion

func (ReadingCompletionStats) Kind() Kind {
	return KindReadingCompletion
}

// ViewModel stacks one series per read status aligned to the ranked categories
func (s ReadingCompletionStats) ViewModel() ViewModel {
	labels := make([]string, len(s))
	entries := make([]Entry, len(s))
	for i, c := range s {
		labels[i] = truncate(c.Category, completionLabelMaxLen, completionLabelKeepLen, "..")
		entries[i] = Entry{Name: c.Category, Detail: plural(c.Total, "book")}
	}

	series := make([]Series, len(book.ReadStatuses))
	for i, status := range book.ReadStatuses {
		values := make([]float64, len(s))
		for j, c := range s {
			values[j] = float64(c.Counts[status])
		}
		series[i] = Series{
			Name:   StatusLabel(status),
			Key:    string(status),
			Values: values,
		}
	}

	return ViewModel{
		Kind:    KindReadingCompletion,
		Labels:  labels,
		Series:  series,
		Entries: entries,
	}
}

// ReadingCompletion counts read statuses per category. A book without
// categories counts towards Uncategorized. The 25 largest categories are kept.
func ReadingCompletion(books []book.Book) ReadingCompletionStats {
	index := make(map[string]int)
	all := make(ReadingCompletionStats, 0)

	for _, b := range books {
		status := b.Status()
		for _, category := range completionCategories(b) {
			i, ok := index[category]
			if !ok {
				i = len(all)
				index[category] = i
				counts := make(map[book.ReadStatus]int, len(book.ReadStatuses))
				for _, s := range book.ReadStatuses {
					counts[s] = 0
				}
				all = append(all, CategoryCompletion{Category: category, Counts: counts})
			}

			all[i].Counts[status]++
			all[i].Total++
		}
	}

	all = slices.DeleteFunc(all, func(c CategoryCompletion) bool {
		return c.Total == 0
	})

	slices.SortStableFunc(all, func(a, b CategoryCompletion) int {
		return cmp.Compare(b.Total, a.Total)
	})

	if len(all) > topCompletionLimit {
		all = all[:topCompletionLimit]
	}

	return all
}

func completionCategories(b book.Book) []string {
	out := make([]string, 0, len(b.Categories()))
	for _, c := range b.Categories() {
		if c != "" {
			out = append(out, c)
		}
	}

	if len(out) == 0 {
		return []string{UncategorizedLabel}
	}
	return out
}
