package stats

import (
	"fmt"
	"math"

	"github.com/kasuboski/shelfstats/pkg/book"
)

type pageRange struct {
	name string
	min  int
	max  int
}

var pageCategories = []pageRange{
	{"Short (< 200)", 0, 199},
	{"Medium (200-400)", 200, 400},
	{"Long (401-600)", 401, 600},
	{"Very Long (601-800)", 601, 800},
	{"Epic (> 800)", 801, math.MaxInt},
}

type PageCountCategory struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	AvgPages int    `json:"avgPages"`
	MinPages int    `json:"minPages"`
	MaxPages int    `json:"maxPages"`
}

type PageCountStats []PageCountCategory

func (PageCountStats) Kind() Kind {
	return KindPageCount
}

func (s PageCountStats) ViewModel() ViewModel {
	labels := make([]string, len(s))
	values := make([]float64, len(s))
	entries := make([]Entry, len(s))
	for i, c := range s {
		labels[i] = c.Category
		values[i] = float64(c.Count)
		entries[i] = Entry{
			Name:   c.Category,
			Key:    c.Category,
			Detail: fmt.Sprintf("%s | avg %d pages (%d-%d)", plural(c.Count, "book"), c.AvgPages, c.MinPages, c.MaxPages),
		}
	}
	return single(KindPageCount, "Books by Page Count", labels, values, entries)
}

// PageCounts groups books with a known page count into fixed length categories.
// Categories without books are dropped.
func PageCounts(books []book.Book) PageCountStats {
	out := make(PageCountStats, 0, len(pageCategories))

	for _, category := range pageCategories {
		c := PageCountCategory{Category: category.name}
		sum := 0
		for _, b := range books {
			pages, ok := b.PageCount()
			if !ok || pages < category.min || pages > category.max {
				continue
			}

			if c.Count == 0 || pages < c.MinPages {
				c.MinPages = pages
			}
			if pages > c.MaxPages {
				c.MaxPages = pages
			}
			c.Count++
			sum += pages
		}

		if c.Count == 0 {
			continue
		}

		c.AvgPages = int(math.Round(float64(sum) / float64(c.Count)))
		out = append(out, c)
	}

	return out
}

// PageCategoryNames lists every page count category in order
func PageCategoryNames() []string {
	names := make([]string, len(pageCategories))
	for i, c := range pageCategories {
		names[i] = c.name
	}
	return names
}
