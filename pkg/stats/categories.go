package stats

import (
	"fmt"

	"github.com/kasuboski/shelfstats/pkg/book"
)

const topCategoriesLimit = 15

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type TopCategoriesStats []CategoryCount

func (TopCategoriesStats) Kind() Kind {
	return KindTopCategories
}

func (s TopCategoriesStats) ViewModel() ViewModel {
	labels := make([]string, len(s))
	values := make([]float64, len(s))
	entries := make([]Entry, len(s))
	for i, c := range s {
		labels[i] = c.Category
		values[i] = float64(c.Count)
		entries[i] = Entry{Name: c.Category, Detail: fmt.Sprintf("%s: %d books", c.Category, c.Count)}
	}
	return single(KindTopCategories, "Books", labels, values, entries)
}

// TopCategories counts every category label a book carries, top 15
func TopCategories(books []book.Book) TopCategoriesStats {
	c := newCounter()
	for _, b := range books {
		for _, category := range b.Categories() {
			if category != "" {
				c.add(category)
			}
		}
	}

	top := c.top(topCategoriesLimit)
	out := make(TopCategoriesStats, len(top))
	for i, r := range top {
		out[i] = CategoryCount{Category: r.name, Count: r.count}
	}
	return out
}
