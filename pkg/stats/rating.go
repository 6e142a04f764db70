package stats

import (
	"math"

	"github.com/kasuboski/shelfstats/pkg/book"
)

const NoRatingLabel = "No Rating"

type bucketRange struct {
	label string
	min   float64
	max   float64
}

func (r bucketRange) contains(v float64) bool {
	return v >= r.min && v <= r.max
}

var externalRatingRanges = []bucketRange{
	{"1.0-1.9", 1.0, 1.9},
	{"2.0-2.9", 2.0, 2.9},
	{"3.0-3.9", 3.0, 3.9},
	{"4.0-4.5", 4.0, 4.5},
	{"4.6-5.0", 4.6, 5.0},
}

var personalRatingRanges = []bucketRange{
	{"1", 1, 1},
	{"2", 2, 2},
	{"3", 3, 3},
	{"4", 4, 4},
	{"5", 5, 5},
	{"6", 6, 6},
	{"7", 7, 7},
	{"8", 8, 8},
	{"9", 9, 9},
	{"10", 10, 10},
}

type RatingBucket struct {
	Range   string  `json:"range"`
	Count   int     `json:"count"`
	Average float64 `json:"averageRating"`
}

// RatingHistogram holds the published buckets. Unrated and OutOfRange are
// tallied but never published.
type RatingHistogram struct {
	kind       Kind
	Buckets    []RatingBucket `json:"buckets"`
	Unrated    int            `json:"unrated"`
	OutOfRange int            `json:"outOfRange"`
}

func (h RatingHistogram) Kind() Kind {
	return h.kind
}

// Total is the number of books landing in a published bucket
func (h RatingHistogram) Total() int {
	total := 0
	for _, b := range h.Buckets {
		total += b.Count
	}
	return total
}

func (h RatingHistogram) ViewModel() ViewModel {
	labels := make([]string, len(h.Buckets))
	values := make([]float64, len(h.Buckets))
	entries := make([]Entry, len(h.Buckets))
	for i, b := range h.Buckets {
		labels[i] = b.Range
		values[i] = float64(b.Count)
		entries[i] = Entry{Name: b.Range, Key: b.Range, Detail: plural(b.Count, "book")}
	}

	name := "Books by External Rating"
	if h.kind == KindPersonalRating {
		name = "Books by Personal Rating"
	}

	return single(h.kind, name, labels, values, entries)
}

// ExternalRatings buckets the effective external rating on the 0-5 scale.
// The rating is rounded to one decimal before range testing.
func ExternalRatings(books []book.Book) RatingHistogram {
	return histogram(KindRating, books, externalRatingRanges, book.Book.ExternalRating, func(v float64) float64 {
		return round(v, 1)
	})
}

// PersonalRatings buckets the personal rating on the 1-10 scale.
// The rating is rounded to the nearest integer before range testing.
func PersonalRatings(books []book.Book) RatingHistogram {
	return histogram(KindPersonalRating, books, personalRatingRanges, book.Book.Personal, math.Round)
}

func histogram(kind Kind, books []book.Book, ranges []bucketRange, value func(book.Book) float64, normalize func(float64) float64) RatingHistogram {
	h := RatingHistogram{
		kind:    kind,
		Buckets: make([]RatingBucket, len(ranges)),
	}
	sums := make([]float64, len(ranges))

	for i, r := range ranges {
		h.Buckets[i].Range = r.label
	}

	for _, b := range books {
		raw := value(b)
		if raw == 0 {
			h.Unrated++
			continue
		}

		v := normalize(raw)
		placed := false
		for i, r := range ranges {
			if r.contains(v) {
				h.Buckets[i].Count++
				sums[i] += raw
				placed = true
				break
			}
		}

		if !placed {
			h.OutOfRange++
		}
	}

	for i := range h.Buckets {
		if h.Buckets[i].Count > 0 {
			h.Buckets[i].Average = sums[i] / float64(h.Buckets[i].Count)
		}
	}

	return h
}
