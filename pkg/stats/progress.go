package stats

import (
	"math"

	"github.com/kasuboski/shelfstats/pkg/book"
)

type progressRange struct {
	bucketRange
	desc string
}

var progressRanges = []progressRange{
	{bucketRange{"0%", 0, 0}, "Not Started"},
	{bucketRange{"1-25%", 1, 25}, "Just Started"},
	{bucketRange{"26-50%", 26, 50}, "Getting Into It"},
	{bucketRange{"51-75%", 51, 75}, "Halfway Through"},
	{bucketRange{"76-99%", 76, 99}, "Almost Finished"},
	{bucketRange{"100%", 100, 100}, "Completed"},
}

type ProgressBucket struct {
	Range       string `json:"progressRange"`
	Count       int    `json:"count"`
	Description string `json:"description"`
}

type ReadingProgressStats []ProgressBucket

func (ReadingProgressStats) Kind() Kind {
	return KindReadingProgress
}

func (s ReadingProgressStats) ViewModel() ViewModel {
	labels := make([]string, len(s))
	values := make([]float64, len(s))
	entries := make([]Entry, len(s))
	for i, b := range s {
		labels[i] = b.Range
		values[i] = float64(b.Count)
		entries[i] = Entry{
			Name:        b.Range,
			Key:         b.Range,
			Detail:      plural(b.Count, "book"),
			Description: b.Description,
		}
	}
	return single(KindReadingProgress, "Books by Progress", labels, values, entries)
}

// progressPercent snaps a percentage onto the integer scale the buckets use.
// Anything started but unfinished lands in 1..99 so the buckets partition the range.
func progressPercent(p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 100:
		return 100
	}
	return math.Min(math.Max(math.Ceil(p), 1), 99)
}

// ReadingProgress distributes books over six progress buckets. All six are
// always present, an empty collection yields no buckets.
func ReadingProgress(books []book.Book) ReadingProgressStats {
	if len(books) == 0 {
		return ReadingProgressStats{}
	}

	out := make(ReadingProgressStats, len(progressRanges))
	for i, r := range progressRanges {
		out[i] = ProgressBucket{Range: r.label, Description: r.desc}
	}

	for _, b := range books {
		p := progressPercent(b.Progress())
		for i, r := range progressRanges {
			if r.contains(p) {
				out[i].Count++
				break
			}
		}
	}

	return out
}
