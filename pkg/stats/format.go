package stats

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kasuboski/shelfstats/pkg/book"
)

// round rounds half away from zero to the given number of decimals
func round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

// truncate shortens s to keep runes and appends the suffix when anything was cut
func truncate(s string, max, keep int, suffix string) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:keep]) + suffix
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// StatusLabel formats RE_READING as "Re Reading"
func StatusLabel(s book.ReadStatus) string {
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(strings.ToLower(string(s)), "_", " "))
}

// ranked pairs a name with its count and first encounter position
type ranked struct {
	name  string
	count int
	seen  int
}

// counter tallies names and remembers encounter order for stable ranking
type counter struct {
	index map[string]int
	items []ranked
}

func newCounter() *counter {
	return &counter{index: make(map[string]int)}
}

func (c *counter) add(name string) {
	i, ok := c.index[name]
	if !ok {
		i = len(c.items)
		c.index[name] = i
		c.items = append(c.items, ranked{name: name, seen: i})
	}
	c.items[i].count++
}

// top sorts by count descending, ties by encounter order, and keeps n
func (c *counter) top(n int) []ranked {
	out := slices.Clone(c.items)
	slices.SortStableFunc(out, func(a, b ranked) int {
		return cmp.Compare(b.count, a.count)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
