package stats

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/kasuboski/shelfstats/pkg/book"
)

const topSizeLimit = 20

type SizeEntry struct {
	Title     string    `json:"title"`
	SizeMB    float64   `json:"sizeMB"`
	Human     string    `json:"human"`
	BookType  book.Type `json:"bookType"`
	PageCount *int      `json:"pageCount,omitempty"`
}

// Detail is the tooltip line shown for a single bar
func (e SizeEntry) Detail() string {
	pages := "Pages: Unknown"
	if e.PageCount != nil {
		pages = fmt.Sprintf("Pages: %d", *e.PageCount)
	}
	return fmt.Sprintf("%s MB | Format: %s | %s", humanize.FormatFloat("#,###.##", e.SizeMB), e.BookType, pages)
}

type FileSizeStats []SizeEntry

func (FileSizeStats) Kind() Kind {
	return KindFileSize
}

func (s FileSizeStats) ViewModel() ViewModel {
	labels := make([]string, len(s))
	values := make([]float64, len(s))
	entries := make([]Entry, len(s))
	for i, e := range s {
		labels[i] = truncate(e.Title, 30, 30, "...")
		values[i] = e.SizeMB
		entries[i] = Entry{
			Name:        e.Title,
			Key:         string(e.BookType),
			Detail:      e.Detail(),
			Description: e.Human,
		}
	}
	return single(KindFileSize, "File Size", labels, values, entries)
}

// FileSizes ranks the largest files in megabytes and keeps the top 20
func FileSizes(books []book.Book) FileSizeStats {
	out := make(FileSizeStats, 0)
	for _, b := range books {
		if b.FileSizeKB == nil || *b.FileSizeKB <= 0 {
			continue
		}

		kb := *b.FileSizeKB
		e := SizeEntry{
			Title:    b.DisplayTitle(),
			SizeMB:   round(kb/1024, 2),
			Human:    humanize.IBytes(uint64(kb * 1024)),
			BookType: b.BookType,
		}
		if pages, ok := b.PageCount(); ok {
			e.PageCount = &pages
		}
		out = append(out, e)
	}

	slices.SortStableFunc(out, func(a, b SizeEntry) int {
		return cmp.Compare(b.SizeMB, a.SizeMB)
	})

	if len(out) > topSizeLimit {
		out = out[:topSizeLimit]
	}

	return out
}
