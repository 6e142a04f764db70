package stats

import (
	"fmt"

	"github.com/kasuboski/shelfstats/pkg/book"
)

func withMetadata(m book.Metadata) book.Book {
	return book.Book{Metadata: &m}
}

func inSeries(name string, number float64, total int, status book.ReadStatus) book.Book {
	b := withMetadata(book.Metadata{
		SeriesName:   name,
		SeriesNumber: book.Ptr(number),
	})
	if total > 0 {
		b.Metadata.SeriesTotal = book.Ptr(total)
	}
	b.ReadStatus = status
	return b
}

func withProgress(p float64) book.Book {
	return book.Book{EPUBProgress: &book.Progress{Percentage: book.Ptr(p)}}
}

// collection is a small mixed library used by the invariant and snapshot tests
func collection() []book.Book {
	return []book.Book{
		{
			ID:             1,
			LibraryID:      1,
			FileName:       "dune.epub",
			BookType:       book.TypeEPUB,
			FileSizeKB:     book.Ptr(2048.0),
			PersonalRating: book.Ptr(9.0),
			ReadStatus:     book.ReadStatusRead,
			EPUBProgress:   &book.Progress{Percentage: book.Ptr(100.0)},
			Metadata: &book.Metadata{
				Title:           "Dune",
				PageCount:       book.Ptr(612),
				PublishedDate:   "1965-08-01",
				Categories:      []string{"Science Fiction", "Classics"},
				SeriesName:      "Dune",
				SeriesNumber:    book.Ptr(1.0),
				SeriesTotal:     book.Ptr(6),
				GoodreadsRating: book.Ptr(4.3),
				AmazonRating:    book.Ptr(4.5),
			},
		},
		{
			ID:           2,
			LibraryID:    1,
			FileName:     "dune-messiah.epub",
			BookType:     book.TypeEPUB,
			FileSizeKB:   book.Ptr(1024.0),
			ReadStatus:   book.ReadStatusReading,
			EPUBProgress: &book.Progress{Percentage: book.Ptr(40.0)},
			Metadata: &book.Metadata{
				Title:           "Dune Messiah",
				PageCount:       book.Ptr(256),
				PublishedDate:   "1969",
				Categories:      []string{"Science Fiction"},
				SeriesName:      " Dune ",
				SeriesNumber:    book.Ptr(2.0),
				SeriesTotal:     book.Ptr(6),
				GoodreadsRating: book.Ptr(3.9),
			},
		},
		{
			ID:          3,
			LibraryID:   2,
			FileName:    "watchmen.cbz",
			BookType:    book.TypeCBZ,
			FileSizeKB:  book.Ptr(150000.0),
			ReadStatus:  book.ReadStatusPaused,
			CBXProgress: &book.Progress{Percentage: book.Ptr(12.5)},
			Metadata: &book.Metadata{
				Title:         "Watchmen",
				PageCount:     book.Ptr(416),
				PublishedDate: "September 1987",
				Categories:    []string{"Comics", "Classics"},
				Rating:        book.Ptr(4.8),
			},
		},
		{
			ID:             4,
			LibraryID:      2,
			FileName:       "sicp.pdf",
			BookType:       book.TypePDF,
			FileSizeKB:     book.Ptr(5120.0),
			PersonalRating: book.Ptr(7.0),
			ReadStatus:     "SOMETHING_ELSE",
			PDFProgress:    &book.Progress{Percentage: book.Ptr(80.0)},
			Metadata: &book.Metadata{
				Title:         "Structure and Interpretation of Computer Programs",
				PageCount:     book.Ptr(883),
				PublishedDate: "1985",
			},
		},
		{
			ID:        5,
			LibraryID: 1,
			FileName:  "notes.pdf",
			BookType:  "TXT",
		},
	}
}

func namedBooks(n int, name func(i int) string) []book.Book {
	books := make([]book.Book, 0)
	for i := range n {
		// i+1 books for entry i so ranks are distinct
		for range i + 1 {
			books = append(books, withMetadata(book.Metadata{
				SeriesName: name(i),
				Categories: []string{name(i)},
			}))
		}
	}
	return books
}

func indexedName(prefix string) func(int) string {
	return func(i int) string {
		return fmt.Sprintf("%s %02d", prefix, i)
	}
}
