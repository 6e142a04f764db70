package stats

import "github.com/kasuboski/shelfstats/pkg/book"

// Filter keeps books of the selected library in input order.
// A nil selection returns the input unchanged.
func Filter(books []book.Book, libraryID *book.LibraryID) []book.Book {
	if libraryID == nil {
		return books
	}

	filtered := make([]book.Book, 0, len(books))
	for _, b := range books {
		if b.LibraryID == *libraryID {
			filtered = append(filtered, b)
		}
	}

	return filtered
}
