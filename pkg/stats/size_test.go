package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasuboski/shelfstats/pkg/book"
)

func sized(title string, kb float64, t book.Type) book.Book {
	return book.Book{
		BookType:   t,
		FileSizeKB: book.Ptr(kb),
		Metadata:   &book.Metadata{Title: title},
	}
}

func TestFileSizes(t *testing.T) {
	t.Run("ranks positive sizes in megabytes", func(t *testing.T) {
		books := []book.Book{
			sized("small", 512, book.TypeEPUB),
			sized("none", 0, book.TypePDF),
			{Metadata: &book.Metadata{Title: "missing"}},
			sized("large", 3000, book.TypePDF),
		}

		got := FileSizes(books)
		require.Len(t, got, 2)
		assert.Equal(t, "large", got[0].Title)
		assert.Equal(t, 2.93, got[0].SizeMB)
		assert.Equal(t, "small", got[1].Title)
		assert.Equal(t, 0.5, got[1].SizeMB)
	})

	t.Run("keeps the top twenty", func(t *testing.T) {
		books := make([]book.Book, 0, 25)
		for i := range 25 {
			books = append(books, sized("book", float64((i+1)*1024), book.TypePDF))
		}

		got := FileSizes(books)
		require.Len(t, got, 20)
		assert.Equal(t, 25.0, got[0].SizeMB)
		assert.Equal(t, 6.0, got[19].SizeMB)
	})

	t.Run("detail side channel", func(t *testing.T) {
		b := sized("Structure and Interpretation of Computer Programs", 2048, book.TypePDF)
		b.Metadata.PageCount = book.Ptr(320)

		vm := FileSizes([]book.Book{b, sized("other", 1024, "TXT")}).ViewModel()
		require.Len(t, vm.Entries, 2)

		assert.Equal(t, "2.00 MB | Format: PDF | Pages: 320", vm.Entries[0].Detail)
		assert.Equal(t, "1.00 MB | Format: TXT | Pages: Unknown", vm.Entries[1].Detail)
		assert.Equal(t, "PDF", vm.Entries[0].Key)
		assert.Equal(t, "Structure and Interpretation of Computer Programs", vm.Entries[0].Name)
		assert.True(t, strings.HasSuffix(vm.Labels[0], "..."))
		assert.Equal(t, []float64{2, 1}, vm.Series[0].Values)
	})

	t.Run("falls back to file name", func(t *testing.T) {
		got := FileSizes([]book.Book{{FileName: "a.cbz", FileSizeKB: book.Ptr(10.0)}})
		require.Len(t, got, 1)
		assert.Equal(t, "a.cbz", got[0].Title)
	})
}
