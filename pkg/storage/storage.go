package storage

import (
	"context"
	"errors"

	"github.com/go-jet/jet/v2/sqlite"

	"github.com/kasuboski/shelfstats/pkg/book"
)

var ErrNotFound = errors.New("not found in storage")

type Storage interface {
	RunMigrations(ctx context.Context) error
	BookStorage
	StatisticsStorage
}

// BookStorage persists the collection. Every book is stored with its
// categories in order.
type BookStorage interface {
	UpsertBooks(ctx context.Context, books ...book.Book) ([]int64, error)
	GetBook(ctx context.Context, id int64) (book.Book, error)
	ListBooks(ctx context.Context, where ...sqlite.BoolExpression) ([]book.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	DeleteLibrary(ctx context.Context, libraryID book.LibraryID) (int64, error)
}
