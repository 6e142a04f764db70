package storage

import (
	"context"

	"github.com/kasuboski/shelfstats/pkg/book"
)

// StatisticsStorage is for summaries cheap enough to aggregate in sql
type StatisticsStorage interface {
	ListLibraries(ctx context.Context) ([]LibrarySummary, error)
	CountBooksByStatus(ctx context.Context) ([]StatusCount, error)
}

type LibrarySummary struct {
	LibraryID book.LibraryID `json:"libraryId"`
	Books     int            `json:"books"`
}

type StatusCount struct {
	Status book.ReadStatus `json:"status"`
	Count  int             `json:"count"`
}
