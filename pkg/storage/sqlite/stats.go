package sqlite

import (
	"context"

	"github.com/kasuboski/shelfstats/pkg/book"
	"github.com/kasuboski/shelfstats/pkg/storage"
)

// ListLibraries returns every library with its book count
func (s *SQLite) ListLibraries(ctx context.Context) ([]storage.LibrarySummary, error) {
	s.mu.Lock()
	rows, err := s.db.QueryContext(ctx, `
		SELECT library_id, COUNT(id)
		FROM book
		GROUP BY library_id
		ORDER BY library_id
	`)
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dest := make([]storage.LibrarySummary, 0)
	for rows.Next() {
		var summary storage.LibrarySummary
		if err := rows.Scan(&summary.LibraryID, &summary.Books); err != nil {
			return nil, err
		}
		dest = append(dest, summary)
	}

	return dest, rows.Err()
}

// CountBooksByStatus returns book counts aggregated by read status. Unknown
// statuses are folded into UNSET.
func (s *SQLite) CountBooksByStatus(ctx context.Context) ([]storage.StatusCount, error) {
	s.mu.Lock()
	rows, err := s.db.QueryContext(ctx, `
		SELECT read_status, COUNT(id)
		FROM book
		GROUP BY read_status
	`)
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[book.ReadStatus]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[book.NormalizeReadStatus(book.ReadStatus(status))] += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	dest := make([]storage.StatusCount, 0, len(counts))
	for _, status := range book.ReadStatuses {
		if n, ok := counts[status]; ok {
			dest = append(dest, storage.StatusCount{Status: status, Count: n})
		}
	}
	return dest, nil
}
