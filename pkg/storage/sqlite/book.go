package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/go-jet/jet/v2/sqlite"

	"github.com/kasuboski/shelfstats/pkg/book"
	"github.com/kasuboski/shelfstats/pkg/storage"
	"github.com/kasuboski/shelfstats/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/shelfstats/pkg/storage/sqlite/schema/gen/table"
)

var ErrOutOfRange = errors.New("value does not fit the book table")

type bookRecord struct {
	model.Book

	Categories []model.BookCategory
}

// UpsertBooks stores the books in a single transaction and returns their ids.
// Books with a zero id are inserted with a generated one.
func (s *SQLite) UpsertBooks(ctx context.Context, books ...book.Book) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(books))
	for _, b := range books {
		id, err := s.upsertBook(ctx, tx, b)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to store book %q: %w", b.DisplayTitle(), err)
		}
		ids = append(ids, id)
	}

	return ids, tx.Commit()
}

func (s *SQLite) upsertBook(ctx context.Context, tx *sql.Tx, b book.Book) (int64, error) {
	record, err := toModel(b)
	if err != nil {
		return 0, err
	}

	// don't insert a zeroed ID
	insertColumns := table.Book.MutableColumns
	if record.ID != 0 {
		insertColumns = table.Book.AllColumns
	}

	setColumns := make([]sqlite.Expression, len(table.Book.EXCLUDED.MutableColumns))
	for i, c := range table.Book.EXCLUDED.MutableColumns {
		setColumns[i] = c
	}

	stmt := table.Book.
		INSERT(insertColumns).
		MODEL(record.Book).
		ON_CONFLICT(table.Book.ID).
		DO_UPDATE(sqlite.SET(table.Book.MutableColumns.SET(sqlite.ROW(setColumns...))))

	result, err := s.execStatement(ctx, tx, stmt)
	if err != nil {
		return 0, err
	}

	id := int64(record.ID)
	if id == 0 {
		id, err = result.LastInsertId()
		if err != nil {
			return 0, err
		}
	}

	deleteCategories := table.BookCategory.DELETE().WHERE(table.BookCategory.BookID.EQ(sqlite.Int64(id)))
	if _, err := s.execStatement(ctx, tx, deleteCategories); err != nil {
		return 0, err
	}

	if len(record.Categories) == 0 {
		return id, nil
	}

	bookID, err := narrow64(id)
	if err != nil {
		return 0, err
	}
	for i := range record.Categories {
		record.Categories[i].BookID = bookID
	}

	insertCategories := table.BookCategory.
		INSERT(table.BookCategory.AllColumns).
		MODELS(record.Categories)
	if _, err := s.execStatement(ctx, tx, insertCategories); err != nil {
		return 0, err
	}

	return id, nil
}

// GetBook returns the book with its categories
func (s *SQLite) GetBook(ctx context.Context, id int64) (book.Book, error) {
	books, err := s.ListBooks(ctx, table.Book.ID.EQ(sqlite.Int64(id)))
	if err != nil {
		return book.Book{}, err
	}
	if len(books) == 0 {
		return book.Book{}, storage.ErrNotFound
	}
	return books[0], nil
}

// ListBooks lists the stored books ordered by id. Every where expression must hold.
func (s *SQLite) ListBooks(ctx context.Context, where ...sqlite.BoolExpression) ([]book.Book, error) {
	stmt := sqlite.
		SELECT(table.Book.AllColumns, table.BookCategory.AllColumns).
		FROM(table.Book.LEFT_JOIN(table.BookCategory, table.BookCategory.BookID.EQ(table.Book.ID)))

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}

	stmt = stmt.ORDER_BY(table.Book.ID.ASC(), table.BookCategory.Position.ASC())

	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]bookRecord, 0)
	if err := stmt.QueryContext(ctx, s.db, &records); err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	books := make([]book.Book, len(records))
	for i, r := range records {
		books[i] = fromModel(r)
	}
	return books, nil
}

// DeleteBook deletes the book and its categories
func (s *SQLite) DeleteBook(ctx context.Context, id int64) error {
	n, err := s.deleteWhere(ctx, table.Book.ID.EQ(sqlite.Int64(id)))
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteLibrary deletes every book of the library and returns how many were removed
func (s *SQLite) DeleteLibrary(ctx context.Context, libraryID book.LibraryID) (int64, error) {
	return s.deleteWhere(ctx, table.Book.LibraryID.EQ(sqlite.Int64(int64(libraryID))))
}

func (s *SQLite) deleteWhere(ctx context.Context, where sqlite.BoolExpression) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	categories := table.BookCategory.DELETE().
		WHERE(table.BookCategory.BookID.IN(
			table.Book.SELECT(table.Book.ID).WHERE(where),
		))
	if _, err := s.execStatement(ctx, tx, categories); err != nil {
		tx.Rollback()
		return 0, err
	}

	result, err := s.execStatement(ctx, tx, table.Book.DELETE().WHERE(where))
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	n, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	return n, tx.Commit()
}

func toModel(b book.Book) (bookRecord, error) {
	id, err := narrow64(b.ID)
	if err != nil {
		return bookRecord{}, fmt.Errorf("id: %w", err)
	}

	r := bookRecord{
		Book: model.Book{
			ID:               id,
			LibraryID:        int64(b.LibraryID),
			FileName:         optionalString(b.FileName),
			BookType:         optionalString(string(b.BookType)),
			FileSizeKb:       b.FileSizeKB,
			PersonalRating:   b.PersonalRating,
			ReadStatus:       string(b.ReadStatus),
			PdfProgress:      percentage(b.PDFProgress),
			EpubProgress:     percentage(b.EPUBProgress),
			CbxProgress:      percentage(b.CBXProgress),
			KoreaderProgress: percentage(b.KoreaderProgress),
			KoboProgress:     percentage(b.KoboProgress),
		},
	}

	m := b.Metadata
	if m == nil {
		return r, nil
	}

	if r.PageCount, err = narrow(m.PageCount); err != nil {
		return bookRecord{}, fmt.Errorf("page count: %w", err)
	}
	if r.SeriesTotal, err = narrow(m.SeriesTotal); err != nil {
		return bookRecord{}, fmt.Errorf("series total: %w", err)
	}

	r.HasMetadata = true
	r.Title = optionalString(m.Title)
	r.PublishedDate = optionalString(m.PublishedDate)
	r.SeriesName = optionalString(m.SeriesName)
	r.SeriesNumber = m.SeriesNumber
	r.GoodreadsRating = m.GoodreadsRating
	r.AmazonRating = m.AmazonRating
	r.HardcoverRating = m.HardcoverRating
	r.Rating = m.Rating

	for i, name := range m.Categories {
		r.Categories = append(r.Categories, model.BookCategory{
			BookID:   id,
			Position: int32(i),
			Name:     name,
		})
	}

	return r, nil
}

func fromModel(r bookRecord) book.Book {
	b := book.Book{
		ID:               int64(r.ID),
		LibraryID:        book.LibraryID(r.LibraryID),
		FileName:         deref(r.FileName),
		BookType:         book.Type(deref(r.BookType)),
		FileSizeKB:       r.FileSizeKb,
		PersonalRating:   r.PersonalRating,
		ReadStatus:       book.ReadStatus(r.ReadStatus),
		PDFProgress:      progress(r.PdfProgress),
		EPUBProgress:     progress(r.EpubProgress),
		CBXProgress:      progress(r.CbxProgress),
		KoreaderProgress: progress(r.KoreaderProgress),
		KoboProgress:     progress(r.KoboProgress),
	}

	if !r.HasMetadata {
		return b
	}

	b.Metadata = &book.Metadata{
		Title:           deref(r.Title),
		PageCount:       widen(r.PageCount),
		PublishedDate:   deref(r.PublishedDate),
		SeriesName:      deref(r.SeriesName),
		SeriesNumber:    r.SeriesNumber,
		SeriesTotal:     widen(r.SeriesTotal),
		GoodreadsRating: r.GoodreadsRating,
		AmazonRating:    r.AmazonRating,
		HardcoverRating: r.HardcoverRating,
		Rating:          r.Rating,
	}
	for _, c := range r.Categories {
		b.Metadata.Categories = append(b.Metadata.Categories, c.Name)
	}

	return b
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func narrow(v *int) (*int32, error) {
	if v == nil {
		return nil, nil
	}
	n, err := narrow64(int64(*v))
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func narrow64(v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, v)
	}
	return int32(v), nil
}

func widen(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func percentage(p *book.Progress) *float64 {
	if p == nil {
		return nil
	}
	return p.Percentage
}

func progress(v *float64) *book.Progress {
	if v == nil {
		return nil
	}
	return &book.Progress{Percentage: v}
}
