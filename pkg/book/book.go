package book

import (
	"regexp"
	"strconv"
	"strings"
)

type ReadStatus string

const (
	ReadStatusRead          ReadStatus = "READ"
	ReadStatusReading       ReadStatus = "READING"
	ReadStatusReReading     ReadStatus = "RE_READING"
	ReadStatusPartiallyRead ReadStatus = "PARTIALLY_READ"
	ReadStatusPaused        ReadStatus = "PAUSED"
	ReadStatusUnread        ReadStatus = "UNREAD"
	ReadStatusWontRead      ReadStatus = "WONT_READ"
	ReadStatusAbandoned     ReadStatus = "ABANDONED"
	ReadStatusUnset         ReadStatus = "UNSET"
)

// ReadStatuses lists every read status in display order
var ReadStatuses = []ReadStatus{
	ReadStatusRead,
	ReadStatusReading,
	ReadStatusReReading,
	ReadStatusPartiallyRead,
	ReadStatusPaused,
	ReadStatusUnread,
	ReadStatusWontRead,
	ReadStatusAbandoned,
	ReadStatusUnset,
}

// NormalizeReadStatus maps unknown or empty statuses to ReadStatusUnset
func NormalizeReadStatus(s ReadStatus) ReadStatus {
	for _, known := range ReadStatuses {
		if s == known {
			return s
		}
	}

	return ReadStatusUnset
}

type Type string

const (
	TypePDF  Type = "PDF"
	TypeEPUB Type = "EPUB"
	TypeCBZ  Type = "CBZ"
	TypeCBX  Type = "CBX"
	TypeCBR  Type = "CBR"
	TypeCB7  Type = "CB7"
)

type LibraryID int64

// Progress is a reader's position in a single book format
type Progress struct {
	Percentage *float64 `json:"percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type Metadata struct {
	Title           string   `json:"title,omitempty"`
	PageCount       *int     `json:"pageCount,omitempty" validate:"omitempty,gte=0,lte=2147483647"`
	PublishedDate   string   `json:"publishedDate,omitempty"`
	Categories      []string `json:"categories,omitempty"`
	SeriesName      string   `json:"seriesName,omitempty"`
	SeriesNumber    *float64 `json:"seriesNumber,omitempty"`
	SeriesTotal     *int     `json:"seriesTotal,omitempty" validate:"omitempty,gte=0,lte=2147483647"`
	GoodreadsRating *float64 `json:"goodreadsRating,omitempty" validate:"omitempty,gte=0,lte=5"`
	AmazonRating    *float64 `json:"amazonRating,omitempty" validate:"omitempty,gte=0,lte=5"`
	HardcoverRating *float64 `json:"hardcoverRating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Rating          *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

// Book is a single record of the collection. Aggregation never mutates it.
type Book struct {
	ID               int64      `json:"id" validate:"gte=0,lte=2147483647"`
	LibraryID        LibraryID  `json:"libraryId"`
	FileName         string     `json:"fileName,omitempty"`
	BookType         Type       `json:"bookType,omitempty"`
	FileSizeKB       *float64   `json:"fileSizeKb,omitempty" validate:"omitempty,gte=0"`
	PersonalRating   *float64   `json:"personalRating,omitempty" validate:"omitempty,gte=0,lte=10"`
	ReadStatus       ReadStatus `json:"readStatus,omitempty"`
	PDFProgress      *Progress  `json:"pdfProgress,omitempty"`
	EPUBProgress     *Progress  `json:"epubProgress,omitempty"`
	CBXProgress      *Progress  `json:"cbxProgress,omitempty"`
	KoreaderProgress *Progress  `json:"koreaderProgress,omitempty"`
	KoboProgress     *Progress  `json:"koboProgress,omitempty"`
	Metadata         *Metadata  `json:"metadata,omitempty"`
}

var yearPattern = regexp.MustCompile(`\d{4}`)

// ExternalRating is the mean of the named external ratings that are present.
// It falls back to the generic rating and returns 0 when the book is unrated.
func (b Book) ExternalRating() float64 {
	if b.Metadata == nil {
		return 0
	}

	var sum float64
	var n int
	for _, r := range []*float64{b.Metadata.GoodreadsRating, b.Metadata.AmazonRating, b.Metadata.HardcoverRating} {
		if positive(r) {
			sum += *r
			n++
		}
	}
	if n > 0 {
		return sum / float64(n)
	}

	if positive(b.Metadata.Rating) {
		return *b.Metadata.Rating
	}

	return 0
}

// Personal returns the personal rating or 0 when unrated
func (b Book) Personal() float64 {
	if positive(b.PersonalRating) {
		return *b.PersonalRating
	}
	return 0
}

// Progress returns the first non-zero percentage in pdf, epub, cbx, koreader, kobo order
func (b Book) Progress() float64 {
	for _, p := range []*Progress{b.PDFProgress, b.EPUBProgress, b.CBXProgress, b.KoreaderProgress, b.KoboProgress} {
		if p != nil && p.Percentage != nil && *p.Percentage != 0 {
			return *p.Percentage
		}
	}
	return 0
}

// Year extracts the first four digit run of the published date
func (b Book) Year() (int, bool) {
	if b.Metadata == nil || b.Metadata.PublishedDate == "" {
		return 0, false
	}

	match := yearPattern.FindString(b.Metadata.PublishedDate)
	if match == "" {
		return 0, false
	}

	year, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return year, true
}

func (b Book) PageCount() (int, bool) {
	if b.Metadata == nil || b.Metadata.PageCount == nil || *b.Metadata.PageCount <= 0 {
		return 0, false
	}
	return *b.Metadata.PageCount, true
}

// DisplayTitle prefers the metadata title over the file name
func (b Book) DisplayTitle() string {
	if b.Metadata != nil && b.Metadata.Title != "" {
		return b.Metadata.Title
	}
	if b.FileName != "" {
		return b.FileName
	}
	return "Unknown Title"
}

func (b Book) TrimmedSeries() string {
	if b.Metadata == nil {
		return ""
	}
	return strings.TrimSpace(b.Metadata.SeriesName)
}

func (b Book) Categories() []string {
	if b.Metadata == nil {
		return nil
	}
	return b.Metadata.Categories
}

func (b Book) Status() ReadStatus {
	return NormalizeReadStatus(b.ReadStatus)
}

func positive(v *float64) bool {
	return v != nil && *v > 0
}

// Ptr is a helper for building optional fields
func Ptr[T any](v T) *T {
	return &v
}
