package book

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var ErrInvalidBook = errors.New("invalid book")

var validate = validator.New()

// Decode reads a JSON array of books and validates every record
func Decode(r io.Reader) ([]Book, error) {
	var books []Book
	if err := json.NewDecoder(r).Decode(&books); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}

	for i, b := range books {
		if err := Validate(b); err != nil {
			return nil, fmt.Errorf("book at index %d: %w", i, err)
		}
	}

	return books, nil
}

// Validate checks numeric fields are within their scales
func Validate(b Book) error {
	if err := validate.Struct(b); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBook, err)
	}
	return nil
}
