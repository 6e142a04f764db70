package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kasuboski/shelfstats/pkg/pagination"
)

var (
	ErrInvalidPage     = errors.New("invalid page parameter: must be positive integer")
	ErrInvalidPageSize = errors.New("invalid pageSize parameter: must be non-negative integer")
)

// parsePagination reads page and pageSize from the query. Without pageSize
// every item is returned.
func parsePagination(r *http.Request) (pagination.Params, error) {
	params := pagination.Params{Page: 1}
	qp := r.URL.Query()

	if v := qp.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return params, ErrInvalidPage
		}
		params.Page = page
	}

	if v := qp.Get("pageSize"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 0 {
			return params, ErrInvalidPageSize
		}
		params.PageSize = size
	}

	return params, nil
}
