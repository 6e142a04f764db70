package pagination

// Params selects one page of a listing. A PageSize of 0 selects everything.
type Params struct {
	Page     int
	PageSize int
}

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

func (p Params) offsetLimit() (offset, limit int) {
	if p.PageSize <= 0 {
		return 0, 0
	}
	page := max(p.Page, 1)
	return (page - 1) * p.PageSize, p.PageSize
}

func (p Params) meta(total int) Meta {
	pages := 0
	if p.PageSize > 0 {
		pages = (total + p.PageSize - 1) / p.PageSize
	}
	return Meta{
		Page:       max(p.Page, 1),
		PageSize:   p.PageSize,
		TotalItems: total,
		TotalPages: pages,
	}
}

// Slice returns the page of items selected by p. Pages past the end are empty.
func Slice[T any](items []T, p Params) ([]T, Meta) {
	meta := p.meta(len(items))

	offset, limit := p.offsetLimit()
	if limit == 0 {
		return items, meta
	}
	if offset >= len(items) {
		return []T{}, meta
	}

	end := min(offset+limit, len(items))
	return items[offset:end], meta
}
