package report

// DefaultPageSize is the number of transactions per page.
const DefaultPageSize = 10

// Page is one page of a list. Number is 1-based.
type Page[T any] struct {
	Items  []T `json:"items" yaml:"items"`
	Number int `json:"number" yaml:"number"`
	Size   int `json:"size" yaml:"size"`
	Total  int `json:"total" yaml:"total"`
	Pages  int `json:"pages" yaml:"pages"`
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool {
	return p.Number < p.Pages
}

// HasPrev reports whether an earlier page exists.
func (p Page[T]) HasPrev() bool {
	return p.Number > 1
}

// Paginate returns page number of items. Sizes below one fall back to
// DefaultPageSize and pages below one to the first page. Pages past the end
// are empty.
func Paginate[T any](items []T, number, size int) Page[T] {
	if size < 1 {
		size = DefaultPageSize
	}
	if number < 1 {
		number = 1
	}
	total := len(items)
	pages := (total + size - 1) / size

	page := Page[T]{Items: []T{}, Number: number, Size: size, Total: total, Pages: pages}
	start := (number - 1) * size
	if start >= total {
		return page
	}
	end := min(start+size, total)
	page.Items = append(page.Items, items[start:end]...)
	return page
}
