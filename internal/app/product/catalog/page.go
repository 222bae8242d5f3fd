package catalog

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// Page is one page of a catalog view.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Paginate slices items into 1-based pages. page < 1 is treated as 1 and
// pageSize is clamped to (0, MaxPageSize]. A page past the end, however
// large, is empty.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	// Compare before multiplying: (page-1)*pageSize overflows for huge pages.
	start := total
	if page-1 <= total/pageSize {
		start = min((page-1)*pageSize, total)
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      append(make([]T, 0, end-start), items[start:end]...),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
