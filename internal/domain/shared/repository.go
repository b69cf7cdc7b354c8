package shared

// DefaultPageSize is the fixed listing page size
const DefaultPageSize = 20

// Sort directions accepted by Filter.OrderDir
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Filter is what a listing endpoint asks a repository for. Filters holds
// exact-match column values; the keys each repository understands are
// documented on its FindAll.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]any
}

// DefaultFilter is page one with each repository's own default order
func DefaultFilter() Filter {
	return Filter{Page: 1, PageSize: DefaultPageSize, Filters: map[string]any{}}
}

// Limit is the page size, DefaultPageSize when unset
func (f Filter) Limit() int {
	if f.PageSize > 0 {
		return f.PageSize
	}
	return DefaultPageSize
}

// Offset skips the rows of the pages before f.Page
func (f Filter) Offset() int {
	return (max(f.Page, 1) - 1) * f.Limit()
}

// TotalPages is the number of pages total rows fill; zero rows is zero pages
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}
