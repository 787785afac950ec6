package domain

// CustomPage is a page of domain models together with its paging metadata.
// Page numbers are 1-based on the wire.
type CustomPage[T any] struct {
	Content           []T
	PageNumber        int
	PageSize          int
	TotalElementCount int64
	TotalPageCount    int
}

// NewCustomPage builds a page from the fetched content and the total row
// count the repository reported.
func NewCustomPage[T any](content []T, pageNumber, pageSize int, totalElementCount int64) CustomPage[T] {
	totalPageCount := int(totalElementCount) / pageSize
	if int(totalElementCount)%pageSize != 0 {
		totalPageCount++
	}
	return CustomPage[T]{
		Content:           content,
		PageNumber:        pageNumber,
		PageSize:          pageSize,
		TotalElementCount: totalElementCount,
		TotalPageCount:    totalPageCount,
	}
}
