package service

import "github.com/mahmoodhamdi/scraper-api/internal/domain"

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Pagination is the metadata block reported alongside windowed collections.
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// ClampPage normalizes caller-supplied paging arguments: page is at least 1,
// per_page defaults when unset and lands in [1, MaxPerPage].
func ClampPage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// NewPagination computes the page count for a total. A page past the end is
// legal and pairs with an empty window.
func NewPagination(page, perPage, total int) Pagination {
	pages := 0
	if total > 0 {
		pages = (total + perPage - 1) / perPage
	}
	return Pagination{Page: page, PerPage: perPage, Total: total, Pages: pages}
}

// PaginateMatches windows the flattened match list. The window length is
// min(per_page, max(0, total - (page-1)*per_page)).
func PaginateMatches(matches []domain.AggregatedMatch, page, perPage int) ([]domain.AggregatedMatch, Pagination) {
	page, perPage = ClampPage(page, perPage)
	total := len(matches)

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return matches[start:end], NewPagination(page, perPage, total)
}
