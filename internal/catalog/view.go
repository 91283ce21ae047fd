package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys for the admin product table.
const (
	SortByName  = "name"
	SortByPrice = "price"
)

const defaultPageSize = 20

// ViewParams is the complete admin product table state. The caller resets
// Page to 1 whenever a filter changes; Apply additionally clamps the page
// into the valid range.
type ViewParams struct {
	Search      string
	Category    string
	SubCategory string
	Status      string // "" matches every status
	SortKey     string // name (default) or price
	Desc        bool
	Page        int
	PageSize    int
}

// ViewResult is one bounded page of products plus facet counts.
type ViewResult struct {
	Items          []Product
	Total          int
	Page           int
	TotalPages     int
	CategoryCounts map[string]int
}

// Vietnamese product names sort by locale rules, not byte order.
var nameCollator = collate.New(language.Vietnamese)

// Apply derives the table page from the full product list. Pure function of
// its inputs; sorting is stable so equal keys keep insertion order.
func (p ViewParams) Apply(products []Product) ViewResult {
	search := strings.ToLower(strings.TrimSpace(p.Search))

	// Search narrows first; facet counts reflect the searched set so the
	// category chips stay meaningful while a category is selected.
	searched := make([]Product, 0, len(products))
	for _, prod := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(prod.Name), search) &&
			!strings.Contains(strings.ToLower(prod.Category), search) {
			continue
		}
		searched = append(searched, prod)
	}

	counts := map[string]int{}
	for _, prod := range searched {
		counts[prod.Category]++
	}

	filtered := make([]Product, 0, len(searched))
	for _, prod := range searched {
		if p.Category != "" && prod.Category != p.Category {
			continue
		}
		if p.SubCategory != "" && prod.SubCategory != p.SubCategory {
			continue
		}
		if p.Status != "" && prod.Status != p.Status {
			continue
		}
		filtered = append(filtered, prod)
	}

	switch p.SortKey {
	case SortByPrice:
		sort.SliceStable(filtered, func(i, j int) bool {
			if p.Desc {
				return filtered[i].Price > filtered[j].Price
			}
			return filtered[i].Price < filtered[j].Price
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			c := nameCollator.CompareString(filtered[i].Name, filtered[j].Name)
			if p.Desc {
				return c > 0
			}
			return c < 0
		})
	}

	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	lo := (page - 1) * pageSize
	hi := lo + pageSize
	if lo > len(filtered) {
		lo = len(filtered)
	}
	if hi > len(filtered) {
		hi = len(filtered)
	}

	return ViewResult{
		Items:          filtered[lo:hi],
		Total:          len(filtered),
		Page:           page,
		TotalPages:     totalPages,
		CategoryCounts: counts,
	}
}
