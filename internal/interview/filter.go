package interview

import (
	"strings"

	"golang.org/x/text/cases"
)

// EmptyMessage is shown in place of the list when no record passes the filter.
const EmptyMessage = "No questions found matching your search."

// Filter is the search text and category selection owned by the view.
type Filter struct {
	Search   string
	Category string
}

// DefaultFilter returns the filter a freshly mounted view starts with.
func DefaultFilter() Filter {
	return Filter{Category: AllCategories}
}

// Visible returns the records of qs that pass f, preserving their order.
//
// A record passes when its category equals f.Category exactly (or f.Category
// is AllCategories) and its question text contains f.Search, compared with
// Unicode case folding on both sides. Only the question is searched.
func Visible(qs []Question, f Filter) []Question {
	fold := cases.Fold()
	needle := fold.String(f.Search)

	out := make([]Question, 0, len(qs))
	for _, q := range qs {
		if f.Category != AllCategories && string(q.Category) != f.Category {
			continue
		}
		if needle != "" && !strings.Contains(fold.String(q.Question), needle) {
			continue
		}
		out = append(out, q)
	}
	return out
}
