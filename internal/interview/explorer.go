package interview

import "slices"

// Explorer is the per-view state of the Q&A explorer: the fixed record set,
// the current filter and disclosure, and the derived outputs. Every mutator
// recomputes the visible list so the getters always reflect the last input.
type Explorer struct {
	questions  []Question
	categories []string
	filter     Filter
	disclosure Disclosure
	visible    []Question
}

// NewExplorer creates an Explorer over qs with default filter and nothing
// expanded. The records are copied, so later changes to qs do not show.
func NewExplorer(qs []Question) *Explorer {
	qs = slices.Clone(qs)
	e := &Explorer{
		questions:  qs,
		categories: Categories(qs),
		filter:     DefaultFilter(),
	}
	e.refresh()
	return e
}

// SetSearch replaces the search text.
func (e *Explorer) SetSearch(s string) {
	if e.filter.Search == s {
		return
	}
	e.filter.Search = s
	e.refresh()
}

// SelectCategory replaces the category selection. Values outside the
// category index are accepted and simply match nothing.
func (e *Explorer) SelectCategory(c string) {
	if e.filter.Category == c {
		return
	}
	e.filter.Category = c
	e.refresh()
}

// NextCategory selects the category after the current one, wrapping around.
func (e *Explorer) NextCategory() {
	e.SelectCategory(e.categories[e.categoryOffset(1)])
}

// PrevCategory selects the category before the current one, wrapping around.
func (e *Explorer) PrevCategory() {
	e.SelectCategory(e.categories[e.categoryOffset(-1)])
}

func (e *Explorer) categoryOffset(delta int) int {
	n := len(e.categories)
	cur := 0
	for i, c := range e.categories {
		if c == e.filter.Category {
			cur = i
			break
		}
	}
	return ((cur+delta)%n + n) % n
}

// Toggle flips the disclosure of the question with the given id.
func (e *Explorer) Toggle(id int) {
	e.disclosure = e.disclosure.Toggle(id)
}

// Questions returns a copy of the full record set.
func (e *Explorer) Questions() []Question { return slices.Clone(e.questions) }

// Categories returns a copy of the category index, "All" first.
func (e *Explorer) Categories() []string { return slices.Clone(e.categories) }

// Visible returns a copy of the records passing the current filter.
func (e *Explorer) Visible() []Question { return slices.Clone(e.visible) }

// Filter returns the current filter.
func (e *Explorer) Filter() Filter { return e.filter }

// Disclosure returns the current disclosure state.
func (e *Explorer) Disclosure() Disclosure { return e.disclosure }

// Lookup returns the record with the given id.
func (e *Explorer) Lookup(id int) (Question, bool) {
	return Find(e.questions, id)
}

func (e *Explorer) refresh() {
	e.visible = Visible(e.questions, e.filter)
}

// Find returns the record with the given id from qs.
func Find(qs []Question, id int) (Question, bool) {
	for _, q := range qs {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
