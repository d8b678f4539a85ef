package interview

// Disclosure records which single question, if any, has its answer shown.
// The zero value has nothing expanded.
type Disclosure struct {
	id   int
	open bool
}

// Expanded returns the expanded question id and true, or 0 and false when
// nothing is expanded.
func (d Disclosure) Expanded() (int, bool) {
	return d.id, d.open
}

// IsExpanded reports whether the question with the given id is expanded.
func (d Disclosure) IsExpanded(id int) bool {
	return d.open && d.id == id
}

// Toggle collapses id if it is the expanded question, otherwise expands it
// in place of whatever was open before.
func (d Disclosure) Toggle(id int) Disclosure {
	if d.IsExpanded(id) {
		return Disclosure{}
	}
	return Disclosure{id: id, open: true}
}
