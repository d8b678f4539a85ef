package interview

// Categories returns the AllCategories sentinel followed by every distinct
// category found in qs, in order of first appearance.
func Categories(qs []Question) []string {
	out := []string{AllCategories}
	seen := make(map[Category]bool, len(qs))
	for _, q := range qs {
		if seen[q.Category] {
			continue
		}
		seen[q.Category] = true
		out = append(out, string(q.Category))
	}
	return out
}
