package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []Question {
	return []Question{
		{ID: 1, Category: CategoryGeneral, Question: "What is a Link and a Node?", Answer: "a"},
		{ID: 2, Category: CategoryOSITCP, Question: "TCP vs UDP?", Answer: "b"},
		{ID: 3, Category: CategoryOSITCP, Question: "Explain 3-Way Handshake.", Answer: "c"},
		{ID: 4, Category: CategorySecurity, Question: "What is VPN?", Answer: "Creates an encrypted TCP tunnel."},
		{ID: 5, Category: CategoryGeneral, Question: "What is MTU?", Answer: "e"},
		{ID: 6, Category: CategoryWeb, Question: "HTTP vs HTTPS?", Answer: "f"},
	}
}

func ids(qs []Question) []int {
	out := make([]int, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}

func TestVisible_DefaultFilterReturnsEverything(t *testing.T) {
	qs := fixture()
	assert.Equal(t, qs, Visible(qs, DefaultFilter()))
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{"category only", Filter{Category: "OSI/TCP"}, []int{2, 3}},
		{"search only", Filter{Search: "what is", Category: AllCategories}, []int{1, 4, 5}},
		{"search and category", Filter{Search: "what", Category: "General"}, []int{1, 5}},
		{"upper case search", Filter{Search: "VPN", Category: AllCategories}, []int{4}},
		{"lower case search", Filter{Search: "vpn", Category: AllCategories}, []int{4}},
		{"answer text is not searched", Filter{Search: "tunnel", Category: AllCategories}, []int{}},
		{"unknown category", Filter{Category: "Quantum"}, []int{}},
		{"category is case sensitive", Filter{Category: "general"}, []int{}},
		{"no match", Filter{Search: "zzzznotfound", Category: AllCategories}, []int{}},
		{"whitespace is significant", Filter{Search: " vs ", Category: AllCategories}, []int{2, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(fixture(), tt.filter)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestVisible_CaseInsensitiveAcrossCategories(t *testing.T) {
	qs := fixture()
	for _, c := range Categories(qs) {
		upper := Visible(qs, Filter{Search: "TCP", Category: c})
		lower := Visible(qs, Filter{Search: "tcp", Category: c})
		assert.Equal(t, ids(upper), ids(lower), "category %q", c)
	}
}

func TestVisible_UnicodeFolding(t *testing.T) {
	qs := []Question{
		{ID: 1, Category: CategoryGeneral, Question: "Réseau routing"},
		{ID: 2, Category: CategoryGeneral, Question: "ÉCHO request"},
	}
	assert.Equal(t, []int{1}, ids(Visible(qs, Filter{Search: "RÉSEAU", Category: AllCategories})))
	assert.Equal(t, []int{2}, ids(Visible(qs, Filter{Search: "écho", Category: AllCategories})))
}

func TestVisible_IsOrderPreservingSubsequence(t *testing.T) {
	qs := fixture()
	searches := []string{"", "what", "vs", "?", "is", "x"}
	for _, c := range append(Categories(qs), "nope") {
		for _, s := range searches {
			got := Visible(qs, Filter{Search: s, Category: c})
			j := 0
			for _, q := range got {
				for j < len(qs) && qs[j].ID != q.ID {
					j++
				}
				require.Less(t, j, len(qs), "search %q category %q: %d out of order or not in input", s, c, q.ID)
				j++
			}
			if c != AllCategories {
				for _, q := range got {
					assert.Equal(t, c, string(q.Category))
				}
			}
		}
	}
}

func TestVisible_DoesNotAliasInput(t *testing.T) {
	qs := fixture()
	got := Visible(qs, DefaultFilter())
	got[0].Question = "changed"
	assert.Equal(t, "What is a Link and a Node?", qs[0].Question)
}

func TestVisible_EmptyInput(t *testing.T) {
	assert.Empty(t, Visible(nil, DefaultFilter()))
}
