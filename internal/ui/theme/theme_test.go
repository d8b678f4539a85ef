package theme

import "testing"

func TestCategoryColor(t *testing.T) {
	tests := []struct {
		category string
		want     any
	}{
		{"General", Success},
		{"Security", Error},
		{"Protocols", Purple},
		{"OSI/TCP", Info},
		{"Routing", Info},
		{"Unknown", Info},
	}
	for _, tt := range tests {
		if got := CategoryColor(tt.category); got != tt.want {
			t.Errorf("CategoryColor(%q) = %v, want %v", tt.category, got, tt.want)
		}
	}
}
