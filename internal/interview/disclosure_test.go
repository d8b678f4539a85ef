package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisclosure_ZeroValueHasNothingExpanded(t *testing.T) {
	var d Disclosure
	_, ok := d.Expanded()
	assert.False(t, ok)
	assert.False(t, d.IsExpanded(0))
}

func TestDisclosure_ToggleSequence(t *testing.T) {
	var d Disclosure

	d = d.Toggle(7)
	id, ok := d.Expanded()
	assert.True(t, ok)
	assert.Equal(t, 7, id)

	d = d.Toggle(12)
	id, ok = d.Expanded()
	assert.True(t, ok)
	assert.Equal(t, 12, id)
	assert.False(t, d.IsExpanded(7))

	d = d.Toggle(12)
	_, ok = d.Expanded()
	assert.False(t, ok)
}

func TestDisclosure_DoubleToggleRestores(t *testing.T) {
	states := []Disclosure{{}, Disclosure{}.Toggle(3)}
	for _, start := range states {
		for _, id := range []int{1, 3, 50} {
			startID, startOpen := start.Expanded()
			if startOpen && startID != id {
				continue
			}
			got := start.Toggle(id).Toggle(id)
			assert.Equal(t, start, got, "start %+v id %d", start, id)
		}
	}
}

func TestDisclosure_AtMostOneExpanded(t *testing.T) {
	var d Disclosure
	seq := []int{4, 9, 9, 1, 2, 2, 2, 40, 4}
	for _, id := range seq {
		d = d.Toggle(id)
		open := 0
		for candidate := 0; candidate <= 50; candidate++ {
			if d.IsExpanded(candidate) {
				open++
			}
		}
		assert.LessOrEqual(t, open, 1)
	}
}
