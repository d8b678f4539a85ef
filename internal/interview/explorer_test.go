package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplorer_Defaults(t *testing.T) {
	e := NewExplorer(fixture())

	assert.Equal(t, DefaultFilter(), e.Filter())
	assert.Len(t, e.Visible(), 6)
	assert.Equal(t, []string{"All", "General", "OSI/TCP", "Security", "Web"}, e.Categories())
	_, open := e.Disclosure().Expanded()
	assert.False(t, open)
}

func TestExplorer_RecomputesOnInput(t *testing.T) {
	e := NewExplorer(fixture())

	e.SetSearch("what")
	assert.Equal(t, []int{1, 4, 5}, ids(e.Visible()))

	e.SelectCategory("General")
	assert.Equal(t, []int{1, 5}, ids(e.Visible()))

	e.SetSearch("")
	assert.Equal(t, []int{1, 5}, ids(e.Visible()))

	e.SelectCategory(AllCategories)
	assert.Len(t, e.Visible(), 6)
}

func TestExplorer_CategoryCycling(t *testing.T) {
	e := NewExplorer(fixture())

	e.NextCategory()
	assert.Equal(t, "General", e.Filter().Category)
	e.NextCategory()
	e.NextCategory()
	e.NextCategory()
	assert.Equal(t, "Web", e.Filter().Category)
	e.NextCategory()
	assert.Equal(t, AllCategories, e.Filter().Category)
	e.PrevCategory()
	assert.Equal(t, "Web", e.Filter().Category)
}

func TestExplorer_CyclingFromUnknownCategoryRestarts(t *testing.T) {
	e := NewExplorer(fixture())
	e.SelectCategory("Quantum")
	assert.Empty(t, e.Visible())

	e.NextCategory()
	assert.Equal(t, "General", e.Filter().Category)
}

func TestExplorer_DisclosureSurvivesFiltering(t *testing.T) {
	e := NewExplorer(fixture())
	e.Toggle(4)
	e.SelectCategory("Web")

	assert.True(t, e.Disclosure().IsExpanded(4))
	assert.Equal(t, []int{6}, ids(e.Visible()))
}

func TestExplorer_Lookup(t *testing.T) {
	e := NewExplorer(fixture())
	q, ok := e.Lookup(4)
	assert.True(t, ok)
	assert.Equal(t, "What is VPN?", q.Question)

	_, ok = e.Lookup(99)
	assert.False(t, ok)
}

func TestExplorer_GettersReturnCopies(t *testing.T) {
	qs := fixture()
	e := NewExplorer(qs)

	qs[0].Question = "changed by caller"
	e.Visible()[0].Question = "changed through Visible"
	e.Questions()[1].Question = "changed through Questions"
	e.Categories()[0] = "Everything"

	assert.Equal(t, "What is a Link and a Node?", e.Visible()[0].Question)
	assert.Equal(t, "TCP vs UDP?", e.Questions()[1].Question)
	assert.Equal(t, AllCategories, e.Categories()[0])

	e.SetSearch("")
	assert.Equal(t, "What is a Link and a Node?", e.Visible()[0].Question)
}
