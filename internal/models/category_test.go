package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByCategory(t *testing.T) {
	relations := []Relation{
		{ID: "1", Type: Father},
		{ID: "2", Type: Mother},
		{ID: "3", Type: Cousin},
		{ID: "4", Type: Cousin},
		{ID: "5", Type: Spouse},
	}

	groups := GroupByCategory(relations)
	require.Len(t, groups, len(RelationCategories))

	byKey := make(map[string]CategoryGroup)
	for i, g := range groups {
		assert.Equal(t, RelationCategories[i].Key, g.Category.Key, "bucket order is fixed")
		byKey[g.Category.Key] = g
	}

	// Input order is preserved within a bucket
	parents := byKey["parents"].Relations
	require.Len(t, parents, 2)
	assert.Equal(t, "1", parents[0].ID)
	assert.Equal(t, "2", parents[1].ID)

	assert.Len(t, byKey["other"].Relations, 2)
	assert.Len(t, byKey["partners"].Relations, 1)
	assert.Empty(t, byKey["grandparents"].Relations)
	assert.Empty(t, byKey["siblings"].Relations)
	assert.Empty(t, byKey["auntsUncles"].Relations)
}

func TestGroupByCategoryEmptyInput(t *testing.T) {
	groups := GroupByCategory(nil)
	require.Len(t, groups, len(RelationCategories))
	for _, g := range groups {
		assert.NotNil(t, g.Relations)
		assert.Empty(t, g.Relations)
	}
}

func TestShouldShowAddAffordance(t *testing.T) {
	existing := []Relation{
		{Type: Mother},
		{Type: Cousin},
		{Type: Cousin},
	}

	// Single-allowed type already present
	assert.False(t, ShouldShowAddAffordance(Mother, existing))
	// Single-allowed type not yet present
	assert.True(t, ShouldShowAddAffordance(Father, existing))
	// Multiple-allowed types never hide the button
	assert.True(t, ShouldShowAddAffordance(Cousin, existing))
	assert.True(t, ShouldShowAddAffordance(Friend, existing))

	// Empty list shows everything
	assert.True(t, ShouldShowAddAffordance(Mother, nil))
}
