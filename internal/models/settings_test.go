package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTypeVisible(t *testing.T) {
	// Never-saved settings show everything
	for _, rt := range AllRelationTypes {
		assert.True(t, IsTypeVisible(rt, nil), string(rt))
	}

	settings := &RelationSettings{
		UserID:       "user-1",
		VisibleTypes: []RelationType{Mother, Father},
	}
	assert.True(t, IsTypeVisible(Mother, settings))
	assert.False(t, IsTypeVisible(Cousin, settings))

	// An explicit empty set hides everything
	empty := &RelationSettings{UserID: "user-1", VisibleTypes: []RelationType{}}
	for _, rt := range AllRelationTypes {
		assert.False(t, IsTypeVisible(rt, empty), string(rt))
	}
}
