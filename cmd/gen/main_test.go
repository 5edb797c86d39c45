package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

func TestPersistedModels_AreDistinctTables(t *testing.T) {
	seen := map[string]bool{}

	for _, m := range persistedModels() {
		tabler, ok := m.(schema.Tabler)
		if !assert.True(t, ok, "%T has no TableName", m) {
			continue
		}

		name := tabler.TableName()
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "table %s listed twice", name)
		seen[name] = true
	}

	assert.True(t, seen["plans"], "plans table missing")
}
