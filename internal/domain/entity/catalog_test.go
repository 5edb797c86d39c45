package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnership_VisibleTo(t *testing.T) {
	t.Parallel()

	alice := uuid.New()
	bob := uuid.New()

	tests := []struct {
		name     string
		own      Ownership
		expected bool
	}{
		{name: "public admin item", own: Ownership{Source: SourceAdmin, Visibility: VisibilityPublic}, expected: true},
		{name: "hidden admin item", own: Ownership{Source: SourceAdmin, Visibility: VisibilityHidden}, expected: false},
		{name: "own custom item", own: Ownership{OwnerID: &alice, Source: SourceCustom}, expected: true},
		{name: "someone else's item", own: Ownership{OwnerID: &bob, Source: SourceCustom}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.own.VisibleTo(alice))
		})
	}
}

func TestMeal_CopyFor(t *testing.T) {
	t.Parallel()

	user := uuid.New()
	src := &Meal{
		ID:          uuid.New(),
		Ownership:   Ownership{Source: SourceAdmin, Visibility: VisibilityPublic},
		Name:        "Oatmeal",
		Calories:    350,
		Ingredients: []string{"oats", "milk"},
	}

	cp := src.CopyFor(user)

	assert.Equal(t, uuid.Nil, cp.ID)
	assert.Equal(t, SourceCopied, cp.Source)
	require.NotNil(t, cp.OriginID)
	assert.Equal(t, src.ID, *cp.OriginID)
	assert.True(t, cp.OwnedBy(user))
	assert.Equal(t, "Oatmeal", cp.Name)
	assert.Equal(t, 350, cp.Calories)

	cp.Ingredients[0] = "rice"
	assert.Equal(t, "oats", src.Ingredients[0])
	assert.True(t, src.IsAdminItem())
}
