package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	it, err := NewItem(42, "  Rice ", 5)
	require.NoError(t, err)
	assert.Equal(t, Item{ID: 42, Name: "Rice", Quantity: 5, Checked: false}, it)
}

func TestNewItemRejectsEmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := NewItem(1, name, 1)
		assert.ErrorIs(t, err, ErrEmptyName, "name %q", name)
	}
}

func TestToggledLeavesOriginal(t *testing.T) {
	orig := Item{ID: 1, Name: "Salt", Quantity: 1}
	flipped := orig.Toggled()

	assert.True(t, flipped.Checked)
	assert.False(t, orig.Checked)
	assert.Equal(t, orig, flipped.Toggled())
}
