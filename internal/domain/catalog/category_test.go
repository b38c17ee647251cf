package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	category, err := NewCategory("Smartphones", "Handsets and accessories")
	require.NoError(t, err)
	assert.Equal(t, "Smartphones", category.Name)
	assert.True(t, category.IsRoot())

	_, err = NewCategory("", "desc")
	assert.Error(t, err)

	_, err = NewCategory(strings.Repeat("x", 101), "desc")
	assert.Error(t, err)
}

func TestNewChildCategory(t *testing.T) {
	parent, err := NewCategory("Computers", "")
	require.NoError(t, err)

	child, err := NewChildCategory("Laptops", "", parent)
	require.NoError(t, err)
	assert.False(t, child.IsRoot())
	assert.Equal(t, parent.ID, *child.ParentID)

	_, err = NewChildCategory("Laptops", "", nil)
	assert.Error(t, err)
}

func TestCategoryUpdate(t *testing.T) {
	category, err := NewCategory("Audio", "")
	require.NoError(t, err)

	require.NoError(t, category.Update("Audio & Video", "Speakers and TVs"))
	assert.Equal(t, "Audio & Video", category.Name)
	assert.Equal(t, 2, category.Version)

	assert.Error(t, category.Update("", ""))
}
