package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartItem(t *testing.T) {
	item, err := NewCartItem(uuid.New(), uuid.New(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	_, err = NewCartItem(uuid.Nil, uuid.New(), 1)
	assert.Error(t, err)

	_, err = NewCartItem(uuid.New(), uuid.Nil, 1)
	assert.Error(t, err)

	_, err = NewCartItem(uuid.New(), uuid.New(), 0)
	assert.Error(t, err)
}

func TestCartItemQuantity(t *testing.T) {
	item, err := NewCartItem(uuid.New(), uuid.New(), 1)
	require.NoError(t, err)

	require.NoError(t, item.AddQuantity(2))
	assert.Equal(t, 3, item.Quantity)

	require.NoError(t, item.SetQuantity(5))
	assert.Equal(t, 5, item.Quantity)

	assert.Error(t, item.AddQuantity(0))
	assert.Error(t, item.SetQuantity(-1))
	assert.Equal(t, 5, item.Quantity)
}
