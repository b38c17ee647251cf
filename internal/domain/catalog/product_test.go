package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	tests := []struct {
		name        string
		productName string
		price       decimal.Decimal
		stock       int
		wantErr     bool
	}{
		{"valid product", "Galaxy S24", decimal.NewFromInt(799), 10, false},
		{"empty name", "", decimal.NewFromInt(799), 10, true},
		{"negative price", "Galaxy S24", decimal.NewFromInt(-1), 10, true},
		{"negative stock", "Galaxy S24", decimal.NewFromInt(799), -1, true},
		{"zero stock", "Galaxy S24", decimal.NewFromInt(799), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := NewProduct(tt.productName, "desc", "Samsung", tt.price, tt.stock)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, product)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.productName, product.Name)
			assert.Equal(t, ProductStatusActive, product.Status)
			assert.Equal(t, "[]", product.Images)
			assert.Equal(t, "{}", product.Specifications)
			assert.NotEqual(t, "", product.ID.String())
		})
	}
}

func TestProductReserveStock(t *testing.T) {
	product, err := NewProduct("Pixel 9", "", "Google", decimal.NewFromInt(699), 5)
	require.NoError(t, err)

	require.NoError(t, product.ReserveStock(3))
	assert.Equal(t, 2, product.StockQuantity)

	err = product.ReserveStock(3)
	assert.Error(t, err)
	assert.Equal(t, 2, product.StockQuantity)

	assert.Error(t, product.ReserveStock(0))
	assert.Error(t, product.ReserveStock(-1))
}

func TestProductImages(t *testing.T) {
	product, err := NewProduct("iPhone 16", "", "Apple", decimal.NewFromInt(999), 3)
	require.NoError(t, err)

	assert.Equal(t, DefaultImageURL, product.FirstImage())

	product.SetImages([]string{"/img/front.png", "/img/back.png"})
	assert.Equal(t, "/img/front.png", product.FirstImage())
	assert.Len(t, product.GetImages(), 2)
}

func TestProductSpecifications(t *testing.T) {
	product, err := NewProduct("ThinkPad X1", "", "Lenovo", decimal.NewFromInt(1499), 2)
	require.NoError(t, err)

	product.SetSpecifications(map[string]string{"RAM": "16GB", "CPU": "i7"})
	specs := product.GetSpecifications()
	assert.Equal(t, "16GB", specs["RAM"])

	// corrupt blob decodes to empty, never errors
	product.Specifications = `{"RAM": 16`
	assert.Empty(t, product.GetSpecifications())
}

func TestProductActivation(t *testing.T) {
	product, err := NewProduct("MacBook Air", "", "Apple", decimal.NewFromInt(1099), 4)
	require.NoError(t, err)

	assert.Error(t, product.Activate())
	require.NoError(t, product.Deactivate())
	assert.False(t, product.IsActive())
	require.NoError(t, product.Activate())
	assert.True(t, product.IsActive())
}
