package inventory

import (
	"testing"

	"github.com/RayLight-369/rms/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStockItem(t *testing.T) {
	item, err := NewStockItem("Arborio Rice", 3, "kg", 5)
	require.NoError(t, err)

	assert.Equal(t, "Arborio Rice", item.Name)
	assert.Equal(t, int64(3), item.Quantity)
	assert.Equal(t, "kg", item.Unit)
	assert.Equal(t, int64(5), item.MinLevel)
}

func TestNewStockItem_Validation(t *testing.T) {
	tests := []struct {
		name     string
		itemName string
		quantity int64
		unit     string
		minLevel int64
		wantCode string
	}{
		{"empty name", "", 1, "kg", 1, "INVALID_NAME"},
		{"empty unit", "Olive Oil", 1, "", 1, "INVALID_UNIT"},
		{"negative quantity", "Olive Oil", -1, "liters", 1, "INVALID_QUANTITY"},
		{"negative min level", "Olive Oil", 1, "liters", -1, "INVALID_MIN_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStockItem(tt.itemName, tt.quantity, tt.unit, tt.minLevel)
			require.Error(t, err)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)
		})
	}
}

func TestStockItem_IsLowStock(t *testing.T) {
	tests := []struct {
		name     string
		quantity int64
		minLevel int64
		low      bool
	}{
		{"below threshold", 3, 5, true},
		{"at threshold", 5, 5, false},
		{"above threshold", 6, 5, false},
		{"zero threshold", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewStockItem("Parmesan Cheese", tt.quantity, "kg", tt.minLevel)
			require.NoError(t, err)
			assert.Equal(t, tt.low, item.IsLowStock())
		})
	}
}

func TestStockItem_SetQuantity(t *testing.T) {
	item, err := NewStockItem("Fresh Tomatoes", 4, "kg", 6)
	require.NoError(t, err)
	assert.True(t, item.IsLowStock())

	require.NoError(t, item.SetQuantity(8))
	assert.Equal(t, int64(8), item.Quantity)
	assert.False(t, item.IsLowStock())

	assert.Error(t, item.SetQuantity(-2))
	assert.Equal(t, int64(8), item.Quantity)
}
