package dining

import (
	"testing"

	"github.com/RayLight-369/rms/internal/domain/shared"
	"github.com/RayLight-369/rms/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddLine_IncrementsExisting(t *testing.T) {
	cart := NewCart()
	itemID := uuid.New()
	price := valueobject.NewMoneyUSDFromFloat(8.99)

	require.NoError(t, cart.AddLine(itemID, "Bruschetta", price))
	require.NoError(t, cart.AddLine(itemID, "Bruschetta", price))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].Quantity)
}

func TestCart_AddLine_PreservesInsertionOrder(t *testing.T) {
	cart := NewCart()
	first := uuid.New()
	second := uuid.New()

	require.NoError(t, cart.AddLine(first, "Caesar Salad", valueobject.NewMoneyUSDFromFloat(10.99)))
	require.NoError(t, cart.AddLine(second, "Ribeye Steak", valueobject.NewMoneyUSDFromFloat(32.99)))
	require.NoError(t, cart.AddLine(first, "Caesar Salad", valueobject.NewMoneyUSDFromFloat(10.99)))

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, first, lines[0].MenuItemID)
	assert.Equal(t, second, lines[1].MenuItemID)
}

func TestCart_RemoveLine(t *testing.T) {
	cart := NewCart()
	itemID := uuid.New()

	require.NoError(t, cart.AddLine(itemID, "Fish & Chips", valueobject.NewMoneyUSDFromFloat(15.99)))
	require.NoError(t, cart.AddLine(itemID, "Fish & Chips", valueobject.NewMoneyUSDFromFloat(15.99)))

	// Removes the whole line regardless of quantity
	cart.RemoveLine(itemID)
	assert.True(t, cart.IsEmpty())

	// Removing an absent line is harmless
	cart.RemoveLine(itemID)
	assert.True(t, cart.IsEmpty())
}

func TestCart_SetQuantity(t *testing.T) {
	cart := NewCart()
	itemID := uuid.New()
	require.NoError(t, cart.AddLine(itemID, "Espresso", valueobject.NewMoneyUSDFromFloat(3.49)))

	require.NoError(t, cart.SetQuantity(itemID, 4))
	assert.Equal(t, int64(4), cart.Lines()[0].Quantity)

	// Zero or negative removes the line
	require.NoError(t, cart.SetQuantity(itemID, 0))
	assert.True(t, cart.IsEmpty())

	err := cart.SetQuantity(itemID, 2)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCart_SelectTable(t *testing.T) {
	cart := NewCart()

	_, ok := cart.SelectedTable()
	assert.False(t, ok)

	require.NoError(t, cart.SelectTable(3))
	table, ok := cart.SelectedTable()
	assert.True(t, ok)
	assert.Equal(t, 3, table)

	assert.Error(t, cart.SelectTable(0))
	assert.Error(t, cart.SelectTable(-1))
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.SelectTable(5))
	require.NoError(t, cart.AddLine(uuid.New(), "Tiramisu", valueobject.NewMoneyUSDFromFloat(8.99)))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	_, ok := cart.SelectedTable()
	assert.False(t, ok)
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	cart := NewCart()
	itemID := uuid.New()
	require.NoError(t, cart.AddLine(itemID, "Lamb Chops", valueobject.NewMoneyUSDFromFloat(28.99)))

	lines := cart.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, int64(1), cart.Lines()[0].Quantity)
}

func TestCart_Totals(t *testing.T) {
	cart := NewCart()
	itemID := uuid.New()
	require.NoError(t, cart.AddLine(itemID, "Bruschetta", valueobject.NewMoneyUSDFromFloat(8.99)))
	require.NoError(t, cart.AddLine(itemID, "Bruschetta", valueobject.NewMoneyUSDFromFloat(8.99)))

	totals := cart.Totals()
	assert.Equal(t, "17.98 USD", totals.Subtotal.Round(2).String())
	assert.Equal(t, "19.42 USD", totals.Total.Round(2).String())
}
