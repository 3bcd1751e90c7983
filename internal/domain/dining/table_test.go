package dining

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	table, err := NewTable(3, 4)
	require.NoError(t, err)

	assert.Equal(t, 3, table.ID)
	assert.Equal(t, 4, table.Seats)
	assert.Equal(t, TableStatusAvailable, table.Status)
	assert.Nil(t, table.CurrentOrderID)
	assert.False(t, table.IsOccupied())
}

func TestNewTable_Validation(t *testing.T) {
	_, err := NewTable(0, 4)
	assert.Error(t, err)

	_, err = NewTable(-1, 4)
	assert.Error(t, err)

	_, err = NewTable(1, 0)
	assert.Error(t, err)
}

func TestTable_BindRelease(t *testing.T) {
	table, err := NewTable(7, 4)
	require.NoError(t, err)
	orderID := uuid.New()

	require.NoError(t, table.Bind(orderID))
	assert.True(t, table.IsOccupied())
	require.NotNil(t, table.CurrentOrderID)
	assert.Equal(t, orderID, *table.CurrentOrderID)

	table.Release()
	assert.False(t, table.IsOccupied())
	assert.Nil(t, table.CurrentOrderID)
}

func TestTable_BindOverwritesPriorBinding(t *testing.T) {
	table, err := NewTable(1, 2)
	require.NoError(t, err)

	first := uuid.New()
	second := uuid.New()
	require.NoError(t, table.Bind(first))
	require.NoError(t, table.Bind(second))

	assert.True(t, table.IsOccupied())
	assert.Equal(t, second, *table.CurrentOrderID)
}

func TestTable_BindRejectsNilOrder(t *testing.T) {
	table, err := NewTable(1, 2)
	require.NoError(t, err)

	assert.Error(t, table.Bind(uuid.Nil))
	assert.False(t, table.IsOccupied())
}

// Status and order reference must always flip together.
func TestTable_PairingInvariant(t *testing.T) {
	table, err := NewTable(9, 2)
	require.NoError(t, err)

	check := func() {
		if table.Status == TableStatusOccupied {
			assert.NotNil(t, table.CurrentOrderID)
		} else {
			assert.Nil(t, table.CurrentOrderID)
		}
	}

	check()
	require.NoError(t, table.Bind(uuid.New()))
	check()
	table.Release()
	check()
	table.Release()
	check()
}
