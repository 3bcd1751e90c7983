package dining

import (
	"context"
	"testing"

	"github.com/RayLight-369/rms/internal/domain/dining"
	"github.com/RayLight-369/rms/internal/domain/menu"
	"github.com/RayLight-369/rms/internal/domain/shared"
	"github.com/RayLight-369/rms/internal/domain/shared/valueobject"
	"github.com/RayLight-369/rms/internal/infrastructure/persistence/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type cartFixture struct {
	store      *memory.Store
	service    *CartService
	bruschetta *menu.MenuItem
	tiramisu   *menu.MenuItem
	inactive   *menu.MenuItem
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	bruschetta, err := menu.NewMenuItem("Bruschetta", valueobject.NewMoneyUSDFromFloat(8.99), menu.CategoryAppetizer)
	require.NoError(t, err)
	tiramisu, err := menu.NewMenuItem("Tiramisu", valueobject.NewMoneyUSDFromFloat(8.99), menu.CategoryDessert)
	require.NoError(t, err)
	inactive, err := menu.NewMenuItem("Caprese Salad", valueobject.NewMoneyUSDFromFloat(11.99), menu.CategoryAppetizer)
	require.NoError(t, err)
	inactive.Deactivate()

	for _, item := range []*menu.MenuItem{bruschetta, tiramisu, inactive} {
		require.NoError(t, store.MenuItems().Save(ctx, item))
	}

	for tableNo, seats := range map[int]int{1: 2, 3: 4} {
		table, err := dining.NewTable(tableNo, seats)
		require.NoError(t, err)
		require.NoError(t, store.Tables().Save(ctx, table))
	}

	return &cartFixture{
		store:      store,
		service:    NewCartService(store.MenuItems(), store, zap.NewNop()),
		bruschetta: bruschetta,
		tiramisu:   tiramisu,
		inactive:   inactive,
	}
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	cart, err := f.service.AddItem(ctx, AddCartItemRequest{MenuItemID: f.bruschetta.ID})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(1), cart.Items[0].Quantity)

	// Second add of the same item increments rather than duplicating
	cart, err = f.service.AddItem(ctx, AddCartItemRequest{MenuItemID: f.bruschetta.ID})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].Quantity)
	assert.True(t, decimal.NewFromFloat(19.42).Equal(cart.Total), "got %s", cart.Total)
}

func TestCartService_AddItem_Rejections(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	_, err := f.service.AddItem(ctx, AddCartItemRequest{MenuItemID: uuid.New()})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = f.service.AddItem(ctx, AddCartItemRequest{MenuItemID: f.inactive.ID})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
}

func TestCartService_SetQuantityAndRemove(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	_, err := f.service.AddItem(ctx, AddCartItemRequest{MenuItemID: f.bruschetta.ID})
	require.NoError(t, err)

	cart, err := f.service.SetQuantity(ctx, f.bruschetta.ID, SetCartQuantityRequest{Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(5), cart.Items[0].Quantity)

	// Zero removes the line
	cart, err = f.service.SetQuantity(ctx, f.bruschetta.ID, SetCartQuantityRequest{Quantity: 0})
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = f.service.SetQuantity(ctx, f.bruschetta.ID, SetCartQuantityRequest{Quantity: 2})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = f.service.AddItem(ctx, AddCartItemRequest{MenuItemID: f.tiramisu.ID})
	require.NoError(t, err)
	removed := f.service.RemoveItem(ctx, f.tiramisu.ID)
	assert.Empty(t, removed.Items)
}

func TestCartService_Submit(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	_, err := f.service.SelectTable(ctx, SelectTableRequest{TableNo: 3})
	require.NoError(t, err)
	_, err = f.service.AddItem(ctx, AddCartItemRequest{MenuItemID: f.bruschetta.ID})
	require.NoError(t, err)
	_, err = f.service.AddItem(ctx, AddCartItemRequest{MenuItemID: f.bruschetta.ID})
	require.NoError(t, err)

	order, err := f.service.Submit(ctx, SubmitCartRequest{WaiterName: "Sarah"})
	require.NoError(t, err)
	assert.Equal(t, "ORD-00001", order.Number)
	assert.Equal(t, 3, order.TableNo)
	assert.Equal(t, "Pending", order.Status)
	require.Len(t, order.Items, 1)
	assert.True(t, decimal.NewFromFloat(19.42).Equal(order.Total), "got %s", order.Total)

	// Table bound in the same step
	table, err := f.store.Tables().FindByID(ctx, 3)
	require.NoError(t, err)
	assert.True(t, table.IsOccupied())
	require.NotNil(t, table.CurrentOrderID)
	assert.Equal(t, order.ID, *table.CurrentOrderID)

	// Cart reset: no lines, no table
	cart := f.service.Get(ctx)
	assert.Empty(t, cart.Items)
	assert.Nil(t, cart.TableNo)
}

func TestCartService_Submit_Preconditions(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	// No table selected
	_, err := f.service.AddItem(ctx, AddCartItemRequest{MenuItemID: f.bruschetta.ID})
	require.NoError(t, err)
	_, err = f.service.Submit(ctx, SubmitCartRequest{WaiterName: "Sarah"})
	assert.ErrorIs(t, err, shared.ErrNoTable)

	// Empty cart
	f.service.Clear(ctx)
	_, err = f.service.SelectTable(ctx, SelectTableRequest{TableNo: 1})
	require.NoError(t, err)
	_, err = f.service.Submit(ctx, SubmitCartRequest{WaiterName: "Sarah"})
	assert.ErrorIs(t, err, shared.ErrEmptyCart)

	// Unknown table
	_, err = f.service.AddItem(ctx, AddCartItemRequest{MenuItemID: f.bruschetta.ID})
	require.NoError(t, err)
	_, err = f.service.SelectTable(ctx, SelectTableRequest{TableNo: 99})
	require.NoError(t, err)
	_, err = f.service.Submit(ctx, SubmitCartRequest{WaiterName: "Sarah"})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	// Failed submission leaves the cart intact
	cart := f.service.Get(ctx)
	assert.Len(t, cart.Items, 1)
}

func TestCartService_Submit_OccupiedTable(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	_, err := f.service.SelectTable(ctx, SelectTableRequest{TableNo: 3})
	require.NoError(t, err)
	_, err = f.service.AddItem(ctx, AddCartItemRequest{MenuItemID: f.bruschetta.ID})
	require.NoError(t, err)
	first, err := f.service.Submit(ctx, SubmitCartRequest{WaiterName: "Sarah"})
	require.NoError(t, err)

	_, err = f.service.SelectTable(ctx, SelectTableRequest{TableNo: 3})
	require.NoError(t, err)
	_, err = f.service.AddItem(ctx, AddCartItemRequest{MenuItemID: f.tiramisu.ID})
	require.NoError(t, err)
	_, err = f.service.Submit(ctx, SubmitCartRequest{WaiterName: "Mike"})
	assert.ErrorIs(t, err, shared.ErrTableOccupied)

	// The open order keeps its binding
	table, err := f.store.Tables().FindByID(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, table.CurrentOrderID)
	assert.Equal(t, first.ID, *table.CurrentOrderID)
}

func TestCartService_PriceSnapshotSurvivesCatalogChange(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	_, err := f.service.SelectTable(ctx, SelectTableRequest{TableNo: 1})
	require.NoError(t, err)
	_, err = f.service.AddItem(ctx, AddCartItemRequest{MenuItemID: f.bruschetta.ID})
	require.NoError(t, err)

	// Catalog price doubles after the line was added
	require.NoError(t, f.bruschetta.SetPrice(valueobject.NewMoneyUSDFromFloat(17.98)))
	require.NoError(t, f.store.MenuItems().Save(ctx, f.bruschetta))

	order, err := f.service.Submit(ctx, SubmitCartRequest{WaiterName: "Sarah"})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.True(t, decimal.NewFromFloat(8.99).Equal(order.Items[0].UnitPrice), "got %s", order.Items[0].UnitPrice)
}
