package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/RayLight-369/rms/internal/domain/dining"
	"github.com/RayLight-369/rms/internal/domain/inventory"
	"github.com/RayLight-369/rms/internal/domain/menu"
	"github.com/RayLight-369/rms/internal/domain/shared/valueobject"
)

// Seed loads the demo dataset: the full menu, twelve tables, the
// storeroom, and three in-flight orders bound to their tables, so a
// fresh process serves a working floor immediately.
func Seed(ctx context.Context, store *Store) error {
	menuByName, err := seedMenu(ctx, store)
	if err != nil {
		return err
	}
	if err := seedStock(ctx, store); err != nil {
		return err
	}
	if err := seedTables(ctx, store); err != nil {
		return err
	}
	return seedOrders(ctx, store, menuByName)
}

type menuSeed struct {
	name        string
	price       float64
	category    menu.Category
	description string
	active      bool
}

var menuSeeds = []menuSeed{
	{"Bruschetta", 8.99, menu.CategoryAppetizer, "Toasted bread with tomato & basil", true},
	{"Caesar Salad", 10.99, menu.CategoryAppetizer, "Fresh romaine with parmesan", true},
	{"Soup of the Day", 6.99, menu.CategoryAppetizer, "Ask your server", true},
	{"Garlic Bread", 5.99, menu.CategoryAppetizer, "With herb butter", true},
	{"Caprese Salad", 11.99, menu.CategoryAppetizer, "Mozzarella, tomato, basil", false},
	{"Grilled Salmon", 24.99, menu.CategoryMain, "With seasonal vegetables", true},
	{"Ribeye Steak", 32.99, menu.CategoryMain, "12oz prime cut", true},
	{"Chicken Parmesan", 18.99, menu.CategoryMain, "With pasta marinara", true},
	{"Mushroom Risotto", 16.99, menu.CategoryMain, "Creamy arborio rice", true},
	{"Fish & Chips", 15.99, menu.CategoryMain, "Beer-battered cod", true},
	{"Lamb Chops", 28.99, menu.CategoryMain, "With mint sauce", true},
	{"Sparkling Water", 3.99, menu.CategoryDrink, "", true},
	{"Fresh Orange Juice", 4.99, menu.CategoryDrink, "", true},
	{"Espresso", 3.49, menu.CategoryDrink, "", true},
	{"Cappuccino", 4.49, menu.CategoryDrink, "", true},
	{"House Red Wine", 8.99, menu.CategoryDrink, "", true},
	{"House White Wine", 8.99, menu.CategoryDrink, "", true},
	{"Tiramisu", 8.99, menu.CategoryDessert, "", true},
	{"Chocolate Cake", 7.99, menu.CategoryDessert, "", true},
	{"Crème Brûlée", 9.99, menu.CategoryDessert, "", true},
}

func seedMenu(ctx context.Context, store *Store) (map[string]*menu.MenuItem, error) {
	repo := store.MenuItems()
	byName := make(map[string]*menu.MenuItem, len(menuSeeds))

	for _, seed := range menuSeeds {
		item, err := menu.NewMenuItem(seed.name, valueobject.NewMoneyUSDFromFloat(seed.price), seed.category)
		if err != nil {
			return nil, fmt.Errorf("seed menu item %q: %w", seed.name, err)
		}
		item.Description = seed.description
		if !seed.active {
			item.Deactivate()
		}
		if err := repo.Save(ctx, item); err != nil {
			return nil, err
		}
		byName[seed.name] = item
	}
	return byName, nil
}

type stockSeed struct {
	name     string
	quantity int64
	unit     string
	minLevel int64
}

var stockSeeds = []stockSeed{
	{"Salmon Fillet", 12, "kg", 5},
	{"Ribeye Steak", 8, "kg", 10},
	{"Chicken Breast", 15, "kg", 8},
	{"Arborio Rice", 3, "kg", 5},
	{"Olive Oil", 8, "liters", 3},
	{"Parmesan Cheese", 2, "kg", 3},
	{"Fresh Tomatoes", 4, "kg", 6},
	{"Espresso Beans", 5, "kg", 2},
	{"House Red Wine", 18, "bottles", 10},
	{"Lamb Chops", 6, "kg", 4},
}

func seedStock(ctx context.Context, store *Store) error {
	repo := store.StockItems()

	for _, seed := range stockSeeds {
		item, err := inventory.NewStockItem(seed.name, seed.quantity, seed.unit, seed.minLevel)
		if err != nil {
			return fmt.Errorf("seed stock record %q: %w", seed.name, err)
		}
		if err := repo.Save(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// tableSeats maps table number to seat count for the dining room layout
var tableSeats = map[int]int{
	1: 2, 2: 4, 3: 4, 4: 2, 5: 6, 6: 4,
	7: 4, 8: 8, 9: 2, 10: 6, 11: 4, 12: 2,
}

func seedTables(ctx context.Context, store *Store) error {
	repo := store.Tables()

	for id, seats := range tableSeats {
		table, err := dining.NewTable(id, seats)
		if err != nil {
			return fmt.Errorf("seed table %d: %w", id, err)
		}
		if err := repo.Save(ctx, table); err != nil {
			return err
		}
	}
	return nil
}

type orderSeed struct {
	tableNo    int
	waiterName string
	status     dining.OrderStatus
	age        time.Duration
	lines      []orderLineSeed
}

type orderLineSeed struct {
	menuItem string
	quantity int64
}

var orderSeeds = []orderSeed{
	{
		tableNo: 3, waiterName: "Sarah", status: dining.OrderStatusPending, age: 15 * time.Minute,
		lines: []orderLineSeed{{"Bruschetta", 2}, {"Grilled Salmon", 1}, {"Cappuccino", 2}},
	},
	{
		tableNo: 7, waiterName: "Mike", status: dining.OrderStatusInProgress, age: 25 * time.Minute,
		lines: []orderLineSeed{{"Ribeye Steak", 2}, {"Caesar Salad", 1}, {"House Red Wine", 2}},
	},
	{
		tableNo: 1, waiterName: "Sarah", status: dining.OrderStatusReady, age: 35 * time.Minute,
		lines: []orderLineSeed{{"Mushroom Risotto", 1}, {"Sparkling Water", 2}},
	},
}

func seedOrders(ctx context.Context, store *Store, menuByName map[string]*menu.MenuItem) error {
	for _, seed := range orderSeeds {
		lines := make([]dining.OrderLine, 0, len(seed.lines))
		for _, ls := range seed.lines {
			item, ok := menuByName[ls.menuItem]
			if !ok {
				return fmt.Errorf("seed order references unknown menu item %q", ls.menuItem)
			}
			line, err := dining.NewOrderLine(item.ID, item.Name, ls.quantity, item.Price)
			if err != nil {
				return err
			}
			lines = append(lines, line)
		}

		seed := seed
		err := store.Transaction(ctx, func(repos dining.Repositories) error {
			number, err := repos.Orders.NextOrderNumber(ctx)
			if err != nil {
				return err
			}
			order, err := dining.NewOrder(number, seed.tableNo, seed.waiterName, lines)
			if err != nil {
				return err
			}
			order.CreatedAt = time.Now().Add(-seed.age)
			if _, err := order.SetStatus(seed.status); err != nil {
				return err
			}
			if err := repos.Orders.Save(ctx, order); err != nil {
				return err
			}

			table, err := repos.Tables.FindByID(ctx, seed.tableNo)
			if err != nil {
				return err
			}
			if err := table.Bind(order.ID); err != nil {
				return err
			}
			return repos.Tables.Save(ctx, table)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
