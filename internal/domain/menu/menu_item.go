package menu

import (
	"strings"

	"github.com/RayLight-369/rms/internal/domain/shared"
	"github.com/RayLight-369/rms/internal/domain/shared/valueobject"
)

// Category represents the menu section an item belongs to
type Category string

const (
	CategoryAppetizer Category = "appetizer"
	CategoryMain      Category = "main"
	CategoryDrink     Category = "drink"
	CategoryDessert   Category = "dessert"
)

// IsValid checks if the category is a valid Category
func (c Category) IsValid() bool {
	switch c {
	case CategoryAppetizer, CategoryMain, CategoryDrink, CategoryDessert:
		return true
	}
	return false
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// MenuItem represents a dish or drink offered by the restaurant
// It is the aggregate root for catalog operations
type MenuItem struct {
	shared.BaseEntity
	Name        string
	Description string
	Price       valueobject.Money
	Category    Category
	IsActive    bool
}

// NewMenuItem creates a new menu item
func NewMenuItem(name string, price valueobject.Money, category Category) (*MenuItem, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category must be appetizer, main, drink or dessert")
	}

	return &MenuItem{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Price:      price,
		Category:   category,
		IsActive:   true,
	}, nil
}

// Update updates the item's basic information
func (m *MenuItem) Update(name, description string) error {
	if err := validateName(name); err != nil {
		return err
	}

	m.Name = strings.TrimSpace(name)
	m.Description = description
	m.Touch()

	return nil
}

// SetPrice changes the catalog price. Orders already placed keep the
// price snapshot taken when their lines were added.
func (m *MenuItem) SetPrice(price valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	m.Price = price
	m.Touch()

	return nil
}

// SetCategory moves the item to another menu section
func (m *MenuItem) SetCategory(category Category) error {
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "Category must be appetizer, main, drink or dessert")
	}

	m.Category = category
	m.Touch()

	return nil
}

// Activate makes the item orderable
func (m *MenuItem) Activate() {
	m.IsActive = true
	m.Touch()
}

// Deactivate hides the item from order-taking without deleting it
func (m *MenuItem) Deactivate() {
	m.IsActive = false
	m.Touch()
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}
