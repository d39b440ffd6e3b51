package order

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"coffeeshop-api/internal/menu"
)

// ValidationError carries the per-field messages surfaced as a 422 response.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// CartItem is one requested line before pricing.
type CartItem struct {
	MenuItemID     string   `json:"menu_item_id"`
	Quantity       int      `json:"quantity"`
	Size           string   `json:"size,omitempty"`
	Customizations []string `json:"customizations,omitempty"`
}

// Catalog is the read surface the pricing engine needs from the menu store.
type Catalog interface {
	GetByID(ctx context.Context, id string) (*menu.MenuItem, error)
}

// unitPrice resolves the price for a requested size. An unknown size falls
// back to the base price rather than rejecting; that matches the shipped
// behavior and must not change without product confirmation.
func unitPrice(m *menu.MenuItem, size string) (decimal.Decimal, error) {
	if size != "" {
		for _, s := range m.Sizes {
			if s.Name == size {
				return decimal.NewFromString(s.Price)
			}
		}
	}
	return decimal.NewFromString(m.Price)
}

// PriceCart resolves every cart entry against the catalog and computes the
// order total. It is a pure computation: nothing is persisted here. Returns
// menu.ErrNotFound when a referenced item is absent, or a *ValidationError
// when a constraint fails; in both cases no lines are returned.
func PriceCart(ctx context.Context, catalog Catalog, cart []CartItem) ([]Item, decimal.Decimal, error) {
	if len(cart) == 0 {
		return nil, decimal.Zero, &ValidationError{Messages: []string{"Order items can't be blank"}}
	}

	items := make([]Item, 0, len(cart))
	total := decimal.Zero
	for _, ci := range cart {
		if ci.Quantity < 1 {
			return nil, decimal.Zero, &ValidationError{Messages: []string{"Quantity must be greater than or equal to 1"}}
		}
		m, err := catalog.GetByID(ctx, ci.MenuItemID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		unit, err := unitPrice(m, ci.Size)
		if err != nil {
			return nil, decimal.Zero, err
		}
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(ci.Quantity))))
		items = append(items, Item{
			MenuItemID:     ci.MenuItemID,
			Quantity:       ci.Quantity,
			Price:          unit.StringFixed(2),
			Size:           ci.Size,
			Customizations: ci.Customizations,
		})
	}

	if !total.IsPositive() {
		return nil, decimal.Zero, &ValidationError{Messages: []string{"Total must be greater than 0"}}
	}
	return items, total, nil
}

// PointsEarned is the reward grant for a freshly created order: floor(total).
func PointsEarned(total decimal.Decimal) int {
	return int(total.Floor().IntPart())
}
