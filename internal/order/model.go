package order

import (
	"time"

	"coffeeshop-api/internal/user"
)

type Order struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Status string `json:"status"`
	// We store total as a string to avoid rounding errors (NUMERIC in Postgres)
	Total     string    `json:"total"`
	OrderDate time.Time `json:"order_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Item is one order line with the unit price snapshotted at creation time.
type Item struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"order_id"`
	MenuItemID     string    `json:"menu_item_id"`
	Quantity       int       `json:"quantity"`
	Price          string    `json:"price"`
	Size           string    `json:"size,omitempty"`
	Customizations []string  `json:"customizations"`
	CreatedAt      time.Time `json:"created_at"`
}

// WithItems is the shape the API returns: header, lines and the owner summary
// (owner only populated on admin listings).
type WithItems struct {
	Order
	Items []Item        `json:"order_items"`
	User  *user.Summary `json:"user,omitempty"`
}
