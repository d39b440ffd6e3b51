package menu

import "time"

// Categories allowed for a menu item.
var Categories = []string{"coffee", "tea", "pastries", "sandwiches", "desserts"}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Size is one sizing option with its own price. Prices are strings to avoid
// rounding errors (NUMERIC semantics, same convention as the item base price).
type Size struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// We store price as a string to avoid rounding errors (NUMERIC in Postgres)
	Price          string    `json:"price"`
	Image          string    `json:"image"`
	Category       string    `json:"category"`
	Sizes          []Size    `json:"sizes"`
	Customizations []string  `json:"customizations"`
	Popular        bool      `json:"popular"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
