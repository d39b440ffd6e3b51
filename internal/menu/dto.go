package menu

import "github.com/shopspring/decimal"

// CreateMenuItemRequest payload for admin catalog creation.
// swagger:model CreateMenuItemRequest
type CreateMenuItemRequest struct {
	Name           string   `json:"name"        example:"Cappuccino"`
	Description    string   `json:"description" example:"Espresso with steamed milk and foam"`
	Price          string   `json:"price"       example:"4.50"`
	Image          string   `json:"image"       example:"https://example.com/cappuccino.jpg"`
	Category       string   `json:"category"    example:"coffee"`
	Sizes          []Size   `json:"sizes"`
	Customizations []string `json:"customizations"`
	Popular        bool     `json:"popular"`
}

func (r CreateMenuItemRequest) Validate() []string {
	var msgs []string
	if r.Name == "" {
		msgs = append(msgs, "Name can't be blank")
	}
	if r.Description == "" {
		msgs = append(msgs, "Description can't be blank")
	}
	if r.Image == "" {
		msgs = append(msgs, "Image can't be blank")
	}
	if !ValidCategory(r.Category) {
		msgs = append(msgs, "Category is not included in the list")
	}
	if p, err := decimal.NewFromString(r.Price); err != nil || !p.IsPositive() {
		msgs = append(msgs, "Price must be greater than 0")
	}
	for _, s := range r.Sizes {
		if p, err := decimal.NewFromString(s.Price); err != nil || !p.IsPositive() {
			msgs = append(msgs, "Sizes prices must be greater than 0")
			break
		}
	}
	return msgs
}

// UpdateMenuItemRequest payload of partial update; nil slices leave the stored
// value untouched, blank strings keep the current value.
// swagger:model UpdateMenuItemRequest
type UpdateMenuItemRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          string   `json:"price"`
	Image          string   `json:"image"`
	Category       string   `json:"category"`
	Sizes          []Size   `json:"sizes"`
	Customizations []string `json:"customizations"`
	Popular        *bool    `json:"popular"`
}

func (r UpdateMenuItemRequest) Validate() []string {
	var msgs []string
	if r.Category != "" && !ValidCategory(r.Category) {
		msgs = append(msgs, "Category is not included in the list")
	}
	if r.Price != "" {
		if p, err := decimal.NewFromString(r.Price); err != nil || !p.IsPositive() {
			msgs = append(msgs, "Price must be greater than 0")
		}
	}
	for _, s := range r.Sizes {
		if p, err := decimal.NewFromString(s.Price); err != nil || !p.IsPositive() {
			msgs = append(msgs, "Sizes prices must be greater than 0")
			break
		}
	}
	return msgs
}
