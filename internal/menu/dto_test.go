package menu

import "testing"

func TestCreateMenuItemRequestValidate(t *testing.T) {
	ok := CreateMenuItemRequest{
		Name:        "Latte",
		Description: "Smooth espresso with steamed milk",
		Price:       "5.00",
		Image:       "latte.jpg",
		Category:    "coffee",
		Sizes:       []Size{{Name: "Small", Price: "5.00"}},
	}
	if msgs := ok.Validate(); len(msgs) != 0 {
		t.Fatalf("valid request rejected: %v", msgs)
	}

	bad := CreateMenuItemRequest{Price: "-1", Category: "soda"}
	msgs := bad.Validate()
	if len(msgs) != 5 {
		t.Fatalf("msgs=%v, expected name/description/image/category/price", msgs)
	}

	badSize := ok
	badSize.Sizes = []Size{{Name: "Small", Price: "nope"}}
	if msgs := badSize.Validate(); len(msgs) != 1 {
		t.Fatalf("invalid size price not caught: %v", msgs)
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !ValidCategory(c) {
			t.Fatalf("%s rejected", c)
		}
	}
	if ValidCategory("soda") || ValidCategory("") {
		t.Fatalf("unknown category accepted")
	}
}
