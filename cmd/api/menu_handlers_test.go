package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"coffeeshop-api/internal/menu"
)

func TestListMenuItems_Public(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	r := testRouter(fx)

	w := doJSON(t, r, http.MethodGet, "/api/menu_items", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var items []menu.MenuItem
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items len=%d, expected 2", len(items))
	}
}

func TestMenuItems_PopularAndCategory(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	r := testRouter(fx)

	w := doJSON(t, r, http.MethodGet, "/api/menu_items/popular", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var items []menu.MenuItem
	_ = json.Unmarshal(w.Body.Bytes(), &items)
	if len(items) != 1 || items[0].Name != "Latte" {
		t.Fatalf("popular filter wrong: %+v", items)
	}

	w = doJSON(t, r, http.MethodGet, "/api/menu_items/by_category?category=coffee", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/menu_items/by_category?category=burgers", "", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d (expected 422 for unknown category)", w.Code)
	}
}

func TestGetMenuItem_NotFound(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	r := testRouter(fx)

	w := doJSON(t, r, http.MethodGet, "/api/menu_items/missing-id", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d (expected 404)", w.Code)
	}
}

func TestCreateMenuItem_AdminOnlyAndValidated(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	r := testRouter(fx)

	body := `{"name":"Mocha","description":"Chocolate espresso","price":"5.25","image":"mocha.jpg","category":"coffee",
		"sizes":[{"name":"Small","price":"5.25"},{"name":"Large","price":"6.75"}],"customizations":["Whipped cream"]}`

	// mutations are admin-gated
	w := doJSON(t, r, http.MethodPost, "/api/admin/menu_items", tokenFor(fx.customer), body)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status=%d (expected 403 for non-admin)", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/admin/menu_items", tokenFor(fx.admin), body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	// invalid category and non-positive price are rejected
	bad := `{"name":"Cola","description":"Fizzy","price":"0","image":"cola.jpg","category":"soda"}`
	w = doJSON(t, r, http.MethodPost, "/api/admin/menu_items", tokenFor(fx.admin), bad)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d (expected 422)", w.Code)
	}
	var resp struct {
		Errors []string `json:"errors"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Errors) != 2 {
		t.Fatalf("errors=%v, expected category and price messages", resp.Errors)
	}
}

func TestDeleteMenuItem(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	r := testRouter(fx)

	w := doJSON(t, r, http.MethodDelete, "/api/admin/menu_items/"+fx.espresso.ID, tokenFor(fx.admin), "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("status=%d", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/api/admin/menu_items/"+fx.espresso.ID, tokenFor(fx.admin), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d (expected 404 on second delete)", w.Code)
	}
}
