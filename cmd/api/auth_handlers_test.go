package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"coffeeshop-api/internal/user"
)

func TestRegister_IssuesToken(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	r := testRouter(fx)

	body := `{"name":"Jane","email":"jane@example.com","phone":"+111","address":"42 Elm St","password":"password123"}`
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp user.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("no token in response")
	}
	if resp.User.IsAdmin || resp.User.RewardPoints != 0 {
		t.Fatalf("fresh account got is_admin=%v reward_points=%d", resp.User.IsAdmin, resp.User.RewardPoints)
	}

	// the token works against a protected route
	w = doJSON(t, r, http.MethodGet, "/api/users", resp.Token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("token rejected: status=%d", w.Code)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	r := testRouter(fx)

	body := `{"name":"Imposter","email":"john@example.com","phone":"+111","address":"42 Elm St","password":"password123"}`
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d (expected 422 for duplicate email)", w.Code)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	r := testRouter(fx)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", `{"email":"x@example.com"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d (expected 422)", w.Code)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	r := testRouter(fx)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", `{"email":"john@example.com","password":"password123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", `{"email":"john@example.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d (expected 401 for wrong password)", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", `{"email":"ghost@example.com","password":"password123"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d (expected 401 for unknown email)", w.Code)
	}
}
