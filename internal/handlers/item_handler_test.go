package handlers

import (
	"net/http"
	"testing"
)

func TestItemAPI_CreateRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	body := CreateItemRequest{Type: "book", Name: "GORM in Action", Price: 15000, StockQuantity: 30}

	w := env.do(t, "POST", "/api/items", body, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status %d without token, got %d", http.StatusUnauthorized, w.Code)
	}

	w = env.do(t, "POST", "/api/items", body, env.token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status %d with token, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var response ItemResponse
	decodeJSON(t, w, &response)
	if response.ID == 0 {
		t.Error("Expected a non-zero item ID")
	}
	if string(response.Type) != "BOOK" {
		t.Errorf("Expected type BOOK, got %s", response.Type)
	}
}

func TestItemAPI_CreateValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body any
	}{
		{"unknown type", CreateItemRequest{Type: "game", Name: "Chess", Price: 1000}},
		{"missing name", map[string]any{"type": "book", "price": 1000}},
		{"negative price", map[string]any{"type": "book", "name": "X", "price": -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, "POST", "/api/items", tt.body, env.token)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status %d, got %d: %s", http.StatusBadRequest, w.Code, w.Body.String())
			}
		})
	}
}

func TestItemAPI_GetAndList(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "GET", "/api/items/1", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	var item ItemResponse
	decodeJSON(t, w, &item)
	if item.Name != "JPA1 BOOK" || item.Price != 10000 || item.Author != "Kim" {
		t.Errorf("Unexpected item: %+v", item)
	}

	w = env.do(t, "GET", "/api/items/999", nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d for unknown item, got %d", http.StatusNotFound, w.Code)
	}

	w = env.do(t, "GET", "/api/items", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	var list ListResponse[ItemResponse]
	decodeJSON(t, w, &list)
	if list.Count != 4 {
		t.Errorf("Expected 4 seeded items, got %d", list.Count)
	}

	// Paging keeps the total count but trims the page.
	w = env.do(t, "GET", "/api/items?limit=2&offset=2", nil, "")
	decodeJSON(t, w, &list)
	if list.Count != 4 || len(list.Data) != 2 {
		t.Errorf("Expected count 4 with 2 items on page, got count %d with %d items", list.Count, len(list.Data))
	}
	if list.Data[0].Name != "SPRING1 BOOK" {
		t.Errorf("Expected SPRING1 BOOK first on second page, got %s", list.Data[0].Name)
	}
}

func TestItemAPI_Update(t *testing.T) {
	env := newTestEnv(t)

	newPrice := 12000
	w := env.do(t, "PUT", "/api/items/1", UpdateItemRequest{Price: &newPrice}, env.token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var item ItemResponse
	decodeJSON(t, w, &item)
	if item.Price != 12000 {
		t.Errorf("Expected price 12000, got %d", item.Price)
	}
	// Absent fields are untouched.
	if item.Name != "JPA1 BOOK" || item.StockQuantity != 100 {
		t.Errorf("Expected unchanged name and stock, got %+v", item)
	}

	w = env.do(t, "PUT", "/api/items/1", UpdateItemRequest{Price: &newPrice}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d without token, got %d", http.StatusUnauthorized, w.Code)
	}

	w = env.do(t, "PUT", "/api/items/999", UpdateItemRequest{Price: &newPrice}, env.token)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d for unknown item, got %d", http.StatusNotFound, w.Code)
	}
}
