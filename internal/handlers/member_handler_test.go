package handlers

import (
	"net/http"
	"testing"

	"github.com/goshop-tools/goshop_backend/internal/models"
)

func TestMemberAPI_CreateV2(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/api/v2/members", CreateMemberRequest{
		Name:    "userC",
		Email:   "userc@example.com",
		Address: models.Address{City: "Busan", Street: "3", ZipCode: "3333"},
	}, "")

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var response CreateMemberResponse
	decodeJSON(t, w, &response)
	if response.ID == 0 {
		t.Error("Expected a non-zero member ID")
	}

	// Duplicate name is a conflict.
	w = env.do(t, "POST", "/api/v2/members", CreateMemberRequest{Name: "userC"}, "")
	if w.Code != http.StatusConflict {
		t.Errorf("Expected status %d for duplicate name, got %d", http.StatusConflict, w.Code)
	}

	// Missing name fails validation.
	w = env.do(t, "POST", "/api/v2/members", map[string]any{"email": "x@example.com"}, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d for missing name, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestMemberAPI_ListV2(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "GET", "/api/v2/members", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var list ListResponse[MemberDTO]
	decodeJSON(t, w, &list)
	if list.Count != 2 {
		t.Fatalf("Expected 2 seeded members, got %d", list.Count)
	}
	if list.Data[0].Name != "userA" || list.Data[0].Address.City != "Seoul" {
		t.Errorf("Unexpected first member: %+v", list.Data[0])
	}
}

func TestMemberAPI_ListV1LeaksEntities(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "GET", "/api/v1/members", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	// v1 returns a bare array of entities, including fields the DTO hides.
	var members []map[string]any
	decodeJSON(t, w, &members)
	if len(members) != 2 {
		t.Fatalf("Expected 2 members, got %d", len(members))
	}
	if _, ok := members[0]["email"]; !ok {
		t.Error("Expected entity serialization to expose the email field")
	}
}

func TestMemberAPI_UpdateV2RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	body := UpdateMemberRequest{Name: "userA-renamed"}

	w := env.do(t, "PUT", "/api/v2/members/1", body, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status %d without token, got %d", http.StatusUnauthorized, w.Code)
	}

	w = env.do(t, "PUT", "/api/v2/members/1", body, env.token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d with token, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var response UpdateMemberResponse
	decodeJSON(t, w, &response)
	if response.Name != "userA-renamed" {
		t.Errorf("Expected renamed member, got %s", response.Name)
	}

	// The rename is visible on the list read.
	w = env.do(t, "GET", "/api/v2/members", nil, "")
	var list ListResponse[MemberDTO]
	decodeJSON(t, w, &list)
	if list.Data[0].Name != "userA-renamed" {
		t.Errorf("Expected list to reflect rename, got %s", list.Data[0].Name)
	}

	// Unknown member.
	w = env.do(t, "PUT", "/api/v2/members/999", body, env.token)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d for unknown member, got %d", http.StatusNotFound, w.Code)
	}
}
