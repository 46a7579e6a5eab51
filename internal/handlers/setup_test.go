package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goshop-tools/goshop_backend/internal/auth"
	"github.com/goshop-tools/goshop_backend/internal/database"
	"github.com/goshop-tools/goshop_backend/internal/middleware"
	"github.com/goshop-tools/goshop_backend/internal/repository"
	"github.com/goshop-tools/goshop_backend/internal/services"
)

// testEnv wires the full API stack over a seeded in-memory database.
type testEnv struct {
	router *gin.Engine
	client *database.Client
	token  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// Each test gets its own named shared-cache database so the pool's
	// connections see the same data without leaking between tests.
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared&_foreign_keys=on", name)

	client, err := database.NewClient(database.Config{DSN: dsn, SQLLogLevel: "silent"})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	if err := client.AutoMigrate(); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	if err := client.SeedData(); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}

	jwtService, err := auth.NewJWTService(auth.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  time.Hour,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "test-issuer",
	})
	if err != nil {
		t.Fatalf("Failed to create JWT service: %v", err)
	}

	memberRepo := repository.NewMemberRepository(client.DB())
	itemRepo := repository.NewItemRepository(client.DB())
	orderRepo := repository.NewOrderRepository(client.DB())
	orderQueryRepo := repository.NewOrderQueryRepository(client.DB())
	categoryRepo := repository.NewCategoryRepository(client.DB())

	memberService := services.NewMemberService(memberRepo)
	itemService := services.NewItemService(itemRepo)
	orderService := services.NewOrderService(orderRepo, memberRepo, itemRepo)
	authService := services.NewAuthService(memberRepo, jwtService)

	authMW := middleware.AuthMiddleware(jwtService)

	router := gin.New()
	api := router.Group("/api")
	NewAuthHandler(authService).RegisterRoutes(api)
	NewMemberHandler(memberService).RegisterRoutes(api, authMW)
	NewItemHandler(itemService).RegisterRoutes(api, authMW)
	NewOrderHandler(orderService, orderRepo, orderQueryRepo, 100, 100).RegisterRoutes(api)
	NewOrderSimpleHandler(orderRepo, orderQueryRepo).RegisterRoutes(api)
	NewCategoryHandler(categoryRepo).RegisterRoutes(api)

	pair, err := jwtService.GenerateTokenPair(1, "userA")
	if err != nil {
		t.Fatalf("Failed to generate token pair: %v", err)
	}

	return &testEnv{router: router, client: client, token: pair.AccessToken}
}

// do performs a request against the test router. A non-nil body is sent as
// JSON; a non-empty token is sent as a bearer credential.
func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("Failed to unmarshal response %q: %v", w.Body.String(), err)
	}
}
