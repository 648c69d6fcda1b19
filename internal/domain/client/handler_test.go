package client_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/crediario/crediario-api/internal/domain/client"
	"github.com/crediario/crediario-api/internal/middleware"
	"github.com/crediario/crediario-api/internal/pkg/jwt"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupClientRouter(t *testing.T) (http.Handler, string, client.Repository) {
	t.Helper()

	jwtService := jwt.NewService("test-secret", time.Hour)
	merchantID := uuid.New()
	token, err := jwtService.GenerateAccessToken(uuid.New(), "comerciante", &merchantID)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	repo := client.NewRepository()
	handler := client.NewHandler(client.NewService(repo))
	return handler.Routes(middleware.Auth(jwtService)), token, repo
}

func TestCreateClientWithDebtOverLimit(t *testing.T) {
	router, token, repo := setupClientRouter(t)

	body, _ := json.Marshal(map[string]any{
		"name":         "Ana Almeida",
		"cpf":          "12345678900",
		"email":        "ana@email.com",
		"phone":        "(11) 91234-5678",
		"address":      "Av. Brasil, 10",
		"credit_limit": "1000",
		"current_debt": "5000",
	})
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if env.Error == nil || env.Error.Code != "INVALID_BALANCE" {
		t.Fatalf("expected INVALID_BALANCE, got %+v", env.Error)
	}

	if got := len(repo.All(context.Background())); got != 0 {
		t.Fatalf("rejected client was persisted, found %d", got)
	}
}

func TestCreateClientWithNegativeLimit(t *testing.T) {
	router, token, _ := setupClientRouter(t)

	body, _ := json.Marshal(map[string]any{
		"name":         "Ana Almeida",
		"cpf":          "12345678900",
		"email":        "ana@email.com",
		"phone":        "(11) 91234-5678",
		"address":      "Av. Brasil, 10",
		"credit_limit": "-100",
		"current_debt": "0",
	})
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateClientWithinLimit(t *testing.T) {
	router, token, _ := setupClientRouter(t)

	body, _ := json.Marshal(map[string]any{
		"name":         "Ana Almeida",
		"cpf":          "12345678900",
		"email":        "ana@email.com",
		"phone":        "(11) 91234-5678",
		"address":      "Av. Brasil, 10",
		"credit_limit": "1000",
		"current_debt": "400",
	})
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	var c client.ClientResponse
	if err := json.Unmarshal(env.Data, &c); err != nil {
		t.Fatalf("invalid client payload: %v", err)
	}
	if c.AvailableCredit.IsNegative() {
		t.Fatalf("available credit must not be negative: %s", c.AvailableCredit)
	}
}
